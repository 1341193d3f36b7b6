package driver

// better reports whether candidate should replace incumbent as best-so-far,
// under the strictly total ordering from spec.md §4.6:
//
//  1. VERIFIED beats unverified (SUITE/UNVERIFIED), always.
//  2. Within the same verified-class, smaller suite size n wins.
//  3. Ties broken by smaller seed under deterministic seeding, or by earliest
//     attempt index otherwise — the attempt index always increases
//     monotonically, so "earliest" just means "incumbent stays."
//
// incumbent may be nil, meaning no candidate has been accepted yet.
func better(candidate Attempt, incumbent *Attempt, deterministic bool) bool {
	if incumbent == nil {
		return true
	}
	if candidate.verifiedClass() != incumbent.verifiedClass() {
		return candidate.verifiedClass() > incumbent.verifiedClass()
	}
	if candidate.N != incumbent.N {
		return candidate.N < incumbent.N
	}
	if deterministic {
		return candidate.Seed < incumbent.Seed
	}
	// Non-deterministic ties: incumbent was recorded first (lower index),
	// so it stays put — the candidate never wins a tie.
	return false
}
