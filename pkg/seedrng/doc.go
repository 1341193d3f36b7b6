// Package seedrng derives the per-attempt generator seed used when the
// driver runs in non-deterministic mode (spec.md §4.6: "a PRNG draw seeded
// from seed"). The derivation is itself deterministic — the same
// (base seed, attempt index, canonical model bytes) always yields the same
// draw within one process — so a run can be replayed for debugging even
// though it explores more of the generator's seed space than the fixed
// seed+k progression would.
package seedrng
