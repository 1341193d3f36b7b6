package seedrng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// DeriveAttemptSeed computes the generator seed for attempt index k in
// non-deterministic mode:
//
//	seed_k = H(baseSeed, k, modelBytes)
//
// where H is SHA-256 and the first 8 bytes of the digest are read as a
// big-endian uint64. Distinct attempt indices yield independent-looking
// draws; a distinct model (even with the same baseSeed) yields a distinct
// sequence, so two unrelated runs sharing a base seed by coincidence don't
// collide.
func DeriveAttemptSeed(baseSeed uint64, attemptIndex int, modelBytes []byte) uint64 {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], baseSeed)
	h.Write(buf[:])

	binary.BigEndian.PutUint64(buf[:], uint64(attemptIndex))
	h.Write(buf[:])

	h.Write(modelBytes)

	digest := h.Sum(nil)
	return binary.BigEndian.Uint64(digest[:8])
}

// Stream is the per-run RNG used when deterministic=false: seeded once via
// DeriveAttemptSeed(baseSeed, 0, modelBytes), it then draws successive
// attempt seeds from a math/rand stream so attempts explore more of the
// generator's seed space than the fixed seed+k progression would, while
// remaining a pure function of the attempt sequence the driver produces —
// the driver's own bookkeeping never becomes a source of nondeterminism.
type Stream struct {
	seed   uint64
	source *rand.Rand
}

// NewStream derives a Stream's initial seed from baseSeed and modelBytes.
func NewStream(baseSeed uint64, modelBytes []byte) *Stream {
	derived := DeriveAttemptSeed(baseSeed, 0, modelBytes)
	return &Stream{seed: derived, source: rand.New(rand.NewSource(int64(derived)))}
}

// Next draws the next attempt seed from the stream.
func (s *Stream) Next() uint64 {
	return s.source.Uint64()
}

// Seed returns the Stream's own derived seed, for logging/debugging.
func (s *Stream) Seed() uint64 {
	return s.seed
}
