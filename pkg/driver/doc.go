// Package driver implements the multi-seed optimization loop: the heart of
// the system. It drives the external generator across a deterministic (or
// PRNG-drawn) sequence of seeds, gates each candidate suite through the
// verifier, tracks the best-so-far suite under a strictly total selection
// ordering, and stops early when a suite provably matches the lower bound.
//
// The loop is single-threaded and strictly sequential by design (spec.md
// §5): one child process runs at a time, so the seed sequence and the
// selection ordering stay deterministic regardless of host concurrency.
package driver
