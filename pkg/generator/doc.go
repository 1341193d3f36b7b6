// Package generator drives the external pairwise generator (Microsoft PICT)
// as a child process: it serializes the canonical (already-reordered) model
// to a temporary file, forwards the seed and interaction strength as
// documented flags, and captures stdout as TSV. It owns both the stdout
// drain and the graceful-terminate/force-kill sequence on timeout; no
// signal handling lives above this package.
package generator
