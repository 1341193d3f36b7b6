// Package verify proves (or disproves) that a candidate suite covers every
// unordered value pair of a model — the mathematical core of the system's
// certification story. Verification never panics or returns a raw fault for
// a malformed suite: schema mismatches and unknown values are reported as
// dedicated diagnostics on the Report, exactly like a missing-pair failure.
package verify
