// Package diag provides the single structured logger every diagnostic
// message in this codebase goes through. All of it is bound to stderr; the
// primary output stream (suite rows, structured results) never passes
// through here (spec.md §4.5, SPEC_FULL §4.9).
package diag
