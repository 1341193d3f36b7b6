// Package exitcode maps a driver Result (or an input-validation/internal
// failure that never reached the driver) to the stable exit-code contract
// from spec.md §6.5: 0 success, 2 validation, 3 generator/internal error,
// 4 verification failure, 5 timeout.
package exitcode
