// Package output renders a driver Result into one of the primary output
// stream's three deterministic forms — tabular, delimited, structured — plus
// an optional diagnostic-only SVG pair-coverage rendering. Formatters are
// kept in a small name registry, the same pattern this codebase uses for
// its other pluggable-strategy concerns.
package output
