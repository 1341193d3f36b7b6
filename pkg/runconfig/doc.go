// Package runconfig loads an optional YAML run-configuration file and merges
// it with flags supplied on the command line, following the same
// parse-then-validate shape the rest of this codebase uses for its
// configuration types.
package runconfig
