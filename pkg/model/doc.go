// Package model defines the parameter model that pairwise suites are generated
// against: parsing and serializing the textual form, deriving generator-safe
// identifiers, canonicalizing value labels, and computing the ordering plan
// handed to the external generator.
//
// # Textual form
//
// A model source is line-oriented UTF-8 text:
//
//	# comment
//	Browser : Chrome, Firefox, Safari, Edge
//	OS      : Windows, macOS, Linux
//
// Each declared line is `NAME : V1, V2, …`. Blank lines and `#`-prefixed
// comment lines are ignored. A leading UTF-8 BOM and CRLF line endings are
// both tolerated.
//
// # Safe names
//
// Every parameter's display_name is mapped to a generator-compatible
// identifier (ASCII letters, digits, underscore) via SafeName. The mapping
// is deterministic, idempotent, and unique across a model.
//
// # Ordering
//
// An OrderingPlan computes the permutation fed to the external generator.
// Mode "keep" is the identity; mode "auto" sorts parameters by descending
// cardinality to help the generator find smaller suites. Either way, rows
// returned by the generator are re-projected back to the model's declared
// order before anything downstream ever sees them.
package model
