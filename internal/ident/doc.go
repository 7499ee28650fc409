// Package ident generates record identifiers and timestamps for ReqIF output.
//
// Identifiers have the form PREFIX_suffix where suffix is a base58-encoded
// UUID. A Random generator is used for normal runs; a Seeded generator
// produces the same sequence for the same seed, which keeps golden output
// stable in tests.
package ident
