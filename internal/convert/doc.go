// Package convert maps a decoded JSON document onto ReqIF records.
//
// A conversion runs in four steps, all owned by a single Convert call:
//
//  1. Resolvers pre-compute every attribute definition of the specification
//     type and of each requirement variant, interning data types in a Registry.
//  2. The traversal walks the requirement nodes depth-first, building one
//     SpecObject and one SpecHierarchy per matched node.
//  3. One Specification is built per specification selector match. Each one
//     carries the complete hierarchy forest.
//  4. Everything is gathered into a reqif.Bundle with a header.
//
// Lookups that fail during the walk abort the conversion. Empty attribute
// values are not errors; the attribute is left out.
package convert
