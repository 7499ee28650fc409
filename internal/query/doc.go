// Package query evaluates JSONPath selectors against decoded JSON trees.
//
// Selectors are compiled once and cached per Evaluator. Every match carries
// the value and the normalized path that located it, so errors raised further
// down the pipeline can point back at the input node.
//
// Filter expressions work on the elements of arrays and objects, which is why
// mappings usually select a "children" array as the container and use
// filters such as $[?(@.type == 'Folder')] to pick variants out of it.
package query
