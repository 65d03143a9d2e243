// Package dsl provides the codec constructors and composition operators of
// data-api: leaf codecs over the Element tree, list and optional wrappers,
// the record field builder, either/alternative unions, tagged dispatch, and
// reflection-based derivation.
//
// Composition is by value: every operator returns a new immutable codec and
// never mutates its children. Decode errors are accumulated, not
// short-circuited, within record and list composites, and every composite
// prefixes child error paths with its own field name or index.
package dsl
