// Package treepath reads and writes values inside generic trees, the
// map[string]any / []any / scalar shape produced by decoding JSON or YAML,
// using dotted path strings.
//
// # Syntax
//
//	name                              field of the root mapping
//	primaryAddress.street             field of a nested mapping
//	tags[]                            first element of a sequence
//	friends[2].name                   element by index
//	friends[{name=Art}].city          elements whose "name" prints as "Art"
//	addrs[{state=TX}{city=Irving}]    every clause must hold
//
// A segment carries at most one selector; sequences nested directly inside
// sequences cannot be addressed.
//
// # Reading
//
// Get follows the path and reports absence, a missing key, index or filter
// match, with a false boolean rather than an error. A filter yields its first
// match. Select returns every match instead.
//
// # Writing
//
// Set creates missing mappings and sequences, pads sequences for indexes past
// their end, and applies the write to every element a filter matches. The
// last segment decides the operation:
//
//	field            assign, or delete when the value is nil
//	[] and [n]       append the value
//	filter           rejected with ErrAmbiguousWrite
//
// Trees are mutated in place and are not safe for concurrent writes.
package treepath
