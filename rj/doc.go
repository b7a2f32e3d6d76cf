// Package rj implements the native transformation engine: an RFC 8259
// JSON parser, a canonical formatter, and a structural dump.
//
// Parse is a recursive-descent parser producing a Value tree. Object
// members keep the order their keys first appeared in the input, and a
// repeated key replaces the earlier value in place. Numbers are
// float64. Whitespace is the RFC set: space, horizontal tab, line
// feed, carriage return.
//
// Format re-emits a value with two-space indentation; Stringify emits
// the compact single-line form; Dump renders the parsed structure with
// explicit variant names, one leaf per line.
package rj
