// Package plan expands an extendable enum declaration into the members that
// code generation renders.
//
// Expansion pipeline:
//  1. Validate the declaration (enum kind, nested KnownCases, private, one
//     raw type, bare entries, raw literals, no manual hash contribution)
//  2. Synthesize members: known cases, catch-all case (reused or derived),
//     forward lookup, reverse table (last writer wins), raw-value accessor,
//     initializer
//  3. Decide whether the hashability conformance must be attached
//
// Every failure is a *Error with a closed ErrorKind. Expansion never returns
// partial output.
package plan
