// Package extenum provides the marker types of extendable enum declarations.
//
// A declaration is a struct type in a file built only with the extenum tag:
//
//	//go:build extenum
//
//	//extenum:enum
//	type Color struct {
//		knownCases struct {
//			string
//
//			Red   extenum.Case `raw:"thecolorred"`
//			Green extenum.Case
//		}
//	}
//
// extenum-generator replaces it with a generated type in extenum_gen.go, built
// without the tag.
package extenum

// Case marks a bare enum case.
type Case struct{}

// RawValue stands for the raw type of the enum in case payloads, e.g.
// Unknown func(rawValue extenum.RawValue).
type RawValue struct{}

// Hashable declares, when embedded in the enum, that the enum already
// provides its hashability guarantee; no conformance assertion is generated.
type Hashable struct{}
