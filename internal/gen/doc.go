// Package gen renders expanded enums as Go source.
//
// Generation uses text/template + go/format. One file (extenum_gen.go by
// default) is written per package directory; it is guarded by the negated
// declaration build tag so that it replaces the declarations in normal builds.
//
// For an enum Color with raw type string the file declares:
//   - ColorCase, the case discriminator, with ColorCaseUnknown as zero value
//   - Color, a comparable struct holding the case and catch-all payload
//   - ColorRed, ColorGreen, ... for cases without payload
//   - ColorUnknown(rawValue) and the Unknown() accessor for the catch-all
//   - ColorKnownCases, NewColor, RawValue, String
//   - MarshalText/UnmarshalText, or MarshalJSON/UnmarshalJSON for
//     non-string raw types
package gen
