// Package analyze finds extendable enum declarations in Go source.
//
// Declarations live in files built only with the extenum tag. The package
// loads them with golang.org/x/tools/go/packages (or parses a single file)
// and converts each struct carrying the //extenum:enum directive into a
// syntax.TypeDecl:
//   - the knownCases field (unexported: private) is the KnownCases table,
//     its embedded field the raw type
//   - embedded fields of the enum are its conformances
//   - Case-typed fields are bare cases, func-typed fields cases with
//     parameters, raw tags explicit raw values
//   - methods of the enum are its member functions
package analyze
