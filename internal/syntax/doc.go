// Package syntax provides the language-neutral declaration tree consumed by
// the expansion core.
//
// Both frontends (Go source files and YAML declaration files) build the same
// tree, so validation and synthesis never look at go/ast or YAML nodes.
//
// Key types:
//   - Decl: tagged variant implemented by TypeDecl, CaseDecl, FuncDecl, VarDecl
//   - TypeRef: a type expression compared structurally
//   - Literal: a raw-value literal with its kind
//   - Pos: a source position used in diagnostics
package syntax
