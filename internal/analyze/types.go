package analyze

import (
	"extenum-generator/internal/common"
	"extenum-generator/internal/syntax"
)

// Marker identifiers recognized in declaration files.
const (
	// CaseMarker is the field type of a bare case.
	CaseMarker = "Case"
	// RawValueMarker names the raw type in catch-all payloads.
	RawValueMarker = "RawValue"
	// RawTag is the struct tag holding an explicit raw value.
	RawTag = "raw"
)

// knownCasesFields are the field names of the nested KnownCases table; the
// unexported spelling makes the table private.
var knownCasesFields = []string{"knownCases", "KnownCases"}

// PackageInfo holds information about the package declaring an enum.
type PackageInfo struct {
	Path string // Import path, empty for standalone files
	Name string // Package name
	Dir  string // Directory of the declaring file
}

// Import is an import of the declaring file.
type Import struct {
	Name string // Explicit name, empty when implied by the path
	Path string
}

// LocalName returns the name the import is referenced by.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}

	return common.PkgAlias(i.Path)
}

// Declaration is an extendable enum found in Go source.
type Declaration struct {
	Decl    *syntax.TypeDecl
	Options DirectiveOptions
	Package PackageInfo
	File    string
	Imports []Import
}

// ImportsFor returns the imports referenced by the given type expressions, in
// import order.
func (d *Declaration) ImportsFor(refs ...syntax.TypeRef) []Import {
	used := make(map[string]bool)

	for _, r := range refs {
		for _, q := range r.Qualifiers() {
			used[q] = true
		}
	}

	var res []Import

	for _, imp := range d.Imports {
		if used[imp.LocalName()] {
			res = append(res, imp)
		}
	}

	return res
}
