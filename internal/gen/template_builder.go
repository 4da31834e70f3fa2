package gen

import (
	"slices"
	"strings"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// fileData holds all data needed for one generated file.
type fileData struct {
	Tag              string
	PackageName      string
	Imports          []importSpec
	Enums            []*enumData
	GenerateComments bool
}

// importSpec is one import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

// enumData holds the rendering of one enum.
type enumData struct {
	Name string
	Doc  []string

	CaseType string
	RawType  string

	// Cases lists every case in discriminator order: the catch-all first,
	// then known cases, then the remaining declared cases.
	Cases    []*caseData
	CatchAll *caseData
	// Values are the cases without payload, declared as variables.
	Values []*caseData
	// Constructors are the cases with payload.
	Constructors []*caseData

	KnownCasesFunc string
	Known          []*caseData

	RawValueOf     string
	Forward        []forwardData
	KnownRawValues string
	Reverse        []reverseData

	NewFunc   string
	ParamName string

	Stringer    bool
	MarshalText bool
	MarshalJSON bool
	Extension   bool
}

// caseData is one case of an enum.
type caseData struct {
	Name   string
	Const  string
	Value  string
	Label  string
	Fields []fieldData
}

// fieldData is one payload value of a case.
type fieldData struct {
	Field string
	Param string
	Type  string
}

// forwardData maps a known case to its raw literal.
type forwardData struct {
	Const   string
	Literal string
}

// reverseData maps a raw literal to its known case.
type reverseData struct {
	Literal string
	Value   string
}

// buildEnumData constructs the template data for one expanded enum. refs
// collects the type expressions the rendering references.
func buildEnumData(e Enum, refs *[]syntax.TypeRef) *enumData {
	m := e.Members
	decl := e.Decl.Decl
	n := newNamer(decl.Name)
	raw := m.RawType

	data := &enumData{
		Name:           decl.Name,
		CaseType:       n.caseType(),
		RawType:        raw.String(),
		RawValueOf:     n.rawValueOf(),
		KnownRawValues: n.knownRawValues(),
		NewFunc:        n.initializer(),
		ParamName:      m.CatchAll.ParamName,
		Stringer:       m.Has(plan.StringerMember{}),
		Extension:      len(m.Extensions) > 0,
	}

	*refs = append(*refs, raw)

	if decl.Doc != "" {
		data.Doc = strings.Split(strings.TrimRight(decl.Doc, "\n"), "\n")
	}

	if mm, ok := m.Marshal(); ok {
		data.MarshalText = mm.Text
		data.MarshalJSON = !mm.Text
	}

	if m.Has(plan.KnownCasesListMember{}) {
		data.KnownCasesFunc = n.knownCases()
	}

	seen := make(map[string]*caseData)

	add := func(name string, params []syntax.Param) *caseData {
		if c, ok := seen[name]; ok {
			return c
		}

		c := &caseData{
			Name:  name,
			Const: n.caseConst(name),
			Value: n.caseValue(name),
			Label: caseLabel(name, len(params)),
		}

		for i, p := range params {
			typ := goType(p.Type, raw)
			*refs = append(*refs, typ)

			pn := paramName(p, i)
			c.Fields = append(c.Fields, fieldData{
				Field: n.payloadField(name, pn, len(params) == 1),
				Param: pn,
				Type:  typ.String(),
			})
		}

		seen[name] = c
		data.Cases = append(data.Cases, c)

		if len(c.Fields) == 0 {
			data.Values = append(data.Values, c)
		} else {
			data.Constructors = append(data.Constructors, c)
		}

		return c
	}

	data.CatchAll = add(m.CatchAll.Name, []syntax.Param{{
		Name: m.CatchAll.ParamName,
		Type: raw,
	}})

	for _, name := range m.KnownCaseNames() {
		if _, dup := seen[name]; dup {
			continue
		}

		data.Known = append(data.Known, add(name, nil))
	}

	for _, c := range decl.Cases() {
		if c.Name != m.CatchAll.Name {
			add(c.Name, c.Params)
		}
	}

	forwarded := make(map[string]bool)

	for _, f := range m.Forward().Entries {
		if forwarded[f.Case] {
			continue
		}

		forwarded[f.Case] = true
		data.Forward = append(data.Forward, forwardData{Const: n.caseConst(f.Case), Literal: f.Literal.Value})
	}

	for _, r := range m.Reverse().Entries {
		data.Reverse = append(data.Reverse, reverseData{Literal: r.Literal.Value, Value: n.caseValue(r.Case)})
	}

	return data
}

// buildImports returns the imports of the generated file: the standard
// library packages the code uses plus the declaration imports that the
// rendered types reference.
func buildImports(enums []*enumData, decls []*analyze.Declaration, refs []syntax.TypeRef) []importSpec {
	res := []importSpec{{Path: "fmt"}}

	if slices.ContainsFunc(enums, func(e *enumData) bool { return e.MarshalJSON }) {
		res = append(res, importSpec{Path: "encoding/json"})
	}

	seen := map[string]bool{"fmt": true, "encoding/json": true}

	for _, d := range decls {
		for _, imp := range d.ImportsFor(refs...) {
			if seen[imp.Path] {
				continue
			}

			seen[imp.Path] = true
			res = append(res, importSpec{Alias: imp.Name, Path: imp.Path})
		}
	}

	slices.SortFunc(res, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return res
}
