package mapping

import (
	"fmt"
	"path/filepath"
	"strings"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// ToDeclarations converts a declaration file into the declarations the
// generator expands. path locates the file; generated code goes next to it.
func ToDeclarations(df *DeclFile, path string) ([]*analyze.Declaration, error) {
	imports, err := parseImports(df.Imports)
	if err != nil {
		return nil, err
	}

	pkg := analyze.PackageInfo{Name: df.Package, Dir: filepath.Dir(path)}

	res := make([]*analyze.Declaration, 0, len(df.Enums))

	for i := range df.Enums {
		e := &df.Enums[i]

		res = append(res, &analyze.Declaration{
			Decl:    ToSyntax(e, path),
			Options: e.Options.toDirective(),
			Package: pkg,
			File:    path,
			Imports: imports,
		})
	}

	return res, nil
}

func parseImports(specs StringOrArray) ([]analyze.Import, error) {
	res := make([]analyze.Import, 0, len(specs))

	for _, spec := range specs {
		switch fields := strings.Fields(spec); len(fields) {
		case 1:
			res = append(res, analyze.Import{Path: fields[0]})
		case 2:
			res = append(res, analyze.Import{Name: fields[0], Path: fields[1]})
		default:
			return nil, fmt.Errorf("invalid import %q (expected \"path\" or \"name path\")", spec)
		}
	}

	return res, nil
}

func (o *OptionsDef) toDirective() analyze.DirectiveOptions {
	if o == nil {
		return analyze.DirectiveOptions{}
	}

	return analyze.DirectiveOptions{
		Unknown:    o.Unknown,
		Hashable:   o.Hashable,
		Marshal:    o.Marshal,
		KnownCases: o.List,
	}
}

// ToSyntax converts one enum definition into a syntax tree.
func ToSyntax(e *EnumDef, file string) *syntax.TypeDecl {
	at := func(p syntax.Pos) syntax.Pos {
		if p.IsValid() {
			p.File = file
		}

		return p
	}

	kind := syntax.DeclEnum
	if e.Kind != "" {
		kind = syntax.ParseDeclKind(e.Kind)
	}

	decl := &syntax.TypeDecl{
		Kind: kind,
		Name: e.Name,
		Doc:  e.Doc,
		Pos:  at(e.Pos),
	}

	for _, c := range e.Conformances {
		decl.Inherited = append(decl.Inherited, syntax.NewTypeRef(c))
	}

	if kc := e.KnownCases; kc != nil {
		visibility := kc.Visibility
		if visibility == "" {
			visibility = syntax.ModifierPrivate
		}

		nested := &syntax.TypeDecl{
			Kind:      syntax.DeclEnum,
			Name:      plan.KnownCasesName,
			Modifiers: []string{visibility},
			Pos:       at(kc.Pos),
		}

		for _, r := range kc.RawType {
			t := syntax.NewTypeRef(r)
			t.Basic = syntax.ParseLiteralKind(kc.RawKind)
			nested.Inherited = append(nested.Inherited, t)
		}

		for _, c := range kc.Cases {
			nested.Members = append(nested.Members, caseDecl(c, at))
		}

		decl.Members = append(decl.Members, nested)
	}

	for _, c := range e.Cases {
		decl.Members = append(decl.Members, caseDecl(c, at))
	}

	for _, f := range e.Funcs {
		fn := &syntax.FuncDecl{Name: f.Name, Params: params(f.Params), Pos: at(f.Pos)}
		for _, r := range f.Results {
			fn.Results = append(fn.Results, syntax.NewTypeRef(r))
		}

		decl.Members = append(decl.Members, fn)
	}

	for _, v := range e.Vars {
		decl.Members = append(decl.Members, &syntax.VarDecl{Name: v.Name, Type: syntax.NewTypeRef(v.Type), Pos: at(v.Pos)})
	}

	return decl
}

func caseDecl(c CaseDef, at func(syntax.Pos) syntax.Pos) *syntax.CaseDecl {
	res := &syntax.CaseDecl{
		Name:          c.Name,
		Parameterized: c.Parameterized || len(c.Params) > 0,
		Params:        params(c.Params),
		Pos:           at(c.Pos),
	}

	if c.Raw != nil {
		lit := c.Raw.Literal
		res.Literal = &lit
	}

	return res
}

func params(defs []ParamDef) []syntax.Param {
	res := make([]syntax.Param, 0, len(defs))
	for _, p := range defs {
		res = append(res, syntax.Param{Label: p.Label, Name: p.Name, Type: syntax.NewTypeRef(p.Type)})
	}

	return res
}

// FromDeclarations builds a declaration file from Go source declarations of
// one package.
func FromDeclarations(decls []*analyze.Declaration) *DeclFile {
	df := &DeclFile{Version: CurrentVersion}

	seen := make(map[string]bool)

	for _, d := range decls {
		if df.Package == "" {
			df.Package = d.Package.Name
		}

		for _, imp := range d.Imports {
			spec := imp.Path
			if imp.Name != "" {
				spec = imp.Name + " " + imp.Path
			}

			if !seen[spec] {
				seen[spec] = true
				df.Imports = append(df.Imports, spec)
			}
		}

		df.Enums = append(df.Enums, FromSyntax(d.Decl, d.Options))
	}

	return df
}

// FromSyntax converts a syntax tree back into an enum definition.
func FromSyntax(decl *syntax.TypeDecl, opts analyze.DirectiveOptions) EnumDef {
	e := EnumDef{
		Name: decl.Name,
		Kind: decl.Kind.String(),
		Doc:  decl.Doc,
	}

	if opts != (analyze.DirectiveOptions{}) {
		e.Options = &OptionsDef{
			Unknown:  opts.Unknown,
			Hashable: opts.Hashable,
			Marshal:  opts.Marshal,
			List:     opts.KnownCases,
		}
	}

	for _, t := range decl.Inherited {
		e.Conformances = append(e.Conformances, t.String())
	}

	for _, m := range decl.Members {
		switch m := m.(type) {
		case *syntax.TypeDecl:
			if m.Name != plan.KnownCasesName || m.Kind != syntax.DeclEnum {
				continue
			}

			kc := &KnownCasesDef{Visibility: syntax.ModifierPublic}
			if m.HasModifier(syntax.ModifierPrivate) {
				kc.Visibility = syntax.ModifierPrivate
			}

			for _, t := range m.Inherited {
				kc.RawType = append(kc.RawType, t.String())

				if t.Basic != syntax.LitInvalid && syntax.NewTypeRef(t.Expr).BasicKind() == syntax.LitInvalid {
					kc.RawKind = t.Basic.String()
				}
			}

			for _, c := range m.Cases() {
				kc.Cases = append(kc.Cases, caseDef(c))
			}

			e.KnownCases = kc
		case *syntax.CaseDecl:
			e.Cases = append(e.Cases, caseDef(m))
		case *syntax.FuncDecl:
			f := FuncDef{Name: m.Name, Params: paramDefs(m.Params)}
			for _, r := range m.Results {
				f.Results = append(f.Results, r.String())
			}

			e.Funcs = append(e.Funcs, f)
		case *syntax.VarDecl:
			e.Vars = append(e.Vars, VarDef{Name: m.Name, Type: m.Type.String()})
		}
	}

	return e
}

func caseDef(c *syntax.CaseDecl) CaseDef {
	res := CaseDef{
		Name:          c.Name,
		Params:        paramDefs(c.Params),
		Parameterized: c.Parameterized,
	}

	if c.Literal != nil {
		res.Raw = &RawLiteral{Literal: *c.Literal}
	}

	return res
}

func paramDefs(params []syntax.Param) []ParamDef {
	if len(params) == 0 {
		return nil
	}

	res := make([]ParamDef, 0, len(params))
	for _, p := range params {
		res = append(res, ParamDef{Label: p.Label, Name: p.Name, Type: p.Type.String()})
	}

	return res
}
