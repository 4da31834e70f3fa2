package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strconv"

	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// converter turns Go declarations into syntax trees.
type converter struct {
	fset *token.FileSet
	// info resolves raw types to their basic kind; nil for untyped parses.
	info *types.Info
	// methods holds the methods of the package by receiver type name.
	methods map[string][]*ast.FuncDecl
}

func (c *converter) pos(p token.Pos) syntax.Pos {
	if !p.IsValid() {
		return syntax.Pos{}
	}

	position := c.fset.Position(p)

	return syntax.Pos{File: position.Filename, Line: position.Line, Column: position.Column}
}

// collectMethods indexes the methods declared in files by receiver name.
func collectMethods(files []*ast.File) map[string][]*ast.FuncDecl {
	res := make(map[string][]*ast.FuncDecl)

	for _, f := range files {
		for _, d := range f.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
				continue
			}

			if name := receiverName(fn.Recv.List[0].Type); name != "" {
				res[name] = append(res[name], fn)
			}
		}
	}

	return res
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}

// typeDecl converts a type spec carrying the enum directive. Struct types
// become enums; anything else keeps its own kind so that validation rejects
// it.
func (c *converter) typeDecl(gen *ast.GenDecl, spec *ast.TypeSpec) *syntax.TypeDecl {
	decl := &syntax.TypeDecl{
		Name: spec.Name.Name,
		Doc:  docText(spec.Doc, gen.Doc),
		Pos:  c.pos(spec.Name.Pos()),
	}

	if spec.Assign.IsValid() {
		decl.Kind = syntax.DeclAlias
		return decl
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = syntax.DeclEnum
		c.enumMembers(decl, t)
	case *ast.InterfaceType:
		decl.Kind = syntax.DeclInterface
	default:
		decl.Kind = syntax.DeclAlias
	}

	for _, fn := range c.methods[decl.Name] {
		decl.Members = append(decl.Members, c.funcDecl(fn))
	}

	return decl
}

func docText(groups ...*ast.CommentGroup) string {
	for _, g := range groups {
		if g != nil {
			return g.Text()
		}
	}

	return ""
}

func (c *converter) enumMembers(decl *syntax.TypeDecl, st *ast.StructType) {
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			decl.Inherited = append(decl.Inherited, c.typeRef(field.Type))
			continue
		}

		for _, name := range field.Names {
			if nested, ok := field.Type.(*ast.StructType); ok {
				decl.Members = append(decl.Members, c.knownCases(name, nested))
				continue
			}

			decl.Members = append(decl.Members, c.member(name, field))
		}
	}
}

// knownCases converts a struct-typed field. The knownCases spellings map to
// the KnownCases table; other names keep theirs so that near misses can be
// reported.
func (c *converter) knownCases(name *ast.Ident, st *ast.StructType) *syntax.TypeDecl {
	decl := &syntax.TypeDecl{
		Kind: syntax.DeclEnum,
		Name: name.Name,
		Pos:  c.pos(name.Pos()),
	}

	if slices.Contains(knownCasesFields, name.Name) {
		decl.Name = plan.KnownCasesName
	}

	if name.IsExported() {
		decl.Modifiers = []string{syntax.ModifierPublic}
	} else {
		decl.Modifiers = []string{syntax.ModifierPrivate}
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			decl.Inherited = append(decl.Inherited, c.typeRef(field.Type))
			continue
		}

		for _, n := range field.Names {
			decl.Members = append(decl.Members, c.member(n, field))
		}
	}

	return decl
}

// member converts a named field: Case markers are bare cases, func types are
// cases with parameters, anything else is a stored member.
func (c *converter) member(name *ast.Ident, field *ast.Field) syntax.Decl {
	pos := c.pos(name.Pos())

	switch t := field.Type.(type) {
	case *ast.FuncType:
		kase := &syntax.CaseDecl{Name: name.Name, Parameterized: true, Pos: pos}
		kase.Params = c.params(t.Params)
		kase.Literal = rawLiteral(field)

		return kase
	default:
		if isCaseMarker(field.Type) {
			return &syntax.CaseDecl{Name: name.Name, Literal: rawLiteral(field), Pos: pos}
		}

		return &syntax.VarDecl{Name: name.Name, Type: c.typeRef(field.Type), Pos: pos}
	}
}

func isCaseMarker(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name == CaseMarker
	case *ast.SelectorExpr:
		return e.Sel.Name == CaseMarker
	default:
		return false
	}
}

// rawLiteral reads the raw tag. Values are kept as text; validation
// interprets them according to the raw type.
func rawLiteral(field *ast.Field) *syntax.Literal {
	if field.Tag == nil {
		return nil
	}

	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return nil
	}

	v, ok := reflect.StructTag(tag).Lookup(RawTag)
	if !ok {
		return nil
	}

	return syntax.StringLiteral(v)
}

func (c *converter) params(fields *ast.FieldList) []syntax.Param {
	if fields == nil {
		return nil
	}

	var res []syntax.Param

	for _, f := range fields.List {
		ref := c.typeRef(f.Type)

		if len(f.Names) == 0 {
			res = append(res, syntax.Param{Type: ref})
			continue
		}

		for _, n := range f.Names {
			res = append(res, syntax.Param{Name: n.Name, Type: ref})
		}
	}

	return res
}

func (c *converter) funcDecl(fn *ast.FuncDecl) *syntax.FuncDecl {
	res := &syntax.FuncDecl{
		Name:   fn.Name.Name,
		Params: c.params(fn.Type.Params),
		Pos:    c.pos(fn.Name.Pos()),
	}

	for _, p := range c.params(fn.Type.Results) {
		res.Results = append(res.Results, p.Type)
	}

	return res
}

// typeRef prints expr and, with type information, records the literal kind
// of its underlying basic type.
func (c *converter) typeRef(expr ast.Expr) syntax.TypeRef {
	ref := syntax.NewTypeRef(types.ExprString(expr))

	if c.info == nil {
		return ref
	}

	t := c.info.TypeOf(expr)
	if t == nil {
		return ref
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return ref
	}

	switch info := basic.Info(); {
	case info&types.IsString != 0:
		ref.Basic = syntax.LitString
	case info&types.IsInteger != 0:
		ref.Basic = syntax.LitInt
	case info&types.IsFloat != 0:
		ref.Basic = syntax.LitFloat
	case info&types.IsBoolean != 0:
		ref.Basic = syntax.LitBool
	}

	return ref
}
