package syntax

import (
	"fmt"
	"slices"
)

//go:generate go tool stringer -type=DeclKind -linecomment -output=declkind_string.go

// DeclKind is the syntactic form of a type declaration.
type DeclKind int

const (
	DeclUnknown   DeclKind = iota // unknown
	DeclEnum                      // enum
	DeclStruct                    // struct
	DeclInterface                 // interface
	DeclAlias                     // alias
)

// ParseDeclKind returns the DeclKind named by s, or DeclUnknown.
func ParseDeclKind(s string) DeclKind {
	for k := DeclEnum; k <= DeclAlias; k++ {
		if k.String() == s {
			return k
		}
	}

	return DeclUnknown
}

// Modifiers.
const (
	ModifierPrivate = "private"
	ModifierPublic  = "public"
)

// Pos is a position in a declaration source.
type Pos struct {
	File   string
	Line   int
	Column int
}

// IsValid returns true if the position carries a line number.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String returns "file:line:col", or "-" for an invalid position.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}

	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Decl is a node of the declaration tree.
type Decl interface {
	// DeclName returns the declared identifier.
	DeclName() string
	// Position returns where the declaration starts.
	Position() Pos

	declNode()
}

// TypeDecl declares a named type. An extendable enum is a TypeDecl of kind
// DeclEnum, and so is its nested KnownCases table.
type TypeDecl struct {
	Kind      DeclKind
	Name      string
	Doc       string    // Doc comment without the directive lines
	Modifiers []string  // e.g. "private"
	Inherited []TypeRef // raw type or declared conformances
	Members   []Decl
	Pos       Pos
}

// CaseDecl declares a single enum case.
type CaseDecl struct {
	Name string
	// Parameterized is true when the case has a parameter clause, even an
	// empty one.
	Parameterized bool
	Params        []Param
	// Literal is the explicit raw value, or nil when it is implicit.
	Literal *Literal
	Pos     Pos
}

// FuncDecl declares a member function.
type FuncDecl struct {
	Name    string
	Params  []Param
	Results []TypeRef
	Pos     Pos
}

// VarDecl declares a stored member that is neither a case nor a function.
type VarDecl struct {
	Name string
	Type TypeRef
	Pos  Pos
}

// Param is a case or function parameter.
type Param struct {
	Label string // external label, "_" or empty when positional
	Name  string // internal name, may be empty
	Type  TypeRef
}

func (*TypeDecl) declNode() {}
func (*CaseDecl) declNode() {}
func (*FuncDecl) declNode() {}
func (*VarDecl) declNode()  {}

func (d *TypeDecl) DeclName() string { return d.Name }
func (d *CaseDecl) DeclName() string { return d.Name }
func (d *FuncDecl) DeclName() string { return d.Name }
func (d *VarDecl) DeclName() string  { return d.Name }

func (d *TypeDecl) Position() Pos { return d.Pos }
func (d *CaseDecl) Position() Pos { return d.Pos }
func (d *FuncDecl) Position() Pos { return d.Pos }
func (d *VarDecl) Position() Pos  { return d.Pos }

// HasModifier returns true if the declaration carries the given modifier.
func (d *TypeDecl) HasModifier(m string) bool {
	return slices.Contains(d.Modifiers, m)
}

// Cases returns the case members in declaration order.
func (d *TypeDecl) Cases() []*CaseDecl {
	var res []*CaseDecl

	for _, m := range d.Members {
		if c, ok := m.(*CaseDecl); ok {
			res = append(res, c)
		}
	}

	return res
}

// Funcs returns the function members in declaration order.
func (d *TypeDecl) Funcs() []*FuncDecl {
	var res []*FuncDecl

	for _, m := range d.Members {
		if f, ok := m.(*FuncDecl); ok {
			res = append(res, f)
		}
	}

	return res
}

// Nested returns the first nested type declaration with the given name and
// kind, or nil.
func (d *TypeDecl) Nested(name string, kind DeclKind) *TypeDecl {
	for _, m := range d.Members {
		if t, ok := m.(*TypeDecl); ok && t.Name == name && t.Kind == kind {
			return t
		}
	}

	return nil
}

// MemberNames returns the names of all members in declaration order.
func (d *TypeDecl) MemberNames() []string {
	names := make([]string, 0, len(d.Members))
	for _, m := range d.Members {
		names = append(names, m.DeclName())
	}

	return names
}

// Case returns the first case named name, or nil.
func (d *TypeDecl) Case(name string) *CaseDecl {
	for _, c := range d.Cases() {
		if c.Name == name {
			return c
		}
	}

	return nil
}
