package plan

import (
	"testing"

	"extenum-generator/internal/syntax"
)

// knownCases builds a private KnownCases table with the given raw type.
func knownCases(raw string, cases ...*syntax.CaseDecl) *syntax.TypeDecl {
	kc := &syntax.TypeDecl{
		Kind:      syntax.DeclEnum,
		Name:      KnownCasesName,
		Modifiers: []string{syntax.ModifierPrivate},
	}

	if raw != "" {
		kc.Inherited = []syntax.TypeRef{syntax.NewTypeRef(raw)}
	}

	for _, c := range cases {
		kc.Members = append(kc.Members, c)
	}

	return kc
}

func bare(name string) *syntax.CaseDecl {
	return &syntax.CaseDecl{Name: name}
}

func withRaw(name string, lit *syntax.Literal) *syntax.CaseDecl {
	return &syntax.CaseDecl{Name: name, Literal: lit}
}

func enumDecl(name string, members ...syntax.Decl) *syntax.TypeDecl {
	return &syntax.TypeDecl{Kind: syntax.DeclEnum, Name: name, Members: members}
}

// colorDecl is Color with KnownCases red = "thecolorred", green (implicit).
func colorDecl() *syntax.TypeDecl {
	return enumDecl("Color", knownCases("string",
		withRaw("Red", syntax.StringLiteral("thecolorred")),
		bare("Green"),
	))
}

func mustExpand(t *testing.T, decl *syntax.TypeDecl, opts Options) *Members {
	t.Helper()

	m, err := Expand(decl, opts)
	if err != nil {
		t.Fatalf("Expand(%s) failed: %v", decl.Name, err)
	}

	return m
}

func str(s string) syntax.Literal {
	return *syntax.StringLiteral(s)
}

func num(i int64) syntax.Literal {
	return *syntax.IntLiteral(i)
}
