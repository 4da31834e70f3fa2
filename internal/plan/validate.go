package plan

import (
	"fmt"
	"go/constant"
	"go/token"
	"slices"
	"strings"

	"extenum-generator/internal/common"
	"extenum-generator/internal/match"
	"extenum-generator/internal/syntax"
)

// KnownCasesName is the name of the nested table of known cases.
const KnownCasesName = "KnownCases"

// hasherTypes are the parameter types that make a function a hash
// contribution, compared after stripping pointer and inout markers.
var hasherTypes = []string{"maphash.Hash", "Hasher"}

// KnownCase is one entry of the KnownCases table.
type KnownCase struct {
	Name    string
	Literal syntax.Literal
	// Implicit is true when the literal was derived rather than declared.
	Implicit bool
	Pos      syntax.Pos
}

// KnownCasesSpec is the validated KnownCases table.
type KnownCasesSpec struct {
	Visibility string
	RawType    syntax.TypeRef
	RawKind    syntax.LiteralKind
	Entries    []KnownCase
}

// Names returns the known case names in declaration order.
func (s *KnownCasesSpec) Names() []string {
	names := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		names = append(names, e.Name)
	}

	return names
}

// ValidatedEnum is a declaration that passed validation.
type ValidatedEnum struct {
	Decl       *syntax.TypeDecl
	KnownCases *KnownCasesSpec
}

// Name returns the enum name.
func (v *ValidatedEnum) Name() string {
	return v.Decl.Name
}

// RawType returns the raw-value type.
func (v *ValidatedEnum) RawType() syntax.TypeRef {
	return v.KnownCases.RawType
}

// Validate checks the structural preconditions of an extendable enum and
// extracts its known cases and raw type. It stops at the first violation.
func Validate(decl *syntax.TypeDecl) (*ValidatedEnum, error) {
	if decl == nil {
		return nil, &Error{Kind: NotAnEnum, Detail: "no declaration"}
	}

	if decl.Kind != syntax.DeclEnum {
		err := newError(NotAnEnum, decl.Name, decl.Pos)
		err.Detail = "found " + decl.Kind.String()

		return nil, err
	}

	kc := decl.Nested(KnownCasesName, syntax.DeclEnum)
	if kc == nil {
		err := newError(MissingKnownCases, decl.Name, decl.Pos)
		err.Suggestions = match.Suggest(KnownCasesName, decl.MemberNames(), match.DefaultThreshold)

		return nil, err
	}

	if !kc.HasModifier(syntax.ModifierPrivate) {
		return nil, newError(KnownCasesNotPrivate, decl.Name, kc.Pos)
	}

	if !common.IsSingle(kc.Inherited) {
		err := newError(MissingRawType, decl.Name, kc.Pos)
		err.Detail = fmt.Sprintf("found %d", len(kc.Inherited))

		return nil, err
	}

	cases := kc.Cases()
	for _, c := range cases {
		if c.Parameterized {
			err := newError(KnownCaseHasParameters, decl.Name, c.Pos)
			err.Case = c.Name

			return nil, err
		}
	}

	for _, f := range decl.Funcs() {
		if isHashContribution(f) {
			err := newError(HashConflict, decl.Name, f.Pos)
			err.Case = f.Name

			return nil, err
		}
	}

	spec := &KnownCasesSpec{
		Visibility: syntax.ModifierPrivate,
		RawType:    kc.Inherited[0],
		RawKind:    rawKindOf(kc.Inherited[0], cases),
	}

	entries, err := resolveLiterals(decl.Name, spec.RawKind, cases)
	if err != nil {
		return nil, err
	}

	spec.Entries = entries

	return &ValidatedEnum{Decl: decl, KnownCases: spec}, nil
}

// rawKindOf returns the literal kind of the raw type. Types that do not
// resolve to a basic kind take the kind of the first explicit non-string
// literal, and default to string.
func rawKindOf(raw syntax.TypeRef, cases []*syntax.CaseDecl) syntax.LiteralKind {
	if k := raw.BasicKind(); k != syntax.LitInvalid {
		return k
	}

	for _, c := range cases {
		if c.Literal != nil && c.Literal.Kind != syntax.LitString {
			return c.Literal.Kind
		}
	}

	return syntax.LitString
}

func resolveLiterals(enum string, kind syntax.LiteralKind, cases []*syntax.CaseDecl) ([]KnownCase, error) {
	entries := make([]KnownCase, 0, len(cases))

	next := constant.MakeInt64(0)

	for _, c := range cases {
		entry := KnownCase{Name: c.Name, Pos: c.Pos}

		if c.Literal != nil {
			lit, detail := coerceLiteral(*c.Literal, kind)
			if detail != "" {
				return nil, literalError(enum, c, detail)
			}

			entry.Literal = lit
		} else {
			lit, detail := implicitLiteral(c.Name, kind, next)
			if detail != "" {
				return nil, literalError(enum, c, detail)
			}

			entry.Literal = lit
			entry.Implicit = true
		}

		if kind == syntax.LitInt {
			next = constant.BinaryOp(entry.Literal.Constant(), token.ADD, constant.MakeInt64(1))
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// coerceLiteral interprets lit as a value of the given kind. String kinds
// accept any literal by its text; other kinds re-parse the text.
func coerceLiteral(lit syntax.Literal, kind syntax.LiteralKind) (syntax.Literal, string) {
	if kind == syntax.LitString {
		if lit.Kind == syntax.LitString {
			return lit, ""
		}

		return *syntax.StringLiteral(lit.Text()), ""
	}

	parsed, ok := syntax.ParseLiteral(lit.Text())
	if !ok {
		return syntax.Literal{}, fmt.Sprintf("want %s literal, found %q", kind, lit.Text())
	}

	switch {
	case parsed.Kind == kind:
	case kind == syntax.LitFloat && parsed.Kind == syntax.LitInt:
	default:
		return syntax.Literal{}, fmt.Sprintf("want %s literal, found %s %s", kind, parsed.Kind, parsed.Value)
	}

	return *parsed, ""
}

func implicitLiteral(name string, kind syntax.LiteralKind, next constant.Value) (syntax.Literal, string) {
	switch kind {
	case syntax.LitString:
		return *syntax.StringLiteral(name), ""
	case syntax.LitInt:
		v, exact := constant.Int64Val(next)
		if !exact {
			return syntax.Literal{}, "implicit value overflows: " + next.ExactString()
		}

		return *syntax.IntLiteral(v), ""
	default:
		return syntax.Literal{}, "explicit value required for " + kind.String() + " raw type"
	}
}

func literalError(enum string, c *syntax.CaseDecl, detail string) *Error {
	err := newError(InvalidRawLiteral, enum, c.Pos)
	err.Case = c.Name
	err.Detail = detail

	return err
}

// isHashContribution reports whether f has the shape of a hashing
// contribution: named hash, one hasher parameter, no results.
func isHashContribution(f *syntax.FuncDecl) bool {
	if !strings.EqualFold(f.Name, "hash") || len(f.Params) != 1 || len(f.Results) != 0 {
		return false
	}

	return slices.Contains(hasherTypes, f.Params[0].Type.Base())
}
