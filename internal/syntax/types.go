package syntax

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"extenum-generator/internal/common"
)

// TypeRef is a type expression as written in a declaration, e.g. "string",
// "*maphash.Hash" or "codes.Code".
type TypeRef struct {
	Expr string
	// Basic is the literal kind of the underlying basic type, when the
	// frontend could resolve it (e.g. LitInt for "type Code int32").
	Basic LiteralKind
}

// NewTypeRef returns a TypeRef for the given expression.
func NewTypeRef(expr string) TypeRef {
	return TypeRef{Expr: strings.TrimSpace(expr)}
}

// String returns the expression as written.
func (t TypeRef) String() string {
	return t.Expr
}

// IsZero returns true if no expression is set.
func (t TypeRef) IsZero() bool {
	return t.Expr == ""
}

// Canonical returns the expression re-printed from its parsed form, so that
// spacing differences do not matter. Expressions that are not Go syntax
// (e.g. "inout Hasher") have their whitespace runs collapsed instead.
func (t TypeRef) Canonical() string {
	expr, err := parser.ParseExpr(t.Expr)
	if err != nil {
		return strings.Join(strings.Fields(t.Expr), " ")
	}

	return types.ExprString(expr)
}

// BasicKind returns the literal kind of the type: the resolved Basic kind, or
// the kind of a predeclared type name, or LitInvalid.
func (t TypeRef) BasicKind() LiteralKind {
	if t.Basic != LitInvalid {
		return t.Basic
	}

	switch t.Canonical() {
	case "string":
		return LitString
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"byte", "rune":
		return LitInt
	case "float32", "float64":
		return LitFloat
	case "bool":
		return LitBool
	default:
		return LitInvalid
	}
}

// Equal reports whether both references denote the same type expression.
func (t TypeRef) Equal(o TypeRef) bool {
	return t.Canonical() == o.Canonical()
}

// Base returns the canonical expression without pointer or inout markers.
func (t TypeRef) Base() string {
	s := t.Canonical()
	s = strings.TrimPrefix(s, "inout ")

	return strings.TrimLeft(s, "*")
}

// Qualifiers returns the package qualifiers referenced by the expression,
// e.g. ["time"] for "map[string]time.Time".
func (t TypeRef) Qualifiers() []string {
	expr, err := parser.ParseExpr(t.Expr)
	if err != nil {
		return nil
	}

	var res []string

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok && !slices.Contains(res, id.Name) {
			res = append(res, id.Name)
		}

		return false
	})

	return res
}

// LiteralKind is the kind of a raw-value literal.
type LiteralKind int

const (
	LitInvalid LiteralKind = iota
	LitString
	LitInt
	LitFloat
	LitBool
)

// String returns a human-readable representation of the LiteralKind.
func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	default:
		return common.UnknownStr
	}
}

// ParseLiteralKind parses a kind name as printed by LiteralKind.String.
func ParseLiteralKind(s string) LiteralKind {
	switch s {
	case "string":
		return LitString
	case "int":
		return LitInt
	case "float":
		return LitFloat
	case "bool":
		return LitBool
	default:
		return LitInvalid
	}
}

// Literal is a raw value in Go literal syntax. String literals are quoted.
type Literal struct {
	Kind  LiteralKind
	Value string
}

// StringLiteral returns a quoted string literal for s.
func StringLiteral(s string) *Literal {
	return &Literal{Kind: LitString, Value: strconv.Quote(s)}
}

// IntLiteral returns an integer literal for i.
func IntLiteral(i int64) *Literal {
	return &Literal{Kind: LitInt, Value: strconv.FormatInt(i, 10)}
}

// ParseLiteral parses a Go basic literal (optionally negated) or a boolean.
func ParseLiteral(src string) (*Literal, bool) {
	src = strings.TrimSpace(src)
	if src == "true" || src == "false" {
		return &Literal{Kind: LitBool, Value: src}, true
	}

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, false
	}

	neg := false
	if u, ok := expr.(*ast.UnaryExpr); ok && u.Op == token.SUB {
		neg = true
		expr = u.X
	}

	lit, ok := expr.(*ast.BasicLit)
	if !ok {
		return nil, false
	}

	switch lit.Kind {
	case token.STRING:
		if neg {
			return nil, false
		}

		return &Literal{Kind: LitString, Value: lit.Value}, true
	case token.INT:
		return &Literal{Kind: LitInt, Value: sign(neg) + lit.Value}, true
	case token.FLOAT:
		return &Literal{Kind: LitFloat, Value: sign(neg) + lit.Value}, true
	default:
		return nil, false
	}
}

func sign(neg bool) string {
	if neg {
		return "-"
	}

	return ""
}

// Constant returns the constant value of the literal, or an unknown value
// if the literal is malformed.
func (l Literal) Constant() constant.Value {
	switch l.Kind {
	case LitString:
		return constant.MakeFromLiteral(l.Value, token.STRING, 0)
	case LitInt, LitFloat:
		v := strings.TrimPrefix(l.Value, "-")

		tok := token.INT
		if l.Kind == LitFloat {
			tok = token.FLOAT
		}

		c := constant.MakeFromLiteral(v, tok, 0)
		if strings.HasPrefix(l.Value, "-") {
			c = constant.UnaryOp(token.SUB, c, 0)
		}

		return c
	case LitBool:
		return constant.MakeBool(l.Value == "true")
	default:
		return constant.MakeUnknown()
	}
}

// Key returns a canonical representation of the literal's value: literals
// that denote the same constant (e.g. "a" and `a`, or 0x10 and 16) share a
// key.
func (l Literal) Key() string {
	c := l.Constant()
	if c.Kind() == constant.Unknown {
		return l.Value
	}

	return c.ExactString()
}

// Text returns the value for human consumption: strings are unquoted.
func (l Literal) Text() string {
	if l.Kind == LitString {
		if s, err := strconv.Unquote(l.Value); err == nil {
			return s
		}
	}

	return l.Value
}
