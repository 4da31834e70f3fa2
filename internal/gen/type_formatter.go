package gen

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// namer derives the identifiers generated for one enum. Exported enums get
// exported API names; helpers are always unexported.
type namer struct {
	enum     string
	exported bool
}

func newNamer(enum string) namer {
	return namer{enum: enum, exported: token.IsExported(enum)}
}

// caseType is the name of the case discriminator type, e.g. ColorCase.
func (n namer) caseType() string {
	return n.enum + "Case"
}

// caseConst is the discriminator constant of a case, e.g. ColorCaseRed.
func (n namer) caseConst(kase string) string {
	return n.caseType() + exportName(kase)
}

// caseValue is the variable or constructor of a case, e.g. ColorRed.
func (n namer) caseValue(kase string) string {
	return n.enum + exportName(kase)
}

func (n namer) knownCases() string {
	return n.enum + "KnownCases"
}

func (n namer) initializer() string {
	if n.exported {
		return "New" + n.enum
	}

	return "new" + upperFirst(n.enum)
}

func (n namer) rawValueOf() string {
	return lowerFirst(n.enum) + "RawValueOf"
}

func (n namer) knownRawValues() string {
	return lowerFirst(n.enum) + "KnownRawValues"
}

// payloadField is the struct field holding one payload value of a case.
func (n namer) payloadField(kase, param string, single bool) string {
	if single {
		return "p" + exportName(kase)
	}

	return "p" + exportName(kase) + exportName(param)
}

// exportName turns a declared name into the exported form used inside
// generated identifiers. Names that already read as Go exported identifiers
// keep their spelling.
func exportName(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) && !strings.Contains(s, "_") {
		return s
	}

	return strcase.ToCamel(s)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// paramName returns a usable Go parameter name for the i-th parameter.
func paramName(p syntax.Param, i int) string {
	name := p.Name
	if name == "" || name == "_" {
		name = p.Label
	}

	if name == "" || name == "_" || !token.IsIdentifier(name) {
		return "v" + strconv.Itoa(i)
	}

	return name
}

// goType renders a declared type in Go. The reserved raw-value alias becomes
// the raw type and inout markers are dropped.
func goType(t, raw syntax.TypeRef) syntax.TypeRef {
	if plan.IsRawValueAlias(t) {
		return raw
	}

	return syntax.NewTypeRef(strings.TrimPrefix(t.Canonical(), "inout "))
}

// caseLabel is the display form of a case, e.g. Unknown(%#v).
func caseLabel(kase string, params int) string {
	if params == 0 {
		return kase
	}

	return kase + "(" + strings.TrimSuffix(strings.Repeat("%#v, ", params), ", ") + ")"
}
