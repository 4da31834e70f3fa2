package mapping

import (
	"fmt"
	"go/parser"
	"go/token"

	"extenum-generator/internal/diagnostic"
	"extenum-generator/internal/syntax"
)

// Validate checks a declaration file for problems the enum expansion cannot
// report itself: missing names, unknown kinds and malformed types. Enum shape
// rules (KnownCases, raw type, catch-all) are left to the expansion.
func Validate(df *DeclFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if df.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", df.Version), "", "")
	}

	if !token.IsIdentifier(df.Package) {
		res.AddError("invalid_package", fmt.Sprintf("invalid package name %q", df.Package), "", "")
	}

	if _, err := parseImports(df.Imports); err != nil {
		res.AddError("invalid_import", err.Error(), "", "")
	}

	if len(df.Enums) == 0 {
		res.AddWarning("no_enums", "declaration file declares no enums", "", "")
	}

	seen := map[string]struct{}{}

	for i := range df.Enums {
		e := &df.Enums[i]

		if !token.IsIdentifier(e.Name) {
			res.AddError("invalid_enum_name", fmt.Sprintf("enum #%d: invalid name %q", i+1, e.Name), e.Name, "")
			continue
		}

		if _, ok := seen[e.Name]; ok {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seen[e.Name] = struct{}{}

		validateEnum(res, e)
	}

	return res
}

func validateEnum(res *diagnostic.Diagnostics, e *EnumDef) {
	if e.Kind != "" && syntax.ParseDeclKind(e.Kind) == syntax.DeclUnknown {
		res.AddError("invalid_kind", fmt.Sprintf("invalid kind %q", e.Kind), e.Name, "")
	}

	for _, c := range e.Conformances {
		validateType(res, e.Name, "conformances", c)
	}

	if kc := e.KnownCases; kc != nil {
		if v := kc.Visibility; v != "" && v != syntax.ModifierPrivate && v != syntax.ModifierPublic {
			res.AddError("invalid_visibility", fmt.Sprintf("invalid visibility %q", v), e.Name, "known_cases")
		}

		for _, r := range kc.RawType {
			validateType(res, e.Name, "known_cases", r)
		}

		validateRawKind(res, e.Name, kc)

		validateCases(res, e.Name, kc.Cases)
	}

	validateCases(res, e.Name, e.Cases)

	for _, f := range e.Funcs {
		if !token.IsIdentifier(f.Name) {
			res.AddError("invalid_member_name", fmt.Sprintf("invalid function name %q", f.Name), e.Name, f.Name)
		}

		validateParams(res, e.Name, f.Name, f.Params)

		for _, r := range f.Results {
			validateType(res, e.Name, f.Name, r)
		}
	}

	for _, v := range e.Vars {
		if !token.IsIdentifier(v.Name) {
			res.AddError("invalid_member_name", fmt.Sprintf("invalid member name %q", v.Name), e.Name, v.Name)
		}

		validateType(res, e.Name, v.Name, v.Type)
	}
}

func validateCases(res *diagnostic.Diagnostics, enum string, cases []CaseDef) {
	for _, c := range cases {
		if !token.IsIdentifier(c.Name) {
			res.AddError("invalid_case_name", fmt.Sprintf("invalid case name %q", c.Name), enum, c.Name)
			continue
		}

		validateParams(res, enum, c.Name, c.Params)
	}
}

func validateParams(res *diagnostic.Diagnostics, enum, member string, params []ParamDef) {
	for _, p := range params {
		if p.Name != "" && p.Name != "_" && !token.IsIdentifier(p.Name) {
			res.AddError("invalid_param_name", fmt.Sprintf("invalid parameter name %q", p.Name), enum, member)
		}

		validateType(res, enum, member, p.Type)
	}
}

// validateType checks that expr is a Go type expression. Pointer and inout
// markers are stripped first.
func validateType(res *diagnostic.Diagnostics, enum, member, expr string) {
	if expr == "" {
		res.AddError("missing_type", "missing type", enum, member)
		return
	}

	if _, err := parser.ParseExpr(syntax.NewTypeRef(expr).Base()); err != nil {
		res.AddError("invalid_type", fmt.Sprintf("invalid type %q", expr), enum, member)
	}
}

// validateRawKind requires raw_kind for named raw types: the expansion has no
// type information to resolve them.
func validateRawKind(res *diagnostic.Diagnostics, enum string, kc *KnownCasesDef) {
	if kc.RawKind != "" {
		if syntax.ParseLiteralKind(kc.RawKind) == syntax.LitInvalid {
			res.AddError("invalid_raw_kind", fmt.Sprintf("invalid raw kind %q", kc.RawKind), enum, "known_cases")
		}

		return
	}

	if len(kc.RawType) != 1 {
		return
	}

	raw := syntax.NewTypeRef(kc.RawType[0])
	if _, err := parser.ParseExpr(raw.Base()); err != nil || raw.BasicKind() != syntax.LitInvalid {
		return
	}

	res.AddError("missing_raw_kind",
		fmt.Sprintf("raw type %s needs raw_kind (string, int, float or bool)", raw), enum, "known_cases")
}
