package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

const colorsYAML = `
version: "1"
package: paint
imports:
  - extenum-generator/extenum
  - x example.com/other
enums:
  - name: Color
    doc: Color is a paint color.
    known_cases:
      raw_type: string
      cases:
        - Red: thecolorred
        - Green
        - {name: Blue, raw: blue}
    cases:
      - name: Unknown
        params: [{rawValue: RawValue}]
    funcs:
      - name: IsWarm
        results: bool
  - name: Status
    conformances: extenum.Hashable
    options:
      unknown: "Other(code:)"
      marshal: true
    known_cases:
      raw_type: int32
      cases:
        - Disabled
        - Legacy: "1"
        - Enabled: 1
        - Pending: 10
        - Suspended
    vars:
      - {name: label, type: string}
`

func TestParse(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)
	require.NotNil(t, df)

	assert.Equal(t, "1", df.Version)
	assert.Equal(t, "paint", df.Package)
	assert.Equal(t, StringOrArray{"extenum-generator/extenum", "x example.com/other"}, df.Imports)
	require.Len(t, df.Enums, 2)

	color := df.Enums[0]
	assert.Equal(t, "Color", color.Name)
	assert.Equal(t, "enum", color.Kind) // Defaults to enum
	assert.Equal(t, "Color is a paint color.", color.Doc)
	assert.Equal(t, 8, color.Pos.Line)
	assert.Nil(t, color.Options)

	// Known cases
	kc := color.KnownCases
	require.NotNil(t, kc)
	assert.Equal(t, syntax.ModifierPrivate, kc.Visibility) // Defaults to private
	assert.Equal(t, "string", kc.RawType.First())
	require.Len(t, kc.Cases, 3)

	// Single key form
	assert.Equal(t, "Red", kc.Cases[0].Name)
	require.NotNil(t, kc.Cases[0].Raw)
	assert.Equal(t, syntax.LitString, kc.Cases[0].Raw.Kind)
	assert.Equal(t, "thecolorred", kc.Cases[0].Raw.Text())
	assert.Equal(t, 13, kc.Cases[0].Pos.Line)

	// Bare form
	assert.Equal(t, "Green", kc.Cases[1].Name)
	assert.Nil(t, kc.Cases[1].Raw)
	assert.False(t, kc.Cases[1].Parameterized)

	// Full form
	assert.Equal(t, "Blue", kc.Cases[2].Name)
	require.NotNil(t, kc.Cases[2].Raw)
	assert.Equal(t, "blue", kc.Cases[2].Raw.Text())

	// Catch-all with a named parameter
	require.Len(t, color.Cases, 1)
	unknown := color.Cases[0]
	assert.Equal(t, "Unknown", unknown.Name)
	assert.True(t, unknown.Parameterized)
	assert.Equal(t, []ParamDef{{Name: "rawValue", Type: "RawValue"}}, unknown.Params)

	require.Len(t, color.Funcs, 1)
	assert.Equal(t, "IsWarm", color.Funcs[0].Name)
	assert.Equal(t, StringOrArray{"bool"}, color.Funcs[0].Results)

	status := df.Enums[1]
	assert.Equal(t, StringOrArray{"extenum.Hashable"}, status.Conformances)
	require.NotNil(t, status.Options)
	assert.Equal(t, "Other(code:)", status.Options.Unknown)
	require.NotNil(t, status.Options.Marshal)
	assert.True(t, *status.Options.Marshal)
	assert.Nil(t, status.Options.Hashable)

	// Raw literals keep the YAML scalar kind
	cases := status.KnownCases.Cases
	assert.Nil(t, cases[0].Raw)
	assert.Equal(t, syntax.LitString, cases[1].Raw.Kind)
	assert.Equal(t, syntax.LitInt, cases[2].Raw.Kind)
	assert.Equal(t, syntax.LitInt, cases[3].Raw.Kind)
	assert.Equal(t, "10", cases[3].Raw.Text())

	require.Len(t, status.Vars, 1)
	assert.Equal(t, VarDef{Name: "label", Type: "string", Pos: status.Vars[0].Pos}, status.Vars[0])
}

func TestParseMinimal(t *testing.T) {
	yaml := `
package: p
enums:
  - name: A
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, df.Version) // Default version
	require.Len(t, df.Enums, 1)
	assert.Equal(t, "A", df.Enums[0].Name)
	assert.Nil(t, df.Enums[0].KnownCases)
}

func TestParseRawLiterals(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		kind  syntax.LiteralKind
		text  string
		error bool
	}{
		{name: "plain string", raw: "red", kind: syntax.LitString, text: "red"},
		{name: "quoted number", raw: `"7"`, kind: syntax.LitString, text: "7"},
		{name: "int", raw: "7", kind: syntax.LitInt, text: "7"},
		{name: "negative int", raw: "-3", kind: syntax.LitInt, text: "-3"},
		{name: "float", raw: "1.5", kind: syntax.LitFloat, text: "1.5"},
		{name: "bool", raw: "true", kind: syntax.LitBool, text: "true"},
		{name: "null", raw: "null", error: true},
		{name: "empty", raw: "", error: true},
		{name: "tilde", raw: "~", error: true},
		{name: "sequence", raw: "[1, 2]", error: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := "package: p\nenums:\n  - name: E\n    known_cases:\n      cases:\n        - A: " + tt.raw + "\n"

			df, err := Parse([]byte(yaml))
			if tt.error {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			raw := df.Enums[0].KnownCases.Cases[0].Raw
			require.NotNil(t, raw)
			assert.Equal(t, tt.kind, raw.Kind)
			assert.Equal(t, tt.text, raw.Text())
		})
	}
}

func TestParseNullRawInFullForm(t *testing.T) {
	_, err := Parse([]byte("package: p\nenums:\n  - name: E\n    known_cases:\n      cases:\n        - {name: A, raw: null}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `case "A": null raw value`)
}

func TestParseParams(t *testing.T) {
	yaml := `
package: p
enums:
  - name: E
    cases:
      - {name: Empty, params: []}
      - name: Other
        params:
          - RawValue
          - {label: at, name: pos, type: int}
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	cases := df.Enums[0].Cases
	require.Len(t, cases, 2)

	assert.True(t, cases[0].Parameterized)
	assert.Empty(t, cases[0].Params)

	assert.True(t, cases[1].Parameterized)
	assert.Equal(t, []ParamDef{
		{Type: "RawValue"},
		{Label: "at", Name: "pos", Type: "int"},
	}, cases[1].Params)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("enums: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse declaration YAML")

	_, err = Parse([]byte("package: p\nenums:\n  - name: E\n    cases:\n      - [A]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected case name or map")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read declaration file")
}

// normalize drops positions and defaults by converting through the syntax tree.
func normalize(df *DeclFile) []EnumDef {
	res := make([]EnumDef, 0, len(df.Enums))
	for i := range df.Enums {
		e := &df.Enums[i]
		res = append(res, FromSyntax(ToSyntax(e, ""), e.Options.toDirective()))
	}

	return res
}

func TestMarshalRoundTrip(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)

	data, err := Marshal(df)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "- Red: thecolorred")
	assert.Contains(t, out, "- Green")
	assert.Contains(t, out, `- Legacy: "1"`)
	assert.Contains(t, out, "- Enabled: 1")
	assert.Contains(t, out, "raw_type: int32")

	back, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, df.Package, back.Package)
	assert.Equal(t, df.Imports, back.Imports)
	assert.Equal(t, normalize(df), normalize(back))
}

func TestWriteFile(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, WriteFile(df, path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, normalize(df), normalize(back))
}

func TestToDeclarations(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)

	decls, err := ToDeclarations(df, filepath.Join("decl", "colors.yaml"))
	require.NoError(t, err)
	require.Len(t, decls, 2)

	color := decls[0]
	assert.Equal(t, analyze.PackageInfo{Name: "paint", Dir: "decl"}, color.Package)
	assert.Equal(t, []analyze.Import{
		{Path: "extenum-generator/extenum"},
		{Name: "x", Path: "example.com/other"},
	}, color.Imports)
	assert.Equal(t, syntax.DeclEnum, color.Decl.Kind)
	assert.Equal(t, filepath.Join("decl", "colors.yaml"), color.Decl.Pos.File)
	assert.Equal(t, []string{plan.KnownCasesName, "Unknown", "IsWarm"}, color.Decl.MemberNames())

	status := decls[1]
	assert.Equal(t, "Other(code:)", status.Options.Unknown)
	require.NotNil(t, status.Options.Marshal)
	assert.Nil(t, status.Options.KnownCases)

	_, err = ToDeclarations(&DeclFile{Package: "p", Imports: StringOrArray{"a b c"}}, "x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid import "a b c"`)
}

func TestExpandDeclarations(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)

	decls, err := ToDeclarations(df, "colors.yaml")
	require.NoError(t, err)

	color, err := plan.Expand(decls[0].Decl, plan.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Red", "Green", "Blue"}, color.KnownCaseNames())
	assert.False(t, color.CatchAll.Synthesized)
	assert.Equal(t, "Red", color.Init(*syntax.StringLiteral("thecolorred")).String())
	assert.Equal(t, `Unknown("red")`, color.Init(*syntax.StringLiteral("red")).String())

	green, ok := color.Forward().Lookup("Green")
	require.True(t, ok)
	assert.Equal(t, "Green", green.Text())

	opts := plan.DefaultOptions()
	opts.CatchAll = decls[1].Options.Unknown

	status, err := plan.Expand(decls[1].Decl, opts)
	require.NoError(t, err)

	assert.Equal(t, syntax.LitInt, status.RawKind)
	assert.Empty(t, status.Extensions)
	assert.True(t, status.CatchAll.Synthesized)
	assert.Equal(t, "Other", status.CatchAll.Name)

	// "1" and 1 are the same raw value once coerced to int32.
	assert.Equal(t, "Enabled", status.Init(*syntax.IntLiteral(1)).String())
	assert.Equal(t, "Suspended", status.Init(*syntax.IntLiteral(11)).String())
	require.Len(t, status.Diagnostics.Warnings, 2)
	assert.Equal(t, "duplicate_raw_value", status.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "ignored_member", status.Diagnostics.Warnings[1].Code)
}

func TestExpandDeclarationErrors(t *testing.T) {
	yaml := `
package: p
enums:
  - name: Flag
    known_cases:
      visibility: public
      raw_type: bool
      cases: [On]
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	decls, err := ToDeclarations(df, "flags.yaml")
	require.NoError(t, err)

	_, err = plan.Expand(decls[0].Decl, plan.DefaultOptions())
	require.Error(t, err)
	require.ErrorIs(t, err, plan.ErrKnownCasesNotPrivate)

	var perr *plan.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "flags.yaml", perr.Pos.File)
	assert.Equal(t, 6, perr.Pos.Line)
}

func TestFromDeclarations(t *testing.T) {
	src := `//go:build extenum

package paint

import "extenum-generator/extenum"

//extenum:enum unknown=Other marshal=false
type Color struct {
	knownCases struct {
		string
		Red   extenum.Case ` + "`raw:\"thecolorred\"`" + `
		Green extenum.Case
	}
}
`

	decls, err := analyze.ParseSource("color.go", src)
	require.NoError(t, err)
	require.Len(t, decls, 1)

	df := FromDeclarations(decls)
	assert.Equal(t, CurrentVersion, df.Version)
	assert.Equal(t, "paint", df.Package)
	assert.Equal(t, StringOrArray{"extenum-generator/extenum"}, df.Imports)
	require.Len(t, df.Enums, 1)

	e := df.Enums[0]
	assert.Equal(t, "Color", e.Name)
	require.NotNil(t, e.Options)
	assert.Equal(t, "Other", e.Options.Unknown)
	require.NotNil(t, e.Options.Marshal)
	assert.False(t, *e.Options.Marshal)

	require.NotNil(t, e.KnownCases)
	assert.Equal(t, syntax.ModifierPrivate, e.KnownCases.Visibility)
	assert.Equal(t, StringOrArray{"string"}, e.KnownCases.RawType)
	require.Len(t, e.KnownCases.Cases, 2)
	assert.Equal(t, "thecolorred", e.KnownCases.Cases[0].Raw.Text())
	assert.Nil(t, e.KnownCases.Cases[1].Raw)

	data, err := Marshal(df)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, normalize(df), normalize(back))
}

func TestNamedRawKind(t *testing.T) {
	yaml := `
package: rpc
imports: google.golang.org/grpc/codes
enums:
  - name: Code
    known_cases:
      raw_type: codes.Code
      raw_kind: int
      cases: [OK, Canceled, Unknown2]
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, "int", df.Enums[0].KnownCases.RawKind)
	require.True(t, Validate(df).IsValid())

	decls, err := ToDeclarations(df, "codes.yaml")
	require.NoError(t, err)

	m, err := plan.Expand(decls[0].Decl, plan.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, syntax.LitInt, m.RawKind)
	assert.Equal(t, "Canceled", m.Init(*syntax.IntLiteral(1)).String())

	lit, ok := m.Forward().Lookup("Unknown2")
	require.True(t, ok)
	assert.Equal(t, "2", lit.Value)

	// Export keeps the resolved kind of named types only.
	back := FromSyntax(decls[0].Decl, analyze.DirectiveOptions{})
	assert.Equal(t, "int", back.KnownCases.RawKind)

	builtin := syntax.NewTypeRef("int32")
	builtin.Basic = syntax.LitInt
	decls[0].Decl.Nested(plan.KnownCasesName, syntax.DeclEnum).Inherited[0] = builtin
	assert.Empty(t, FromSyntax(decls[0].Decl, analyze.DirectiveOptions{}).KnownCases.RawKind)
}
