package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, yaml string) []string {
	t.Helper()

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	res := Validate(df)

	var out []string
	for _, d := range res.Errors {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	df, err := Parse([]byte(colorsYAML))
	require.NoError(t, err)

	res := Validate(df)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "file_is_nil", res.Errors[0].Code)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "bad version",
			yaml: "version: \"2\"\npackage: p\nenums: [{name: A}]\n",
			want: []string{"unsupported_version"},
		},
		{
			name: "missing package",
			yaml: "enums: [{name: A}]\n",
			want: []string{"invalid_package"},
		},
		{
			name: "bad import",
			yaml: "package: p\nimports: [a b c]\nenums: [{name: A}]\n",
			want: []string{"invalid_import"},
		},
		{
			name: "bad enum name",
			yaml: "package: p\nenums: [{name: 1A}]\n",
			want: []string{"invalid_enum_name"},
		},
		{
			name: "duplicate enum",
			yaml: "package: p\nenums: [{name: A}, {name: A}]\n",
			want: []string{"duplicate_enum"},
		},
		{
			name: "bad kind",
			yaml: "package: p\nenums: [{name: A, kind: union}]\n",
			want: []string{"invalid_kind"},
		},
		{
			name: "bad visibility",
			yaml: "package: p\nenums: [{name: A, known_cases: {visibility: internal, raw_type: string}}]\n",
			want: []string{"invalid_visibility"},
		},
		{
			name: "bad raw type",
			yaml: "package: p\nenums: [{name: A, known_cases: {raw_type: \"map[\"}}]\n",
			want: []string{"invalid_type"},
		},
		{
			name: "named raw type without kind",
			yaml: "package: p\nenums: [{name: A, known_cases: {raw_type: codes.Code, cases: [OK]}}]\n",
			want: []string{"missing_raw_kind"},
		},
		{
			name: "bad raw kind",
			yaml: "package: p\nenums: [{name: A, known_cases: {raw_type: codes.Code, raw_kind: uint}}]\n",
			want: []string{"invalid_raw_kind"},
		},
		{
			name: "bad case name",
			yaml: "package: p\nenums: [{name: A, known_cases: {cases: [\"two words\"]}}]\n",
			want: []string{"invalid_case_name"},
		},
		{
			name: "missing param type",
			yaml: "package: p\nenums: [{name: A, cases: [{name: Other, params: [{name: v}]}]}]\n",
			want: []string{"missing_type"},
		},
		{
			name: "bad func",
			yaml: "package: p\nenums: [{name: A, funcs: [{name: \"\", results: \"[]\"}]}]\n",
			want: []string{"invalid_member_name", "invalid_type"},
		},
		{
			name: "var without type",
			yaml: "package: p\nenums: [{name: A, vars: [{name: label}]}]\n",
			want: []string{"missing_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(t, tt.yaml))
		})
	}
}

func TestValidateAcceptsHasherParams(t *testing.T) {
	yaml := `
package: p
enums:
  - name: A
    funcs:
      - name: Hash
        params: [{into: inout Hasher}]
      - name: Ptr
        params: ["*strings.Builder"]
`

	assert.Empty(t, codes(t, yaml))
}

func TestValidateWarnsOnEmptyFile(t *testing.T) {
	df, err := Parse([]byte("package: p\n"))
	require.NoError(t, err)

	res := Validate(df)
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_enums", res.Warnings[0].Code)
}
