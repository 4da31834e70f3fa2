package mapping

import (
	"extenum-generator/internal/syntax"
)

// DeclFile represents the root of a YAML declaration file.
type DeclFile struct {
	// Version of the declaration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package the enums are generated into.
	Package string `yaml:"package"`

	// Imports lists the imports referenced by declared types, as "path" or
	// "name path".
	Imports StringOrArray `yaml:"imports,omitempty"`

	// Enums is the list of declared types.
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef declares one type. Only kind "enum" (the default) expands.
type EnumDef struct {
	Name string `yaml:"name"`

	// Kind is the declaration kind: enum, struct, interface or alias.
	Kind string `yaml:"kind,omitempty"`

	Doc string `yaml:"doc,omitempty"`

	// Conformances lists the contracts the enum already satisfies, e.g.
	// Hashable.
	Conformances StringOrArray `yaml:"conformances,omitempty"`

	Options *OptionsDef `yaml:"options,omitempty"`

	// KnownCases is the nested table of known cases.
	KnownCases *KnownCasesDef `yaml:"known_cases,omitempty"`

	// Cases are the cases declared on the enum itself, such as a catch-all.
	Cases []CaseDef `yaml:"cases,omitempty"`

	Funcs []FuncDef `yaml:"funcs,omitempty"`

	Vars []VarDef `yaml:"vars,omitempty"`

	// Pos is where the definition starts in the file.
	Pos syntax.Pos `yaml:"-"`
}

// OptionsDef overrides project configuration for one enum.
type OptionsDef struct {
	Unknown  string `yaml:"unknown,omitempty"`
	Hashable *bool  `yaml:"hashable,omitempty"`
	Marshal  *bool  `yaml:"marshal,omitempty"`
	List     *bool  `yaml:"list,omitempty"`
}

// KnownCasesDef is the KnownCases table.
type KnownCasesDef struct {
	// Visibility is private (the default) or public.
	Visibility string `yaml:"visibility,omitempty"`

	// RawType is the raw-value type. Exactly one is valid.
	RawType StringOrArray `yaml:"raw_type,omitempty"`

	// RawKind is the underlying kind of a named raw type: string, int,
	// float or bool. Predeclared raw types do not need it.
	RawKind string `yaml:"raw_kind,omitempty"`

	Cases []CaseDef `yaml:"cases,omitempty"`

	Pos syntax.Pos `yaml:"-"`
}

// CaseDef declares a case.
// YAML formats supported:
//   - Bare case with implicit raw value: Green
//   - Bare case with raw value: {Red: thecolorred}
//   - Full form: {name: Unknown, params: [{type: RawValue}]}
type CaseDef struct {
	Name string `yaml:"name"`

	// Raw is the explicit raw value.
	Raw *RawLiteral `yaml:"raw,omitempty"`

	// Params makes the case parameterized, even when empty.
	Params []ParamDef `yaml:"params,omitempty"`

	// Parameterized is set when the params key is present.
	Parameterized bool `yaml:"-"`

	Pos syntax.Pos `yaml:"-"`
}

// ParamDef declares a parameter.
type ParamDef struct {
	// Label is the external label; "_" or empty means positional.
	Label string `yaml:"label,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Type  string `yaml:"type"`
}

// FuncDef declares a member function.
type FuncDef struct {
	Name    string        `yaml:"name"`
	Params  []ParamDef    `yaml:"params,omitempty"`
	Results StringOrArray `yaml:"results,omitempty"`

	Pos syntax.Pos `yaml:"-"`
}

// VarDef declares a stored member.
type VarDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	Pos syntax.Pos `yaml:"-"`
}

// RawLiteral is a raw value whose kind follows the YAML scalar tag: strings
// stay strings, !!int, !!float and !!bool scalars keep their kind.
type RawLiteral struct {
	syntax.Literal
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
type StringOrArray []string
