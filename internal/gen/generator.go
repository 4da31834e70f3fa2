package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the generated file in each package directory.
	Filename string
	// Tag is the build tag of declaration files; generated files exclude it.
	Tag string
	// GenerateComments enables generation of doc comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:         "extenum_gen.go",
		Tag:              analyze.DefaultTag,
		GenerateComments: true,
	}
}

// Generator renders expanded enums as Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Enum is one expanded enum together with its declaration.
type Enum struct {
	Decl    *analyze.Declaration
	Members *plan.Members
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "extenum_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per package directory, holding every enum
// declared there in input order.
func (g *Generator) Generate(enums []Enum) ([]GeneratedFile, error) {
	var dirs []string

	byDir := make(map[string][]Enum)

	for _, e := range enums {
		dir := e.Decl.Package.Dir
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}

		byDir[dir] = append(byDir[dir], e)
	}

	files := make([]GeneratedFile, 0, len(dirs))

	for _, dir := range dirs {
		file, err := g.generateFile(dir, byDir[dir])
		if err != nil {
			return nil, err
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateFile generates the code for the enums of one package directory.
func (g *Generator) generateFile(dir string, enums []Enum) (*GeneratedFile, error) {
	pkg := enums[0].Decl.Package.Name

	data := &fileData{
		Tag:              g.config.Tag,
		PackageName:      pkg,
		GenerateComments: g.config.GenerateComments,
	}

	var (
		refs  []syntax.TypeRef
		decls []*analyze.Declaration
	)

	for _, e := range enums {
		if e.Decl.Package.Name != pkg {
			return nil, fmt.Errorf("%s: enums of packages %s and %s share a directory",
				dir, pkg, e.Decl.Package.Name)
		}

		ed := buildEnumData(e, &refs)
		if err := checkNames(ed, e.Decl.Decl); err != nil {
			return nil, err
		}

		data.Enums = append(data.Enums, ed)
		decls = append(decls, e.Decl)
	}

	data.Imports = buildImports(data.Enums, decls, refs)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{Dir: dir, Filename: g.config.Filename}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(dir, file.Filename, buf.Bytes())

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// Template for the generated enum file

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by extenum-generator. DO NOT EDIT.

//go:build !{{.Tag}}

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$comments := .GenerateComments}}
{{range $e := .Enums}}
{{if $comments}}// {{.CaseType}} identifies the case of a {{.Name}}.
{{end}}type {{.CaseType}} int

{{if $comments}}// Cases of {{.Name}}. The zero value is the catch-all case.
{{end}}const (
{{range $i, $c := .Cases}}	{{$c.Const}}{{if not $i}} {{$e.CaseType}} = iota{{end}}
{{end}})

{{if $comments}}// String returns the case name.
{{end}}func (c {{.CaseType}}) String() string {
	switch c {
{{range .Cases}}	case {{.Const}}:
		return "{{.Name}}"
{{end}}	}

	return fmt.Sprintf("{{.CaseType}}(%d)", int(c))
}

{{if $comments}}{{if .Doc}}{{range .Doc}}//{{if .}} {{.}}{{end}}
{{end}}{{else}}// {{.Name}} is an extendable enum: a known case, or {{.CatchAll.Name}} carrying
// any other raw value.
{{end}}{{end}}type {{.Name}} struct {
	kase {{.CaseType}}
{{range .Constructors}}{{range .Fields}}	{{.Field}} {{.Type}}
{{end}}{{end}}}

{{if .Values}}var (
{{range .Values}}	{{.Value}} = {{$e.Name}}{kase: {{.Const}}}
{{end}})
{{end}}
{{range .Constructors}}
{{if $comments}}// {{.Value}} returns the {{.Name}} case.
{{end}}func {{.Value}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) {{$e.Name}} {
	return {{$e.Name}}{kase: {{.Const}}{{range .Fields}}, {{.Field}}: {{.Param}}{{end}}}
}

{{if $comments}}// {{.Name}} returns the payload of the {{.Name}} case.
{{end}}func (c {{$e.Name}}) {{.Name}}() ({{range .Fields}}{{.Param}} {{.Type}}, {{end}}ok bool) {
	if c.kase != {{.Const}} {
		return
	}

	return {{range .Fields}}c.{{.Field}}, {{end}}true
}
{{end}}
{{if $comments}}// Case returns the case of c.
{{end}}func (c {{.Name}}) Case() {{.CaseType}} {
	return c.kase
}
{{if .KnownCasesFunc}}
{{if $comments}}// {{.KnownCasesFunc}} returns the known cases in declaration order.
{{end}}func {{.KnownCasesFunc}}() []{{.Name}} {
	return []{{.Name}}{ {{range $i, $c := .Known}}{{if $i}}, {{end}}{{$c.Value}}{{end}} }
}
{{end}}
func {{.RawValueOf}}(c {{.Name}}) (raw {{.RawType}}, ok bool) {
	switch c.kase {
{{range .Forward}}	case {{.Const}}:
		return {{.Literal}}, true
{{end}}	}

	return
}

var {{.KnownRawValues}} = map[{{.RawType}}]{{.Name}}{
{{range .Reverse}}	{{.Literal}}: {{.Value}},
{{end}}}

func (c {{.Name}}) rawValue() ({{.RawType}}, bool) {
	if c.kase == {{.CatchAll.Const}} {
		return c.{{(index .CatchAll.Fields 0).Field}}, true
	}

	return {{.RawValueOf}}(c)
}

{{if $comments}}// RawValue returns the raw value of c. It panics for declared cases that
// carry no raw value.
{{end}}func (c {{.Name}}) RawValue() {{.RawType}} {
	raw, ok := c.rawValue()
	if !ok {
		panic(fmt.Sprintf("{{.Name}}: case %s has no raw value", c.kase))
	}

	return raw
}

{{if $comments}}// {{.NewFunc}} returns the known case declared with {{.ParamName}}, or
// {{.CatchAll.Name}}({{.ParamName}}).
{{end}}func {{.NewFunc}}({{.ParamName}} {{.RawType}}) {{.Name}} {
	if c, ok := {{.KnownRawValues}}[{{.ParamName}}]; ok {
		return c
	}

	return {{.CatchAll.Value}}({{.ParamName}})
}
{{if .Stringer}}
{{if $comments}}// String returns the case name, with the payload of cases that carry one.
{{end}}func (c {{.Name}}) String() string {
	switch c.kase {
{{range .Constructors}}	case {{.Const}}:
		return fmt.Sprintf("{{.Label}}"{{range .Fields}}, c.{{.Field}}{{end}})
{{end}}	default:
		return c.kase.String()
	}
}
{{end}}
{{if .MarshalText}}
{{if $comments}}// MarshalText implements encoding.TextMarshaler.
{{end}}func (c {{.Name}}) MarshalText() ([]byte, error) {
	raw, ok := c.rawValue()
	if !ok {
		return nil, fmt.Errorf("{{.Name}}: case %s has no raw value", c.kase)
	}

	return []byte(raw), nil
}

{{if $comments}}// UnmarshalText implements encoding.TextUnmarshaler.
{{end}}func (c *{{.Name}}) UnmarshalText(text []byte) error {
	*c = {{.NewFunc}}({{.RawType}}(text))

	return nil
}
{{end}}
{{if .MarshalJSON}}
{{if $comments}}// MarshalJSON implements json.Marshaler.
{{end}}func (c {{.Name}}) MarshalJSON() ([]byte, error) {
	raw, ok := c.rawValue()
	if !ok {
		return nil, fmt.Errorf("{{.Name}}: case %s has no raw value", c.kase)
	}

	return json.Marshal(raw)
}

{{if $comments}}// UnmarshalJSON implements json.Unmarshaler.
{{end}}func (c *{{.Name}}) UnmarshalJSON(data []byte) error {
	var raw {{.RawType}}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = {{.NewFunc}}(raw)

	return nil
}
{{end}}
{{if .Extension}}
{{if $comments}}// {{.Name}} is comparable and can key a map.
{{end}}var _ = map[{{.Name}}]struct{}(nil)
{{end}}
{{end}}
`))
