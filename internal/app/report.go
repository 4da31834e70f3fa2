package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"extenum-generator/internal/gen"
	"extenum-generator/internal/plan"
)

// Report describes the expansion of every enum of a run.
type Report struct {
	Enums []EnumReport `json:"enums"`
}

// EnumReport describes the expansion of one enum.
type EnumReport struct {
	Name     string `json:"name"`
	Package  string `json:"package"`
	File     string `json:"file"`
	RawType  string `json:"raw_type"`
	RawKind  string `json:"raw_kind"`
	CatchAll string `json:"catch_all"`
	// Synthesized is false when the declaration carries the catch-all case.
	Synthesized bool         `json:"synthesized"`
	KnownCases  []CaseReport `json:"known_cases"`
	Members     []string     `json:"members"`
	Extensions  []string     `json:"extensions,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// CaseReport is a known case and its raw value.
type CaseReport struct {
	Name string `json:"name"`
	Raw  string `json:"raw"`
}

// NewReport builds the report of the expanded enums.
func NewReport(enums []gen.Enum) *Report {
	r := &Report{Enums: make([]EnumReport, 0, len(enums))}

	for _, e := range enums {
		m := e.Members

		er := EnumReport{
			Name:        m.Enum,
			Package:     e.Decl.Package.Name,
			File:        e.Decl.File,
			RawType:     m.RawType.String(),
			RawKind:     m.RawKind.String(),
			CatchAll:    m.CatchAll.Pattern(),
			Synthesized: m.CatchAll.Synthesized,
			KnownCases:  []CaseReport{},
		}

		if e.Decl.Package.Path != "" {
			er.Package = e.Decl.Package.Path
		}

		for _, f := range m.Forward().Entries {
			er.KnownCases = append(er.KnownCases, CaseReport{Name: f.Case, Raw: f.Literal.Value})
		}

		for _, d := range m.Decls {
			er.Members = append(er.Members, memberName(d))
		}

		for _, ext := range m.Extensions {
			er.Extensions = append(er.Extensions, ext.Conformances...)
		}

		for _, w := range m.Diagnostics.Warnings {
			er.Warnings = append(er.Warnings, w.String())
		}

		r.Enums = append(r.Enums, er)
	}

	return r
}

// memberName is the variant name of a member, e.g. "ForwardLookup".
func memberName(m plan.Member) string {
	name := fmt.Sprintf("%T", m)
	name = name[strings.LastIndex(name, ".")+1:]

	return strings.TrimSuffix(name, "Member")
}

// Marshal encodes the report as indented JSON.
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// WriteFile writes the report to path; "-" writes to stdout.
func (r *Report) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
