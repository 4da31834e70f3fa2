package plan

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"extenum-generator/internal/diagnostic"
	"extenum-generator/internal/syntax"
)

// rawValueAliases name the raw type wherever it is spelled out in a
// declaration.
var rawValueAliases = []string{"RawValue", "extenum.RawValue"}

// IsRawValueAlias reports whether t names the raw type through its reserved
// alias.
func IsRawValueAlias(t syntax.TypeRef) bool {
	return slices.Contains(rawValueAliases, t.Canonical())
}

// HashableConformance is the conformance attached by the extension.
const HashableConformance = "Hashable"

// Options tunes synthesis.
type Options struct {
	// CatchAll is the catch-all pattern, e.g. "Other(raw:)". Empty selects
	// DefaultCatchAll.
	CatchAll string
	// HashableNames are the conformance names that already provide
	// hashability.
	HashableNames []string
	// KnownCasesList emits the ordered list of known cases.
	KnownCasesList bool
	// Marshal emits raw-value marshaling.
	Marshal bool
	// SkipHashable never attaches the hashability extension.
	SkipHashable bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		HashableNames:  []string{"Hashable", "extenum.Hashable"},
		KnownCasesList: true,
		Marshal:        true,
	}
}

// Synthesize produces the generated members of a validated enum.
func Synthesize(v *ValidatedEnum, opts Options) (*Members, error) {
	decl := v.Decl
	spec := v.KnownCases

	res := &Members{
		Enum:    decl.Name,
		RawType: spec.RawType,
		RawKind: spec.RawKind,
	}

	for _, e := range spec.Entries {
		res.Decls = append(res.Decls, KnownCaseMember{Name: e.Name, Pos: e.Pos})
	}

	pattern := DefaultCatchAll
	if opts.CatchAll != "" {
		var err error
		if pattern, err = ParseCatchAll(opts.CatchAll); err != nil {
			err.(*Error).Enum = decl.Name

			return nil, err
		}
	}

	catchAll, err := resolveCatchAll(v, pattern)
	if err != nil {
		return nil, err
	}

	if err := checkCaseNames(decl, spec, catchAll); err != nil {
		return nil, err
	}

	res.CatchAll = catchAll
	if catchAll.Synthesized {
		res.Decls = append(res.Decls, CatchAllCaseMember{CatchAllCase: catchAll})
		res.Diagnostics.AddInfo(diagnostic.CodeSynthesizedCatchAll,
			"synthesized catch-all case "+catchAll.Pattern(), decl.Name, catchAll.Name)
	}

	if opts.KnownCasesList {
		res.Decls = append(res.Decls, KnownCasesListMember{Names: spec.Names()})
	}

	forward := ForwardLookupMember{Entries: make([]ForwardEntry, 0, len(spec.Entries))}
	for _, e := range spec.Entries {
		forward.Entries = append(forward.Entries, ForwardEntry{Case: e.Name, Literal: e.Literal})
	}

	res.Decls = append(res.Decls,
		forward,
		reverseTable(decl.Name, spec.Entries, &res.Diagnostics),
		RawValueAccessorMember{Type: spec.RawType},
		InitializerMember{Type: spec.RawType, ParamName: catchAll.ParamName},
		StringerMember{},
	)

	if opts.Marshal {
		res.Decls = append(res.Decls, MarshalMember{Text: spec.RawKind == syntax.LitString})
	}

	if !opts.SkipHashable && !declaresHashable(decl, opts.HashableNames) {
		res.Extensions = append(res.Extensions, Extension{
			Type:         decl.Name,
			Conformances: []string{HashableConformance},
		})
		res.Diagnostics.AddInfo(diagnostic.CodeAddedConformance,
			"added conformance "+HashableConformance, decl.Name, "")
	}

	lintMembers(decl, catchAll, &res.Diagnostics)

	return res, nil
}

// resolveCatchAll reuses the declared catch-all case when present, checking
// its shape, and describes a synthesized one otherwise.
func resolveCatchAll(v *ValidatedEnum, pattern CatchAll) (CatchAllCase, error) {
	decl := v.Decl

	existing := decl.Case(pattern.Name)
	if existing == nil {
		return CatchAllCase{
			CatchAll:    pattern,
			Type:        v.RawType(),
			Synthesized: true,
		}, nil
	}

	if len(existing.Params) != 1 {
		err := newError(UnknownCaseArityMismatch, decl.Name, existing.Pos)
		err.Case = existing.Name
		err.Detail = fmt.Sprintf("found %d", len(existing.Params))

		return CatchAllCase{}, err
	}

	param := existing.Params[0]
	if !param.Type.Equal(v.RawType()) && !IsRawValueAlias(param.Type) {
		err := newError(UnknownCaseTypeMismatch, decl.Name, existing.Pos)
		err.Case = existing.Name
		err.Detail = v.RawType().String()

		return CatchAllCase{}, err
	}

	res := CatchAllCase{
		CatchAll: CatchAll{Name: existing.Name, ParamName: DefaultParamName},
		Type:     param.Type,
		Pos:      existing.Pos,
	}

	if param.Label != "" && param.Label != "_" {
		res.Label = param.Label
		res.ParamName = param.Label
	}

	if param.Name != "" && param.Name != "_" {
		res.ParamName = param.Name
	}

	return res, nil
}

// checkCaseNames rejects known cases that reuse the name of the catch-all
// or of another declared case. Duplicates inside KnownCases are allowed.
func checkCaseNames(decl *syntax.TypeDecl, spec *KnownCasesSpec, catchAll CatchAllCase) error {
	for _, e := range spec.Entries {
		other := ""

		switch {
		case e.Name == catchAll.Name:
			other = "catch-all case"
		case decl.Case(e.Name) != nil:
			other = "declared case"
		default:
			continue
		}

		err := newError(NameCollision, decl.Name, e.Pos)
		err.Case = e.Name
		err.Detail = "known case and " + other

		return err
	}

	return nil
}

// reverseTable inverts the forward mapping. Keys keep their first position;
// the last declared case wins.
func reverseTable(enum string, entries []KnownCase, diags *diagnostic.Diagnostics) ReverseTableMember {
	table := linkedhashmap.New()

	for _, e := range entries {
		key := e.Literal.Key()

		if prev, found := table.Get(key); found {
			diags.AddWarning(diagnostic.CodeDuplicateRawValue,
				fmt.Sprintf("raw value %s of %s shadows %s", e.Literal.Value, e.Name, prev.(ReverseEntry).Case),
				enum, e.Name)
		}

		table.Put(key, ReverseEntry{Literal: e.Literal, Case: e.Name})
	}

	res := ReverseTableMember{Entries: make([]ReverseEntry, 0, table.Size())}

	it := table.Iterator()
	for it.Next() {
		res.Entries = append(res.Entries, it.Value().(ReverseEntry))
	}

	return res
}

func declaresHashable(decl *syntax.TypeDecl, names []string) bool {
	for _, t := range decl.Inherited {
		if slices.Contains(names, t.Canonical()) {
			return true
		}
	}

	return false
}

// lintMembers reports members that expand to something surprising.
func lintMembers(decl *syntax.TypeDecl, catchAll CatchAllCase, diags *diagnostic.Diagnostics) {
	for _, m := range decl.Members {
		switch m := m.(type) {
		case *syntax.CaseDecl:
			if m.Name != catchAll.Name {
				diags.AddWarning(diagnostic.CodeCaseWithoutRaw,
					"case has no raw value; RawValue panics for it", decl.Name, m.Name)
			}
		case *syntax.VarDecl:
			diags.AddWarning(diagnostic.CodeIgnoredMember,
				"stored member "+m.Type.String()+" is not part of the enum", decl.Name, m.Name)
		}
	}
}
