package plan

import (
	"fmt"

	"extenum-generator/internal/diagnostic"
	"extenum-generator/internal/syntax"
)

// Member is one synthesized member of an extendable enum.
type Member interface {
	member()
}

// KnownCaseMember is a bare case mirroring a KnownCases entry.
type KnownCaseMember struct {
	Name string
	Pos  syntax.Pos
}

// CatchAllCaseMember is the synthesized catch-all case. It is only emitted
// when the declaration does not already carry one.
type CatchAllCaseMember struct {
	CatchAllCase
}

// KnownCasesListMember lists the known cases in declaration order.
type KnownCasesListMember struct {
	Names []string
}

// ForwardEntry maps a known case to its raw value.
type ForwardEntry struct {
	Case    string
	Literal syntax.Literal
}

// ForwardLookupMember maps each known case to its raw value. Any other case
// has no raw value.
type ForwardLookupMember struct {
	Entries []ForwardEntry
}

// ReverseEntry maps a raw value to the known case it initializes.
type ReverseEntry struct {
	Literal syntax.Literal
	Case    string
}

// ReverseTableMember maps raw values back to known cases. Keys are unique by
// constant value; on duplicates the last declared case wins.
type ReverseTableMember struct {
	Entries []ReverseEntry
}

// RawValueAccessorMember is the public raw-value accessor.
type RawValueAccessorMember struct {
	Type syntax.TypeRef
}

// InitializerMember is the public total initializer from a raw value.
type InitializerMember struct {
	Type syntax.TypeRef
	// ParamName is the initializer parameter name.
	ParamName string
}

// StringerMember renders the enum for humans: the case name, or the raw
// value for the catch-all.
type StringerMember struct{}

// MarshalMember encodes the enum as its raw value.
type MarshalMember struct {
	// Text selects encoding.TextMarshaler, otherwise JSON.
	Text bool
}

func (KnownCaseMember) member()        {}
func (CatchAllCaseMember) member()     {}
func (KnownCasesListMember) member()   {}
func (ForwardLookupMember) member()    {}
func (ReverseTableMember) member()     {}
func (RawValueAccessorMember) member() {}
func (InitializerMember) member()      {}
func (StringerMember) member()         {}
func (MarshalMember) member()          {}

// CatchAllCase is the resolved catch-all case of an enum.
type CatchAllCase struct {
	CatchAll
	// Type is the parameter type as declared: the raw type or its alias.
	Type syntax.TypeRef
	// Synthesized is false when the declaration already carries the case.
	Synthesized bool
	Pos         syntax.Pos
}

// Extension attaches conformances to the enum type.
type Extension struct {
	Type         string
	Conformances []string
}

// Members is the full expansion of one enum.
type Members struct {
	Enum     string
	RawType  syntax.TypeRef
	RawKind  syntax.LiteralKind
	CatchAll CatchAllCase
	// Decls holds the synthesized members in emission order.
	Decls []Member
	// Extensions holds zero or one conformance extension.
	Extensions  []Extension
	Diagnostics diagnostic.Diagnostics
}

// Instance is a value of an expanded enum: a case, plus the payload for the
// catch-all case.
type Instance struct {
	Case    string
	Payload *syntax.Literal
}

// String returns "Case" or "Case(payload)".
func (i Instance) String() string {
	if i.Payload == nil {
		return i.Case
	}

	return fmt.Sprintf("%s(%s)", i.Case, i.Payload.Value)
}

// KnownCaseNames returns the emitted known cases in order.
func (m *Members) KnownCaseNames() []string {
	var names []string

	for _, d := range m.Decls {
		if k, ok := d.(KnownCaseMember); ok {
			names = append(names, k.Name)
		}
	}

	return names
}

// Forward returns the forward lookup member.
func (m *Members) Forward() ForwardLookupMember {
	for _, d := range m.Decls {
		if f, ok := d.(ForwardLookupMember); ok {
			return f
		}
	}

	return ForwardLookupMember{}
}

// Reverse returns the reverse lookup table member.
func (m *Members) Reverse() ReverseTableMember {
	for _, d := range m.Decls {
		if r, ok := d.(ReverseTableMember); ok {
			return r
		}
	}

	return ReverseTableMember{}
}

// Marshal returns the marshaling member, if emitted.
func (m *Members) Marshal() (MarshalMember, bool) {
	for _, d := range m.Decls {
		if mm, ok := d.(MarshalMember); ok {
			return mm, true
		}
	}

	return MarshalMember{}, false
}

// Has returns true if a member of the same variant as probe was emitted.
func (m *Members) Has(probe Member) bool {
	want := fmt.Sprintf("%T", probe)

	for _, d := range m.Decls {
		if fmt.Sprintf("%T", d) == want {
			return true
		}
	}

	return false
}

// Lookup returns the raw value of a known case.
func (f ForwardLookupMember) Lookup(kase string) (syntax.Literal, bool) {
	for _, e := range f.Entries {
		if e.Case == kase {
			return e.Literal, true
		}
	}

	return syntax.Literal{}, false
}

// Lookup returns the known case for a raw value.
func (r ReverseTableMember) Lookup(raw syntax.Literal) (string, bool) {
	key := raw.Key()

	for _, e := range r.Entries {
		if e.Literal.Key() == key {
			return e.Case, true
		}
	}

	return "", false
}

// Init evaluates the synthesized initializer: the known case for raw, or the
// catch-all case carrying raw.
func (m *Members) Init(raw syntax.Literal) Instance {
	if kase, ok := m.Reverse().Lookup(raw); ok {
		return Instance{Case: kase}
	}

	return Instance{Case: m.CatchAll.Name, Payload: &raw}
}

// RawValue evaluates the synthesized raw-value accessor. It fails only for
// instances that the expansion cannot produce, which the generated accessor
// treats as a panic.
func (m *Members) RawValue(in Instance) (syntax.Literal, error) {
	if in.Case == m.CatchAll.Name {
		if in.Payload == nil {
			return syntax.Literal{}, fmt.Errorf("%s: catch-all case %s without payload", m.Enum, in.Case)
		}

		return *in.Payload, nil
	}

	if lit, ok := m.Forward().Lookup(in.Case); ok {
		return lit, nil
	}

	return syntax.Literal{}, fmt.Errorf("%s: case %s has no raw value", m.Enum, in.Case)
}

// HasConformance returns true if the extension adds the given conformance.
func (m *Members) HasConformance(name string) bool {
	for _, ext := range m.Extensions {
		for _, c := range ext.Conformances {
			if c == name {
				return true
			}
		}
	}

	return false
}
