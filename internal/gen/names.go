package gen

import (
	"extenum-generator/internal/plan"
	"extenum-generator/internal/syntax"
)

// scope tracks the owner of each generated identifier.
type scope map[string]string

// claim records ident for owner and returns the previous owner on collision.
func (s scope) claim(ident, owner string) (string, bool) {
	if prev, ok := s[ident]; ok {
		return prev, false
	}

	s[ident] = owner

	return "", true
}

// checkNames rejects enums whose generated identifiers collide in package
// scope or in the method set of the enum type, e.g. a case named Case
// (ShapeCase) or KnownCases (ShapeKnownCases), or cases red and Red.
func checkNames(data *enumData, decl *syntax.TypeDecl) error {
	collision := func(ident, first, second string) error {
		err := &plan.Error{Kind: plan.NameCollision, Enum: data.Name, Case: ident, Pos: decl.Pos}
		err.Detail = first + " and " + second

		return err
	}

	pkg := scope{}

	idents := [][2]string{
		{data.Name, "the enum type"},
		{data.CaseType, "the case type"},
		{data.RawValueOf, "the forward lookup"},
		{data.KnownRawValues, "the reverse table"},
		{data.NewFunc, "the initializer"},
	}

	if data.KnownCasesFunc != "" {
		idents = append(idents, [2]string{data.KnownCasesFunc, "the known case list"})
	}

	for _, c := range data.Cases {
		idents = append(idents,
			[2]string{c.Const, "case " + c.Name},
			[2]string{c.Value, "case " + c.Name},
		)
	}

	for _, id := range idents {
		if prev, ok := pkg.claim(id[0], id[1]); !ok {
			return collision(id[0], prev, id[1])
		}
	}

	methods := scope{}

	members := [][2]string{
		{"kase", "the case field"},
		{"Case", "the Case method"},
		{"rawValue", "the rawValue method"},
		{"RawValue", "the RawValue method"},
	}

	if data.Stringer {
		members = append(members, [2]string{"String", "the String method"})
	}

	if data.MarshalText {
		members = append(members,
			[2]string{"MarshalText", "the MarshalText method"},
			[2]string{"UnmarshalText", "the UnmarshalText method"},
		)
	}

	if data.MarshalJSON {
		members = append(members,
			[2]string{"MarshalJSON", "the MarshalJSON method"},
			[2]string{"UnmarshalJSON", "the UnmarshalJSON method"},
		)
	}

	for _, c := range data.Constructors {
		members = append(members, [2]string{c.Name, "the payload accessor of case " + c.Name})

		for _, f := range c.Fields {
			members = append(members, [2]string{f.Field, "a payload field of case " + c.Name})
		}
	}

	for _, f := range decl.Funcs() {
		members = append(members, [2]string{f.Name, "method " + f.Name})
	}

	for _, m := range members {
		if prev, ok := methods.claim(m[0], m[1]); !ok {
			return collision(m[0], prev, m[1])
		}
	}

	return nil
}
