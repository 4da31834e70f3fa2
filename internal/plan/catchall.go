package plan

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultParamName names the catch-all parameter when the pattern gives no
// usable internal name.
const DefaultParamName = "rawValue"

// CatchAll describes the catch-all case: the case carrying any raw value that
// no known case declares.
type CatchAll struct {
	Name string
	// Label is the external parameter label, empty when positional.
	Label string
	// ParamName is the internal parameter name.
	ParamName string
}

// DefaultCatchAll is "Unknown(_:)": a case named Unknown with one positional
// parameter.
var DefaultCatchAll = CatchAll{Name: "Unknown", ParamName: DefaultParamName}

// Positional returns true if the parameter has no external label.
func (c CatchAll) Positional() bool {
	return c.Label == ""
}

// Pattern returns the catch-all in "name(label:)" form.
func (c CatchAll) Pattern() string {
	label := c.Label
	if label == "" {
		label = "_"
	}

	if c.ParamName != "" && c.ParamName != c.Label && c.ParamName != DefaultParamName {
		label += " " + c.ParamName
	}

	return c.Name + "(" + label + ":)"
}

// ParseCatchAll parses a catch-all pattern such as "unknown(_:)",
// "other(raw:)" or "other(_ value:)".
//
// The name is the identifier right before the last open parenthesis; the label
// runs up to the first colon after it and holds one or two whitespace
// separated tokens (external label, then internal name). A "_" label makes the
// parameter positional. A pattern without parenthesis is a bare name with a
// positional parameter.
func ParseCatchAll(pattern string) (CatchAll, error) {
	rs := []rune(pattern)

	open := -1
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == '(' {
			open = i
			break
		}
	}

	if open < 0 {
		name := strings.TrimSpace(pattern)
		if name == "" {
			return CatchAll{}, patternError(pattern, "invalid empty case name")
		}

		return CatchAll{Name: name, ParamName: DefaultParamName}, nil
	}

	// Backtrack over whitespace, then over the identifier.
	end := open
	for end > 0 && unicode.IsSpace(rs[end-1]) {
		end--
	}

	start := end
	for start > 0 && !unicode.IsSpace(rs[start-1]) {
		start--
	}

	name := string(rs[start:end])
	if name == "" {
		return CatchAll{}, patternError(pattern, "invalid empty case name")
	}

	rest := string(rs[open+1:])

	label, _, found := strings.Cut(rest, ":")
	if !found {
		return CatchAll{}, patternError(pattern, "missing colon after parameter name")
	}

	parts := strings.Fields(label)

	switch {
	case len(parts) == 0:
		return CatchAll{}, patternError(pattern, "invalid empty parameter name")
	case len(parts) > 2:
		return CatchAll{}, patternError(pattern, "invalid parameter name "+strconv.Quote(label))
	}

	res := CatchAll{Name: name, ParamName: DefaultParamName}
	if parts[0] != "_" {
		res.Label = parts[0]
		res.ParamName = parts[0]
	}

	if len(parts) == 2 && parts[1] != "_" {
		res.ParamName = parts[1]
	}

	return res, nil
}

func patternError(pattern, detail string) *Error {
	return &Error{Kind: InvalidCatchAllPattern, Detail: strconv.Quote(pattern) + ": " + detail}
}
