package analyze

import (
	"fmt"
	"go/ast"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Directive tool and name marking an extendable enum declaration.
const (
	DirectiveTool = "extenum"
	DirectiveName = "enum"
)

// Directive is a parsed comment directive of the form
//
//	//tool:name arg0 key0=value0 key1="value 1"
type Directive struct {
	Tool      string
	Name      string
	Args      []string
	NameValue map[string]string
}

// String returns the directive in source form.
func (d *Directive) String() string {
	if d == nil {
		return "<nil>"
	}

	res := "//" + d.Tool + ":" + d.Name
	for _, a := range d.Args {
		res += " " + a
	}

	for _, k := range slices.Sorted(maps.Keys(d.NameValue)) {
		v := d.NameValue[k]
		if strings.ContainsFunc(v, unicode.IsSpace) || v == "" {
			v = strconv.Quote(v)
		}

		res += " " + k + "=" + v
	}

	return res
}

// ParseDirective parses a single comment and returns the directive in it, or
// nil if the comment holds none. Arguments are split with shell-word rules.
func ParseDirective(comment string) (*Directive, error) {
	comment = strings.TrimPrefix(comment, "//")

	rs := []rune(comment)
	if len(rs) == 0 || unicode.IsSpace(rs[0]) {
		return nil, nil
	}

	tool, after, found := strings.Cut(comment, ":")
	if !found || strings.ContainsFunc(tool, unicode.IsSpace) {
		return nil, nil
	}

	args, err := shellwords.Parse(after)
	if err != nil {
		return nil, fmt.Errorf("parsing directive args: %w", err)
	}

	d := &Directive{Tool: tool, Args: []string{}, NameValue: map[string]string{}}
	if len(args) == 0 {
		return d, nil
	}

	d.Name = args[0]

	for _, a := range args[1:] {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			d.Args = append(d.Args, a)
			continue
		}

		d.NameValue[k] = v
	}

	return d, nil
}

// findDirective returns the first directive of the given tool and name in
// the comment groups.
func findDirective(tool, name string, groups ...*ast.CommentGroup) (*Directive, error) {
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			d, err := ParseDirective(c.Text)
			if err != nil {
				return nil, err
			}

			if d != nil && d.Tool == tool && d.Name == name {
				return d, nil
			}
		}
	}

	return nil, nil
}

// DirectiveOptions are the per-enum settings carried by the directive.
// Unset values defer to the project configuration.
type DirectiveOptions struct {
	Unknown    string
	Hashable   *bool
	Marshal    *bool
	KnownCases *bool
}

// ParseOptions reads the options of an enum directive.
func ParseOptions(d *Directive) (DirectiveOptions, error) {
	var opts DirectiveOptions

	if len(d.Args) > 0 {
		return opts, fmt.Errorf("%s: unexpected argument %q", d, d.Args[0])
	}

	for _, k := range slices.Sorted(maps.Keys(d.NameValue)) {
		v := d.NameValue[k]

		switch k {
		case "unknown":
			opts.Unknown = v
		case "hashable", "marshal", "list":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, fmt.Errorf("%s: invalid %s value %q: %w", d, k, v, err)
			}

			switch k {
			case "hashable":
				opts.Hashable = &b
			case "marshal":
				opts.Marshal = &b
			default:
				opts.KnownCases = &b
			}
		default:
			return opts, fmt.Errorf("%s: unknown argument %q", d, k)
		}
	}

	return opts, nil
}
