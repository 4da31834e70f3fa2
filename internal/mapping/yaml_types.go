package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"extenum-generator/internal/common"
	"extenum-generator/internal/syntax"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

func nodePos(node *yaml.Node) syntax.Pos {
	return syntax.Pos{Line: node.Line, Column: node.Column}
}

// --- EnumDef YAML methods ---

// UnmarshalYAML decodes an enum definition and records its position.
func (e *EnumDef) UnmarshalYAML(node *yaml.Node) error {
	type plain EnumDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = EnumDef(p)
	e.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML decodes the known cases table and records its position.
func (k *KnownCasesDef) UnmarshalYAML(node *yaml.Node) error {
	type plain KnownCasesDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*k = KnownCasesDef(p)
	k.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML decodes a function definition and records its position.
func (f *FuncDef) UnmarshalYAML(node *yaml.Node) error {
	type plain FuncDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*f = FuncDef(p)
	f.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML decodes a stored member definition and records its position.
func (v *VarDef) UnmarshalYAML(node *yaml.Node) error {
	type plain VarDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*v = VarDef(p)
	v.Pos = nodePos(node)

	return nil
}

// --- CaseDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for CaseDef.
// Accepts:
//   - Single string: Green
//   - Single key map: {Red: thecolorred}
//   - Full map: {name: Unknown, params: [...], raw: ...}
func (c *CaseDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = CaseDef{Name: node.Value, Pos: nodePos(node)}

		return nil

	case yaml.MappingNode:
		if len(node.Content) == 2 && !isCaseKey(node.Content[0].Value) {
			// Decode skips unmarshalers for null nodes.
			var raw RawLiteral
			if err := raw.UnmarshalYAML(node.Content[1]); err != nil {
				return err
			}

			*c = CaseDef{Name: node.Content[0].Value, Raw: &raw, Pos: nodePos(node)}

			return nil
		}

		type plain CaseDef

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*c = CaseDef(p)
		c.Pos = nodePos(node)

		for i := 0; i < len(node.Content); i += 2 {
			switch key, value := node.Content[i].Value, node.Content[i+1]; key {
			case "params":
				c.Parameterized = true
			case "raw":
				if value.ShortTag() == "!!null" {
					return fmt.Errorf("line %d: case %q: null raw value", value.Line, c.Name)
				}
			}
		}

		return nil

	default:
		return fmt.Errorf("line %d: expected case name or map, got %v", node.Line, node.Kind)
	}
}

func isCaseKey(key string) bool {
	return key == "name" || key == "raw" || key == "params"
}

// MarshalYAML implements custom YAML marshaling for CaseDef.
// Outputs the shortest form that reads back to the same case.
func (c CaseDef) MarshalYAML() (any, error) {
	type bare struct {
		Name string      `yaml:"name"`
		Raw  *RawLiteral `yaml:"raw,omitempty"`
	}

	type full struct {
		Name   string      `yaml:"name"`
		Raw    *RawLiteral `yaml:"raw,omitempty"`
		Params []ParamDef  `yaml:"params"`
	}

	switch {
	case !c.Parameterized && c.Raw == nil:
		return c.Name, nil
	case !c.Parameterized && !isCaseKey(c.Name):
		return map[string]RawLiteral{c.Name: *c.Raw}, nil
	case !c.Parameterized:
		return bare{Name: c.Name, Raw: c.Raw}, nil
	}

	params := c.Params
	if params == nil {
		params = []ParamDef{}
	}

	return full{Name: c.Name, Raw: c.Raw, Params: params}, nil
}

// --- ParamDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for ParamDef.
// Accepts:
//   - Type only: RawValue
//   - Name and type: {rawValue: RawValue}
//   - Full map: {label: _, name: rawValue, type: RawValue}
func (p *ParamDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = ParamDef{Type: node.Value}

		return nil

	case yaml.MappingNode:
		if len(node.Content) == 2 {
			if key := node.Content[0].Value; key != "label" && key != "name" && key != "type" {
				var typ string
				if err := node.Content[1].Decode(&typ); err != nil {
					return fmt.Errorf("invalid type for parameter %s, expected string", key)
				}

				*p = ParamDef{Name: key, Type: typ}

				return nil
			}
		}

		type plain ParamDef

		var v plain
		if err := node.Decode(&v); err != nil {
			return err
		}

		*p = ParamDef(v)

		return nil

	default:
		return errors.New("expected type or map for parameter definition")
	}
}

// --- RawLiteral YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for RawLiteral. The
// literal kind follows the resolved scalar tag.
func (r *RawLiteral) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar raw value, got %v", node.Line, node.Kind)
	}

	switch node.ShortTag() {
	case "!!str":
		r.Literal = *syntax.StringLiteral(node.Value)
	case "!!int", "!!float":
		lit, ok := syntax.ParseLiteral(node.Value)
		if !ok || lit.Kind == syntax.LitString {
			return fmt.Errorf("line %d: invalid numeric raw value %q", node.Line, node.Value)
		}

		r.Literal = *lit
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: invalid boolean raw value %q", node.Line, node.Value)
		}

		r.Literal = syntax.Literal{Kind: syntax.LitBool, Value: strconv.FormatBool(b)}
	default:
		return fmt.Errorf("line %d: unsupported raw value %q (%s)", node.Line, node.Value, node.ShortTag())
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for RawLiteral. Non-string
// literals keep their tag so that they read back with the same kind.
func (r RawLiteral) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: r.Text()}

	switch r.Kind {
	case syntax.LitString:
		node.Tag = "!!str"
	case syntax.LitInt:
		node.Tag = "!!int"
	case syntax.LitFloat:
		node.Tag = "!!float"
	case syntax.LitBool:
		node.Tag = "!!bool"
	default:
		return nil, fmt.Errorf("cannot marshal %s literal %q", r.Kind, r.Value)
	}

	return node, nil
}
