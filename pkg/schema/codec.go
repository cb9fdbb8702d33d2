package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a schema document. Fields declared as a mapping keep
// their authored order; a sequence form is accepted too. Custom validate
// rules cannot travel in documents and must be attached in code afterwards.
func FromYAML(data []byte) (*FormSchema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}
	var fs FormSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}
	return &fs, nil
}

// FromJSON decodes a schema document from JSON, with the same shape rules as
// FromYAML.
func FromJSON(data []byte) (*FormSchema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}
	var fs FormSchema
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("schema: decode json: %w", err)
	}
	return &fs, nil
}

// UnmarshalYAML accepts either a mapping keyed by field id or a sequence of
// field objects. Mapping keys win over an omitted inline id.
func (fl *FieldList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var fields []Field
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*fl = fields
		return nil
	case yaml.MappingNode:
		out := make([]Field, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var id string
			if err := node.Content[i].Decode(&id); err != nil {
				return err
			}
			var field Field
			if err := node.Content[i+1].Decode(&field); err != nil {
				return err
			}
			if field.ID == "" {
				field.ID = id
			}
			out = append(out, field)
		}
		*fl = out
		return nil
	default:
		return fmt.Errorf("schema: fields must be a mapping or a sequence")
	}
}

// UnmarshalJSON mirrors the YAML shape rules. Object form is walked with a
// token decoder so declaration order survives, matching the upstream object
// literals.
func (fl *FieldList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		var fields []Field
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		*fl = fields
		return nil
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("schema: fields must be an object or an array")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // consume '{'
		return err
	}
	var out []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("schema: unexpected field key %v", keyTok)
		}
		var field Field
		if err := dec.Decode(&field); err != nil {
			return fmt.Errorf("schema: field %q: %w", id, err)
		}
		if field.ID == "" {
			field.ID = id
		}
		out = append(out, field)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF { // consume '}'
		return err
	}
	*fl = out
	return nil
}

// UnmarshalYAML accepts a single condition object or a sequence of them.
func (c *Conditions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var conds []Condition
		if err := node.Decode(&conds); err != nil {
			return err
		}
		*c = conds
		return nil
	case yaml.MappingNode:
		var cond Condition
		if err := node.Decode(&cond); err != nil {
			return err
		}
		*c = Conditions{cond}
		return nil
	default:
		return fmt.Errorf("schema: visibleWhen must be a condition or a sequence of conditions")
	}
}

// UnmarshalJSON mirrors the YAML shape rules for conditions.
func (c *Conditions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var conds []Condition
		if err := json.Unmarshal(trimmed, &conds); err != nil {
			return err
		}
		*c = conds
		return nil
	case '{':
		var cond Condition
		if err := json.Unmarshal(trimmed, &cond); err != nil {
			return err
		}
		*c = Conditions{cond}
		return nil
	default:
		return fmt.Errorf("schema: visibleWhen must be an object or an array")
	}
}

// UnmarshalYAML accepts a bare scalar (label mirrors the value) or a
// label/value mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var value any
		if err := node.Decode(&value); err != nil {
			return err
		}
		*o = normalizeOption(value)
		return nil
	}

	var doc struct {
		Label string `yaml:"label"`
		Value any    `yaml:"value"`
	}
	if err := node.Decode(&doc); err != nil {
		return err
	}
	*o = coalesceOption(doc.Label, doc.Value)
	return nil
}

// UnmarshalJSON mirrors the YAML shape rules for options.
func (o *Option) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		var doc struct {
			Label string `json:"label"`
			Value any    `json:"value"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return err
		}
		*o = coalesceOption(doc.Label, doc.Value)
		return nil
	}
	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return err
	}
	*o = normalizeOption(value)
	return nil
}

// coalesceOption fills whichever of label/value the document omitted, the way
// the upstream renderer fell back between them.
func coalesceOption(label string, value any) Option {
	if label == "" {
		label = stringify(value)
	}
	if value == nil {
		value = label
	}
	return Option{Label: label, Value: value}
}
