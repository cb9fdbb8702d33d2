package schema

import "fmt"

// Op is the comparison a visibility condition applies to its controlling
// field's current value.
type Op string

const (
	// OpEquals matches when the controlling value equals the condition value.
	OpEquals Op = "equals"
	// OpIn matches when the controlling value is a member of the condition's
	// value set.
	OpIn Op = "in"
)

// Conditions is an ordered conjunction: the field is visible only when every
// condition holds. Documents may declare a single condition object or a
// sequence; both decode into this type.
type Conditions []Condition

// Condition gates a field's visibility on another field's current value. A
// field may carry several conditions; all of them must hold.
type Condition struct {
	Field string `json:"field" yaml:"field"`
	Op    Op     `json:"op" yaml:"op"`
	// Value is the scalar to compare against for OpEquals, or a []any member
	// set for OpIn.
	Value any `json:"value" yaml:"value"`
}

// WhenEquals builds an equals condition.
func WhenEquals(field string, value any) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// WhenIn builds a membership condition.
func WhenIn(field string, values ...any) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

// Members returns the condition's value set for OpIn conditions.
func (c Condition) Members() []any {
	switch v := c.Value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{v}
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
