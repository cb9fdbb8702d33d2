// Package visibility evaluates visibleWhen conditions against the current
// value map and derives the dependency index the form session uses for
// reactive recomputation.
package visibility

import (
	"github.com/goliatone/go-schemaform/pkg/schema"
)

// IsVisible reports whether the field shows under the given values. A field
// with no conditions is always visible; with several, all must hold.
func IsVisible(field *schema.Field, values schema.Values) bool {
	if field == nil {
		return false
	}
	for _, cond := range field.VisibleWhen {
		if !Eval(cond, values) {
			return false
		}
	}
	return true
}

// Eval evaluates a single condition. An absent controlling value never
// matches, so dependent fields stay hidden until their controller is set.
func Eval(cond schema.Condition, values schema.Values) bool {
	current, ok := values[cond.Field]
	if !ok {
		return false
	}
	switch cond.Op {
	case schema.OpEquals:
		return scalarEqual(current, cond.Value)
	case schema.OpIn:
		for _, member := range cond.Members() {
			if scalarEqual(current, member) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Dependents maps each field id to the fields whose visibility it controls,
// in declaration order. Only direct references are indexed; hiding cascades
// because a dependent that flips re-enters the queue for its own dependents.
func Dependents(fs *schema.FormSchema) map[string][]string {
	if fs == nil {
		return nil
	}
	out := make(map[string][]string)
	for i := range fs.Fields {
		field := &fs.Fields[i]
		seen := make(map[string]struct{}, len(field.VisibleWhen))
		for _, cond := range field.VisibleWhen {
			if cond.Field == "" {
				continue
			}
			if _, dup := seen[cond.Field]; dup {
				continue
			}
			seen[cond.Field] = struct{}{}
			out[cond.Field] = append(out[cond.Field], field.ID)
		}
	}
	return out
}

// scalarEqual compares an entered value against a condition value. Numbers
// compare by magnitude regardless of concrete type, since document decoding
// and user input disagree on int versus float64. Strings never coerce, so
// "1" stays distinct from 1.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aok := coerceNumber(a); aok {
		bf, bok := coerceNumber(b)
		return bok && af == bf
	}
	return a == b
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
