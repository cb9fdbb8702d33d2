// Package rules compiles declarative rule sets into executable field checks.
// Compilation happens once per field when a session starts; evaluation is a
// pure function of the candidate value and the current value map.
package rules

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Result is the outcome of checking one field. Message is meaningful only
// when Valid is false.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// OK is the passing result.
func OK() Result { return Result{Valid: true} }

// Fail builds a failing result with the given message.
func Fail(message string) Result { return Result{Valid: false, Message: message} }

// CheckFunc validates a candidate value for one field. The full value map is
// passed through so custom rules can perform cross-field checks.
type CheckFunc func(value any, values schema.Values) Result

// Compile turns a rule set into a single check. Rules evaluate in a fixed
// order: required, pattern, minLength, maxLength, min, max, then the custom
// validate hook; the first failure wins and later rules do not run. Static
// rules other than required skip empty values so optional fields stay valid
// until filled in.
//
// The renderer decides what required means: boolean controls must be true,
// everything else must be non-empty.
//
// A nil rule set compiles to a check that always passes.
func Compile(rs *schema.RuleSet, renderer schema.Renderer) (CheckFunc, error) {
	if rs == nil {
		return func(any, schema.Values) Result { return OK() }, nil
	}

	var pattern *regexp.Regexp
	if rs.Pattern != nil {
		compiled, err := regexp.Compile(rs.Pattern.Value)
		if err != nil {
			return nil, fmt.Errorf("rules: compile pattern %q: %w", rs.Pattern.Value, err)
		}
		pattern = compiled
	}

	// Copy rule data out of the set so the compiled check never reads the
	// schema again.
	required := rs.Required
	boolean := renderer.Boolean()
	minLength := rs.MinLength
	maxLength := rs.MaxLength
	min := rs.Min
	max := rs.Max
	patternMessage := ""
	if rs.Pattern != nil {
		patternMessage = rs.Pattern.Message
	}
	custom := rs.Validate

	check := func(value any, values schema.Values) Result {
		if required != "" {
			if boolean {
				if on, _ := value.(bool); !on {
					return Fail(required)
				}
			} else if isEmpty(value) {
				return Fail(required)
			}
		}

		if !isEmpty(value) {
			if pattern != nil {
				if s, ok := value.(string); ok && !pattern.MatchString(s) {
					return Fail(patternMessage)
				}
			}
			if minLength != nil {
				if s, ok := value.(string); ok && len([]rune(s)) < minLength.Value {
					return Fail(minLength.Message)
				}
			}
			if maxLength != nil {
				if s, ok := value.(string); ok && len([]rune(s)) > maxLength.Value {
					return Fail(maxLength.Message)
				}
			}
			if min != nil {
				if n, ok := coerceNumber(value); ok && n < min.Value {
					return Fail(min.Message)
				}
			}
			if max != nil {
				if n, ok := coerceNumber(value); ok && n > max.Value {
					return Fail(max.Message)
				}
			}
		}

		if custom != nil {
			if res := runCustom(custom, value, values); !res.Valid {
				return res
			}
		}
		return OK()
	}
	return check, nil
}

// runCustom shields the session from panicking user code; a panic reads as a
// failed check rather than tearing the process down.
func runCustom(fn schema.ValidateFunc, value any, values schema.Values) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail(fmt.Sprintf("validation failed: %v", r))
		}
	}()
	if err := fn(value, values); err != nil {
		return Fail(err.Error())
	}
	return OK()
}

// isEmpty reports whether a value counts as not entered: nil, the empty
// string, or an empty multiselect slice. False and zero are real entries.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
