package schema

// RuleSet is the declarative validation attached to a field. The static kinds
// are plain data; Validate is an executable predicate with a fixed signature
// so rule compilation stays pure and testable. Evaluation order and
// first-error-wins semantics live in pkg/rules.
type RuleSet struct {
	// Required holds the failure message; an empty string means the field is
	// optional. For boolean renderers, required means the value must be true.
	Required string `json:"required,omitempty" yaml:"required,omitempty"`

	MinLength *LengthRule `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *LengthRule `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	Min *RangeRule `json:"min,omitempty" yaml:"min,omitempty"`
	Max *RangeRule `json:"max,omitempty" yaml:"max,omitempty"`

	Pattern *PatternRule `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Validate receives the field's own candidate value and the full current
	// value map, enabling cross-field checks. A nil return passes; a non-nil
	// error's message becomes the field's failure message. It cannot be
	// expressed in a schema document; it is attached in code.
	Validate ValidateFunc `json:"-" yaml:"-"`
}

// ValidateFunc is the fixed signature for custom rules.
type ValidateFunc func(value any, values Values) error

// LengthRule bounds a string's length.
type LengthRule struct {
	Value   int    `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

// RangeRule bounds a numeric value.
type RangeRule struct {
	Value   float64 `json:"value" yaml:"value"`
	Message string  `json:"message" yaml:"message"`
}

// PatternRule matches a string against a regular expression.
type PatternRule struct {
	Value   string `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

// MinLen builds a minimum-length rule.
func MinLen(n int, message string) *LengthRule {
	return &LengthRule{Value: n, Message: message}
}

// MaxLen builds a maximum-length rule.
func MaxLen(n int, message string) *LengthRule {
	return &LengthRule{Value: n, Message: message}
}

// Min builds a lower numeric bound rule.
func Min(v float64, message string) *RangeRule {
	return &RangeRule{Value: v, Message: message}
}

// Max builds an upper numeric bound rule.
func Max(v float64, message string) *RangeRule {
	return &RangeRule{Value: v, Message: message}
}

// Pattern builds a pattern rule from a regular expression source.
func Pattern(expr, message string) *PatternRule {
	return &PatternRule{Value: expr, Message: message}
}
