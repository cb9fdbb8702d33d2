// Package controls dispatches a field's renderer tag to a concrete control
// description. Resolution is static per schema; an unrecognized tag resolves
// to an explicit unsupported error so front ends can skip the field instead
// of guessing.
package controls

import (
	"fmt"

	"github.com/goliatone/go-schemaform/pkg/rules"
	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Kind names the concrete control families front ends implement.
type Kind string

const (
	KindTextInput   Kind = "text-input"
	KindTextArea    Kind = "text-area"
	KindDatePicker  Kind = "date-picker"
	KindNumberInput Kind = "number-input"
	KindRadioGroup  Kind = "radio-group"
	KindCheckbox    Kind = "checkbox"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi-select"
	KindSwitch      Kind = "switch"
	KindFileInput   Kind = "file-input"
)

// UnsupportedRendererError marks a field whose renderer tag has no control.
// Sessions downgrade it to a warning and render nothing for the field.
type UnsupportedRendererError struct {
	FieldID  string
	Renderer schema.Renderer
}

func (e *UnsupportedRendererError) Error() string {
	return fmt.Sprintf("controls: field %q has unsupported renderer %q", e.FieldID, e.Renderer)
}

// Spec is the resolved description of one field's control: the control kind
// plus the subset of props that apply to it. Options carries the choice set
// for radio/select/multiselect regardless of which props key declared it.
type Spec struct {
	Kind    Kind
	Options []schema.Option
	// Placeholder falls back from props to the field when both are set.
	Placeholder string
	Multiple    bool
}

// Resolve maps the field's renderer tag to its control spec.
func Resolve(field *schema.Field) (Spec, error) {
	if field == nil {
		return Spec{}, fmt.Errorf("controls: field is nil")
	}

	placeholder := field.Props.Placeholder
	if placeholder == "" {
		placeholder = field.Placeholder
	}

	switch field.Renderer {
	case schema.RendererText:
		return Spec{Kind: KindTextInput, Placeholder: placeholder}, nil
	case schema.RendererTextArea:
		return Spec{Kind: KindTextArea, Placeholder: placeholder}, nil
	case schema.RendererDate:
		return Spec{Kind: KindDatePicker, Placeholder: placeholder}, nil
	case schema.RendererNumber:
		return Spec{Kind: KindNumberInput, Placeholder: placeholder}, nil
	case schema.RendererRadio:
		return Spec{Kind: KindRadioGroup, Options: field.Props.Options}, nil
	case schema.RendererCheckbox:
		return Spec{Kind: KindCheckbox}, nil
	case schema.RendererSelect:
		return Spec{Kind: KindSelect, Options: field.Props.Data, Placeholder: placeholder}, nil
	case schema.RendererMultiSelect:
		return Spec{Kind: KindMultiSelect, Options: field.Props.Data, Placeholder: placeholder, Multiple: true}, nil
	case schema.RendererSwitch:
		return Spec{Kind: KindSwitch}, nil
	case schema.RendererFile:
		return Spec{Kind: KindFileInput, Placeholder: placeholder}, nil
	default:
		return Spec{}, &UnsupportedRendererError{FieldID: field.ID, Renderer: field.Renderer}
	}
}

// Control couples a field definition with its resolved spec and compiled
// check. Sessions build one per field at start and never touch the schema's
// rule set again.
type Control struct {
	Field *schema.Field
	Spec  Spec
	Check rules.CheckFunc
}

// Bind resolves the field's control and compiles its rules in one step.
func Bind(field *schema.Field) (*Control, error) {
	spec, err := Resolve(field)
	if err != nil {
		return nil, err
	}
	check, err := rules.Compile(field.Rules, field.Renderer)
	if err != nil {
		return nil, fmt.Errorf("controls: field %q: %w", field.ID, err)
	}
	return &Control{Field: field, Spec: spec, Check: check}, nil
}
