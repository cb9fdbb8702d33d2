package schema

import "time"

// Renderer selects the concrete control a field uses. The set is closed;
// dispatch over it lives in pkg/controls and unknown tags resolve to an
// explicit unsupported variant rather than falling through.
type Renderer string

const (
	RendererText        Renderer = "text"
	RendererTextArea    Renderer = "textarea"
	RendererDate        Renderer = "date"
	RendererNumber      Renderer = "number"
	RendererRadio       Renderer = "radio"
	RendererCheckbox    Renderer = "checkbox"
	RendererSelect      Renderer = "select"
	RendererMultiSelect Renderer = "multiselect"
	RendererSwitch      Renderer = "switch"
	RendererFile        Renderer = "file"
)

// Known reports whether the tag is one of the recognized renderer kinds.
func (r Renderer) Known() bool {
	switch r {
	case RendererText, RendererTextArea, RendererDate, RendererNumber,
		RendererRadio, RendererCheckbox, RendererSelect, RendererMultiSelect,
		RendererSwitch, RendererFile:
		return true
	default:
		return false
	}
}

// Boolean reports whether the renderer carries a boolean value. For these,
// a required rule means the value must be true, not merely present.
func (r Renderer) Boolean() bool {
	return r == RendererCheckbox || r == RendererSwitch
}

// Values holds the entered value for each field, keyed by field id. A field
// the user has not touched is absent from the map, not nil.
type Values map[string]any

// Clone returns a shallow copy so callers can hand out snapshots without
// exposing the session's live map.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Meta carries opaque display strings for the form chrome.
type Meta struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// FormSchema is the declarative description of a form: identity, display
// metadata, the field definitions, and the layout tree arranging them. It is
// supplied once per session and treated as immutable afterwards.
type FormSchema struct {
	ID     string       `json:"id" yaml:"id"`
	Meta   Meta         `json:"meta,omitempty" yaml:"meta,omitempty"`
	Fields FieldList    `json:"fields" yaml:"fields"`
	Layout []LayoutNode `json:"layout" yaml:"layout"`
}

// FieldList preserves field declaration order. Documents may declare fields
// either as a sequence or as a mapping keyed by field id; the codec keeps the
// authored order in both cases.
type FieldList []Field

// Field returns the definition for the given id, if declared.
func (fs *FormSchema) Field(id string) (*Field, bool) {
	if fs == nil || id == "" {
		return nil, false
	}
	for i := range fs.Fields {
		if fs.Fields[i].ID == id {
			return &fs.Fields[i], true
		}
	}
	return nil, false
}

// FieldIDs returns field ids in declaration order.
func (fs *FormSchema) FieldIDs() []string {
	if fs == nil {
		return nil
	}
	out := make([]string, 0, len(fs.Fields))
	for i := range fs.Fields {
		out = append(out, fs.Fields[i].ID)
	}
	return out
}

// Field models a single named, typed piece of user input.
type Field struct {
	ID          string      `json:"id" yaml:"id"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Renderer    Renderer    `json:"renderer" yaml:"renderer"`
	InputType   string      `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Default     any         `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Props       Props       `json:"props,omitempty" yaml:"props,omitempty"`
	Rules       *RuleSet    `json:"rules,omitempty" yaml:"rules,omitempty"`
	VisibleWhen Conditions  `json:"visibleWhen,omitempty" yaml:"visibleWhen,omitempty"`
}

// Option is one selectable entry for choice controls. Bare scalar entries in
// a document normalize into an Option whose label mirrors the value.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// Opt builds a labelled option.
func Opt(label string, value any) Option {
	return Option{Label: label, Value: value}
}

// Opts converts bare scalars into options where the label mirrors the value.
func Opts(values ...any) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, normalizeOption(v))
	}
	return out
}

// Props is the renderer-specific configuration bag. Which entries apply to
// which renderer is documented in pkg/controls; unrelated entries are ignored
// by dispatch.
type Props struct {
	// Options configures radio groups.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
	// Data configures select/multiselect entries.
	Data        []Option `json:"data,omitempty" yaml:"data,omitempty"`
	Searchable  bool     `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MaxValues   int      `json:"maxValues,omitempty" yaml:"maxValues,omitempty"`

	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step      *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Precision *int     `json:"precision,omitempty" yaml:"precision,omitempty"`
	// Suffix and ThousandsSeparator are advisory display hints for number
	// controls.
	Suffix             string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	ThousandsSeparator string `json:"thousandsSeparator,omitempty" yaml:"thousandsSeparator,omitempty"`

	MinRows int `json:"minRows,omitempty" yaml:"minRows,omitempty"`
	MaxRows int `json:"maxRows,omitempty" yaml:"maxRows,omitempty"`

	MinDate *time.Time `json:"minDate,omitempty" yaml:"minDate,omitempty"`
	MaxDate *time.Time `json:"maxDate,omitempty" yaml:"maxDate,omitempty"`

	Accept string `json:"accept,omitempty" yaml:"accept,omitempty"`
	// MaxSize is advisory metadata in bytes; the engine never checks it
	// against actual file contents.
	MaxSize int64 `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
}

// Number returns a pointer suitable for the numeric Props bounds.
func Number(v float64) *float64 { return &v }

// Int returns a pointer suitable for Props.Precision.
func Int(v int) *int { return &v }

// Date returns a pointer suitable for the date Props bounds.
func Date(t time.Time) *time.Time { return &t }

func normalizeOption(v any) Option {
	if opt, ok := v.(Option); ok {
		if opt.Label == "" {
			opt.Label = stringify(opt.Value)
		}
		return opt
	}
	return Option{Label: stringify(v), Value: v}
}
