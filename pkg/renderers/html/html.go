// Package html renders compositions into framework-free HTML. Markup is
// assembled directly; schema-supplied strings pass through a sanitizer so a
// hostile document cannot inject script into the page.
package html

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-schemaform/pkg/controls"
	"github.com/goliatone/go-schemaform/pkg/layout"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithPolicy replaces the sanitizer policy applied to labels, titles, and
// option captions.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithClassPrefix changes the CSS class prefix, "sf" by default.
func WithClassPrefix(prefix string) Option {
	return func(r *Renderer) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// Renderer emits HTML for a composition. Safe for concurrent use once
// constructed.
type Renderer struct {
	policy *bluemonday.Policy
	prefix string
}

// New constructs the HTML renderer. The default sanitizer allows the usual
// user-generated-content subset in display strings.
func New(options ...Option) *Renderer {
	r := &Renderer{
		policy: bluemonday.UGCPolicy(),
		prefix: "sf",
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string { return "html" }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render emits the full form element for the composition.
func (r *Renderer) Render(_ context.Context, comp layout.Composition, opts render.Options) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "<form class=%q data-form-id=%q>\n", r.class("form"), html.EscapeString(comp.FormID))
	if comp.Title != "" {
		fmt.Fprintf(&b, "<h1 class=%q>%s</h1>\n", r.class("title"), r.display(comp.Title))
	}
	if comp.Subtitle != "" && !opts.Compact {
		fmt.Fprintf(&b, "<p class=%q>%s</p>\n", r.class("subtitle"), r.display(comp.Subtitle))
	}

	for _, node := range comp.Nodes {
		if err := r.node(&b, node, opts); err != nil {
			return nil, err
		}
	}

	label := opts.SubmitLabel
	if label == "" {
		label = "Submit"
	}
	fmt.Fprintf(&b, "<button type=\"submit\" class=%q>%s</button>\n", r.class("submit"), html.EscapeString(label))
	b.WriteString("</form>\n")
	return []byte(b.String()), nil
}

func (r *Renderer) node(b *strings.Builder, node layout.Node, opts render.Options) error {
	switch node.Kind {
	case schema.NodeField:
		return r.field(b, node)
	case schema.NodeStack:
		fmt.Fprintf(b, "<div class=\"%s %s\">\n", r.class("stack"), r.spacingClass(node.Spacing))
	case schema.NodeGrid:
		fmt.Fprintf(b, "<div class=\"%s %s\" style=\"grid-template-columns:repeat(%d,1fr)\">\n",
			r.class("grid"), r.spacingClass(node.Spacing), node.Cols)
	case schema.NodeSection:
		fmt.Fprintf(b, "<section class=%q>\n", r.class("section"))
		if node.Title != "" {
			fmt.Fprintf(b, "<h2 class=%q>%s</h2>\n", r.class("section-title"), r.display(node.Title))
		}
		if node.WithDivider && !opts.Compact {
			fmt.Fprintf(b, "<hr class=%q>\n", r.class("divider"))
		}
	default:
		return fmt.Errorf("html: unexpected node kind %q", node.Kind)
	}

	for _, child := range node.Children {
		if err := r.node(b, child, opts); err != nil {
			return err
		}
	}

	if node.Kind == schema.NodeSection {
		b.WriteString("</section>\n")
	} else {
		b.WriteString("</div>\n")
	}
	return nil
}

func (r *Renderer) field(b *strings.Builder, node layout.Node) error {
	field := node.Field
	spec, err := controls.Resolve(field)
	if err != nil {
		return fmt.Errorf("html: %w", err)
	}

	fmt.Fprintf(b, "<div class=%q data-field=%q style=\"grid-column:span %d\">\n",
		r.class("field"), html.EscapeString(field.ID), node.ColSpan)
	if field.Label != "" {
		fmt.Fprintf(b, "<label class=%q for=%q>%s</label>\n",
			r.class("label"), html.EscapeString(field.ID), r.display(field.Label))
	}

	switch spec.Kind {
	case controls.KindTextInput:
		r.input(b, field, spec, inputType(field), node.Value)
	case controls.KindTextArea:
		fmt.Fprintf(b, "<textarea class=%q id=%q name=%q", r.class("textarea"), html.EscapeString(field.ID), html.EscapeString(field.ID))
		if spec.Placeholder != "" {
			fmt.Fprintf(b, " placeholder=%q", html.EscapeString(spec.Placeholder))
		}
		if field.Props.MinRows > 0 {
			fmt.Fprintf(b, " rows=\"%d\"", field.Props.MinRows)
		}
		fmt.Fprintf(b, ">%s</textarea>\n", html.EscapeString(stringValue(node.Value)))
	case controls.KindDatePicker:
		r.input(b, field, spec, "date", node.Value)
	case controls.KindNumberInput:
		r.numberInput(b, field, spec, node.Value)
	case controls.KindRadioGroup:
		r.radioGroup(b, field, spec, node.Value)
	case controls.KindCheckbox, controls.KindSwitch:
		r.checkbox(b, field, spec, node.Value)
	case controls.KindSelect, controls.KindMultiSelect:
		r.selectBox(b, field, spec, node.Value)
	case controls.KindFileInput:
		fmt.Fprintf(b, "<input class=%q type=\"file\" id=%q name=%q", r.class("input"), html.EscapeString(field.ID), html.EscapeString(field.ID))
		if field.Props.Accept != "" {
			fmt.Fprintf(b, " accept=%q", html.EscapeString(field.Props.Accept))
		}
		b.WriteString(">\n")
	}

	if node.Error != "" {
		fmt.Fprintf(b, "<p class=%q role=\"alert\">%s</p>\n", r.class("error"), html.EscapeString(node.Error))
	}
	b.WriteString("</div>\n")
	return nil
}

func (r *Renderer) input(b *strings.Builder, field *schema.Field, spec controls.Spec, typ string, value any) {
	fmt.Fprintf(b, "<input class=%q type=%q id=%q name=%q", r.class("input"), typ, html.EscapeString(field.ID), html.EscapeString(field.ID))
	if spec.Placeholder != "" {
		fmt.Fprintf(b, " placeholder=%q", html.EscapeString(spec.Placeholder))
	}
	if value != nil {
		fmt.Fprintf(b, " value=%q", html.EscapeString(stringValue(value)))
	}
	b.WriteString(">\n")
}

func (r *Renderer) numberInput(b *strings.Builder, field *schema.Field, spec controls.Spec, value any) {
	fmt.Fprintf(b, "<input class=%q type=\"number\" id=%q name=%q", r.class("input"), html.EscapeString(field.ID), html.EscapeString(field.ID))
	if spec.Placeholder != "" {
		fmt.Fprintf(b, " placeholder=%q", html.EscapeString(spec.Placeholder))
	}
	if field.Props.Min != nil {
		fmt.Fprintf(b, " min=\"%v\"", *field.Props.Min)
	}
	if field.Props.Max != nil {
		fmt.Fprintf(b, " max=\"%v\"", *field.Props.Max)
	}
	if field.Props.Step != nil {
		fmt.Fprintf(b, " step=\"%v\"", *field.Props.Step)
	}
	if value != nil {
		fmt.Fprintf(b, " value=%q", html.EscapeString(stringValue(value)))
	}
	b.WriteString(">\n")
}

func (r *Renderer) radioGroup(b *strings.Builder, field *schema.Field, spec controls.Spec, value any) {
	fmt.Fprintf(b, "<fieldset class=%q>\n", r.class("radio-group"))
	for i, opt := range spec.Options {
		id := fmt.Sprintf("%s-%d", field.ID, i)
		fmt.Fprintf(b, "<input type=\"radio\" id=%q name=%q value=%q", html.EscapeString(id), html.EscapeString(field.ID), html.EscapeString(stringValue(opt.Value)))
		if value != nil && stringValue(value) == stringValue(opt.Value) {
			b.WriteString(" checked")
		}
		b.WriteString(">")
		fmt.Fprintf(b, "<label for=%q>%s</label>\n", html.EscapeString(id), r.display(opt.Label))
	}
	b.WriteString("</fieldset>\n")
}

func (r *Renderer) checkbox(b *strings.Builder, field *schema.Field, _ controls.Spec, value any) {
	fmt.Fprintf(b, "<input type=\"checkbox\" id=%q name=%q", html.EscapeString(field.ID), html.EscapeString(field.ID))
	if on, _ := value.(bool); on {
		b.WriteString(" checked")
	}
	b.WriteString(">\n")
}

func (r *Renderer) selectBox(b *strings.Builder, field *schema.Field, spec controls.Spec, value any) {
	fmt.Fprintf(b, "<select class=%q id=%q name=%q", r.class("select"), html.EscapeString(field.ID), html.EscapeString(field.ID))
	if spec.Multiple {
		b.WriteString(" multiple")
	}
	b.WriteString(">\n")
	if spec.Placeholder != "" && !spec.Multiple {
		fmt.Fprintf(b, "<option value=\"\" disabled%s>%s</option>\n", selectedIf(value == nil), html.EscapeString(spec.Placeholder))
	}
	for _, opt := range spec.Options {
		fmt.Fprintf(b, "<option value=%q%s>%s</option>\n",
			html.EscapeString(stringValue(opt.Value)), selectedIf(isSelected(value, opt.Value)), r.display(opt.Label))
	}
	b.WriteString("</select>\n")
}

func selectedIf(on bool) string {
	if on {
		return " selected"
	}
	return ""
}

func isSelected(value, candidate any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case []any:
		for _, item := range v {
			if stringValue(item) == stringValue(candidate) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range v {
			if item == stringValue(candidate) {
				return true
			}
		}
		return false
	default:
		return stringValue(v) == stringValue(candidate)
	}
}

func inputType(field *schema.Field) string {
	switch field.InputType {
	case "email", "password", "tel", "url", "search":
		return field.InputType
	default:
		return "text"
	}
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// display sanitizes a schema-supplied string for element content.
func (r *Renderer) display(s string) string {
	return r.policy.Sanitize(s)
}

func (r *Renderer) class(suffix string) string {
	return r.prefix + "-" + suffix
}

func (r *Renderer) spacingClass(s schema.Spacing) string {
	if s == "" {
		s = schema.SpacingMD
	}
	return r.class("gap-" + string(s))
}
