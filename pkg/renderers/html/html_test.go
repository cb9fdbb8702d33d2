package html

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-schemaform/pkg/layout"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/schema"
)

func renderString(t *testing.T, fs *schema.FormSchema, values schema.Values, errs map[string]string, opts render.Options) string {
	t.Helper()
	comp := layout.Compose(fs, values, errs)
	out, err := New().Render(context.Background(), comp, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func sampleSchema() *schema.FormSchema {
	return &schema.FormSchema{
		ID:   "signup",
		Meta: schema.Meta{Title: "Sign Up", Subtitle: "Takes a minute"},
		Fields: schema.FieldList{
			{ID: "email", Label: "Email", Renderer: schema.RendererText, InputType: "email", Placeholder: "you@example.com"},
			{ID: "bio", Label: "Bio", Renderer: schema.RendererTextArea, Props: schema.Props{MinRows: 3}},
			{ID: "age", Label: "Age", Renderer: schema.RendererNumber, Props: schema.Props{Min: schema.Number(13), Max: schema.Number(120)}},
			{ID: "plan", Label: "Plan", Renderer: schema.RendererRadio, Props: schema.Props{Options: schema.Opts("free", "pro")}},
			{ID: "country", Label: "Country", Renderer: schema.RendererSelect, Props: schema.Props{Data: schema.Opts("KE", "US"), Placeholder: "Pick one"}},
			{ID: "tags", Label: "Tags", Renderer: schema.RendererMultiSelect, Props: schema.Props{Data: schema.Opts("go", "web")}},
			{ID: "terms", Label: "Accept terms", Renderer: schema.RendererCheckbox},
		},
		Layout: []schema.LayoutNode{
			schema.Section("Account", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldSpan("email", 2),
					schema.FieldRef("age"),
					schema.FieldRef("plan"),
				),
			),
			schema.FieldRef("bio"),
			schema.FieldRef("country"),
			schema.FieldRef("tags"),
			schema.FieldRef("terms"),
		},
	}
}

func TestRenderStructure(t *testing.T) {
	t.Parallel()

	out := renderString(t, sampleSchema(), schema.Values{}, nil, render.Options{})

	for _, want := range []string{
		`data-form-id="signup"`,
		`<h1 class="sf-title">Sign Up</h1>`,
		`<h2 class="sf-section-title">Account</h2>`,
		`grid-template-columns:repeat(2,1fr)`,
		`grid-column:span 2`,
		`type="email"`,
		`placeholder="you@example.com"`,
		`<textarea class="sf-textarea" id="bio" name="bio" rows="3">`,
		`min="13"`,
		`max="120"`,
		`<fieldset class="sf-radio-group">`,
		`<select class="sf-select" id="country" name="country">`,
		`<option value="" disabled selected>Pick one</option>`,
		` multiple>`,
		`type="checkbox" id="terms"`,
		`<button type="submit" class="sf-submit">Submit</button>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderValuesAndErrors(t *testing.T) {
	t.Parallel()

	values := schema.Values{
		"email":   "ada@example.com",
		"plan":    "pro",
		"country": "KE",
		"tags":    []any{"go"},
		"terms":   true,
	}
	errs := map[string]string{"email": "Enter a valid email"}
	out := renderString(t, sampleSchema(), values, errs, render.Options{})

	if !strings.Contains(out, `name="email" placeholder="you@example.com" value="ada@example.com"`) {
		t.Fatalf("text input value not carried:\n%s", out)
	}
	if !strings.Contains(out, `value="pro" checked`) {
		t.Fatalf("selected radio not checked:\n%s", out)
	}
	if !strings.Contains(out, `<option value="KE" selected>`) {
		t.Fatalf("selected option not marked:\n%s", out)
	}
	if !strings.Contains(out, `<option value="go" selected>`) {
		t.Fatalf("multiselect selection not marked:\n%s", out)
	}
	if !strings.Contains(out, `id="terms" name="terms" checked`) {
		t.Fatalf("checkbox state not carried:\n%s", out)
	}
	if !strings.Contains(out, `role="alert">Enter a valid email</p>`) {
		t.Fatalf("error message missing:\n%s", out)
	}
}

func TestRenderTextAndDateValuesSurviveRerender(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID: "booking",
		Fields: schema.FieldList{
			{ID: "guest", Label: "Guest", Renderer: schema.RendererText},
			{ID: "arrival", Label: "Arrival", Renderer: schema.RendererDate},
		},
		Layout: []schema.LayoutNode{schema.FieldRef("guest"), schema.FieldRef("arrival")},
	}
	values := schema.Values{
		"guest":   `Ada "the Countess" Lovelace`,
		"arrival": "2026-09-01",
	}

	out := renderString(t, fs, values, nil, render.Options{})
	if !strings.Contains(out, `value="Ada &#34;the Countess&#34; Lovelace"`) {
		t.Fatalf("text value not escaped into the attribute:\n%s", out)
	}
	if !strings.Contains(out, `type="date" id="arrival" name="arrival" value="2026-09-01"`) {
		t.Fatalf("date value not carried:\n%s", out)
	}
}

func TestRenderSanitizesDisplayStrings(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID:   "hostile",
		Meta: schema.Meta{Title: `Hello <script>alert(1)</script>`},
		Fields: schema.FieldList{
			{ID: "a", Label: `<img src=x onerror=alert(1)>Name`, Renderer: schema.RendererText},
		},
		Layout: []schema.LayoutNode{schema.FieldRef("a")},
	}

	out := renderString(t, fs, nil, nil, render.Options{})
	if strings.Contains(out, "<script>") || strings.Contains(out, "onerror") {
		t.Fatalf("markup not sanitized:\n%s", out)
	}
}

func TestRenderCompactAndSubmitLabel(t *testing.T) {
	t.Parallel()

	out := renderString(t, sampleSchema(), schema.Values{}, nil, render.Options{Compact: true, SubmitLabel: "Send"})
	if strings.Contains(out, "Takes a minute") {
		t.Fatalf("compact output must drop the subtitle")
	}
	if strings.Contains(out, "<hr") {
		t.Fatalf("compact output must drop dividers")
	}
	if !strings.Contains(out, ">Send</button>") {
		t.Fatalf("submit label not applied:\n%s", out)
	}
}

func TestRenderHiddenFieldOmitted(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID: "cond",
		Fields: schema.FieldList{
			{ID: "kind", Renderer: schema.RendererSelect, Props: schema.Props{Data: schema.Opts("a", "b")}},
			{ID: "detail", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("kind", "b")}},
		},
		Layout: []schema.LayoutNode{schema.FieldRef("kind"), schema.FieldRef("detail")},
	}

	out := renderString(t, fs, schema.Values{"kind": "a"}, nil, render.Options{})
	if strings.Contains(out, `data-field="detail"`) {
		t.Fatalf("hidden field must not render:\n%s", out)
	}
}
