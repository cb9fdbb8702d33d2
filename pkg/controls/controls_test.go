package controls

import (
	"errors"
	"testing"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

func TestResolveKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		renderer schema.Renderer
		kind     Kind
	}{
		{schema.RendererText, KindTextInput},
		{schema.RendererTextArea, KindTextArea},
		{schema.RendererDate, KindDatePicker},
		{schema.RendererNumber, KindNumberInput},
		{schema.RendererCheckbox, KindCheckbox},
		{schema.RendererSwitch, KindSwitch},
		{schema.RendererFile, KindFileInput},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.renderer), func(t *testing.T) {
			t.Parallel()
			spec, err := Resolve(&schema.Field{ID: "f", Renderer: tc.renderer})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if spec.Kind != tc.kind {
				t.Fatalf("got kind %q, want %q", spec.Kind, tc.kind)
			}
		})
	}
}

func TestResolveChoiceOptions(t *testing.T) {
	t.Parallel()

	radio := &schema.Field{
		ID:       "plan",
		Renderer: schema.RendererRadio,
		Props:    schema.Props{Options: schema.Opts("a", "b")},
	}
	spec, err := Resolve(radio)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(spec.Options) != 2 {
		t.Fatalf("radio options not carried: %+v", spec)
	}

	multi := &schema.Field{
		ID:       "tags",
		Renderer: schema.RendererMultiSelect,
		Props:    schema.Props{Data: schema.Opts("x", "y", "z")},
	}
	spec, err = Resolve(multi)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !spec.Multiple || len(spec.Options) != 3 {
		t.Fatalf("multiselect spec wrong: %+v", spec)
	}
}

func TestResolvePlaceholderFallback(t *testing.T) {
	t.Parallel()

	field := &schema.Field{
		ID:          "email",
		Renderer:    schema.RendererText,
		Placeholder: "from field",
	}
	spec, _ := Resolve(field)
	if spec.Placeholder != "from field" {
		t.Fatalf("field placeholder not used: %+v", spec)
	}

	field.Props.Placeholder = "from props"
	spec, _ = Resolve(field)
	if spec.Placeholder != "from props" {
		t.Fatalf("props placeholder must win: %+v", spec)
	}
}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Resolve(&schema.Field{ID: "x", Renderer: schema.Renderer("hologram")})
	if err == nil {
		t.Fatalf("expected unsupported renderer error")
	}
	var unsupported *UnsupportedRendererError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedRendererError, got %T", err)
	}
	if unsupported.FieldID != "x" || unsupported.Renderer != "hologram" {
		t.Fatalf("error metadata wrong: %+v", unsupported)
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	field := &schema.Field{
		ID:       "agree",
		Renderer: schema.RendererCheckbox,
		Rules:    &schema.RuleSet{Required: "must accept"},
	}
	ctl, err := Bind(field)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if ctl.Spec.Kind != KindCheckbox {
		t.Fatalf("unexpected kind %q", ctl.Spec.Kind)
	}
	if res := ctl.Check(false, nil); res.Valid {
		t.Fatalf("required checkbox must demand true")
	}
	if res := ctl.Check(true, nil); !res.Valid {
		t.Fatalf("true must pass, got %+v", res)
	}
}

func TestBindBadPattern(t *testing.T) {
	t.Parallel()

	field := &schema.Field{
		ID:       "code",
		Renderer: schema.RendererText,
		Rules:    &schema.RuleSet{Pattern: schema.Pattern("([", "broken")},
	}
	if _, err := Bind(field); err == nil {
		t.Fatalf("expected error for uncompilable pattern")
	}
}
