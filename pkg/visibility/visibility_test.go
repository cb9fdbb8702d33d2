package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

func TestIsVisibleNoConditions(t *testing.T) {
	t.Parallel()

	field := &schema.Field{ID: "plain", Renderer: schema.RendererText}
	if !IsVisible(field, nil) {
		t.Fatalf("field without conditions must always show")
	}
	if !IsVisible(field, schema.Values{}) {
		t.Fatalf("field without conditions must always show")
	}
}

func TestEvalEquals(t *testing.T) {
	t.Parallel()

	cond := schema.WhenEquals("country", "US")

	cases := []struct {
		name   string
		values schema.Values
		want   bool
	}{
		{"match", schema.Values{"country": "US"}, true},
		{"mismatch", schema.Values{"country": "KE"}, false},
		{"absent", schema.Values{}, false},
		{"nil values", nil, false},
		{"present nil", schema.Values{"country": nil}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Eval(cond, tc.values); got != tc.want {
				t.Fatalf("Eval(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestEvalEqualsNumericCoercion(t *testing.T) {
	t.Parallel()

	cond := schema.WhenEquals("seats", 5)

	if !Eval(cond, schema.Values{"seats": 5.0}) {
		t.Fatalf("int condition must match float64 value of same magnitude")
	}
	if !Eval(cond, schema.Values{"seats": int64(5)}) {
		t.Fatalf("int condition must match int64 value")
	}
	if Eval(cond, schema.Values{"seats": "5"}) {
		t.Fatalf("strings must not coerce to numbers")
	}
	if Eval(cond, schema.Values{"seats": 6}) {
		t.Fatalf("different magnitudes must not match")
	}
}

func TestEvalIn(t *testing.T) {
	t.Parallel()

	cond := schema.WhenIn("role", "admin", "owner")

	if !Eval(cond, schema.Values{"role": "owner"}) {
		t.Fatalf("member must match")
	}
	if Eval(cond, schema.Values{"role": "viewer"}) {
		t.Fatalf("non-member must not match")
	}
	if Eval(cond, schema.Values{}) {
		t.Fatalf("absent controlling value must not match")
	}

	empty := schema.Condition{Field: "role", Op: schema.OpIn, Value: []any{}}
	if Eval(empty, schema.Values{"role": "admin"}) {
		t.Fatalf("empty membership set matches nothing")
	}
}

func TestEvalUnknownOp(t *testing.T) {
	t.Parallel()

	cond := schema.Condition{Field: "x", Op: schema.Op("near"), Value: 1}
	if Eval(cond, schema.Values{"x": 1}) {
		t.Fatalf("unknown op must evaluate false")
	}
}

func TestIsVisibleConjunction(t *testing.T) {
	t.Parallel()

	field := &schema.Field{
		ID:       "rate",
		Renderer: schema.RendererNumber,
		VisibleWhen: schema.Conditions{
			schema.WhenEquals("kind", "hourly"),
			schema.WhenIn("region", "eu", "us"),
		},
	}

	if !IsVisible(field, schema.Values{"kind": "hourly", "region": "eu"}) {
		t.Fatalf("all conditions hold, field must show")
	}
	if IsVisible(field, schema.Values{"kind": "hourly", "region": "apac"}) {
		t.Fatalf("one failing condition must hide the field")
	}
	if IsVisible(field, schema.Values{"kind": "hourly"}) {
		t.Fatalf("absent controlling value must hide the field")
	}
}

func TestDependents(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID: "deps",
		Fields: schema.FieldList{
			{ID: "a", Renderer: schema.RendererText},
			{ID: "b", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("a", "x")}},
			{
				ID:       "c",
				Renderer: schema.RendererText,
				VisibleWhen: schema.Conditions{
					schema.WhenEquals("a", "x"),
					schema.WhenEquals("b", "y"),
				},
			},
			{ID: "d", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("b", "z")}},
		},
	}

	want := map[string][]string{
		"a": {"b", "c"},
		"b": {"c", "d"},
	}
	if diff := cmp.Diff(want, Dependents(fs)); diff != "" {
		t.Fatalf("dependency index mismatch (-want +got):\n%s", diff)
	}
}

func TestDependentsDeduplicates(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID: "dup",
		Fields: schema.FieldList{
			{ID: "a", Renderer: schema.RendererText},
			{
				ID:       "b",
				Renderer: schema.RendererText,
				VisibleWhen: schema.Conditions{
					schema.WhenEquals("a", "x"),
					schema.WhenIn("a", "y", "z"),
				},
			},
		},
	}

	got := Dependents(fs)
	if len(got["a"]) != 1 || got["a"][0] != "b" {
		t.Fatalf("field referenced twice must appear once: %v", got["a"])
	}
}
