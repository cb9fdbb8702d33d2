package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

func testSchema() *schema.FormSchema {
	return &schema.FormSchema{
		ID:   "billing",
		Meta: schema.Meta{Title: "Billing", Subtitle: "How you pay"},
		Fields: schema.FieldList{
			{ID: "method", Renderer: schema.RendererSelect, Props: schema.Props{Data: schema.Opts("card", "invoice")}},
			{ID: "cardNumber", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("method", "card")}},
			{ID: "cardExpiry", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("method", "card")}},
			{ID: "poNumber", Renderer: schema.RendererText, VisibleWhen: schema.Conditions{schema.WhenEquals("method", "invoice")}},
		},
		Layout: []schema.LayoutNode{
			schema.FieldRef("method"),
			schema.Section("Card details", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldSpan("cardNumber", 2),
					schema.FieldRef("cardExpiry"),
				),
			),
			schema.FieldRef("poNumber"),
		},
	}
}

func fieldIDs(nodes []Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Field.ID)
	}
	return out
}

func TestComposeHidesAndPrunes(t *testing.T) {
	t.Parallel()

	fs := testSchema()

	comp := Compose(fs, schema.Values{}, nil)
	if got, want := fieldIDs(comp.Fields()), []string{"method"}; !cmp.Equal(got, want) {
		t.Fatalf("only the controller should show, got %v", got)
	}
	if len(comp.Nodes) != 1 {
		t.Fatalf("emptied section must be pruned, got %d top-level nodes", len(comp.Nodes))
	}
	want := []string{"cardNumber", "cardExpiry", "poNumber"}
	if !cmp.Equal(comp.Skipped, want) {
		t.Fatalf("skipped mismatch: got %v want %v", comp.Skipped, want)
	}
}

func TestComposeCardBranch(t *testing.T) {
	t.Parallel()

	fs := testSchema()
	comp := Compose(fs, schema.Values{"method": "card"}, nil)

	if got, want := fieldIDs(comp.Fields()), []string{"method", "cardNumber", "cardExpiry"}; !cmp.Equal(got, want) {
		t.Fatalf("card branch mismatch: %v", got)
	}

	section := comp.Nodes[1]
	if section.Kind != schema.NodeSection || section.Title != "Card details" || !section.WithDivider {
		t.Fatalf("section chrome lost: %+v", section)
	}
	grid := section.Children[0]
	if grid.Kind != schema.NodeGrid || grid.Cols != 2 {
		t.Fatalf("grid config lost: %+v", grid)
	}
	if grid.Children[0].ColSpan != 2 {
		t.Fatalf("colSpan not carried: %+v", grid.Children[0])
	}
	if grid.Children[1].ColSpan != 1 {
		t.Fatalf("default span must clamp to one: %+v", grid.Children[1])
	}
}

func TestComposeCarriesValuesAndErrors(t *testing.T) {
	t.Parallel()

	fs := testSchema()
	values := schema.Values{"method": "card", "cardNumber": "4111"}
	errs := map[string]string{"cardNumber": "Card number is too short"}

	comp := Compose(fs, values, errs)
	for _, leaf := range comp.Fields() {
		if leaf.Field.ID != "cardNumber" {
			continue
		}
		if leaf.Value != "4111" {
			t.Fatalf("value not carried: %+v", leaf)
		}
		if leaf.Error != "Card number is too short" {
			t.Fatalf("error not carried: %+v", leaf)
		}
		return
	}
	t.Fatalf("cardNumber leaf missing")
}

func TestComposeSkipsUnknownRenderer(t *testing.T) {
	t.Parallel()

	fs := &schema.FormSchema{
		ID: "odd",
		Fields: schema.FieldList{
			{ID: "ok", Renderer: schema.RendererText},
			{ID: "weird", Renderer: schema.Renderer("hologram")},
		},
		Layout: []schema.LayoutNode{
			schema.Stack(schema.SpacingSM, schema.FieldRef("ok"), schema.FieldRef("weird")),
		},
	}

	comp := Compose(fs, schema.Values{}, nil)
	if got := fieldIDs(comp.Fields()); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("unknown renderer must be skipped, got %v", got)
	}
	if len(comp.Skipped) != 1 || comp.Skipped[0] != "weird" {
		t.Fatalf("skipped must record the dropped field: %v", comp.Skipped)
	}
}

func TestComposeNilSchema(t *testing.T) {
	t.Parallel()

	comp := Compose(nil, nil, nil)
	if comp.FormID != "" || len(comp.Nodes) != 0 {
		t.Fatalf("nil schema must compose empty, got %+v", comp)
	}
}
