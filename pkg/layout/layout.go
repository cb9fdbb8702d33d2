// Package layout resolves a schema's layout tree against the current session
// state into a render-ready composition: hidden fields drop out, containers
// left empty by hiding are pruned, and grid spans are clamped.
package layout

import (
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/visibility"
)

// Node is one resolved element of the composition. Field leaves carry the
// field definition plus its current value and error; containers carry their
// surviving children.
type Node struct {
	Kind schema.NodeKind

	// Field leaf members.
	Field   *schema.Field
	ColSpan int
	Value   any
	Error   string

	// Container members.
	Spacing     schema.Spacing
	Cols        int
	Title       string
	WithDivider bool
	Collapsible bool
	Children    []Node
}

// Composition is the fully resolved layout handed to renderers.
type Composition struct {
	FormID   string
	Title    string
	Subtitle string
	Nodes    []Node
	// Skipped lists field ids the composition omitted: hidden fields and
	// fields whose renderer is not recognized.
	Skipped []string
}

// Compose resolves the schema's layout against the current values and error
// map. Values decide visibility; errs supplies per-field messages for leaves
// that failed validation. Containers whose children all resolve away are
// pruned rather than rendered empty.
func Compose(fs *schema.FormSchema, values schema.Values, errs map[string]string) Composition {
	comp := Composition{}
	if fs == nil {
		return comp
	}
	comp.FormID = fs.ID
	comp.Title = fs.Meta.Title
	comp.Subtitle = fs.Meta.Subtitle

	c := &composer{fs: fs, values: values, errs: errs}
	comp.Nodes = c.children(fs.Layout)
	comp.Skipped = c.skipped
	return comp
}

type composer struct {
	fs      *schema.FormSchema
	values  schema.Values
	errs    map[string]string
	skipped []string
}

func (c *composer) children(nodes []schema.LayoutNode) []Node {
	var out []Node
	for _, node := range nodes {
		if resolved, ok := c.resolve(node); ok {
			out = append(out, resolved)
		}
	}
	return out
}

func (c *composer) resolve(node schema.LayoutNode) (Node, bool) {
	switch node.Kind {
	case schema.NodeField:
		return c.leaf(node)
	case schema.NodeStack, schema.NodeGrid, schema.NodeSection:
		children := c.children(node.Children)
		if len(children) == 0 {
			return Node{}, false
		}
		cols := node.Cols
		if node.Kind == schema.NodeGrid && cols < 1 {
			cols = 1
		}
		return Node{
			Kind:        node.Kind,
			Spacing:     node.Spacing,
			Cols:        cols,
			Title:       node.Title,
			WithDivider: node.WithDivider,
			Collapsible: node.Collapsible,
			Children:    children,
		}, true
	default:
		return Node{}, false
	}
}

func (c *composer) leaf(node schema.LayoutNode) (Node, bool) {
	field, ok := c.fs.Field(node.FieldID)
	if !ok {
		return Node{}, false
	}
	if !field.Renderer.Known() {
		c.skipped = append(c.skipped, field.ID)
		return Node{}, false
	}
	if !visibility.IsVisible(field, c.values) {
		c.skipped = append(c.skipped, field.ID)
		return Node{}, false
	}

	span := node.ColSpan
	if span < 1 {
		span = 1
	}

	out := Node{
		Kind:    schema.NodeField,
		Field:   field,
		ColSpan: span,
		Value:   c.values[field.ID],
	}
	if c.errs != nil {
		out.Error = c.errs[field.ID]
	}
	return out, true
}

// Fields returns the visible field leaves of the composition in layout
// order.
func (c Composition) Fields() []Node {
	var out []Node
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, node := range nodes {
			if node.Kind == schema.NodeField {
				out = append(out, node)
				continue
			}
			walk(node.Children)
		}
	}
	walk(c.Nodes)
	return out
}
