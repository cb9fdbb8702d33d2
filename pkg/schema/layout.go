package schema

// NodeKind tags the layout node variants.
type NodeKind string

const (
	NodeField   NodeKind = "field"
	NodeStack   NodeKind = "stack"
	NodeGrid    NodeKind = "grid"
	NodeSection NodeKind = "section"
)

// Spacing is an advisory gap hint for container nodes.
type Spacing string

const (
	SpacingSM Spacing = "sm"
	SpacingMD Spacing = "md"
	SpacingLG Spacing = "lg"
)

// LayoutNode is one element of the layout tree: a field leaf or a
// stack/grid/section container. Which members apply depends on Kind; the
// composer in pkg/layout interprets them.
type LayoutNode struct {
	Kind NodeKind `json:"kind" yaml:"kind"`

	// FieldID references a declared field (field nodes only). ColSpan
	// reserves grid columns when the leaf sits inside a grid; zero means one.
	FieldID string `json:"fieldId,omitempty" yaml:"fieldId,omitempty"`
	ColSpan int    `json:"colSpan,omitempty" yaml:"colSpan,omitempty"`

	Spacing Spacing `json:"spacing,omitempty" yaml:"spacing,omitempty"`

	// Cols is the column count for grid nodes.
	Cols int `json:"cols,omitempty" yaml:"cols,omitempty"`

	// Section chrome. Collapsible affects presentation only; it never changes
	// field visibility or validation.
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	WithDivider bool   `json:"withDivider,omitempty" yaml:"withDivider,omitempty"`
	Collapsible bool   `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`

	Children []LayoutNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// FieldRef builds a field leaf node.
func FieldRef(id string) LayoutNode {
	return LayoutNode{Kind: NodeField, FieldID: id}
}

// FieldSpan builds a field leaf reserving span grid columns.
func FieldSpan(id string, span int) LayoutNode {
	return LayoutNode{Kind: NodeField, FieldID: id, ColSpan: span}
}

// Stack builds a vertical sequence.
func Stack(spacing Spacing, children ...LayoutNode) LayoutNode {
	return LayoutNode{Kind: NodeStack, Spacing: spacing, Children: children}
}

// Grid builds a column arrangement.
func Grid(cols int, spacing Spacing, children ...LayoutNode) LayoutNode {
	return LayoutNode{Kind: NodeGrid, Cols: cols, Spacing: spacing, Children: children}
}

// Section wraps children with an optional title and divider.
func Section(title string, withDivider bool, children ...LayoutNode) LayoutNode {
	return LayoutNode{Kind: NodeSection, Title: title, WithDivider: withDivider, Children: children}
}

// CollapsibleSection is a Section whose chrome can collapse.
func CollapsibleSection(title string, withDivider bool, children ...LayoutNode) LayoutNode {
	node := Section(title, withDivider, children...)
	node.Collapsible = true
	return node
}
