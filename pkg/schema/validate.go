package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity classifies a schema-definition issue. Errors make the schema
// unusable; warnings degrade to per-field fail-soft behavior at render time
// (an unrecognized renderer renders as nothing).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue describes one schema-definition problem with enough location
// metadata for the integrating application to point at the offending field
// or layout node.
type Issue struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

// InvalidSchemaError is returned when a schema carries error-severity issues.
type InvalidSchemaError struct {
	ID     string
	Issues []Issue
}

func (e *InvalidSchemaError) Error() string {
	if e == nil {
		return "schema: invalid schema"
	}
	var first string
	for _, issue := range e.Issues {
		if issue.Severity == SeverityError {
			first = issue.Message
			break
		}
	}
	return fmt.Sprintf("schema: %q is invalid: %s (%d issue(s))", e.ID, first, len(e.Issues))
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the schema definition: field identity, layout references,
// renderer tags, choice props, visibility references, and pattern rules.
// Validation failures entered by users are not in scope here; those are
// normal data carried in the session's error map.
func Validate(fs *FormSchema) []Issue {
	var issues []Issue
	if fs == nil {
		return []Issue{{Severity: SeverityError, Message: "schema is nil"}}
	}
	if strings.TrimSpace(fs.ID) == "" {
		issues = append(issues, Issue{Severity: SeverityError, Path: "id", Message: "form id is required"})
	}

	seen := make(map[string]struct{}, len(fs.Fields))
	for i := range fs.Fields {
		field := &fs.Fields[i]
		path := fmt.Sprintf("fields[%d]", i)
		if strings.TrimSpace(field.ID) == "" {
			issues = append(issues, Issue{Severity: SeverityError, Path: path, Message: "field id is required"})
			continue
		}
		if _, dup := seen[field.ID]; dup {
			issues = append(issues, Issue{Severity: SeverityError, Path: path, Field: field.ID, Message: fmt.Sprintf("duplicate field id %q", field.ID)})
			continue
		}
		seen[field.ID] = struct{}{}
		issues = append(issues, validateField(field, path)...)
	}

	for i := range fs.Layout {
		issues = append(issues, validateLayout(fs, fs.Layout[i], fmt.Sprintf("layout[%d]", i))...)
	}

	issues = append(issues, crossFieldCheck(fs)...)
	return issues
}

// Check runs Validate and converts error-severity issues into an
// *InvalidSchemaError, returning the full issue list either way.
func Check(fs *FormSchema) ([]Issue, error) {
	issues := Validate(fs)
	if HasErrors(issues) {
		id := ""
		if fs != nil {
			id = fs.ID
		}
		return issues, &InvalidSchemaError{ID: id, Issues: issues}
	}
	return issues, nil
}

func validateField(field *Field, path string) []Issue {
	var issues []Issue

	if !field.Renderer.Known() {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     path,
			Field:    field.ID,
			Message:  fmt.Sprintf("unrecognized renderer %q; field will render as nothing", field.Renderer),
		})
	}

	switch field.Renderer {
	case RendererRadio:
		if len(field.Props.Options) == 0 {
			issues = append(issues, Issue{Severity: SeverityError, Path: path + ".props.options", Field: field.ID, Message: "radio requires props.options"})
		}
	case RendererSelect, RendererMultiSelect:
		if len(field.Props.Data) == 0 {
			issues = append(issues, Issue{Severity: SeverityError, Path: path + ".props.data", Field: field.ID, Message: fmt.Sprintf("%s requires props.data", field.Renderer)})
		}
	}

	if field.Rules != nil && field.Rules.Pattern != nil {
		if _, err := regexp.Compile(field.Rules.Pattern.Value); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".rules.pattern",
				Field:    field.ID,
				Message:  fmt.Sprintf("invalid pattern: %v", err),
			})
		}
	}

	for j, cond := range field.VisibleWhen {
		condPath := fmt.Sprintf("%s.visibleWhen[%d]", path, j)
		if strings.TrimSpace(cond.Field) == "" {
			issues = append(issues, Issue{Severity: SeverityError, Path: condPath, Field: field.ID, Message: "condition is missing its controlling field"})
		}
		switch cond.Op {
		case OpEquals, OpIn:
		default:
			issues = append(issues, Issue{Severity: SeverityError, Path: condPath, Field: field.ID, Message: fmt.Sprintf("unknown condition op %q", cond.Op)})
		}
	}

	return issues
}

func validateLayout(fs *FormSchema, node LayoutNode, path string) []Issue {
	var issues []Issue

	switch node.Kind {
	case NodeField:
		if strings.TrimSpace(node.FieldID) == "" {
			issues = append(issues, Issue{Severity: SeverityError, Path: path, Message: "field node is missing fieldId"})
			break
		}
		if _, ok := fs.Field(node.FieldID); !ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Field:    node.FieldID,
				Message:  fmt.Sprintf("layout references unknown field %q", node.FieldID),
			})
		}
		if node.ColSpan < 0 {
			issues = append(issues, Issue{Severity: SeverityError, Path: path, Field: node.FieldID, Message: "colSpan cannot be negative"})
		}
	case NodeGrid:
		if node.Cols < 1 {
			issues = append(issues, Issue{Severity: SeverityError, Path: path, Message: "grid requires cols >= 1"})
		}
	case NodeStack, NodeSection:
	default:
		issues = append(issues, Issue{Severity: SeverityError, Path: path, Message: fmt.Sprintf("unknown layout node kind %q", node.Kind)})
	}

	for i, child := range node.Children {
		issues = append(issues, validateLayout(fs, child, fmt.Sprintf("%s.children[%d]", path, i))...)
	}
	return issues
}

// crossFieldCheck validates that conditions reference declared fields. Kept
// separate from validateField because it needs the whole schema.
func crossFieldCheck(fs *FormSchema) []Issue {
	var issues []Issue
	for i := range fs.Fields {
		field := &fs.Fields[i]
		for j, cond := range field.VisibleWhen {
			if cond.Field == "" {
				continue
			}
			if _, ok := fs.Field(cond.Field); !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     fmt.Sprintf("fields[%d].visibleWhen[%d]", i, j),
					Field:    field.ID,
					Message:  fmt.Sprintf("visibility references unknown field %q", cond.Field),
				})
			}
		}
	}
	return issues
}
