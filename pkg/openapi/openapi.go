// Package openapi imports form schemas from OpenAPI 3 documents. The request
// body of an operation becomes a flat form: each top-level property maps to
// a field, constraint keywords map to rules, and enums become choice
// controls.
package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// ImportOptions tune how an operation converts into a form schema.
type ImportOptions struct {
	// ContentType selects the request body variant, application/json by
	// default.
	ContentType string
	// AllowExternalRefs permits resolving $ref targets outside the document.
	// Off by default so an import cannot touch the network or filesystem.
	AllowExternalRefs bool
}

// FormSchema loads an OpenAPI document and converts the named operation's
// request body into a form schema. The operation is looked up by its
// operationId across all paths and methods.
func FormSchema(ctx context.Context, data []byte, operationID string, opts ImportOptions) (*schema.FormSchema, error) {
	if strings.TrimSpace(operationID) == "" {
		return nil, fmt.Errorf("openapi: operation id is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.AllowExternalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}

	op := findOperation(doc, operationID)
	if op == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body, err := requestBodySchema(op, opts.ContentType)
	if err != nil {
		return nil, err
	}

	fs := &schema.FormSchema{
		ID: operationID,
		Meta: schema.Meta{
			Title:    firstNonEmpty(op.Summary, operationID),
			Subtitle: op.Description,
		},
	}

	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	for _, name := range sortedPropertyNames(body) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromProperty(name, ref.Value, required)
		if !ok {
			continue
		}
		fs.Fields = append(fs.Fields, field)
		fs.Layout = append(fs.Layout, schema.FieldRef(name))
	}

	if len(fs.Fields) == 0 {
		return nil, fmt.Errorf("openapi: operation %q has no convertible properties", operationID)
	}
	return fs, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestBodySchema(op *openapi3.Operation, contentType string) (*openapi3.Schema, error) {
	if contentType == "" {
		contentType = "application/json"
	}
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", op.OperationID)
	}
	media := op.RequestBody.Value.Content.Get(contentType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no %s body schema", op.OperationID, contentType)
	}
	return media.Schema.Value, nil
}

func sortedPropertyNames(s *openapi3.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fieldFromProperty maps one body property to a field. Object-typed
// properties have no flat-form equivalent and are skipped.
func fieldFromProperty(name string, src *openapi3.Schema, required map[string]struct{}) (schema.Field, bool) {
	field := schema.Field{
		ID:    name,
		Label: firstNonEmpty(src.Title, labelFromName(name)),
	}

	switch {
	case typeIs(src, "boolean"):
		field.Renderer = schema.RendererCheckbox
	case typeIs(src, "number"), typeIs(src, "integer"):
		field.Renderer = schema.RendererNumber
		if src.Min != nil {
			field.Props.Min = schema.Number(*src.Min)
		}
		if src.Max != nil {
			field.Props.Max = schema.Number(*src.Max)
		}
	case typeIs(src, "array"):
		items := itemsSchema(src)
		if items == nil || len(items.Enum) == 0 {
			return schema.Field{}, false
		}
		field.Renderer = schema.RendererMultiSelect
		field.Props.Data = optionsFromEnum(items.Enum)
	case typeIs(src, "string"), src.Type == nil:
		switch {
		case len(src.Enum) > 0:
			field.Renderer = schema.RendererSelect
			field.Props.Data = optionsFromEnum(src.Enum)
		case src.Format == "date" || src.Format == "date-time":
			field.Renderer = schema.RendererDate
		default:
			field.Renderer = schema.RendererText
			switch src.Format {
			case "email", "password", "uri":
				if src.Format == "uri" {
					field.InputType = "url"
				} else {
					field.InputType = src.Format
				}
			}
		}
	default:
		return schema.Field{}, false
	}

	field.Rules = rulesFromProperty(name, field, src, required)
	if src.Default != nil {
		field.Default = src.Default
	}
	return field, true
}

func rulesFromProperty(name string, field schema.Field, src *openapi3.Schema, required map[string]struct{}) *schema.RuleSet {
	rs := &schema.RuleSet{}
	used := false

	if _, ok := required[name]; ok {
		rs.Required = fmt.Sprintf("%s is required", field.Label)
		used = true
	}
	if src.MinLength > 0 {
		rs.MinLength = schema.MinLen(int(src.MinLength), fmt.Sprintf("%s must be at least %d characters", field.Label, src.MinLength))
		used = true
	}
	if src.MaxLength != nil {
		rs.MaxLength = schema.MaxLen(int(*src.MaxLength), fmt.Sprintf("%s must be at most %d characters", field.Label, *src.MaxLength))
		used = true
	}
	if src.Pattern != "" {
		rs.Pattern = schema.Pattern(src.Pattern, fmt.Sprintf("%s has an invalid format", field.Label))
		used = true
	}
	if field.Renderer == schema.RendererNumber {
		if src.Min != nil {
			rs.Min = schema.Min(*src.Min, fmt.Sprintf("%s must be at least %v", field.Label, *src.Min))
			used = true
		}
		if src.Max != nil {
			rs.Max = schema.Max(*src.Max, fmt.Sprintf("%s must be at most %v", field.Label, *src.Max))
			used = true
		}
	}

	if !used {
		return nil
	}
	return rs
}

func typeIs(s *openapi3.Schema, name string) bool {
	return s.Type != nil && s.Type.Is(name)
}

func itemsSchema(s *openapi3.Schema) *openapi3.Schema {
	if s.Items == nil {
		return nil
	}
	return s.Items.Value
}

func optionsFromEnum(enum []any) []schema.Option {
	return schema.Opts(enum...)
}

// labelFromName derives a display label from a camelCase or snake_case
// property name.
func labelFromName(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			current.WriteRune(r + ('a' - 'A'))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
