// Package schemaform re-exports the pieces most applications need: load a
// schema, open a form session, and render it. The subpackages stay importable
// directly for anything beyond the common path.
package schemaform

import (
	"context"

	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/openapi"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/renderers/html"
	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Schema is the declarative form definition.
type Schema = schema.FormSchema

// Field is one input declaration inside a Schema.
type Field = schema.Field

// Values is the id-to-value map a session accumulates.
type Values = schema.Values

// Controller is a live form session over a Schema.
type Controller = form.Controller

// RenderOptions carries per-render overrides such as the submit label.
type RenderOptions = render.Options

// FromYAML decodes a schema document from YAML.
func FromYAML(data []byte) (*Schema, error) {
	return schema.FromYAML(data)
}

// FromJSON decodes a schema document from JSON.
func FromJSON(data []byte) (*Schema, error) {
	return schema.FromJSON(data)
}

// FromOpenAPI derives a schema from an OpenAPI document's request body for
// the named operation.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (*Schema, error) {
	return openapi.FormSchema(ctx, data, operationID, openapi.ImportOptions{})
}

// NewController validates the schema and opens a fresh session.
func NewController(fs *Schema, opts ...form.Option) (*Controller, error) {
	return form.New(fs, opts...)
}

// NewRegistry returns a renderer registry with the HTML renderer already
// registered.
func NewRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(html.New())
	return registry
}

// RenderHTML composes the controller's current state and renders it with a
// default HTML renderer.
func RenderHTML(ctx context.Context, ctrl *Controller, opts RenderOptions) ([]byte, error) {
	return html.New().Render(ctx, ctrl.Compose(), opts)
}
