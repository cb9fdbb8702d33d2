// Package render defines the renderer contract and the registry front ends
// register themselves in. Renderers consume resolved compositions; they
// never read schemas or session state directly.
package render

import (
	"context"

	"github.com/goliatone/go-schemaform/pkg/layout"
)

// Renderer converts a resolved composition into a byte representation
// (HTML, terminal output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, comp layout.Composition, opts Options) ([]byte, error)
}
