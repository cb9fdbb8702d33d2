package render

// Options carry per-request presentation knobs so renderers stay stateless
// across calls.
type Options struct {
	// SubmitLabel overrides the submit control's caption. Empty means the
	// renderer's default.
	SubmitLabel string
	// Compact asks the renderer to drop optional chrome such as subtitles
	// and section dividers. Renderers that have no compact form ignore it.
	Compact bool
}
