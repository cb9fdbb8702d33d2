package form

// Option configures a Controller at construction.
type Option func(*Controller)

// WithTracker wires a session event observer.
func WithTracker(t Tracker) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracker = t
		}
	}
}

// WithHiddenValues includes retained hidden-field values in the submission
// payload. The default excludes them so a toggled-away branch does not leak
// stale input.
func WithHiddenValues() Option {
	return func(c *Controller) {
		c.includeHidden = true
	}
}
