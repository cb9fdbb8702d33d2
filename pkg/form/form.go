// Package form runs interactive sessions over a schema: it owns the value
// map, revalidates on change, recomputes visibility reactively, and gates
// submission on the visible fields being valid.
package form

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/goliatone/go-schemaform/pkg/controls"
	"github.com/goliatone/go-schemaform/pkg/layout"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/visibility"
)

// Controller is one form session. It is not safe for concurrent use; drive
// it from a single goroutine the way a UI event loop would.
type Controller struct {
	id     string
	schema *schema.FormSchema

	bound      map[string]*controls.Control
	dependents map[string][]string
	warnings   []schema.Issue

	values  schema.Values
	errs    map[string]string
	tracker Tracker

	includeHidden bool
}

// New validates the schema, binds every field's control, seeds declared
// defaults, and opens a fresh session. Error-severity schema issues abort;
// warning-severity ones (unrecognized renderers) are retained and the
// affected fields stay unbound.
func New(fs *schema.FormSchema, opts ...Option) (*Controller, error) {
	issues, err := schema.Check(fs)
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	c := &Controller{
		id:         uuid.NewString(),
		schema:     fs,
		bound:      make(map[string]*controls.Control, len(fs.Fields)),
		dependents: visibility.Dependents(fs),
		warnings:   issues,
		values:     make(schema.Values, len(fs.Fields)),
		errs:       make(map[string]string),
		tracker:    NopTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i := range fs.Fields {
		field := &fs.Fields[i]
		if !field.Renderer.Known() {
			continue
		}
		ctl, err := controls.Bind(field)
		if err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}
		c.bound[field.ID] = ctl
	}

	c.seedDefaults()
	return c, nil
}

// ID is the session identifier, unique per Controller.
func (c *Controller) ID() string { return c.id }

// Schema returns the schema the session runs over.
func (c *Controller) Schema() *schema.FormSchema { return c.schema }

// Warnings returns the non-fatal schema issues collected at start.
func (c *Controller) Warnings() []schema.Issue { return c.warnings }

func (c *Controller) seedDefaults() {
	for i := range c.schema.Fields {
		field := &c.schema.Fields[i]
		if field.Default != nil {
			c.values[field.ID] = field.Default
		}
	}
}

// SetValue stores a new value for the field, revalidates it, and recomputes
// visibility for the fields it controls. Fields hidden by the change keep
// their values but have their errors cleared; fields visible after the
// change revalidate immediately, so a revealed field reports on whatever
// value it currently holds. Setting an unknown field is an error.
func (c *Controller) SetValue(id string, value any) error {
	field, ok := c.schema.Field(id)
	if !ok {
		return fmt.Errorf("form: unknown field %q", id)
	}

	c.values[id] = value
	c.revalidate(id)
	c.settleVisibility(id)

	c.tracker.Record(Event{
		Kind:    EventSet,
		FieldID: field.ID,
		Value:   value,
		Message: c.errs[id],
	})
	return nil
}

// revalidate runs the field's compiled check against the current state and
// updates the error map. Hidden and unbound fields always clear.
func (c *Controller) revalidate(id string) {
	field, ok := c.schema.Field(id)
	if !ok {
		return
	}
	ctl, bound := c.bound[id]
	if !bound || !visibility.IsVisible(field, c.values) {
		delete(c.errs, id)
		return
	}
	res := ctl.Check(c.values[id], c.values)
	if res.Valid {
		delete(c.errs, id)
		return
	}
	c.errs[id] = res.Message
}

// settleVisibility walks dependents of the changed field and revalidates
// each against its current value. Dependents hidden by the change clear
// their errors; dependents visible after the change, newly revealed ones
// included, validate right away so a stale or empty value surfaces without
// waiting for an edit. The walk re-queues each processed field's own
// dependents, so chained conditions settle in one pass without a global
// sweep.
func (c *Controller) settleVisibility(changed string) {
	queue := append([]string(nil), c.dependents[changed]...)
	seen := map[string]struct{}{changed: {}}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}
		c.revalidate(id)
		queue = append(queue, c.dependents[id]...)
	}
}

// Value returns the field's current value. The second return reports whether
// the field has a value at all; untouched fields without defaults do not.
func (c *Controller) Value(id string) (any, bool) {
	v, ok := c.values[id]
	return v, ok
}

// Values returns a snapshot of the full value map, hidden fields included.
func (c *Controller) Values() schema.Values { return c.values.Clone() }

// Visible reports whether the field currently shows. Unknown fields are not
// visible.
func (c *Controller) Visible(id string) bool {
	field, ok := c.schema.Field(id)
	if !ok {
		return false
	}
	return visibility.IsVisible(field, c.values)
}

// FieldError returns the field's current failure message, empty when valid.
func (c *Controller) FieldError(id string) string { return c.errs[id] }

// Errors returns a snapshot of the current error map.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// Compose resolves the layout against the session's current values and
// errors.
func (c *Controller) Compose() layout.Composition {
	return layout.Compose(c.schema, c.values, c.errs)
}

// SubmitError reports which fields blocked submission.
type SubmitError struct {
	Fields map[string]string
}

func (e *SubmitError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "form: submit failed"
	}
	ids := make([]string, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("form: %d field(s) failed validation: %v", len(ids), ids)
}

// Submit validates every visible field and, when all pass, returns the
// submission payload. Hidden fields are exempt from validation and their
// retained values stay out of the payload unless the session was opened with
// WithHiddenValues. On failure the error map is updated so every failing
// message shows at once.
func (c *Controller) Submit() (schema.Values, error) {
	failed := make(map[string]string)
	for i := range c.schema.Fields {
		field := &c.schema.Fields[i]
		c.revalidate(field.ID)
		if msg, bad := c.errs[field.ID]; bad {
			failed[field.ID] = msg
		}
	}
	if len(failed) > 0 {
		err := &SubmitError{Fields: failed}
		c.tracker.Record(Event{Kind: EventSubmitBlocked, Message: err.Error()})
		return nil, err
	}

	payload := make(schema.Values, len(c.values))
	for id, value := range c.values {
		if !c.includeHidden && !c.Visible(id) {
			continue
		}
		payload[id] = value
	}
	c.tracker.Record(Event{Kind: EventSubmit})
	return payload, nil
}

// Reset returns the session to its starting state: values reseeded from
// defaults, errors cleared. The session id is unchanged.
func (c *Controller) Reset() {
	c.values = make(schema.Values, len(c.schema.Fields))
	c.errs = make(map[string]string)
	c.seedDefaults()
	c.tracker.Record(Event{Kind: EventReset})
}
