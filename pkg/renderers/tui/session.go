// Package tui drives a form session through terminal prompts. Fields are
// asked in layout order; answering a controlling field re-resolves the
// composition so newly revealed fields get their turn, and submission
// re-queues whatever failed validation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-schemaform/pkg/controls"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/layout"
	"github.com/goliatone/go-schemaform/pkg/schema"
)

const (
	defaultPageSize  = 10
	defaultMaxPasses = 200
	parseRetries     = 3
)

// Session owns the prompt loop for one or more controllers. Construct once,
// Run per form.
type Session struct {
	driver    PromptDriver
	pageSize  int
	maxPasses int
}

// NewSession builds a session with the survey-backed driver unless an option
// swaps it.
func NewSession(opts ...Option) *Session {
	s := &Session{
		driver:    newSurveyDriver(),
		pageSize:  defaultPageSize,
		maxPasses: defaultMaxPasses,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts through the controller's visible fields and returns the
// submission payload once every check passes. A Ctrl+C surfaces as
// ErrAborted.
func (s *Session) Run(ctx context.Context, ctrl *form.Controller) (schema.Values, error) {
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}

	comp := ctrl.Compose()
	if comp.Title != "" {
		_ = s.driver.Info(ctx, comp.Title)
	}
	if comp.Subtitle != "" {
		_ = s.driver.Info(ctx, comp.Subtitle)
	}

	asked := make(map[string]struct{})
	for pass := 0; pass < s.maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		leaf, ok := nextUnasked(ctrl.Compose(), asked)
		if !ok {
			payload, err := ctrl.Submit()
			if err == nil {
				return payload, nil
			}
			var blocked *form.SubmitError
			if !errors.As(err, &blocked) {
				return nil, err
			}
			for id, msg := range blocked.Fields {
				_ = s.driver.Info(ctx, fmt.Sprintf("%s: %s", id, msg))
				delete(asked, id)
			}
			continue
		}

		if err := s.ask(ctx, ctrl, leaf); err != nil {
			return nil, err
		}
		asked[leaf.Field.ID] = struct{}{}
		if msg := ctrl.FieldError(leaf.Field.ID); msg != "" {
			_ = s.driver.Info(ctx, msg)
		}
	}
	return nil, fmt.Errorf("tui: no valid submission after %d prompts", s.maxPasses)
}

func nextUnasked(comp layout.Composition, asked map[string]struct{}) (layout.Node, bool) {
	for _, leaf := range comp.Fields() {
		if _, done := asked[leaf.Field.ID]; !done {
			return leaf, true
		}
	}
	return layout.Node{}, false
}

func (s *Session) ask(ctx context.Context, ctrl *form.Controller, leaf layout.Node) error {
	field := leaf.Field
	spec, err := controls.Resolve(field)
	if err != nil {
		// Unsupported renderers are already excluded from compositions.
		return fmt.Errorf("tui: %w", err)
	}

	label := field.Label
	if label == "" {
		label = field.ID
	}

	switch spec.Kind {
	case controls.KindTextInput, controls.KindFileInput, controls.KindDatePicker:
		return s.askText(ctx, ctrl, field, spec, label, leaf.Value)
	case controls.KindTextArea:
		out, err := s.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: stringOf(leaf.Value)})
		if err != nil {
			return err
		}
		return ctrl.SetValue(field.ID, out)
	case controls.KindNumberInput:
		return s.askNumber(ctx, ctrl, field, spec, label, leaf.Value)
	case controls.KindCheckbox, controls.KindSwitch:
		def, _ := leaf.Value.(bool)
		out, err := s.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: def})
		if err != nil {
			return err
		}
		return ctrl.SetValue(field.ID, out)
	case controls.KindRadioGroup, controls.KindSelect:
		return s.askSelect(ctx, ctrl, field, spec, label, leaf.Value)
	case controls.KindMultiSelect:
		return s.askMultiSelect(ctx, ctrl, field, spec, label, leaf.Value)
	default:
		return fmt.Errorf("tui: no prompt for control %q", spec.Kind)
	}
}

func (s *Session) askText(ctx context.Context, ctrl *form.Controller, field *schema.Field, spec controls.Spec, label string, current any) error {
	cfg := InputConfig{
		Message:     label,
		Default:     stringOf(current),
		Placeholder: spec.Placeholder,
	}
	var (
		out string
		err error
	)
	if field.InputType == "password" {
		out, err = s.driver.Password(ctx, cfg)
	} else {
		out, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}
	return ctrl.SetValue(field.ID, out)
}

func (s *Session) askNumber(ctx context.Context, ctrl *form.Controller, field *schema.Field, spec controls.Spec, label string, current any) error {
	def := ""
	if current != nil {
		def = stringOf(current)
	}
	for attempt := 0; attempt < parseRetries; attempt++ {
		raw, err := s.driver.Input(ctx, InputConfig{Message: label, Default: def, Placeholder: spec.Placeholder})
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return ctrl.SetValue(field.ID, nil)
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s must be a number", label))
			continue
		}
		return ctrl.SetValue(field.ID, parsed)
	}
	// Out of retries: record the field as unanswered so its rules decide the
	// outcome at submit time rather than silently keeping the old value.
	return ctrl.SetValue(field.ID, nil)
}

func (s *Session) askSelect(ctx context.Context, ctrl *form.Controller, field *schema.Field, spec controls.Spec, label string, current any) error {
	labels := optionLabels(spec.Options)
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      labels,
		DefaultIndex: optionIndex(spec.Options, current),
		PageSize:     s.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(spec.Options) {
		return nil
	}
	return ctrl.SetValue(field.ID, spec.Options[idx].Value)
}

func (s *Session) askMultiSelect(ctx context.Context, ctrl *form.Controller, field *schema.Field, spec controls.Spec, label string, current any) error {
	labels := optionLabels(spec.Options)
	indices, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  label,
		Options:  labels,
		Defaults: optionIndices(spec.Options, current),
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}
	selected := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(spec.Options) {
			selected = append(selected, spec.Options[idx].Value)
		}
	}
	return ctrl.SetValue(field.ID, selected)
}

func optionLabels(options []schema.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		if opt.Label != "" {
			out[i] = opt.Label
		} else {
			out[i] = stringOf(opt.Value)
		}
	}
	return out
}

func optionIndex(options []schema.Option, value any) int {
	if value == nil {
		return -1
	}
	for i, opt := range options {
		if stringOf(opt.Value) == stringOf(value) {
			return i
		}
	}
	return -1
}

func optionIndices(options []schema.Option, value any) []int {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[stringOf(item)] = struct{}{}
	}
	var out []int
	for i, opt := range options {
		if _, ok := seen[stringOf(opt.Value)]; ok {
			out = append(out, i)
		}
	}
	return out
}

func stringOf(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
