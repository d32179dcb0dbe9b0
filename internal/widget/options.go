// Package widget hosts a picker.Controller in a bubbletea program.
//
// The model renders the entry fields (the controls), and below them, while the
// panel is open, a month navigator and a day grid. Every surface routes its
// events through the controller; the model itself plays the embedder, keeping
// the canonical value and feeding it back with Reconcile after each commit.
package widget

import (
	"context"
	"time"

	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

// Entry field sizes
const (
	SizeSmall  = "s"
	SizeMedium = "m"
	SizeLarge  = "l"
)

// ControlsProps is what a custom controls renderer receives.
type ControlsProps struct {
	Value   picker.Value
	Text    []string // raw text of each entry field
	Focus   int      // index of the focused entry field
	Invalid bool
	Tooltip string
	Open    bool
}

// Options configures a picker model.
type Options struct {
	Mode    picker.Mode
	MinDate time.Time
	MaxDate time.Time
	Value   picker.Value

	// DateFormat is the Go layout of the entry fields.
	DateFormat string
	Size       string

	// RenderControls replaces the default entry field rendering when set.
	RenderControls func(ControlsProps) string

	// Now returns today's date for highlighting. Defaults to time.Now.
	Now func() time.Time
}

// Recorder persists committed values.
type Recorder interface {
	Record(ctx context.Context, v picker.Value, invalid bool) (int64, error)
}

func (o Options) withDefaults() Options {
	if o.Mode != picker.ModeRange {
		o.Mode = picker.ModeSingle
	}
	if o.Value.Mode == "" {
		o.Value = picker.EmptyValue(o.Mode)
	}
	if o.DateFormat == "" {
		o.DateFormat = utils.DefaultDateLayout
	}
	if o.Size == "" {
		o.Size = SizeMedium
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func inputWidth(size string) int {
	switch size {
	case SizeSmall:
		return 10
	case SizeLarge:
		return 20
	default:
		return 14
	}
}

// session owns the canonical value on behalf of the embedder and queues
// commits until they are recorded.
type session struct {
	value   picker.Value
	minDate time.Time
	maxDate time.Time
	pending []picker.Value
}

func (s *session) onChange(v picker.Value) {
	s.value = v
	s.pending = append(s.pending, v)
}

func (s *session) drain() []picker.Value {
	p := s.pending
	s.pending = nil
	return p
}
