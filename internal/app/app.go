// Package app wires configuration, the picker core, the terminal widget and
// the history store together for the command line.
package app

import (
	"context"
	"fmt"
	"time"

	"datepicker/internal/config"
	"datepicker/internal/history"
	"datepicker/internal/picker"
	"datepicker/internal/utils"
	"datepicker/internal/widget"
)

// Overrides are command line values that replace configuration fields.
// Empty fields keep the configured value.
type Overrides struct {
	Mode       string
	MinDate    string
	MaxDate    string
	DateFormat string
	Size       string
	NoHistory  bool
}

// Settings are the effective picker parameters after overrides.
type Settings struct {
	Mode       picker.Mode `json:"mode" yaml:"mode"`
	MinDate    time.Time   `json:"min_date" yaml:"min_date"`
	MaxDate    time.Time   `json:"max_date" yaml:"max_date"`
	DateFormat string      `json:"date_format" yaml:"date_format"`
	Size       string      `json:"size" yaml:"size"`
	History    bool        `json:"history" yaml:"history"`
}

// App holds the application state
type App struct {
	config   *config.Config
	settings Settings
}

// NewApp creates an App from a loaded configuration and command line overrides
func NewApp(cfg *config.Config, o Overrides) (*App, error) {
	merged := *cfg
	if o.Mode != "" {
		merged.Mode = o.Mode
	}
	if o.MinDate != "" {
		merged.MinDate = o.MinDate
	}
	if o.MaxDate != "" {
		merged.MaxDate = o.MaxDate
	}
	if o.DateFormat != "" {
		merged.DateFormat = o.DateFormat
	}
	if o.Size != "" {
		merged.Size = o.Size
	}
	if o.NoHistory {
		merged.History.Enabled = false
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	mode, err := merged.PickerMode()
	if err != nil {
		return nil, err
	}
	minDate, maxDate, err := merged.Bounds()
	if err != nil {
		return nil, err
	}

	return &App{
		config: &merged,
		settings: Settings{
			Mode:       mode,
			MinDate:    minDate,
			MaxDate:    maxDate,
			DateFormat: merged.GetDateFormat(),
			Size:       merged.GetSize(),
			History:    merged.History.Enabled,
		},
	}, nil
}

// Settings returns the effective picker parameters
func (a *App) Settings() Settings {
	return a.settings
}

// Config returns the merged configuration
func (a *App) Config() *config.Config {
	return a.config
}

// ParseValue parses text in the configured layout into a value of the
// configured mode. Range text is "START..END"; either side may be empty.
func (a *App) ParseValue(text string) (picker.Value, error) {
	if a.settings.Mode == picker.ModeRange {
		start, end, err := utils.ParseRange(text, a.settings.DateFormat)
		if err != nil {
			return picker.Value{}, err
		}
		return picker.RangeValue(start, end), nil
	}

	d, err := utils.ParseDate(text, a.settings.DateFormat)
	if err != nil {
		return picker.Value{}, err
	}
	return picker.SingleValue(d), nil
}

// FormatValue renders v in the configured layout
func (a *App) FormatValue(v picker.Value) string {
	return v.Format(a.settings.DateFormat)
}

// OpenHistory opens the history store. It fails with utils.ErrHistoryDisabled
// when history is switched off.
func (a *App) OpenHistory() (*history.Store, error) {
	if !a.settings.History {
		return nil, utils.ErrHistoryDisabled()
	}
	path, err := a.config.GetHistoryDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve history path: %w", err)
	}

	var store *history.Store
	err = utils.LogOperation("open history", func() error {
		store, err = history.Open(path)
		return err
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Pick runs the interactive picker starting from initial text and returns the
// confirmed value. Commits are recorded when history is enabled.
func (a *App) Pick(initial string) (picker.Value, error) {
	value, err := a.ParseValue(initial)
	if err != nil {
		return picker.Value{}, err
	}

	var rec widget.Recorder
	if a.settings.History {
		store, err := a.OpenHistory()
		if err != nil {
			utils.Warnf("History unavailable: %v", err)
		} else {
			defer store.Close()
			rec = store
		}
	}

	return widget.Run(widget.Options{
		Mode:       a.settings.Mode,
		MinDate:    a.settings.MinDate,
		MaxDate:    a.settings.MaxDate,
		Value:      value,
		DateFormat: a.settings.DateFormat,
		Size:       a.settings.Size,
	}, rec)
}

// CheckResult is the non-interactive evaluation of a value
type CheckResult struct {
	Mode          picker.Mode `json:"mode" yaml:"mode"`
	Value         string      `json:"value" yaml:"value"`
	Valid         bool        `json:"valid" yaml:"valid"`
	FullyEntered  bool        `json:"fully_entered" yaml:"fully_entered"`
	VisibleMonth  string      `json:"visible_month" yaml:"visible_month"`
	BoundsMessage string      `json:"bounds_message" yaml:"bounds_message"`
	Tooltip       string      `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Check evaluates text the way the picker would show it.
func (a *App) Check(text string) (CheckResult, error) {
	value, err := a.ParseValue(text)
	if err != nil {
		return CheckResult{}, err
	}

	ctrl := picker.New(picker.Config{
		Mode:    a.settings.Mode,
		MinDate: a.settings.MinDate,
		MaxDate: a.settings.MaxDate,
		Value:   value,
	})

	return CheckResult{
		Mode:          ctrl.Mode(),
		Value:         a.FormatValue(ctrl.Value()),
		Valid:         !ctrl.Invalid(),
		FullyEntered:  ctrl.FullyEntered(),
		VisibleMonth:  ctrl.VisibleMonth().Format("2006-01"),
		BoundsMessage: ctrl.BoundsMessage(),
		Tooltip:       ctrl.TooltipContent(),
	}, nil
}

// QuarterInfo describes one quarter shortcut
type QuarterInfo struct {
	Label string `json:"label" yaml:"label"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Quarters lists the quarter shortcuts of year inside the bounds.
func (a *App) Quarters(year int) []QuarterInfo {
	b := picker.NormalizeBounds(a.settings.MinDate, a.settings.MaxDate)
	quarters := picker.Quarters(year, b)

	infos := make([]QuarterInfo, 0, len(quarters))
	for _, q := range quarters {
		infos = append(infos, QuarterInfo{
			Label: q.Label(),
			Start: q.Start.Format(a.settings.DateFormat),
			End:   q.End.Format(a.settings.DateFormat),
		})
	}
	return infos
}

// RecentHistory returns the newest limit entries; limit <= 0 uses the configured limit.
func (a *App) RecentHistory(ctx context.Context, limit int) ([]history.Entry, error) {
	if limit <= 0 {
		limit = a.config.GetHistoryLimit()
	}

	store, err := a.OpenHistory()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Recent(ctx, limit)
}

// ClearHistory removes every history entry and returns how many were removed.
func (a *App) ClearHistory(ctx context.Context) (int64, error) {
	store, err := a.OpenHistory()
	if err != nil {
		return 0, err
	}
	defer store.Close()

	var n int64
	err = utils.LogOperationf("clear history at %s", func() error {
		n, err = store.Clear(ctx)
		return err
	}, store.Path())
	return n, err
}
