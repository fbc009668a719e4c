package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/llehouerou/titleformat/internal/titlefmt"
)

// Outcome describes what FormatItem did to one item.
type Outcome struct {
	Before  string
	After   string
	Changed bool
	// Skipped is set when the item was finalized and runAlways was off.
	Skipped bool
}

// Runner formats items with settings from a SettingsSource.
type Runner struct {
	formatter *titlefmt.Formatter
	source    SettingsSource
	log       *slog.Logger
}

// NewRunner creates a Runner. A nil log discards diagnostics.
func NewRunner(source SettingsSource, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		formatter: titlefmt.New(log),
		source:    source,
		log:       log,
	}
}

// Settings resolves the settings for one run, falling back to the defaults
// when the source fails.
func (r *Runner) Settings(ctx context.Context) titlefmt.Settings {
	s, err := r.source.Settings(ctx)
	if err != nil {
		r.log.Warn("settings unavailable, using defaults", "error", err)
		return titlefmt.DefaultSettings()
	}
	return s.Normalize()
}

// FormatItem runs the pipeline on item and stores the result when it is
// non-empty and differs from the current value. Only a SetValue failure is
// returned.
func (r *Runner) FormatItem(ctx context.Context, item Item) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	s := r.Settings(ctx)
	before := item.Value()
	out := Outcome{Before: before, After: before}

	if !s.RunAlways && item.IsFinalized() {
		out.Skipped = true
		return out, nil
	}

	after := r.formatter.Format(before, s, item.PerformerNames())
	if after == "" || after == before {
		return out, nil
	}

	if err := item.SetValue(after); err != nil {
		return out, fmt.Errorf("store formatted title: %w", err)
	}
	r.log.Info("formatted", "from", before, "to", after)

	out.After = after
	out.Changed = true
	return out, nil
}
