// Package host connects the title pipeline to whatever owns the titles.
//
// A host exposes each editable title as an Item and its stored settings
// through a SettingsSource. Runner drives one item through the pipeline and
// writes the result back only when it changed.
package host

import (
	"context"

	"github.com/llehouerou/titleformat/internal/titlefmt"
)

// Item is a single editable title owned by a host.
type Item interface {
	// Value returns the current title text.
	Value() string
	// SetValue stores a new title and notifies the host of the change.
	SetValue(v string) error
	// IsFinalized reports whether the host considers the item done.
	IsFinalized() bool
	// PerformerNames lists the raw performer names associated with the item.
	PerformerNames() []string
}

// SettingsSource resolves the pipeline settings for a run.
type SettingsSource interface {
	Settings(ctx context.Context) (titlefmt.Settings, error)
}

// SourceFunc adapts a function to SettingsSource.
type SourceFunc func(ctx context.Context) (titlefmt.Settings, error)

func (f SourceFunc) Settings(ctx context.Context) (titlefmt.Settings, error) {
	return f(ctx)
}

// Static always returns the same settings.
type Static titlefmt.Settings

func (s Static) Settings(context.Context) (titlefmt.Settings, error) {
	return titlefmt.Settings(s), nil
}

// DryRun wraps item so that SetValue only records the new value. The
// wrapped item is never written.
func DryRun(item Item) Item {
	return &dryRunItem{Item: item}
}

type dryRunItem struct {
	Item
	value string
	set   bool
}

func (d *dryRunItem) Value() string {
	if d.set {
		return d.value
	}
	return d.Item.Value()
}

func (d *dryRunItem) SetValue(v string) error {
	d.value = v
	d.set = true
	return nil
}
