package store

import (
	"context"

	"github.com/llehouerou/titleformat/internal/config"
	"github.com/llehouerou/titleformat/internal/host"
	"github.com/llehouerou/titleformat/internal/titlefmt"
)

// PluginName keys the formatter's settings record.
const PluginName = "TitleFormatter"

// SceneItem exposes a stored scene's title to the pipeline.
type SceneItem struct {
	store Interface
	scene *Scene
}

// LoadItem reads scene id from s.
func LoadItem(s Interface, id int64) (*SceneItem, error) {
	scene, err := s.Scene(id)
	if err != nil {
		return nil, err
	}
	return &SceneItem{store: s, scene: scene}, nil
}

func (i *SceneItem) ID() int64 { return i.scene.ID }

func (i *SceneItem) Value() string { return i.scene.Title }

func (i *SceneItem) SetValue(v string) error {
	if err := i.store.UpdateTitle(i.scene.ID, v); err != nil {
		return err
	}
	i.scene.Title = v
	return nil
}

func (i *SceneItem) IsFinalized() bool { return i.scene.Organized }

func (i *SceneItem) PerformerNames() []string {
	return append([]string(nil), i.scene.Performers...)
}

var _ host.Item = (*SceneItem)(nil)

// SettingsSource reads a plugin's settings record. A missing record yields
// the defaults.
type SettingsSource struct {
	store  Interface
	plugin string
}

func NewSettingsSource(s Interface, plugin string) *SettingsSource {
	return &SettingsSource{store: s, plugin: plugin}
}

func (s *SettingsSource) Settings(ctx context.Context) (titlefmt.Settings, error) {
	if err := ctx.Err(); err != nil {
		return titlefmt.Settings{}, err
	}
	record, err := s.store.LoadSettings(s.plugin)
	if err != nil {
		return titlefmt.Settings{}, err
	}
	return config.DecodeSettings(titlefmt.DefaultSettings(), record)
}

var _ host.SettingsSource = (*SettingsSource)(nil)
