package store

// Interface defines the store contract for dependency injection and testing.
type Interface interface {
	AddScene(title string, performers []string, organized bool) (int64, error)
	Scene(id int64) (*Scene, error)
	SceneIDs() ([]int64, error)
	UpdateTitle(id int64, title string) error
	SetOrganized(id int64, organized bool) error
	SaveSettings(plugin string, record map[string]any) error
	LoadSettings(plugin string) (map[string]any, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
