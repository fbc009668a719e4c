package store

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	scenes   map[int64]*Scene
	nextID   int64
	settings map[string]map[string]any
	failErr  error
	closed   bool
}

// NewMock creates a new mock store for testing.
func NewMock() *Mock {
	return &Mock{
		scenes:   make(map[int64]*Scene),
		settings: make(map[string]map[string]any),
	}
}

func (m *Mock) AddScene(title string, performers []string, organized bool) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	m.nextID++
	m.scenes[m.nextID] = &Scene{
		ID:         m.nextID,
		Title:      title,
		Organized:  organized,
		Performers: slices.Clone(performers),
		UpdatedAt:  time.Now(),
	}
	return m.nextID, nil
}

func (m *Mock) Scene(id int64) (*Scene, error) {
	s, ok := m.scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	c := *s
	c.Performers = slices.Clone(s.Performers)
	return &c, nil
}

func (m *Mock) SceneIDs() ([]int64, error) {
	return slices.Sorted(maps.Keys(m.scenes)), nil
}

func (m *Mock) UpdateTitle(id int64, title string) error {
	if m.failErr != nil {
		return m.failErr
	}
	s, ok := m.scenes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.Title = title
	return nil
}

func (m *Mock) SetOrganized(id int64, organized bool) error {
	s, ok := m.scenes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.Organized = organized
	return nil
}

func (m *Mock) SaveSettings(plugin string, record map[string]any) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.settings[plugin] = maps.Clone(record)
	return nil
}

func (m *Mock) LoadSettings(plugin string) (map[string]any, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return maps.Clone(m.settings[plugin]), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetFailure makes every write and settings read return err.
func (m *Mock) SetFailure(err error) { m.failErr = err }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
