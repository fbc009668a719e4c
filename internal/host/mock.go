package host

import (
	"errors"
	"sync"
)

// ErrReadOnly is returned by a Mock item whose writes are disabled.
var ErrReadOnly = errors.New("item is read-only")

// MockItem is an in-memory Item for tests.
type MockItem struct {
	mu         sync.Mutex
	value      string
	finalized  bool
	performers []string
	readOnly   bool
	writes     int
}

// NewMockItem creates an item holding value.
func NewMockItem(value string, performers ...string) *MockItem {
	return &MockItem{value: value, performers: performers}
}

func (m *MockItem) Value() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *MockItem) SetValue(v string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readOnly {
		return ErrReadOnly
	}
	m.value = v
	m.writes++
	return nil
}

func (m *MockItem) IsFinalized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finalized
}

func (m *MockItem) PerformerNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.performers...)
}

// Test helpers

func (m *MockItem) SetFinalized(v bool) {
	m.mu.Lock()
	m.finalized = v
	m.mu.Unlock()
}

func (m *MockItem) SetReadOnly(v bool) {
	m.mu.Lock()
	m.readOnly = v
	m.mu.Unlock()
}

func (m *MockItem) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var _ Item = (*MockItem)(nil)
