package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SaveSettings stores record as the settings of plugin, replacing any
// previous record.
func (m *Manager) SaveSettings(plugin string, record map[string]any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = m.db.Exec(`
		INSERT INTO plugin_settings (plugin, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(plugin) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, plugin, string(data), time.Now().Unix())
	return err
}

// LoadSettings returns the settings record of plugin, or nil when none was
// saved.
func (m *Manager) LoadSettings(plugin string) (map[string]any, error) {
	var data string
	err := m.db.QueryRow(`SELECT data FROM plugin_settings WHERE plugin = ?`, plugin).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("decode settings for %s: %w", plugin, err)
	}
	return record, nil
}
