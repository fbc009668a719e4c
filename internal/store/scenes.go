package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/titleformat/internal/db"
)

// Scene is one stored title with the performers credited on it.
type Scene struct {
	ID         int64
	Title      string
	Organized  bool
	Performers []string
	UpdatedAt  time.Time
}

// AddScene inserts a scene and its performers, keeping their order.
func (m *Manager) AddScene(title string, performers []string, organized bool) (int64, error) {
	var id int64
	err := db.WithTx(m.db, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		result, err := tx.Exec(`
			INSERT INTO scenes (title, organized, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, title, organized, now, now)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return err
		}

		for i, name := range performers {
			_, err := tx.Exec(`
				INSERT INTO scene_performers (scene_id, position, name)
				VALUES (?, ?, ?)
			`, id, i, name)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("add scene: %w", err)
	}
	return id, nil
}

// Scene returns the scene with the given id, or ErrNotFound.
func (m *Manager) Scene(id int64) (*Scene, error) {
	s := &Scene{ID: id}
	var updatedAt int64
	err := m.db.QueryRow(`
		SELECT title, organized, updated_at FROM scenes WHERE id = ?
	`, id).Scan(&s.Title, &s.Organized, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Unix(updatedAt, 0)

	rows, err := m.db.Query(`
		SELECT name FROM scene_performers
		WHERE scene_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	s.Performers, err = db.ScanStrings(rows)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SceneIDs lists every scene id in insertion order.
func (m *Manager) SceneIDs() ([]int64, error) {
	rows, err := m.db.Query(`SELECT id FROM scenes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return db.ScanInt64s(rows)
}

// UpdateTitle replaces a scene's title.
func (m *Manager) UpdateTitle(id int64, title string) error {
	return m.updateScene(id, `UPDATE scenes SET title = ?, updated_at = ? WHERE id = ?`, title)
}

// SetOrganized marks a scene as finalized or not.
func (m *Manager) SetOrganized(id int64, organized bool) error {
	return m.updateScene(id, `UPDATE scenes SET organized = ?, updated_at = ? WHERE id = ?`, organized)
}

func (m *Manager) updateScene(id int64, query string, value any) error {
	result, err := m.db.Exec(query, value, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	return db.ExpectAffected(result, ErrNotFound, id)
}
