// Calendar preset table accessors.
package sqlite

import (
	"fmt"

	"github.com/kalenote/kalenote/pkg/types"
)

// ListPresets returns every calendar preset ordered by name ascending.
func (s *Store) ListPresets() ([]types.CalendarPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT id, name, default_tags, default_priority FROM calendar_presets ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []types.CalendarPreset
	for rows.Next() {
		var p types.CalendarPreset
		if err := rows.Scan(&p.ID, &p.Name, &p.DefaultTags, &p.DefaultPriority); err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}
	return presets, nil
}

// CreatePreset inserts a new calendar preset and returns its store-assigned
// ID.
func (s *Store) CreatePreset(p types.NewCalendarPreset) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	tags := p.DefaultTags
	if tags == "" {
		tags = "[]"
	}

	res, err := s.db.Exec(
		"INSERT INTO calendar_presets (name, default_tags, default_priority) VALUES (?, ?, ?)",
		p.Name, tags, p.DefaultPriority,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting preset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted preset id: %w", err)
	}
	return id, nil
}

// DeletePreset removes the preset with the given ID. Deleting an ID that
// does not exist is not an error.
func (s *Store) DeletePreset(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM calendar_presets WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting preset %d: %w", id, err)
	}
	return nil
}
