// Settings table accessors. The table holds exactly one row; only read and
// full replace exist.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kalenote/kalenote/pkg/types"
)

// GetSettings returns the singleton settings row. A missing row means the
// store invariant is broken, since Open always seeds it.
func (s *Store) GetSettings() (types.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return types.Settings{}, err
	}

	var out types.Settings
	err := s.db.QueryRow(
		"SELECT theme, time_mode, available_time FROM settings WHERE id = ?",
		types.SettingsRowID,
	).Scan(&out.Theme, &out.TimeMode, &out.AvailableTime)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Settings{}, types.ErrSettingsMissing
	}
	if err != nil {
		return types.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return out, nil
}

// ReplaceSettings overwrites all three settings fields in one statement.
func (s *Store) ReplaceSettings(settings types.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"UPDATE settings SET theme = ?, time_mode = ?, available_time = ? WHERE id = ?",
		settings.Theme, settings.TimeMode, settings.AvailableTime, types.SettingsRowID,
	)
	if err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}
