// filepath: internal/repository/settings_repo.go
package repository

// LoadSettings returns all rows of the settings table as a key/value map.
func (s *Repository) LoadSettings() (map[string]string, error) {
	rows, err := s.DB.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// SetSetting upserts one settings row. Used by tests and seeding, the
// request path only reads settings.
func (s *Repository) SetSetting(key, value string) error {
	_, err := s.DB.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
