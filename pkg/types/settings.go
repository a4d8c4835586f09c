package types

// Default settings values, seeded on first open.
const (
	DefaultTheme         = "cool-blues"
	DefaultTimeMode      = "daily"
	DefaultAvailableTime = 12
)

// SettingsRowID pins the settings table to a single row.
const SettingsRowID = 1

// Settings is the singleton application settings record. The settings table
// always holds exactly one row; it is seeded at store open and only ever
// replaced whole, never deleted.
type Settings struct {
	Theme         string `json:"theme"`
	TimeMode      string `json:"time_mode"`
	AvailableTime int    `json:"available_time"`
}

// DefaultSettings returns the values seeded when no settings row exists yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:         DefaultTheme,
		TimeMode:      DefaultTimeMode,
		AvailableTime: DefaultAvailableTime,
	}
}
