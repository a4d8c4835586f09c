package types

// CalendarPreset is a reusable template for calendar task creation.
// DefaultTags is a serialized list, opaque to the storage layer like
// Task.Tags.
type CalendarPreset struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DefaultTags     string `json:"default_tags"`
	DefaultPriority int    `json:"default_priority"`
}

// NewCalendarPreset carries the caller-supplied fields for preset creation.
// The store assigns the ID.
type NewCalendarPreset struct {
	Name            string `json:"name"`
	DefaultTags     string `json:"default_tags"`
	DefaultPriority int    `json:"default_priority"`
}
