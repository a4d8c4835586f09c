package types

import "errors"

// Store operation errors. The storage layer wraps these with context via
// fmt.Errorf("...: %w", ...); callers match with errors.Is.
var (
	// ErrInvalidStatus is returned when a write carries a status outside
	// the task status enumeration.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrNotOpenable is returned when the backing file or its parent
	// directory cannot be created or opened.
	ErrNotOpenable = errors.New("store cannot be opened")

	// ErrSettingsMissing is returned when the singleton settings row is
	// absent. Open seeds the row, so this indicates a corrupted store.
	ErrSettingsMissing = errors.New("settings row missing")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)
