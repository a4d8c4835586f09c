package types

// Task statuses. A task lives in exactly one of these at all times; the
// storage layer rejects writes carrying any other value.
const (
	StatusInbox = "inbox"
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Statuses lists all task statuses for enumeration.
var Statuses = []string{
	StatusInbox,
	StatusTodo,
	StatusDoing,
	StatusDone,
}

// validStatuses is the set of recognized task status values.
var validStatuses = map[string]bool{
	StatusInbox: true,
	StatusTodo:  true,
	StatusDoing: true,
	StatusDone:  true,
}

// ValidStatus reports whether s is a member of the task status enumeration.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// Task represents a persisted task row.
//
// Tags holds a serialized list (a JSON array as text). The storage layer
// treats it as opaque; parsing and validation belong to the caller.
type Task struct {
	ID           int64   `json:"id"`
	Content      string  `json:"content"`
	Status       string  `json:"status"`
	Priority     int     `json:"priority"`
	CreatedAt    string  `json:"created_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	TimeDuration *int    `json:"time_duration,omitempty"`
	Tags         string  `json:"tags"`
}

// NewTask carries the caller-supplied fields for task creation.
// The store assigns the ID and stamps created_at; completed_at starts absent.
type NewTask struct {
	Content      string  `json:"content"`
	Status       string  `json:"status"`
	Priority     int     `json:"priority"`
	Tags         string  `json:"tags"`
	TimeDuration *int    `json:"time_duration,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
}

// TaskPatch is a sparse set of task fields for partial update. A nil field
// is left untouched by the update; a patch with every field nil is a no-op.
// Field declaration order fixes the column order of the generated statement.
type TaskPatch struct {
	Content      *string `json:"content,omitempty"`
	Status       *string `json:"status,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
	Tags         *string `json:"tags,omitempty"`
	TimeDuration *int    `json:"time_duration,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}
