// Schema DDL for the kalenote database. All statements are idempotent so
// Open is safe against an already-initialized file.
package sqlite

// Table DDL. Statuses are also enforced here with a CHECK constraint as a
// second line of defense behind the Go-side validation.
const (
	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('inbox', 'todo', 'doing', 'done')),
    priority INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    completed_at TEXT,
    due_date TEXT,
    time_duration INTEGER,
    tags TEXT NOT NULL DEFAULT '[]'
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    theme TEXT NOT NULL DEFAULT 'cool-blues',
    time_mode TEXT NOT NULL DEFAULT 'daily',
    available_time INTEGER NOT NULL DEFAULT 12
);`

	createCalendarPresets = `CREATE TABLE IF NOT EXISTS calendar_presets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    default_tags TEXT NOT NULL DEFAULT '[]',
    default_priority INTEGER NOT NULL DEFAULT 0
);`
)

// Index DDL for the common task queries.
const (
	idxTasksStatus  = `CREATE INDEX IF NOT EXISTS idx_status ON tasks(status);`
	idxTasksDueDate = `CREATE INDEX IF NOT EXISTS idx_due_date ON tasks(due_date);`
)

// seedSettings inserts the singleton settings row with defaults. INSERT OR
// IGNORE leaves an existing row untouched.
const seedSettings = `INSERT OR IGNORE INTO settings (id, theme, time_mode, available_time)
    VALUES (?, ?, ?, ?);`

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createTasks,
	createSettings,
	createCalendarPresets,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxTasksStatus,
	idxTasksDueDate,
}
