// Task table accessors: list, create, partial update, delete, and bulk
// clear by status.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/kalenote/kalenote/pkg/types"
)

// ListTasks returns every task ordered by created_at descending, most
// recently created first.
func (s *Store) ListTasks() ([]types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, content, status, priority, created_at, completed_at, due_date, time_duration, tags
         FROM tasks ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a new task and returns its store-assigned ID. The
// status must be a member of the enumeration; created_at is stamped by the
// schema default and completed_at starts absent.
func (s *Store) CreateTask(t types.NewTask) (int64, error) {
	if !types.ValidStatus(t.Status) {
		return 0, fmt.Errorf("creating task with status %q: %w", t.Status, types.ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	tags := t.Tags
	if tags == "" {
		tags = "[]"
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (content, status, priority, tags, time_duration, due_date)
         VALUES (?, ?, ?, ?, ?, ?)`,
		t.Content, t.Status, t.Priority, tags, t.TimeDuration, t.DueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted task id: %w", err)
	}
	return id, nil
}

// DeleteTask removes the task with the given ID. Deleting an ID that does
// not exist is not an error.
func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}

// ClearStatus bulk-deletes every task with the given status. The status is
// not validated against the enumeration; an unrecognized value deletes
// zero rows.
func (s *Store) ClearStatus(status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM tasks WHERE status = ?", status); err != nil {
		return fmt.Errorf("clearing tasks with status %q: %w", status, err)
	}
	return nil
}

// scanTask converts the current row of a task query into a types.Task.
// Optional columns come back through sql.Null types and are mapped to nil
// pointers when absent.
func scanTask(rows *sql.Rows) (types.Task, error) {
	var (
		t            types.Task
		completedAt  sql.NullString
		dueDate      sql.NullString
		timeDuration sql.NullInt64
	)
	err := rows.Scan(
		&t.ID, &t.Content, &t.Status, &t.Priority, &t.CreatedAt,
		&completedAt, &dueDate, &timeDuration, &t.Tags,
	)
	if err != nil {
		return types.Task{}, err
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.String
	}
	if dueDate.Valid {
		t.DueDate = &dueDate.String
	}
	if timeDuration.Valid {
		d := int(timeDuration.Int64)
		t.TimeDuration = &d
	}
	return t, nil
}
