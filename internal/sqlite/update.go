// Partial task update. A TaskPatch is translated into a single UPDATE that
// touches only the fields present in the patch.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/kalenote/kalenote/pkg/types"
)

// assignment pairs one column name with the value bound to it. The SET
// clause and the argument list are both derived from the same assignment
// slice, so clause order and parameter order cannot drift apart.
type assignment struct {
	column string
	value  any
}

// buildAssignments walks the patch fields in their fixed declaration order
// and collects an assignment for each field that is present.
func buildAssignments(patch types.TaskPatch) []assignment {
	var as []assignment
	if patch.Content != nil {
		as = append(as, assignment{"content", *patch.Content})
	}
	if patch.Status != nil {
		as = append(as, assignment{"status", *patch.Status})
	}
	if patch.Priority != nil {
		as = append(as, assignment{"priority", *patch.Priority})
	}
	if patch.Tags != nil {
		as = append(as, assignment{"tags", *patch.Tags})
	}
	if patch.TimeDuration != nil {
		as = append(as, assignment{"time_duration", *patch.TimeDuration})
	}
	if patch.DueDate != nil {
		as = append(as, assignment{"due_date", *patch.DueDate})
	}
	if patch.CompletedAt != nil {
		as = append(as, assignment{"completed_at", *patch.CompletedAt})
	}
	return as
}

// UpdateTask applies the present fields of patch to the task with the given
// ID. Absent fields are left untouched. An empty patch succeeds without
// executing anything, and updating an ID that does not exist is not an
// error; callers already know which row they meant.
func (s *Store) UpdateTask(id int64, patch types.TaskPatch) error {
	if patch.Status != nil && !types.ValidStatus(*patch.Status) {
		return fmt.Errorf("updating task %d with status %q: %w", id, *patch.Status, types.ErrInvalidStatus)
	}

	assignments := buildAssignments(patch)
	if len(assignments) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	clauses := make([]string, len(assignments))
	args := make([]any, 0, len(assignments)+1)
	for i, a := range assignments {
		clauses[i] = a.column + " = ?"
		args = append(args, a.value)
	}
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(clauses, ", ") + " WHERE id = ?"
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	return nil
}
