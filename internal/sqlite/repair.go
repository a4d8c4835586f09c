// One-shot startup repair for a historical corruption pattern: task
// statuses that were stored as numeric strings instead of enumeration
// values.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/kalenote/kalenote/pkg/types"
)

// RepairStatuses scans every task and resets any purely numeric status to
// the enumeration default, "inbox". It opens its own connection to the
// file and should run to completion before the main store starts serving
// callers.
//
// The pass is idempotent: a second run finds nothing to fix. All (id,
// status) pairs are read up front, so a read failure aborts the whole pass
// with no partial progress; per-row write failures after that are logged
// and skipped. Returns the number of repaired rows.
func RepairStatuses(path string) (int, error) {
	logger := slog.Default().With("component", "repair")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrNotOpenable, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, status FROM tasks")
	if err != nil {
		return 0, fmt.Errorf("reading task statuses: %w", err)
	}

	type taskStatus struct {
		id     int64
		status string
	}
	var tasks []taskStatus
	for rows.Next() {
		var ts taskStatus
		if err := rows.Scan(&ts.id, &ts.status); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scanning task status: %w", err)
		}
		tasks = append(tasks, ts)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating task statuses: %w", err)
	}

	fixed := 0
	for _, ts := range tasks {
		if _, err := strconv.Atoi(ts.status); err != nil {
			continue // not numeric, nothing to repair
		}
		_, err := db.Exec("UPDATE tasks SET status = ? WHERE id = ?", types.StatusInbox, ts.id)
		if err != nil {
			logger.Warn("skipping unrepairable task", "id", ts.id, "error", err)
			continue
		}
		logger.Info("repaired corrupted task status", "id", ts.id, "was", ts.status)
		fixed++
	}
	return fixed, nil
}
