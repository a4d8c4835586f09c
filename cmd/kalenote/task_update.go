// Task update command applies a partial update to one task.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalenote/kalenote/pkg/types"
)

var (
	updContent   string
	updStatus    string
	updPriority  int
	updTags      string
	updDuration  int
	updDueDate   string
	updCompleted string
)

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
	Long: `Update changes only the fields whose flags are given; everything
else is left untouched.

Example:
  kalenote task update 3 --status doing
  kalenote task update 3 --status done --completed "2026-08-29 12:00:00"
  kalenote task update 3 --priority 2 --tags '["work","urgent"]'`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskUpdate,
}

func init() {
	taskUpdateCmd.Flags().StringVar(&updContent, "content", "", "new content")
	taskUpdateCmd.Flags().StringVar(&updStatus, "status", "", "new status (inbox, todo, doing, done)")
	taskUpdateCmd.Flags().IntVar(&updPriority, "priority", 0, "new priority")
	taskUpdateCmd.Flags().StringVar(&updTags, "tags", "", "new tags as a JSON array")
	taskUpdateCmd.Flags().IntVar(&updDuration, "duration", 0, "new time duration in minutes")
	taskUpdateCmd.Flags().StringVar(&updDueDate, "due", "", "new due date")
	taskUpdateCmd.Flags().StringVar(&updCompleted, "completed", "", "completion timestamp")
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid task id %q\n", args[0])
		os.Exit(exitUserError)
	}

	// Only flags the user actually set become part of the patch, so a zero
	// value like --priority 0 still updates the field.
	var patch types.TaskPatch
	if cmd.Flags().Changed("content") {
		patch.Content = &updContent
	}
	if cmd.Flags().Changed("status") {
		patch.Status = &updStatus
	}
	if cmd.Flags().Changed("priority") {
		patch.Priority = &updPriority
	}
	if cmd.Flags().Changed("tags") {
		patch.Tags = &updTags
	}
	if cmd.Flags().Changed("duration") {
		patch.TimeDuration = &updDuration
	}
	if cmd.Flags().Changed("due") {
		patch.DueDate = &updDueDate
	}
	if cmd.Flags().Changed("completed") {
		patch.CompletedAt = &updCompleted
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateTask(id, patch); err != nil {
		if errors.Is(err, types.ErrInvalidStatus) {
			fmt.Fprintf(os.Stderr, "invalid status %q (valid: %s)\n",
				updStatus, strings.Join(types.Statuses, ", "))
			os.Exit(exitUserError)
		}
		return fmt.Errorf("update task: %w", err)
	}

	fmt.Printf("Updated task %d\n", id)
	return nil
}
