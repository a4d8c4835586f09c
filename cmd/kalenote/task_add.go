// Task add command creates a new task.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalenote/kalenote/pkg/types"
)

var (
	addContent  string
	addStatus   string
	addPriority int
	addTags     string
	addDuration int
	addDueDate  string
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task with the specified content.

The task starts in the "inbox" status by default.

Example:
  kalenote task add --content "Buy milk"
  kalenote task add --content "Write report" --status todo --priority 2
  kalenote task add --content "Workout" --due 2026-09-01 --duration 45`,
	Args: cobra.NoArgs,
	RunE: runTaskAdd,
}

func init() {
	taskAddCmd.Flags().StringVar(&addContent, "content", "", "task content (required)")
	taskAddCmd.Flags().StringVar(&addStatus, "status", types.StatusInbox, "initial status (inbox, todo, doing, done)")
	taskAddCmd.Flags().IntVar(&addPriority, "priority", 0, "task priority")
	taskAddCmd.Flags().StringVar(&addTags, "tags", "[]", "tags as a JSON array")
	taskAddCmd.Flags().IntVar(&addDuration, "duration", 0, "time duration in minutes")
	taskAddCmd.Flags().StringVar(&addDueDate, "due", "", "due date")
	_ = taskAddCmd.MarkFlagRequired("content")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	task := types.NewTask{
		Content:  addContent,
		Status:   addStatus,
		Priority: addPriority,
		Tags:     addTags,
	}
	if cmd.Flags().Changed("duration") {
		task.TimeDuration = &addDuration
	}
	if cmd.Flags().Changed("due") {
		task.DueDate = &addDueDate
	}

	id, err := store.CreateTask(task)
	if err != nil {
		if errors.Is(err, types.ErrInvalidStatus) {
			fmt.Fprintf(os.Stderr, "invalid status %q (valid: %s)\n",
				addStatus, strings.Join(types.Statuses, ", "))
			os.Exit(exitUserError)
		}
		return fmt.Errorf("create task: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int64{"id": id})
	}
	fmt.Printf("Created task %d\n", id)
	return nil
}
