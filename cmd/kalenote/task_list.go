// Task list command shows all tasks.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kalenote/kalenote/pkg/types"
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List shows every task, most recently created first.

Example:
  kalenote task list
  kalenote task list --json`,
	Args: cobra.NoArgs,
	RunE: runTaskList,
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.ListTasks()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if flagJSON {
		return printJSON(tasks)
	}

	printTaskTable(tasks)
	return nil
}

// printTaskTable prints tasks in a human-readable table format.
func printTaskTable(tasks []types.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tCONTENT\tDUE\tCREATED")
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = *t.DueDate
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			t.ID, t.Status, t.Priority, t.Content, due, t.CreatedAt)
	}
	w.Flush()
	fmt.Print(sb.String())
}
