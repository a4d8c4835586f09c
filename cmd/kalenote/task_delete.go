// Task delete command removes one task.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid task id %q\n", args[0])
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteTask(id); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}
