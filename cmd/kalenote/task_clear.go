// Task clear command bulk-deletes all tasks with one status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskClearCmd = &cobra.Command{
	Use:   "clear <status>",
	Short: "Delete all tasks with the given status",
	Long: `Clear removes every task whose status equals the given value.
An unrecognized status simply deletes nothing.

Example:
  kalenote task clear done`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearStatus(args[0]); err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}

		fmt.Printf("Cleared tasks with status %q\n", args[0])
		return nil
	},
}
