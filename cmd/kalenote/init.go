// Init command creates the configuration and data directories and
// initializes the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kalenote storage",
	Long:  "Create configuration and data directories, then initialize the database schema.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// PersistentPreRunE already ensured the config dir and default
	// config.yaml; opening the store creates the data dir and schema.
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Kalenote initialized successfully")
	return nil
}
