// Settings command group for the kalenote CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change application settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsGet,
}

var (
	setTheme         string
	setTimeMode      string
	setAvailableTime int
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace settings",
	Long: `Set replaces the settings record. Fields not given keep their
current values.

Example:
  kalenote settings set --theme sunset
  kalenote settings set --time-mode weekly --available-time 20`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().StringVar(&setTheme, "theme", "", "theme name")
	settingsSetCmd.Flags().StringVar(&setTimeMode, "time-mode", "", "time mode (daily, weekly)")
	settingsSetCmd.Flags().IntVar(&setAvailableTime, "available-time", 0, "available time in hours")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.GetSettings()
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	if flagJSON {
		return printJSON(settings)
	}
	fmt.Printf("theme: %s\ntime_mode: %s\navailable_time: %d\n",
		settings.Theme, settings.TimeMode, settings.AvailableTime)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	// The store only replaces whole; start from the current values and
	// overlay the flags that were given.
	settings, err := store.GetSettings()
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	if cmd.Flags().Changed("theme") {
		settings.Theme = setTheme
	}
	if cmd.Flags().Changed("time-mode") {
		settings.TimeMode = setTimeMode
	}
	if cmd.Flags().Changed("available-time") {
		settings.AvailableTime = setAvailableTime
	}

	if err := store.ReplaceSettings(settings); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}

	if flagJSON {
		return printJSON(settings)
	}
	fmt.Println("Settings updated")
	return nil
}
