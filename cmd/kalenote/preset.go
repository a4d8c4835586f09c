// Calendar preset command group for the kalenote CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kalenote/kalenote/pkg/types"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage calendar presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all calendar presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var (
	presetName     string
	presetTags     string
	presetPriority int
)

var presetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new calendar preset",
	Long: `Add creates a reusable preset for calendar task creation.

Example:
  kalenote preset add --name "Work" --tags '["work"]' --priority 2`,
	Args: cobra.NoArgs,
	RunE: runPresetAdd,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a calendar preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetAddCmd.Flags().StringVar(&presetName, "name", "", "preset name (required)")
	presetAddCmd.Flags().StringVar(&presetTags, "tags", "[]", "default tags as a JSON array")
	presetAddCmd.Flags().IntVar(&presetPriority, "priority", 0, "default priority")
	_ = presetAddCmd.MarkFlagRequired("name")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetAddCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

func runPresetList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	presets, err := store.ListPresets()
	if err != nil {
		return fmt.Errorf("list presets: %w", err)
	}

	if flagJSON {
		return printJSON(presets)
	}

	if len(presets) == 0 {
		fmt.Println("No presets found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tTAGS")
	for _, p := range presets {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", p.ID, p.Name, p.DefaultPriority, p.DefaultTags)
	}
	w.Flush()
	fmt.Print(sb.String())
	return nil
}

func runPresetAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.CreatePreset(types.NewCalendarPreset{
		Name:            presetName,
		DefaultTags:     presetTags,
		DefaultPriority: presetPriority,
	})
	if err != nil {
		return fmt.Errorf("create preset: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int64{"id": id})
	}
	fmt.Printf("Created preset %d\n", id)
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid preset id %q\n", args[0])
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeletePreset(id); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	fmt.Printf("Deleted preset %d\n", id)
	return nil
}
