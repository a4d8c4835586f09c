// Shared helpers for kalenote CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/kalenote/kalenote/internal/paths"
	"github.com/kalenote/kalenote/internal/sqlite"
)

// openStore resolves the data directory, runs the startup status repair,
// and opens the store. Repair completes before the store is handed to any
// command, so the pass never races normal operations. The caller must
// defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	dbPath := paths.DatabasePath(dataDir)

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := sqlite.RepairStatuses(dbPath); err != nil {
		store.Close()
		return nil, fmt.Errorf("repair statuses: %w", err)
	}

	return store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
