package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellmerge/internal/orchestrators/spellmerge"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve a table spell name against the stored catalogue",
	Long: `Resolve a spell name as it is written in the table against the catalogue
stored by publish, and print the matching entry as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	addStoreFlags(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	orch, closeFn, err := storeOrchestrator()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := orch.Lookup(ctx, &spellmerge.LookupInput{Name: args[0]})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "spell resolved",
		"name", args[0],
		"key", result.Key,
		"candidates", result.Candidates)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result.Spell)
}
