package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellmerge/internal/orchestrators/spellmerge"
)

func runMerge(cmd *cobra.Command, args []string) error {
	aliases, err := loadAliases()
	if err != nil {
		return err
	}

	orch, err := spellmerge.NewOrchestrator(&spellmerge.Config{
		Aliases: &aliases,
	})
	if err != nil {
		return err
	}

	catalogueFile, err := openInput(args[0], "catalogue")
	if err != nil {
		return err
	}
	defer func() { _ = catalogueFile.Close() }()

	tableFile, err := openInput(args[1], "table")
	if err != nil {
		return err
	}
	defer func() { _ = tableFile.Close() }()

	out := bufio.NewWriter(cmd.OutOrStdout())
	result, err := orch.Merge(cmd.Context(), &spellmerge.MergeInput{
		Catalogue: catalogueFile,
		Table:     tableFile,
		Output:    out,
	})
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, name := range result.Unmatched {
		fmt.Fprintf(stderr, "%s: not found in catalogue\n", name)
	}
	for _, key := range result.Unconsumed {
		fmt.Fprintf(stderr, "%s: not found in table\n", key)
	}

	return nil
}
