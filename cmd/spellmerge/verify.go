package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/orchestrators/spellmerge"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the catalogue stored in Redis",
	Long: `Compare every spell stored by publish with the published revision and
report records with a wrong key, missing fields or a count that does not
match the revision.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	addStoreFlags(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	orch, closeFn, err := storeOrchestrator()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := orch.Verify(ctx, &spellmerge.VerifyInput{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Revision %s published %s: checked %d spells\n",
		result.Manifest.Revision,
		result.Manifest.PublishedAt.Format(time.RFC3339),
		result.Checked)

	for _, p := range result.Problems {
		if p.Key == "" {
			fmt.Fprintf(out, "  %s\n", p.Reason)
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", p.Key, p.Reason)
	}

	if len(result.Problems) > 0 {
		return errors.FailedPreconditionf("stored catalogue has %d problems", len(result.Problems))
	}
	return nil
}
