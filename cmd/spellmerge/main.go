// Package main is the entry point for the spellmerge CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/names"
)

var (
	aliasesPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "spellmerge <catalogue.xml> <table.csv>",
	Short: "Merge a spell catalogue into a spell table",
	Long: `spellmerge reads an XML spell catalogue and a CSV spell table, matches each
table row to its catalogue entry and writes the table to stdout with the
catalogue fields appended. Rows and catalogue entries that found no partner
are reported on stderr.`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: setupLogging,
	RunE:              runMerge,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&aliasesPath, "aliases", "", "YAML file with extra name aliases")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", logLevel)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// loadAliases returns the built-in aliases, extended by --aliases when set
func loadAliases() (names.AliasTable, error) {
	aliases := names.DefaultAliases()
	if aliasesPath == "" {
		return aliases, nil
	}

	f, err := os.Open(aliasesPath) // #nosec G304 -- path comes from the operator
	if err != nil {
		return names.AliasTable{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to open alias file %s", aliasesPath)
	}
	defer func() { _ = f.Close() }()

	extra, err := names.LoadAliases(f)
	if err != nil {
		return names.AliasTable{}, errors.Wrapf(err, "alias file %s", aliasesPath)
	}

	slog.Debug("aliases loaded", "file", aliasesPath, "count", extra.Len())
	return aliases.Merge(extra), nil
}

func openInput(path, what string) (*os.File, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to open %s %s", what, path)
	}
	return f, nil
}
