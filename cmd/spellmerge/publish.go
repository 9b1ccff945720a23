package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/orchestrators/spellmerge"
	"github.com/KirkDiggler/spellmerge/internal/redis"
	"github.com/KirkDiggler/spellmerge/internal/repositories/spell"
)

var (
	// Store flags
	redisAddr string
	timeout   time.Duration
)

var publishCmd = &cobra.Command{
	Use:   "publish <catalogue.xml>",
	Short: "Store a catalogue in Redis",
	Long:  `Parse a spell catalogue and replace the catalogue stored in Redis with it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

func init() {
	addStoreFlags(publishCmd)
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address or redis:// URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
}

// storeOrchestrator connects to Redis and returns an orchestrator backed by
// it. The returned func closes the connection.
func storeOrchestrator() (spellmerge.Service, func(), error) {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close() }

	repo, err := spell.NewRedis(&spell.RedisConfig{
		Client: client,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	aliases, err := loadAliases()
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	orch, err := spellmerge.NewOrchestrator(&spellmerge.Config{
		SpellRepo: repo,
		Aliases:   &aliases,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return orch, closeFn, nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	orch, closeFn, err := storeOrchestrator()
	if err != nil {
		return err
	}
	defer closeFn()

	f, err := openInput(args[0], "catalogue")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := orch.Publish(ctx, &spellmerge.PublishInput{Catalogue: f})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %d spells as %s (%d replaced)\n",
		result.Stored, result.Manifest.Revision, result.Removed)
	return nil
}
