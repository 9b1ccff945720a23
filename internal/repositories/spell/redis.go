package spell

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	redisclient "github.com/KirkDiggler/spellmerge/internal/redis"
)

const (
	spellKeyPrefix = "spell:"
	indexKey       = "spells:index"
	manifestKey    = "spells:manifest"

	// Error messages
	errKeyEmpty = "spell key cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis spell repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed spell repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spell %s not found", input.Key).
				WithMeta("key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get spell %s", input.Key)
	}

	var spell entities.Spell
	if err := json.Unmarshal([]byte(result), &spell); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell %s", input.Key)
	}

	return &GetOutput{Spell: &spell}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read spell index")
	}
	if len(keys) == 0 {
		return &ListOutput{Spells: []*entities.Spell{}}, nil
	}
	sort.Strings(keys)

	storageKeys := make([]string, len(keys))
	for i, key := range keys {
		storageKeys[i] = GetKey(key)
	}

	values, err := r.client.MGet(ctx, storageKeys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spells")
	}

	spells := make([]*entities.Spell, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			slog.WarnContext(ctx, "indexed spell missing from store",
				"key", keys[i])
			continue
		}

		var spell entities.Spell
		if err := json.Unmarshal([]byte(raw), &spell); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", keys[i])
		}
		spells = append(spells, &spell)
	}

	slog.DebugContext(ctx, "listed spells",
		"indexed", len(keys),
		"returned", len(spells))

	return &ListOutput{Spells: spells}, nil
}

func (r *redisRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
	if input.Manifest == nil {
		return nil, errors.InvalidArgument("manifest cannot be nil")
	}
	if input.Manifest.Revision == "" {
		return nil, errors.InvalidArgument("manifest revision cannot be empty")
	}

	records := make(map[string][]byte, len(input.Spells))
	for _, spell := range input.Spells {
		if spell == nil {
			return nil, errors.InvalidArgument("spell cannot be nil")
		}
		if spell.Key == "" {
			return nil, errors.InvalidArgument(errKeyEmpty)
		}

		data, err := json.Marshal(spell)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal spell %s", spell.Key)
		}
		records[spell.Key] = data
	}

	manifest, err := json.Marshal(input.Manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal manifest %s", input.Manifest.Revision)
	}

	var previous []string
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		keys, err := tx.SMembers(ctx, indexKey).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to read spell index")
		}
		previous = keys

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			stale := make([]string, 0, len(keys)+1)
			for _, key := range keys {
				stale = append(stale, GetKey(key))
			}
			stale = append(stale, indexKey)
			pipe.Del(ctx, stale...)

			for key, data := range records {
				pipe.Set(ctx, GetKey(key), data, 0)
				pipe.SAdd(ctx, indexKey, key)
			}
			pipe.Set(ctx, manifestKey, manifest, 0)
			return nil
		})
		return err
	}, indexKey)
	if err == redis.TxFailedErr {
		return nil, errors.Unavailablef("spell index changed while publishing %s", input.Manifest.Revision)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to publish revision %s", input.Manifest.Revision)
	}

	slog.DebugContext(ctx, "replaced stored catalogue",
		"revision", input.Manifest.Revision,
		"stored", len(records),
		"deleted", len(previous))

	return &ReplaceOutput{Deleted: len(previous)}, nil
}

func (r *redisRepository) GetManifest(ctx context.Context, _ GetManifestInput) (*GetManifestOutput, error) {
	result, err := r.client.Get(ctx, manifestKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no catalogue has been published")
		}
		return nil, errors.Wrap(err, "failed to get manifest")
	}

	var manifest entities.Manifest
	if err := json.Unmarshal([]byte(result), &manifest); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal manifest")
	}

	return &GetManifestOutput{Manifest: &manifest}, nil
}

// GetKey returns the Redis key for a spell
// Exposed for testing purposes
func GetKey(key string) string {
	return fmt.Sprintf("%s%s", spellKeyPrefix, key)
}
