package archive

import (
	"context"
	"strings"

	"github.com/wftrack/loadout-api/internal/errors"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
)

// trackerPrefix marks every key this application owns; export, import
// and clear never touch anything outside it.
const trackerPrefix = "wf:"

const scanBatch = 100

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis archive repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed archive repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Export(ctx context.Context, _ ExportInput) (*ExportOutput, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := r.client.Get(ctx, key).Result()
		if err != nil {
			// a key deleted mid-scan is not worth failing the export
			continue
		}
		entries[key] = value
	}
	return &ExportOutput{Entries: entries}, nil
}

func (r *redisRepository) Import(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	if len(input.Entries) == 0 {
		return nil, errors.InvalidArgument("nothing to import")
	}

	pipe := r.client.TxPipeline()
	imported, skipped := 0, 0
	for key, value := range input.Entries {
		if !strings.HasPrefix(key, trackerPrefix) {
			skipped++
			continue
		}
		pipe.Set(ctx, key, value, 0)
		imported++
	}
	if imported > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to import key space")
		}
	}
	return &ImportOutput{Imported: imported, Skipped: skipped}, nil
}

func (r *redisRepository) Clear(ctx context.Context, _ ClearInput) (*ClearOutput, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return &ClearOutput{}, nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear key space")
	}
	return &ClearOutput{Removed: len(keys)}, nil
}

func (r *redisRepository) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, trackerPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan key space")
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
