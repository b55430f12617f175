package builds

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
)

// buildsKey is the single storage key holding the JSON-serialized
// array of build records, distinct from every other record kind.
const buildsKey = "wf:build:builds:list"

const (
	errBuildNil     = "build cannot be nil"
	errBuildIDEmpty = "build ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis builds repository
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

// NewRedis creates a new Redis-backed builds repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Builds: list}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, b := range list {
		if b.ID == input.Build.ID {
			list[i] = input.Build
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, input.Build)
	}

	if err := r.writeAll(ctx, list); err != nil {
		return nil, err
	}
	return &SaveOutput{Build: input.Build}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	for _, b := range input.Builds {
		if b == nil {
			return nil, errors.InvalidArgument(errBuildNil)
		}
		if b.ID == "" {
			return nil, errors.InvalidArgument(errBuildIDEmpty)
		}
	}

	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	list = append(list, input.Builds...)
	if err := r.writeAll(ctx, list); err != nil {
		return nil, err
	}
	return &AppendOutput{Total: len(list)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	kept := list[:0]
	removed := false
	for _, b := range list {
		if b.ID == input.ID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return &DeleteOutput{Removed: false}, nil
	}

	if err := r.writeAll(ctx, kept); err != nil {
		return nil, err
	}
	return &DeleteOutput{Removed: true}, nil
}

func (r *redisRepository) readAll(ctx context.Context) ([]*wf.BuildRecord, error) {
	result, err := r.client.Get(ctx, buildsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read build list")
	}

	var list []*wf.BuildRecord
	if err := json.Unmarshal([]byte(result), &list); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build list")
	}
	return list, nil
}

func (r *redisRepository) writeAll(ctx context.Context, list []*wf.BuildRecord) error {
	if list == nil {
		list = []*wf.BuildRecord{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal build list")
	}
	if err := r.client.Set(ctx, buildsKey, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write build list")
	}
	return nil
}

// Key returns the storage key for the build list.
// Exposed for testing purposes
func Key() string {
	return buildsKey
}
