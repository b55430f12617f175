package todo

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
)

const todoKey = "wf:todo:todo:list"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis TODO repository
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

// NewRedis creates a new Redis-backed TODO repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Entries: list}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument("entry cannot be nil")
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument("entry ID cannot be empty")
	}

	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, e := range list {
		if e.ID == input.Entry.ID {
			list[i] = input.Entry
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, input.Entry)
	}

	if err := r.writeAll(ctx, list); err != nil {
		return nil, err
	}
	return &PutOutput{Entry: input.Entry}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("entry ID cannot be empty")
	}

	list, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	kept := list[:0]
	removed := false
	for _, e := range list {
		if e.ID == input.ID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if removed {
		if err := r.writeAll(ctx, kept); err != nil {
			return nil, err
		}
	}
	return &DeleteOutput{Removed: removed}, nil
}

func (r *redisRepository) readAll(ctx context.Context) ([]*wf.TodoEntry, error) {
	result, err := r.client.Get(ctx, todoKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read todo list")
	}

	var list []*wf.TodoEntry
	if err := json.Unmarshal([]byte(result), &list); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal todo list")
	}
	return list, nil
}

func (r *redisRepository) writeAll(ctx context.Context, list []*wf.TodoEntry) error {
	if list == nil {
		list = []*wf.TodoEntry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal todo list")
	}
	if err := r.client.Set(ctx, todoKey, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write todo list")
	}
	return nil
}
