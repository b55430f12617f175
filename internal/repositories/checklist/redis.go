package checklist

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/wftrack/loadout-api/internal/errors"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
)

const (
	checkedKeyPrefix = "wf:checked:"
	valueKeyPrefix   = "wf:val:"

	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis checklist repository
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

// NewRedis creates a new Redis-backed checklist repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) GetChecked(ctx context.Context, input GetCheckedInput) (*GetCheckedOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, checkedKeyPrefix+input.ItemID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCheckedOutput{Checked: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to read checked state for %s", input.ItemID)
	}

	checked, err := strconv.ParseBool(result)
	if err != nil {
		// corrupt value reads as unchecked, matching the lenient
		// parse-or-default behavior of the stored format
		return &GetCheckedOutput{Checked: false}, nil
	}
	return &GetCheckedOutput{Checked: checked}, nil
}

func (r *redisRepository) SetChecked(ctx context.Context, input SetCheckedInput) (*SetCheckedOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	value := strconv.FormatBool(input.Checked)
	if err := r.client.Set(ctx, checkedKeyPrefix+input.ItemID, value, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write checked state for %s", input.ItemID)
	}
	return &SetCheckedOutput{}, nil
}

func (r *redisRepository) BulkCheck(ctx context.Context, input BulkCheckInput) (*BulkCheckOutput, error) {
	if len(input.ItemIDs) == 0 {
		return &BulkCheckOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, id := range input.ItemIDs {
		if id == "" {
			return nil, errors.InvalidArgument(errItemIDEmpty)
		}
		pipe.Set(ctx, checkedKeyPrefix+id, "true", 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to bulk-check items")
	}
	return &BulkCheckOutput{Updated: len(input.ItemIDs)}, nil
}

func (r *redisRepository) GetValue(ctx context.Context, input GetValueInput) (*GetValueOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}
	if input.FieldKey == "" {
		return nil, errors.InvalidArgument("field key cannot be empty")
	}

	key := valueKeyPrefix + input.ItemID + ":" + input.FieldKey
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetValueOutput{Value: input.Default}, nil
		}
		return nil, errors.Wrapf(err, "failed to read value for %s", key)
	}

	var value string
	if err := json.Unmarshal([]byte(result), &value); err != nil {
		return &GetValueOutput{Value: input.Default}, nil
	}
	return &GetValueOutput{Value: value}, nil
}

func (r *redisRepository) SetValue(ctx context.Context, input SetValueInput) (*SetValueOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}
	if input.FieldKey == "" {
		return nil, errors.InvalidArgument("field key cannot be empty")
	}

	data, err := json.Marshal(input.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal value")
	}

	key := valueKeyPrefix + input.ItemID + ":" + input.FieldKey
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write value for %s", key)
	}
	return &SetValueOutput{}, nil
}

// CheckedKey returns the storage key for an item's checkbox state.
// Exposed for testing purposes
func CheckedKey(itemID string) string {
	return checkedKeyPrefix + itemID
}

// ValueKey returns the storage key for a per-field value.
// Exposed for testing purposes
func ValueKey(itemID, fieldKey string) string {
	return valueKeyPrefix + itemID + ":" + fieldKey
}
