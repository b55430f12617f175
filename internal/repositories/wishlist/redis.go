package wishlist

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
)

const wishKey = "wf:wish:wishlist:list"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis wish-list repository
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

// NewRedis creates a new Redis-backed wish-list repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// storedWish tolerates the legacy persisted shape: older records wrote
// the target count as "qty" and may omit "have".
type storedWish struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Have    *int   `json:"have,omitempty"`
	Max     *int   `json:"max,omitempty"`
	Qty     *int   `json:"qty,omitempty"`
	Note    string `json:"note"`
	Checked bool   `json:"checked"`
}

func (w *storedWish) toEntry() *wf.WishEntry {
	entry := &wf.WishEntry{
		ID:      w.ID,
		Item:    w.Item,
		Note:    w.Note,
		Checked: w.Checked,
	}
	switch {
	case w.Max != nil:
		entry.Max = *w.Max
	case w.Qty != nil:
		entry.Max = *w.Qty
	}
	if w.Have != nil {
		entry.Have = *w.Have
	}
	return entry
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

func (r *redisRepository) readAll(ctx context.Context) ([]*wf.WishEntry, error) {
	result, err := r.client.Get(ctx, wishKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read wish list")
	}

	var stored []*storedWish
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal wish list")
	}

	list := make([]*wf.WishEntry, 0, len(stored))
	for _, w := range stored {
		list = append(list, w.toEntry())
	}
	return list, nil
}

func (r *redisRepository) writeAll(ctx context.Context, list []*wf.WishEntry) error {
	if list == nil {
		list = []*wf.WishEntry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal wish list")
	}
	if err := r.client.Set(ctx, wishKey, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write wish list")
	}
	return nil
}

// Key returns the storage key for the wish list.
// Exposed for testing purposes
func Key() string {
	return wishKey
}
