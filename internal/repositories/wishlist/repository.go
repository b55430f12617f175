// Package wishlist provides the interface for wish-list persistence
package wishlist

import (
	"context"

	"github.com/wftrack/loadout-api/internal/entities/wf"
)

// Repository owns the persisted wish list. List applies the single
// documented back-compat shim: a legacy "qty" field becomes Max when
// Max is absent.
type Repository interface {
	// List retrieves all wish entries, migrated to the current shape
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Put upserts one entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes an entry by ID; idempotent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing wish entries
type ListInput struct{}

// ListOutput defines the output for listing wish entries
type ListOutput struct {
	Entries []*wf.WishEntry
}

// PutInput defines the input for upserting a wish entry
type PutInput struct {
	Entry *wf.WishEntry
}

// PutOutput defines the output for upserting a wish entry
type PutOutput struct {
	Entry *wf.WishEntry
}

// DeleteInput defines the input for deleting a wish entry
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a wish entry
type DeleteOutput struct {
	Removed bool
}
