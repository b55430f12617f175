// Package todo provides the interface for TODO-list persistence
package todo

import (
	"context"

	"github.com/wftrack/loadout-api/internal/entities/wf"
)

// Repository owns the persisted TODO list (whole-list rewrite on
// every change, like the other list-valued stores)
type Repository interface {
	// List retrieves all TODO entries
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Put upserts one entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes an entry by ID; idempotent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing TODO entries
type ListInput struct{}

// ListOutput defines the output for listing TODO entries
type ListOutput struct {
	Entries []*wf.TodoEntry
}

// PutInput defines the input for upserting a TODO entry
type PutInput struct {
	Entry *wf.TodoEntry
}

// PutOutput defines the output for upserting a TODO entry
type PutOutput struct {
	Entry *wf.TodoEntry
}

// DeleteInput defines the input for deleting a TODO entry
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a TODO entry
type DeleteOutput struct {
	Removed bool
}
