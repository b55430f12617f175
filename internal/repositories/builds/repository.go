// Package builds provides the interface for build-record persistence
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/wftrack/loadout-api/internal/repositories/builds Repository

import (
	"context"

	"github.com/wftrack/loadout-api/internal/entities/wf"
)

// Repository owns the persisted list of build records. The list is
// read in full, mutated in memory, and written back in full on every
// change; last writer wins.
type Repository interface {
	// List retrieves all persisted build records
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save upserts one record and rewrites the whole list
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Append adds records to the end of the list (imports always
	// create new records, never update existing ones)
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Delete removes a record by ID; deleting a nonexistent ID is a
	// no-op, not an error
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing build records
type ListInput struct{}

// ListOutput defines the output for listing build records
type ListOutput struct {
	Builds []*wf.BuildRecord
}

// SaveInput defines the input for saving a build record
type SaveInput struct {
	Build *wf.BuildRecord
}

// SaveOutput defines the output for saving a build record
type SaveOutput struct {
	Build *wf.BuildRecord
}

// AppendInput defines the input for appending build records
type AppendInput struct {
	Builds []*wf.BuildRecord
}

// AppendOutput defines the output for appending build records
type AppendOutput struct {
	// Total is the list length after the append
	Total int
}

// DeleteInput defines the input for deleting a build record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build record
type DeleteOutput struct {
	// Removed is false when the ID matched nothing
	Removed bool
}
