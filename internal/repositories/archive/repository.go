// Package archive provides whole-keyspace export, import, and clear
// for every key the tracker owns.
package archive

import "context"

// Repository moves the raw persisted key space in and out as one JSON
// object, without interpreting individual values
type Repository interface {
	// Export returns every tracker-owned key with its raw stored value
	Export(ctx context.Context, input ExportInput) (*ExportOutput, error)

	// Import writes entries back; keys outside the tracker prefix are
	// ignored, not an error
	Import(ctx context.Context, input ImportInput) (*ImportOutput, error)

	// Clear deletes every tracker-owned key
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// ExportInput defines the input for exporting the key space
type ExportInput struct{}

// ExportOutput defines the output for exporting the key space
type ExportOutput struct {
	Entries map[string]string
}

// ImportInput defines the input for importing a key space dump
type ImportInput struct {
	Entries map[string]string
}

// ImportOutput defines the output for importing a key space dump
type ImportOutput struct {
	Imported int
	Skipped  int
}

// ClearInput defines the input for clearing the key space
type ClearInput struct{}

// ClearOutput defines the output for clearing the key space
type ClearOutput struct {
	Removed int
}
