// Package archive implements whole-tracker backup and restore: the
// full persisted key space as one portable JSON document.
package archive

//go:generate mockgen -destination=mock/mock_service.go -package=archivemock github.com/wftrack/loadout-api/internal/orchestrators/archive Service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/wftrack/loadout-api/internal/errors"
	archiverepo "github.com/wftrack/loadout-api/internal/repositories/archive"
)

// Service defines the interface for backup and restore operations
type Service interface {
	// Export serializes every tracker-owned key into one JSON document
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import restores a previously exported document
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// Clear deletes every tracker-owned key
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)
}

// ExportInput defines the input for exporting the tracker state
type ExportInput struct{}

// ExportOutput defines the output for exporting the tracker state
type ExportOutput struct {
	// Payload is the JSON document mapping storage keys to raw values
	Payload []byte
	Keys    int
}

// ImportInput defines the input for restoring tracker state
type ImportInput struct {
	Payload []byte
}

// ImportOutput defines the output for restoring tracker state
type ImportOutput struct {
	Imported int
	Skipped  int
}

// ClearInput defines the input for clearing tracker state
type ClearInput struct{}

// ClearOutput defines the output for clearing tracker state
type ClearOutput struct {
	Removed int
}

// Config holds the dependencies for the archive orchestrator
type Config struct {
	Repository archiverepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type orchestrator struct {
	repo archiverepo.Repository
}

// NewOrchestrator creates a new archive orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{repo: cfg.Repository}, nil
}

func (o *orchestrator) Export(ctx context.Context, _ *ExportInput) (*ExportOutput, error) {
	out, err := o.repo.Export(ctx, archiverepo.ExportInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to export tracker state")
	}

	payload, err := json.Marshal(out.Entries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export")
	}

	return &ExportOutput{Payload: payload, Keys: len(out.Entries)}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil || len(input.Payload) == 0 {
		return nil, errors.InvalidArgument("import payload is empty")
	}

	var entries map[string]string
	if err := json.Unmarshal(input.Payload, &entries); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse archive payload")
	}
	if len(entries) == 0 {
		return nil, errors.InvalidArgument("archive payload has no entries")
	}

	out, err := o.repo.Import(ctx, archiverepo.ImportInput{Entries: entries})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore tracker state")
	}

	slog.Info("archive restored", "imported", out.Imported, "skipped", out.Skipped)

	return &ImportOutput{Imported: out.Imported, Skipped: out.Skipped}, nil
}

func (o *orchestrator) Clear(ctx context.Context, _ *ClearInput) (*ClearOutput, error) {
	out, err := o.repo.Clear(ctx, archiverepo.ClearInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear tracker state")
	}

	slog.Info("tracker state cleared", "removed", out.Removed)

	return &ClearOutput{Removed: out.Removed}, nil
}
