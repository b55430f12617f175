// Package wishlist implements the acquisition wish-list orchestrator.
// Entries reference catalog items loosely; an unknown item is allowed
// but a known one has its display name canonicalized on save.
package wishlist

//go:generate mockgen -destination=mock/mock_service.go -package=wishlistmock github.com/wftrack/loadout-api/internal/orchestrators/wishlist Service

import (
	"context"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	wishrepo "github.com/wftrack/loadout-api/internal/repositories/wishlist"
)

// Service defines the interface for wish-list operations
type Service interface {
	// ListEntries returns the full wish list
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// PutEntry upserts an entry; a missing ID gets a fresh one
	PutEntry(ctx context.Context, input *PutEntryInput) (*PutEntryOutput, error)

	// DeleteEntry removes an entry by ID; idempotent
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
}

// ListEntriesInput defines the input for listing wish entries
type ListEntriesInput struct{}

// ListEntriesOutput defines the output for listing wish entries
type ListEntriesOutput struct {
	Entries []*wf.WishEntry
}

// PutEntryInput defines the input for upserting a wish entry
type PutEntryInput struct {
	Entry *wf.WishEntry
}

// PutEntryOutput defines the output for upserting a wish entry
type PutEntryOutput struct {
	Entry *wf.WishEntry
}

// DeleteEntryInput defines the input for deleting a wish entry
type DeleteEntryInput struct {
	ID string
}

// DeleteEntryOutput defines the output for deleting a wish entry
type DeleteEntryOutput struct {
	Removed bool
}

// Config holds the dependencies for the wish-list orchestrator
type Config struct {
	Repository  wishrepo.Repository
	Catalog     *catalog.Index
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo    wishrepo.Repository
	catalog *catalog.Index
	idGen   idgen.Generator
}

// NewOrchestrator creates a new wish-list orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) ListEntries(ctx context.Context, _ *ListEntriesInput) (*ListEntriesOutput, error) {
	out, err := o.repo.List(ctx, wishrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wish entries")
	}
	return &ListEntriesOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) PutEntry(ctx context.Context, input *PutEntryInput) (*PutEntryOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.InvalidArgument("entry is required")
	}

	entry := *input.Entry
	if entry.ID == "" {
		entry.ID = o.idGen.Generate()
	}
	if entry.Have < 0 || entry.Max < 0 {
		return nil, errors.InvalidArgument("counts cannot be negative")
	}
	if rec, ok := o.catalog.Lookup(entry.Item); ok {
		entry.Item = rec.DisplayName()
	}

	out, err := o.repo.Put(ctx, wishrepo.PutInput{Entry: &entry})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save wish entry")
	}
	return &PutEntryOutput{Entry: out.Entry}, nil
}

func (o *orchestrator) DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("entry ID cannot be empty")
	}

	out, err := o.repo.Delete(ctx, wishrepo.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete wish entry")
	}
	return &DeleteEntryOutput{Removed: out.Removed}, nil
}
