// Package todo implements the free-form TODO list orchestrator.
package todo

//go:generate mockgen -destination=mock/mock_service.go -package=todomock github.com/wftrack/loadout-api/internal/orchestrators/todo Service

import (
	"context"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	todorepo "github.com/wftrack/loadout-api/internal/repositories/todo"
)

// Service defines the interface for TODO-list operations
type Service interface {
	// ListEntries returns the full TODO list
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// PutEntry upserts an entry; a missing ID gets a fresh one
	PutEntry(ctx context.Context, input *PutEntryInput) (*PutEntryOutput, error)

	// DeleteEntry removes an entry by ID; idempotent
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
}

// ListEntriesInput defines the input for listing TODO entries
type ListEntriesInput struct{}

// ListEntriesOutput defines the output for listing TODO entries
type ListEntriesOutput struct {
	Entries []*wf.TodoEntry
}

// PutEntryInput defines the input for upserting a TODO entry
type PutEntryInput struct {
	Entry *wf.TodoEntry
}

// PutEntryOutput defines the output for upserting a TODO entry
type PutEntryOutput struct {
	Entry *wf.TodoEntry
}

// DeleteEntryInput defines the input for deleting a TODO entry
type DeleteEntryInput struct {
	ID string
}

// DeleteEntryOutput defines the output for deleting a TODO entry
type DeleteEntryOutput struct {
	Removed bool
}

// Config holds the dependencies for the TODO orchestrator
type Config struct {
	Repository  todorepo.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  todorepo.Repository
	idGen idgen.Generator
}

// NewOrchestrator creates a new TODO orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) ListEntries(ctx context.Context, _ *ListEntriesInput) (*ListEntriesOutput, error) {
	out, err := o.repo.List(ctx, todorepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list TODO entries")
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

	out, err := o.repo.Put(ctx, todorepo.PutInput{Entry: &entry})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save TODO entry")
	}
	return &PutEntryOutput{Entry: out.Entry}, nil
}

func (o *orchestrator) DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("entry ID cannot be empty")
	}

	out, err := o.repo.Delete(ctx, todorepo.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete TODO entry")
	}
	return &DeleteEntryOutput{Removed: out.Removed}, nil
}
