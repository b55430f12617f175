// Package checklist implements the mastery-checklist orchestrator:
// per-item checked state, per-field values, and the bulk
// check-by-names import.
package checklist

//go:generate mockgen -destination=mock/mock_service.go -package=checklistmock github.com/wftrack/loadout-api/internal/orchestrators/checklist Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/errors"
	checkrepo "github.com/wftrack/loadout-api/internal/repositories/checklist"
)

// Service defines the interface for checklist operations
type Service interface {
	// GetChecked reads the checkbox state for one item
	GetChecked(ctx context.Context, input *GetCheckedInput) (*GetCheckedOutput, error)

	// SetChecked toggles the checkbox state for one item
	SetChecked(ctx context.Context, input *SetCheckedInput) (*SetCheckedOutput, error)

	// GetValue reads a per-field value for an item
	GetValue(ctx context.Context, input *GetValueInput) (*GetValueOutput, error)

	// SetValue writes a per-field value for an item
	SetValue(ctx context.Context, input *SetValueInput) (*SetValueOutput, error)

	// ImportChecked resolves a newline-separated list of names against
	// the catalog and checks every match
	ImportChecked(ctx context.Context, input *ImportCheckedInput) (*ImportCheckedOutput, error)
}

// Config holds the dependencies for the checklist orchestrator
type Config struct {
	Repository checkrepo.Repository
	Catalog    *catalog.Index
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

	return vb.Build()
}

type orchestrator struct {
	repo    checkrepo.Repository
	catalog *catalog.Index
}

// NewOrchestrator creates a new checklist orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
	}, nil
}

func (o *orchestrator) GetChecked(ctx context.Context, input *GetCheckedInput) (*GetCheckedOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	out, err := o.repo.GetChecked(ctx, checkrepo.GetCheckedInput{ItemID: input.ItemID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read checked state")
	}
	return &GetCheckedOutput{Checked: out.Checked}, nil
}

func (o *orchestrator) SetChecked(ctx context.Context, input *SetCheckedInput) (*SetCheckedOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	_, err := o.repo.SetChecked(ctx, checkrepo.SetCheckedInput{
		ItemID:  input.ItemID,
		Checked: input.Checked,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write checked state")
	}
	return &SetCheckedOutput{}, nil
}

func (o *orchestrator) GetValue(ctx context.Context, input *GetValueInput) (*GetValueOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}
	if input.FieldKey == "" {
		return nil, errors.InvalidArgument("field key cannot be empty")
	}

	out, err := o.repo.GetValue(ctx, checkrepo.GetValueInput{
		ItemID:   input.ItemID,
		FieldKey: input.FieldKey,
		Default:  input.Default,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read field value")
	}
	return &GetValueOutput{Value: out.Value}, nil
}

func (o *orchestrator) SetValue(ctx context.Context, input *SetValueInput) (*SetValueOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}
	if input.FieldKey == "" {
		return nil, errors.InvalidArgument("field key cannot be empty")
	}

	_, err := o.repo.SetValue(ctx, checkrepo.SetValueInput{
		ItemID:   input.ItemID,
		FieldKey: input.FieldKey,
		Value:    input.Value,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write field value")
	}
	return &SetValueOutput{}, nil
}

func (o *orchestrator) ImportChecked(ctx context.Context, input *ImportCheckedInput) (*ImportCheckedOutput, error) {
	if input == nil || strings.TrimSpace(input.Payload) == "" {
		return nil, errors.InvalidArgument("import payload is empty")
	}

	var (
		ids       []string
		checked   []string
		unmatched []string
		seen      = map[string]bool{}
	)
	for _, line := range strings.Split(input.Payload, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		rec, ok := o.catalog.LookupAny(name)
		if !ok {
			unmatched = append(unmatched, name)
			continue
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		ids = append(ids, rec.ID)
		checked = append(checked, rec.DisplayName())
	}

	if len(ids) > 0 {
		if _, err := o.repo.BulkCheck(ctx, checkrepo.BulkCheckInput{ItemIDs: ids}); err != nil {
			return nil, errors.Wrap(err, "failed to persist checked items")
		}
	}

	slog.Info("checklist import",
		"matched", len(ids),
		"unmatched", len(unmatched),
	)

	return &ImportCheckedOutput{Checked: checked, Unmatched: unmatched}, nil
}
