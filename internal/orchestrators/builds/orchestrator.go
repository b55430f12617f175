// Package builds implements the build-record store: the orchestrator
// that owns creation, catalog-driven revalidation, and import of
// persisted loadout builds.
package builds

//go:generate mockgen -destination=mock/mock_service.go -package=buildsmock github.com/wftrack/loadout-api/internal/orchestrators/builds Service

import (
	"context"
	"log/slog"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	"github.com/wftrack/loadout-api/internal/pkg/clock"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	buildrepo "github.com/wftrack/loadout-api/internal/repositories/builds"
	"github.com/wftrack/loadout-api/internal/rules"
)

// Service defines the interface for build operations
type Service interface {
	// ListBuilds returns every persisted build with its resolved slots
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)

	// CreateBuild returns a blank template with a fresh ID; nothing is
	// persisted until the template is saved
	CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error)

	// SaveBuild revalidates a record against the catalog and persists it
	SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error)

	// DeleteBuild removes a build by ID; idempotent
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)

	// ImportBuilds normalizes an external JSON payload into new records
	// and appends them to the persisted list
	ImportBuilds(ctx context.Context, input *ImportBuildsInput) (*ImportBuildsOutput, error)
}

// Config holds the dependencies for the builds orchestrator
type Config struct {
	Repository  buildrepo.Repository
	Catalog     *catalog.Index
	IDGenerator idgen.Generator
	Clock       clock.Clock
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
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	repo    buildrepo.Repository
	catalog *catalog.Index
	idGen   idgen.Generator
	clock   clock.Clock
}

// NewOrchestrator creates a new builds orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
	}, nil
}

func (o *orchestrator) ListBuilds(ctx context.Context, _ *ListBuildsInput) (*ListBuildsOutput, error) {
	out, err := o.repo.List(ctx, buildrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list builds")
	}

	views := make([]*BuildView, 0, len(out.Builds))
	for _, b := range out.Builds {
		views = append(views, &BuildView{
			Build: b,
			Slots: o.resolveSlots(b),
		})
	}
	return &ListBuildsOutput{Builds: views}, nil
}

func (o *orchestrator) CreateBuild(_ context.Context, _ *CreateBuildInput) (*CreateBuildOutput, error) {
	cfg := rules.Resolve(wf.CategoryWarframe, "")

	build := &wf.BuildRecord{
		ID:        o.idGen.Generate(),
		Category:  wf.CategoryWarframe,
		Type:      wf.CategoryWarframe,
		Arcanes:   make([]string, cfg.Arcanes),
		Mods:      make([]string, cfg.Mods),
		CreatedAt: o.clock.Now().Unix(),
	}

	return &CreateBuildOutput{Build: build, Slots: cfg}, nil
}

func (o *orchestrator) SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument("build ID cannot be empty")
	}

	build := cloneBuild(input.Build)
	o.revalidate(build)

	cfg := o.resolveSlots(build)
	build.Arcanes = clampSlots(build.Arcanes, cfg.Arcanes)
	build.Mods = clampSlots(build.Mods, cfg.Mods)
	if cfg.Aura == 0 && cfg.Stance == 0 {
		build.Aura = ""
	}
	if cfg.Exilus == 0 {
		build.Exilus = ""
	}

	now := o.clock.Now().Unix()
	if build.CreatedAt == 0 {
		build.CreatedAt = now
	}
	build.UpdatedAt = now

	if _, err := o.repo.Save(ctx, buildrepo.SaveInput{Build: build}); err != nil {
		return nil, errors.Wrap(err, "failed to save build")
	}

	slog.Info("build saved",
		"build_id", build.ID,
		"category", build.Category.String(),
		"item", build.Item,
	)

	return &SaveBuildOutput{Build: build, Slots: cfg}, nil
}

func (o *orchestrator) DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("build ID cannot be empty")
	}

	out, err := o.repo.Delete(ctx, buildrepo.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete build")
	}
	return &DeleteBuildOutput{Removed: out.Removed}, nil
}

// revalidate re-derives category, type, and sub-classification from
// the catalog match of the referenced item. A dangling reference is
// not an error: category falls back to the undetermined placeholder
// and the raw item text stays as typed.
func (o *orchestrator) revalidate(build *wf.BuildRecord) {
	rec, ok := o.catalog.Lookup(build.Item)
	if ok && rec.Category != "" {
		build.Category = wf.Category(rec.Category)
		build.Type = build.Category
		build.SubClass = rec.SubClass
	} else {
		build.Category = wf.CategoryUndetermined
		build.Type = wf.CategoryUndetermined
	}

	// element only means something on a variant-lineage item
	if !ok || rec.Variant == "" {
		build.Element = ""
	}
}

func (o *orchestrator) resolveSlots(build *wf.BuildRecord) rules.SlotConfig {
	subClass := build.SubClass
	if rec, ok := o.catalog.Lookup(build.Item); ok && rec.SubClass != "" {
		subClass = rec.SubClass
	}
	return rules.Resolve(build.Category, subClass)
}

// clampSlots trims trailing entries beyond the limit and pads with
// empty slots up to it
func clampSlots(slots []string, limit int) []string {
	out := make([]string, limit)
	copy(out, slots)
	return out
}

func cloneBuild(b *wf.BuildRecord) *wf.BuildRecord {
	clone := *b
	clone.Arcanes = append([]string(nil), b.Arcanes...)
	clone.Mods = append([]string(nil), b.Mods...)
	return &clone
}
