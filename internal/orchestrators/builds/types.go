package builds

import (
	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/rules"
)

// ListBuildsInput defines the input for listing builds
type ListBuildsInput struct{}

// ListBuildsOutput defines the output for listing builds
type ListBuildsOutput struct {
	Builds []*BuildView
}

// BuildView pairs a record with the slot layout resolved for its
// current category, so the editor can size its inputs without
// re-deriving the rules client-side.
type BuildView struct {
	Build *wf.BuildRecord  `json:"build"`
	Slots rules.SlotConfig `json:"slots"`
}

// CreateBuildInput defines the input for creating a build template
type CreateBuildInput struct{}

// CreateBuildOutput defines the output for creating a build template
type CreateBuildOutput struct {
	Build *wf.BuildRecord
	Slots rules.SlotConfig
}

// SaveBuildInput defines the input for saving a build
type SaveBuildInput struct {
	Build *wf.BuildRecord
}

// SaveBuildOutput defines the output for saving a build
type SaveBuildOutput struct {
	Build *wf.BuildRecord
	Slots rules.SlotConfig
}

// DeleteBuildInput defines the input for deleting a build
type DeleteBuildInput struct {
	ID string
}

// DeleteBuildOutput defines the output for deleting a build
type DeleteBuildOutput struct {
	Removed bool
}

// ImportBuildsInput defines the input for importing externally
// exported builds. Payload is the raw pasted JSON text.
type ImportBuildsInput struct {
	Payload string
}

// ImportBuildsOutput defines the output for importing builds
type ImportBuildsOutput struct {
	Builds []*wf.BuildRecord
}
