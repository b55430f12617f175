package builds

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	buildrepo "github.com/wftrack/loadout-api/internal/repositories/builds"
)

// RawBuild is one loosely-typed entry of an external build export.
// Every field is optional and tolerates the wrong JSON type: a field
// that fails to decode reads as its zero value instead of rejecting
// the entry.
type RawBuild struct {
	Item    flexString  `json:"item"`
	Name    flexString  `json:"name"`
	Element flexString  `json:"element"`
	Aura    flexString  `json:"aura"`
	Stance  flexString  `json:"stance"`
	Note    flexString  `json:"note"`
	Mods    flexStrings `json:"mods"`
	Arcanes flexStrings `json:"arcanes"`
	// Exilus is either a single value or a list; list form carries
	// overflow mods after the first element
	Exilus flexStrings `json:"exilus"`

	// exilusWasList records which wire form Exilus arrived in
	exilusWasList bool
}

// UnmarshalJSON implements json.Unmarshaler. A non-object entry
// degrades to an all-empty record rather than failing the import.
func (r *RawBuild) UnmarshalJSON(data []byte) error {
	type alias RawBuild
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}
	*r = RawBuild(a)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		if raw, ok := probe["exilus"]; ok {
			r.exilusWasList = strings.HasPrefix(strings.TrimSpace(string(raw)), "[")
		}
	}
	return nil
}

// flexString decodes a JSON string, reading any other type as ""
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = ""
		return nil
	}
	*f = flexString(s)
	return nil
}

// flexStrings decodes a JSON value into a string slice: an array
// keeps its string elements (non-strings read as ""), a bare string
// becomes a one-element slice, anything else reads as empty.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var arr []flexString
	if err := json.Unmarshal(data, &arr); err == nil {
		out := make([]string, len(arr))
		for i, v := range arr {
			out[i] = string(v)
		}
		*f = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = []string{s}
		return nil
	}

	*f = nil
	return nil
}

// ParsePayload decodes the pasted import text into raw build entries.
// Empty text and malformed JSON are typed failures; nothing downstream
// runs on a failed parse.
func ParsePayload(text string) ([]*RawBuild, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.InvalidArgument("import payload is empty")
	}

	if strings.HasPrefix(trimmed, "[") {
		var entries []*RawBuild
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse import payload")
		}
		return entries, nil
	}

	var entry RawBuild
	if err := json.Unmarshal([]byte(trimmed), &entry); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse import payload")
	}
	return []*RawBuild{&entry}, nil
}

func (o *orchestrator) ImportBuilds(ctx context.Context, input *ImportBuildsInput) (*ImportBuildsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entries, err := ParsePayload(input.Payload)
	if err != nil {
		return nil, err
	}

	records := make([]*wf.BuildRecord, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			entry = &RawBuild{}
		}
		records = append(records, o.normalize(entry))
	}

	if _, err := o.repo.Append(ctx, buildrepo.AppendInput{Builds: records}); err != nil {
		return nil, errors.Wrap(err, "failed to persist imported builds")
	}

	slog.Info("builds imported", "count", len(records))

	return &ImportBuildsOutput{Builds: records}, nil
}

// normalize converts one external entry into a canonical record:
// slot arrays are reversed into internal order, exilus overflow moves
// into the mods tail, a supplied stance backfills an empty aura, and
// the item name is canonicalized against the catalog.
func (o *orchestrator) normalize(src *RawBuild) *wf.BuildRecord {
	build := &wf.BuildRecord{
		ID:        o.idGen.Generate(),
		Category:  wf.CategoryWarframe,
		Type:      wf.CategoryWarframe,
		Item:      string(src.Item),
		Name:      string(src.Name),
		Element:   string(src.Element),
		Aura:      string(src.Aura),
		Note:      strings.ReplaceAll(string(src.Note), `\n`, "\n"),
		Arcanes:   reversed(src.Arcanes),
		CreatedAt: o.clock.Now().Unix(),
	}

	// external exports list slots in the opposite order
	mods := reversed(src.Mods)

	if src.exilusWasList && len(src.Exilus) > 0 {
		// first element is the exilus slot; the rest are overflow
		// generic mods, not extra exilus slots
		build.Exilus = src.Exilus[0]
		mods = append(mods, src.Exilus[1:]...)
	} else if len(src.Exilus) == 1 {
		build.Exilus = src.Exilus[0]
	}
	build.Mods = mods

	// melee exports carry a stance where internal records use aura
	if src.Stance != "" && build.Aura == "" {
		build.Aura = string(src.Stance)
	}

	if rec, ok := o.catalog.Lookup(build.Item); ok {
		build.Item = rec.DisplayName()
		if rec.Category != "" {
			build.Category = wf.Category(rec.Category)
			build.Type = build.Category
		}
		build.SubClass = rec.SubClass
	}

	return build
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
