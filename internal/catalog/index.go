package catalog

import (
	"sort"
	"strings"

	"github.com/wftrack/loadout-api/internal/entities/wf"
)

// Index is the deduplicated, identity-keyed catalog built once from
// the normalized document. One ItemRecord exists per id; later
// occurrences of an id only fill fields the first occurrence left
// empty.
type Index struct {
	byID  map[string]*wf.ItemRecord
	order []string

	// ids seen in at least one non-variant grouping; everything else
	// stays out of the cross-grouping search aggregate
	searchable map[string]bool
}

// BuildIndex flattens the document's groupings into the catalog
func BuildIndex(doc *Document) *Index {
	ix := &Index{
		byID:       make(map[string]*wf.ItemRecord),
		searchable: make(map[string]bool),
	}

	for _, grp := range doc.Groupings {
		variantGrouping := wf.IsVariantGrouping(grp.ID)
		for _, entry := range grp.Items {
			raw := entry.Item
			if raw == nil || raw.ID == "" {
				continue
			}
			if !variantGrouping {
				ix.searchable[raw.ID] = true
			}

			// every occurrence inherits the grouping title as its
			// category when the record carries none; variant-only
			// groupings never donate theirs
			category := raw.Category
			if category == "" && !variantGrouping {
				category = grp.Title
			}

			base, seen := ix.byID[raw.ID]
			if !seen {
				rec := recordFromRaw(raw)
				rec.Category = category
				ix.byID[raw.ID] = rec
				ix.order = append(ix.order, raw.ID)
				continue
			}

			mergeInto(base, raw, category)
		}
	}

	return ix
}

func recordFromRaw(raw *RawItem) *wf.ItemRecord {
	rec := &wf.ItemRecord{
		ID:       raw.ID,
		Name:     raw.Name,
		Label:    raw.Label,
		Category: raw.Category,
		SubClass: raw.SubClass,
		Variant:  raw.Variant,
		Desc:     raw.Desc,
	}
	if len(raw.Fields) > 0 {
		rec.Fields = make(map[string]string, len(raw.Fields))
		for k, v := range raw.Fields {
			rec.Fields[k] = v
		}
	}
	return rec
}

// mergeInto fills fields the base record is missing. Fields already
// set on the base are never overwritten, with one exception: a
// variant-only category gives way to a real category once one shows
// up in a later grouping. category is the incoming occurrence's
// effective category, title inheritance already applied.
func mergeInto(base *wf.ItemRecord, raw *RawItem, category string) {
	fillString(&base.Name, raw.Name)
	fillString(&base.Label, raw.Label)
	fillString(&base.SubClass, raw.SubClass)
	fillString(&base.Desc, raw.Desc)
	if base.Variant == "" {
		base.Variant = raw.Variant
	}

	if base.Category == "" {
		base.Category = category
	} else if wf.IsVariantGrouping(base.Category) &&
		category != "" && !wf.IsVariantGrouping(category) {
		base.Category = category
	}

	for k, v := range raw.Fields {
		if v == "" {
			continue
		}
		if base.Fields == nil {
			base.Fields = make(map[string]string)
		}
		if base.Fields[k] == "" {
			base.Fields[k] = v
		}
	}
}

func fillString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Len returns the number of distinct items in the catalog
func (ix *Index) Len() int {
	return len(ix.order)
}

// Get returns the record for an id
func (ix *Index) Get(id string) (*wf.ItemRecord, bool) {
	rec, ok := ix.byID[id]
	return rec, ok
}

// Items returns all records in catalog (source) order
func (ix *Index) Items() []*wf.ItemRecord {
	out := make([]*wf.ItemRecord, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.byID[id])
	}
	return out
}

// Lookup resolves a display name against the catalog: exact
// case-insensitive equality with an entry's name or label, first match
// in catalog order. No fuzzy matching.
func (ix *Index) Lookup(name string) (*wf.ItemRecord, bool) {
	if name == "" {
		return nil, false
	}
	target := strings.ToLower(name)
	for _, id := range ix.order {
		rec := ix.byID[id]
		if strings.ToLower(rec.Name) == target || strings.ToLower(rec.Label) == target {
			return rec, true
		}
	}
	return nil, false
}

// LookupAny resolves like Lookup but also accepts the raw id as a
// match, for bulk name imports.
func (ix *Index) LookupAny(name string) (*wf.ItemRecord, bool) {
	if rec, ok := ix.Lookup(name); ok {
		return rec, true
	}
	target := strings.ToLower(name)
	for _, id := range ix.order {
		if strings.ToLower(id) == target {
			return ix.byID[id], true
		}
	}
	return nil, false
}

// Search returns the cross-grouping aggregate: every record that
// appeared in at least one non-variant grouping, sorted by display
// name.
func (ix *Index) Search() []*wf.ItemRecord {
	out := make([]*wf.ItemRecord, 0, len(ix.order))
	for _, id := range ix.order {
		if ix.searchable[id] {
			out = append(out, ix.byID[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}

// Suggestions returns the display names of every catalog entry in
// catalog order, for editor autocomplete.
func (ix *Index) Suggestions() []string {
	out := make([]string, 0, len(ix.order))
	for _, id := range ix.order {
		rec := ix.byID[id]
		if rec.Label != "" {
			out = append(out, rec.Label)
		} else {
			out = append(out, rec.DisplayName())
		}
	}
	return out
}
