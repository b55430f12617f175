// Package wf implements the loadout tracker entities.
// NOTE: These are data-only structs. Catalog merging lives in
// internal/catalog and slot resolution in internal/rules.
package wf

// Variant identifies a weapon-upgrade lineage. Items inside a
// variant-only grouping carry the grouping id as their variant tag.
type Variant string

// Variant lineages
const (
	VariantKuva  Variant = "kuva"
	VariantTenet Variant = "tenet"
	VariantCoda  Variant = "coda"
)

// IsVariantGrouping reports whether a grouping id denotes a
// variant-only grouping.
func IsVariantGrouping(id string) bool {
	switch Variant(id) {
	case VariantKuva, VariantTenet, VariantCoda:
		return true
	default:
		return false
	}
}

// ItemRecord is one merged catalog entry. Exactly one record exists
// per ID after the catalog is built.
type ItemRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Label    string  `json:"label,omitempty"`
	Category string  `json:"category,omitempty"`
	SubClass string  `json:"subClass,omitempty"`
	Variant  Variant `json:"variant,omitempty"`
	Desc     string  `json:"desc,omitempty"`

	// Fields carries the category-specific display columns
	// (rarity, polarity, acquisition, ...) that vary per grouping.
	Fields map[string]string `json:"fields,omitempty"`
}

// DisplayName returns the preferred display text: name, then label,
// then the raw id.
func (r *ItemRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}
