// Package rules holds the pure slot-layout rules. Everything here is
// deterministic and side-effect-free; Resolve runs on every build
// render and every category change.
package rules

import (
	"strings"

	"github.com/wftrack/loadout-api/internal/entities/wf"
)

// SlotConfig is the resolved capacity for each slot kind of a build.
// Derived, never persisted.
type SlotConfig struct {
	Mods    int `json:"mods"`
	Aura    int `json:"aura"`
	Stance  int `json:"stance"`
	Exilus  int `json:"exilus"`
	Arcanes int `json:"arcanes"`
}

// sentinelMarker distinguishes sentinel companions (and their weapons)
// from pets by sub-classification. Substring match, case-sensitive.
const sentinelMarker = "Sentinel"

var (
	warframeSlots       = SlotConfig{Mods: 8, Aura: 1, Stance: 0, Exilus: 1, Arcanes: 2}
	primarySlots        = SlotConfig{Mods: 8, Aura: 0, Stance: 0, Exilus: 1, Arcanes: 1}
	secondarySlots      = SlotConfig{Mods: 8, Aura: 0, Stance: 0, Exilus: 1, Arcanes: 1}
	meleeSlots          = SlotConfig{Mods: 8, Aura: 0, Stance: 1, Exilus: 1, Arcanes: 1}
	sentinelWeaponSlots = SlotConfig{Mods: 9, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	sentinelSlots       = SlotConfig{Mods: 9, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	petSlots            = SlotConfig{Mods: 10, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	archwingSlots       = SlotConfig{Mods: 8, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	archgunSlots        = SlotConfig{Mods: 9, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	archmeleeSlots      = SlotConfig{Mods: 8, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}
	necramechSlots      = SlotConfig{Mods: 12, Aura: 0, Stance: 0, Exilus: 0, Arcanes: 0}

	// defaultSlots covers unknown and undetermined categories
	defaultSlots = SlotConfig{Mods: 8, Aura: 0, Stance: 0, Exilus: 1, Arcanes: 2}
)

// Resolve maps a category and sub-classification to its slot layout.
// Unknown categories fall back to the default template.
func Resolve(category wf.Category, subClass string) SlotConfig {
	switch category {
	case wf.CategoryWarframe:
		return warframeSlots
	case wf.CategoryPrimary:
		return primarySlots
	case wf.CategorySecondary:
		return secondarySlots
	case wf.CategoryMelee:
		return meleeSlots
	case wf.CategorySentinelWeapon:
		return sentinelWeaponSlots
	case wf.CategoryCompanion:
		return CompanionSlots(subClass)
	case wf.CategoryArchwing:
		return archwingSlots
	case wf.CategoryArchgun:
		return archgunSlots
	case wf.CategoryArchmelee:
		return archmeleeSlots
	case wf.CategoryNecramech:
		return necramechSlots
	default:
		return defaultSlots
	}
}

// CompanionSlots picks between the sentinel and the generic pet
// template by sub-classification.
func CompanionSlots(subClass string) SlotConfig {
	if strings.Contains(subClass, sentinelMarker) {
		return sentinelSlots
	}
	return petSlots
}

// VariantElements lists the selectable variant-bonus texts per
// lineage. Only meaningful for items carrying that variant tag.
var VariantElements = map[wf.Variant][]string{
	wf.VariantKuva: {
		"+60% Heat", "+60% Cold", "+60% Electricity", "+60% Toxin",
		"+60% Radiation", "+60% Magnetic", "+60% Impact",
	},
	wf.VariantTenet: {
		"+60% Heat", "+60% Cold", "+60% Electricity", "+60% Toxin",
		"+60% Radiation", "+60% Magnetic", "+60% Impact",
	},
	wf.VariantCoda: {
		"+60% Heat", "+60% Cold", "+60% Electricity", "+60% Toxin",
		"+60% Radiation", "+60% Magnetic", "+60% Impact",
	},
}
