package wf

// Category is the closed set of item categories the slot rules know
// about. Values double as the display titles used by the catalog
// document, so category inheritance from grouping titles feeds the
// resolver directly.
type Category string

// Known categories
const (
	CategoryWarframe       Category = "Warframe"
	CategoryPrimary        Category = "Primary"
	CategorySecondary      Category = "Secondary"
	CategoryMelee          Category = "Melee"
	CategorySentinelWeapon Category = "Sentinel Weapon"
	CategoryCompanion      Category = "Companion"
	CategoryArchwing       Category = "Archwing"
	CategoryArchgun        Category = "Archgun"
	CategoryArchmelee      Category = "Archmelee"
	CategoryNecramech      Category = "Necramech"
)

// CategoryUndetermined is the placeholder stored on a build whose item
// has no catalog match.
const CategoryUndetermined Category = "(undetermined)"

// String returns the display form of the category
func (c Category) String() string {
	return string(c)
}
