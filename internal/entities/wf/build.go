package wf

// BuildRecord is one persisted user-authored loadout. Category and
// Type are kept in sync; both are re-derived from the referenced
// item's catalog category on every save.
//
// Aura doubles as the stance value for melee-category builds. The two
// slot kinds are mutually exclusive per category and share one stored
// field; splitting them would break existing persisted records.
type BuildRecord struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Type     Category `json:"type"`
	Item     string   `json:"item"`
	SubClass string   `json:"subClass,omitempty"`
	Name     string   `json:"name"`
	Element  string   `json:"element,omitempty"`
	Arcanes  []string `json:"arcanes"`
	Aura     string   `json:"aura"`
	Exilus   string   `json:"exilus"`
	Mods     []string `json:"mods"`
	Note     string   `json:"note"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// TodoEntry is one persisted TODO list row
type TodoEntry struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// WishEntry is one persisted wish-list row. Legacy records stored the
// target count under "qty"; List applies the one documented rename to
// Max before the entry reaches any caller.
type WishEntry struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Have    int    `json:"have"`
	Max     int    `json:"max"`
	Note    string `json:"note"`
	Checked bool   `json:"checked"`
}
