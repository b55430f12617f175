// Package catalog builds the deduplicated item catalog from the raw
// grouping document and answers identity lookups against it.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
)

// Document is the raw catalog document as fetched at startup. The wire
// name "menus" is kept for compatibility with existing documents.
type Document struct {
	Groupings []Grouping `json:"menus"`
}

// Grouping is one named collection of items in the document
type Grouping struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns,omitempty"`
	Items   []Entry  `json:"items,omitempty"`
}

// Column describes one display column of a grouping
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	// Type is one of "text", "select", "input"
	Type string `json:"type"`
	// MobileDefault arrives as the literal strings "true"/"false" in
	// hand-maintained documents; FlexBool coerces either form.
	MobileDefault FlexBool     `json:"mobileDefault"`
	Options       []FlexScalar `json:"options,omitempty"`
}

// FlexScalar is one select option, accepting a JSON number, string,
// or bool and normalizing it to its text form.
type FlexScalar string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexScalar) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = FlexScalar(stringifyField(v))
	return nil
}

// MarshalJSON implements json.Marshaler. Numeric options go back out
// as numbers so a re-serialized document keeps its original shape.
func (s FlexScalar) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseFloat(string(s), 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(s))
}

// FlexBool is a bool that also accepts the JSON strings "true"/"false"
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = FlexBool(t)
	case string:
		*b = FlexBool(strings.EqualFold(t, "true"))
	case nil:
		*b = false
	default:
		return fmt.Errorf("mobileDefault: unsupported value %v", v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Entry is one element of a grouping's item list: either an inline
// item record or a bare identity string referencing an inline record
// elsewhere in the document.
type Entry struct {
	Ref  string
	Item *RawItem
}

// UnmarshalJSON implements json.Unmarshaler
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		return json.Unmarshal(data, &e.Ref)
	}
	e.Item = &RawItem{}
	return json.Unmarshal(data, e.Item)
}

// MarshalJSON implements json.Marshaler
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Item != nil {
		return json.Marshal(e.Item)
	}
	return json.Marshal(e.Ref)
}

// RawItem is one loosely-typed item as it appears in the document.
// Known identity fields are lifted out; every other column value rides
// in Fields as display text.
type RawItem struct {
	ID       string
	Name     string
	Label    string
	Category string
	SubClass string
	Variant  wf.Variant
	Desc     string
	Fields   map[string]string
}

// UnmarshalJSON implements json.Unmarshaler
func (it *RawItem) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	for k, v := range m {
		s := stringifyField(v)
		switch k {
		case "id":
			it.ID = s
		case "name":
			it.Name = s
		case "label":
			it.Label = s
		case "category":
			it.Category = s
		case "subClass":
			it.SubClass = s
		case "variant":
			it.Variant = wf.Variant(s)
		case "desc":
			it.Desc = s
		default:
			if s == "" {
				continue
			}
			if it.Fields == nil {
				it.Fields = make(map[string]string)
			}
			it.Fields[k] = s
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (it RawItem) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(it.Fields)+7)
	for k, v := range it.Fields {
		m[k] = v
	}
	set := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	set("id", it.ID)
	set("name", it.Name)
	set("label", it.Label)
	set("category", it.Category)
	set("subClass", it.SubClass)
	set("variant", string(it.Variant))
	set("desc", it.Desc)
	return json.Marshal(m)
}

func stringifyField(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// groupingOrder is the canonical presentation order of grouping ids;
// unknown ids sort after all known ones, keeping their source order.
var groupingOrder = []string{
	"all", "kuva", "tenet", "coda",
	"warframe", "primary", "secondary", "melee",
	"pet", "sentinelweapon",
	"archwing", "archgun", "archmelee", "mech",
	"mods", "arcanes",
}

func groupingRank(id string) int {
	for i, known := range groupingOrder {
		if id == known {
			return i
		}
	}
	return len(groupingOrder)
}

// ParseDocument decodes and normalizes a raw catalog document:
// coerces column flags, resolves bare identity references against the
// dictionary of all inline records, tags items of variant-only
// groupings, and orders groupings canonically.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog document")
	}
	if len(doc.Groupings) == 0 {
		return nil, errors.InvalidArgument("catalog document has no groupings")
	}

	// dictionary of inline records across the whole document, built
	// before any reference is resolved
	dict := make(map[string]*RawItem)
	for _, grp := range doc.Groupings {
		for _, entry := range grp.Items {
			if entry.Item != nil && entry.Item.ID != "" {
				if _, ok := dict[entry.Item.ID]; !ok {
					dict[entry.Item.ID] = entry.Item
				}
			}
		}
	}

	for gi := range doc.Groupings {
		grp := &doc.Groupings[gi]
		resolved := grp.Items[:0]
		for _, entry := range grp.Items {
			if entry.Item == nil {
				target, ok := dict[entry.Ref]
				if !ok {
					// dangling reference, nothing to resolve against
					continue
				}
				clone := *target
				entry = Entry{Item: &clone}
			}
			resolved = append(resolved, entry)
		}
		grp.Items = resolved
	}

	// tag only after every reference is resolved; tagging mutates the
	// dict-shared inline records, and a clone taken mid-pass would
	// otherwise inherit a tag its own grouping never applied
	for gi := range doc.Groupings {
		grp := &doc.Groupings[gi]
		if !wf.IsVariantGrouping(grp.ID) {
			continue
		}
		for _, entry := range grp.Items {
			entry.Item.Variant = wf.Variant(grp.ID)
		}
	}

	sort.SliceStable(doc.Groupings, func(i, j int) bool {
		return groupingRank(doc.Groupings[i].ID) < groupingRank(doc.Groupings[j].ID)
	})

	return &doc, nil
}
