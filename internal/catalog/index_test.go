package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/catalog"
)

type IndexTestSuite struct {
	suite.Suite
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexTestSuite))
}

func (s *IndexTestSuite) mustParse(data string) *catalog.Document {
	doc, err := catalog.ParseDocument([]byte(data))
	s.Require().NoError(err)
	return doc
}

func (s *IndexTestSuite) TestCategoryInheritedFromGroupingTitle() {
	doc := s.mustParse(`{"menus":[
		{"id":"primary","title":"Primary","items":[{"id":"braton","name":"Braton"}]},
		{"id":"kuva","title":"Kuva","items":[{"id":"kuva-bramma","name":"Kuva Bramma"}]}
	]}`)

	ix := catalog.BuildIndex(doc)

	braton, ok := ix.Get("braton")
	s.Require().True(ok)
	s.Assert().Equal("Primary", braton.Category)

	// variant-only groupings never donate their title as a category
	bramma, ok := ix.Get("kuva-bramma")
	s.Require().True(ok)
	s.Assert().Empty(bramma.Category)
}

func (s *IndexTestSuite) TestMergeFillsOnlyEmptyFields() {
	doc := s.mustParse(`{"menus":[
		{"id":"primary","title":"Primary","items":[
			{"id":"braton","name":"Braton","rarity":"common"}
		]},
		{"id":"mods","title":"Mods","items":[
			{"id":"braton","name":"Braton Prime","desc":"rifle","rarity":"rare","polarity":"madurai"}
		]}
	]}`)

	ix := catalog.BuildIndex(doc)
	s.Assert().Equal(1, ix.Len())

	rec, ok := ix.Get("braton")
	s.Require().True(ok)
	// first occurrence wins for fields it already set
	s.Assert().Equal("Braton", rec.Name)
	s.Assert().Equal("Primary", rec.Category)
	s.Assert().Equal("common", rec.Fields["rarity"])
	// missing fields are filled from the later occurrence
	s.Assert().Equal("rifle", rec.Desc)
	s.Assert().Equal("madurai", rec.Fields["polarity"])
}

func (s *IndexTestSuite) TestMergeIdempotence() {
	grouping := `{"id":"primary","title":"Primary","items":[
		{"id":"braton","name":"Braton","rarity":"common"},
		{"id":"soma","name":"Soma"}
	]}`

	once := catalog.BuildIndex(s.mustParse(`{"menus":[` + grouping + `]}`))
	twice := catalog.BuildIndex(s.mustParse(`{"menus":[` + grouping + `,` + grouping + `]}`))

	s.Assert().Equal(once.Len(), twice.Len())
	for _, rec := range once.Items() {
		dup, ok := twice.Get(rec.ID)
		s.Require().True(ok)
		s.Assert().Equal(rec, dup)
	}
}

func (s *IndexTestSuite) TestVariantCategoryOverride() {
	doc := s.mustParse(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[
			{"id":"x","name":"Kuva Hek","category":"kuva"}
		]},
		{"id":"primary","title":"Primary","items":[
			{"id":"x","category":"Primary Weapon"}
		]}
	]}`)

	rec, ok := catalog.BuildIndex(doc).Get("x")
	s.Require().True(ok)
	s.Assert().Equal("Primary Weapon", rec.Category)
}

func (s *IndexTestSuite) TestVariantCategoryNotClobberedByEmpty() {
	// a later occurrence in another variant-only grouping carries no
	// effective category and must not disturb the stored one
	doc := s.mustParse(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[
			{"id":"x","name":"Kuva Hek","category":"kuva"}
		]},
		{"id":"tenet","title":"Tenet","items":[
			{"id":"x","desc":"shotgun"}
		]}
	]}`)

	rec, ok := catalog.BuildIndex(doc).Get("x")
	s.Require().True(ok)
	s.Assert().Equal("kuva", rec.Category)
	s.Assert().Equal("shotgun", rec.Desc)
}

func (s *IndexTestSuite) TestLaterGroupingTitleInheritance() {
	// first seen in a variant-only grouping with no inline category;
	// the later real grouping's title becomes the category even though
	// that occurrence is a bare reference
	doc := s.mustParse(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[
			{"id":"kuva-bramma","name":"Kuva Bramma"}
		]},
		{"id":"primary","title":"Primary Weapons","items":["kuva-bramma"]}
	]}`)

	rec, ok := catalog.BuildIndex(doc).Get("kuva-bramma")
	s.Require().True(ok)
	s.Assert().Equal("Primary Weapons", rec.Category)
	s.Assert().Equal("kuva", string(rec.Variant))
}

func (s *IndexTestSuite) TestTitleParticipatesInVariantOverride() {
	// an inline variant-only category gives way to a later grouping's
	// inherited title, not just to an inline category
	doc := s.mustParse(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[
			{"id":"x","name":"Kuva Hek","category":"kuva"}
		]},
		{"id":"secondary","title":"Secondary","items":["x"]}
	]}`)

	rec, ok := catalog.BuildIndex(doc).Get("x")
	s.Require().True(ok)
	s.Assert().Equal("Secondary", rec.Category)
}

func (s *IndexTestSuite) TestLookup() {
	doc := s.mustParse(`{"menus":[
		{"id":"primary","title":"Primary","items":[
			{"id":"1","name":"Kuva Bramma"},
			{"id":"2","label":"Serration"},
			{"id":"3","name":"kuva bramma","desc":"decoy"}
		]}
	]}`)
	ix := catalog.BuildIndex(doc)

	testCases := []struct {
		name    string
		query   string
		wantID  string
		wantHit bool
	}{
		{name: "case-insensitive name match", query: "kUvA bRaMmA", wantID: "1", wantHit: true},
		{name: "label match", query: "serration", wantID: "2", wantHit: true},
		{name: "first in catalog order wins", query: "Kuva Bramma", wantID: "1", wantHit: true},
		{name: "no fuzzy matching", query: "Kuva Bramm", wantHit: false},
		{name: "miss", query: "Acceltra", wantHit: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, ok := ix.Lookup(tc.query)
			s.Assert().Equal(tc.wantHit, ok)
			if tc.wantHit {
				s.Assert().Equal(tc.wantID, rec.ID)
			}
		})
	}
}

func (s *IndexTestSuite) TestLookupAnyAcceptsID() {
	doc := s.mustParse(`{"menus":[
		{"id":"primary","title":"Primary","items":[{"id":"braton-prime"}]}
	]}`)
	ix := catalog.BuildIndex(doc)

	rec, ok := ix.LookupAny("Braton-Prime")
	s.Require().True(ok)
	s.Assert().Equal("braton-prime", rec.ID)
}

func (s *IndexTestSuite) TestSearchAggregate() {
	doc := s.mustParse(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[
			{"id":"kuva-only","name":"Kuva Ogris"},
			{"id":"shared","name":"Kuva Bramma"}
		]},
		{"id":"primary","title":"Primary","items":[
			{"id":"shared","name":"Kuva Bramma"},
			{"id":"braton","name":"Braton"}
		]}
	]}`)

	results := catalog.BuildIndex(doc).Search()

	names := make([]string, 0, len(results))
	for _, rec := range results {
		names = append(names, rec.DisplayName())
	}
	// variant-only item excluded; sorted by display name
	s.Assert().Equal([]string{"Braton", "Kuva Bramma"}, names)
}

func (s *IndexTestSuite) TestSuggestionsPreferLabel() {
	doc := s.mustParse(`{"menus":[
		{"id":"mods","title":"Mods","items":[
			{"id":"serration","label":"Serration","name":"Serration Mk1"},
			{"id":"bare"}
		]}
	]}`)

	s.Assert().Equal([]string{"Serration", "bare"}, catalog.BuildIndex(doc).Suggestions())
}
