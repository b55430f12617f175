package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
)

type DocumentTestSuite struct {
	suite.Suite
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func (s *DocumentTestSuite) TestParseRejectsMalformed() {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "menus: nope"},
		{name: "empty object", data: "{}"},
		{name: "empty groupings", data: `{"menus":[]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			doc, err := catalog.ParseDocument([]byte(tc.data))
			s.Assert().Nil(doc)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *DocumentTestSuite) TestColumnFlagCoercion() {
	data := []byte(`{"menus":[{
		"id":"primary","title":"Primary",
		"columns":[
			{"key":"name","label":"Name","type":"text","mobileDefault":"true"},
			{"key":"mastery","label":"MR","type":"select","mobileDefault":"False","options":[0,30,60]},
			{"key":"note","label":"Note","type":"input","mobileDefault":false}
		],
		"items":[{"id":"braton","name":"Braton"}]
	}]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	cols := doc.Groupings[0].Columns
	s.Require().Len(cols, 3)
	s.Assert().True(bool(cols[0].MobileDefault))
	s.Assert().False(bool(cols[1].MobileDefault))
	s.Assert().False(bool(cols[2].MobileDefault))
	s.Assert().Len(cols[1].Options, 3)
}

func (s *DocumentTestSuite) TestBareReferenceResolution() {
	data := []byte(`{"menus":[
		{"id":"primary","title":"Primary","items":[
			{"id":"braton","name":"Braton","rarity":"common"}
		]},
		{"id":"mods","title":"Mods","items":["braton","no-such-item"]}
	]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	// primary grouping sorts before mods per the canonical order
	modsGrp := doc.Groupings[1]
	s.Assert().Equal("mods", modsGrp.ID)

	// resolved reference carries the inline record's fields; the
	// dangling one is dropped
	s.Require().Len(modsGrp.Items, 1)
	s.Assert().Equal("Braton", modsGrp.Items[0].Item.Name)
	s.Assert().Equal("common", modsGrp.Items[0].Item.Fields["rarity"])
}

func (s *DocumentTestSuite) TestVariantTagging() {
	data := []byte(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[{"id":"kuva-bramma","name":"Kuva Bramma"}]},
		{"id":"primary","title":"Primary","items":[{"id":"braton","name":"Braton"}]}
	]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	// kuva sorts before primary
	s.Assert().Equal("kuva", doc.Groupings[0].ID)
	s.Assert().Equal(wf.VariantKuva, doc.Groupings[0].Items[0].Item.Variant)
	s.Assert().Equal(wf.Variant(""), doc.Groupings[1].Items[0].Item.Variant)
}

func (s *DocumentTestSuite) TestRefClonesAreNotVariantTagged() {
	// the mods grouping references an item whose inline record lives in
	// a variant-only grouping; the clone must not carry the tag its own
	// grouping never applied
	data := []byte(`{"menus":[
		{"id":"kuva","title":"Kuva","items":[{"id":"kuva-hek","name":"Kuva Hek"}]},
		{"id":"mods","title":"Mods","items":["kuva-hek"]}
	]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	s.Assert().Equal("kuva", doc.Groupings[0].ID)
	s.Assert().Equal(wf.VariantKuva, doc.Groupings[0].Items[0].Item.Variant)

	s.Require().Equal("mods", doc.Groupings[1].ID)
	s.Require().Len(doc.Groupings[1].Items, 1)
	s.Assert().Equal(wf.Variant(""), doc.Groupings[1].Items[0].Item.Variant)
}

func (s *DocumentTestSuite) TestStringOptionsTolerated() {
	data := []byte(`{"menus":[{
		"id":"primary","title":"Primary",
		"columns":[
			{"key":"mastery","label":"MR","type":"select","mobileDefault":false,"options":[0,"30",60]}
		],
		"items":[{"id":"braton","name":"Braton"}]
	}]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	opts := doc.Groupings[0].Columns[0].Options
	s.Require().Len(opts, 3)
	s.Assert().Equal(catalog.FlexScalar("0"), opts[0])
	s.Assert().Equal(catalog.FlexScalar("30"), opts[1])
	s.Assert().Equal(catalog.FlexScalar("60"), opts[2])
}

func (s *DocumentTestSuite) TestGroupingOrder() {
	data := []byte(`{"menus":[
		{"id":"custom","title":"Custom","items":[{"id":"x"}]},
		{"id":"mods","title":"Mods","items":[{"id":"y"}]},
		{"id":"warframe","title":"Warframe","items":[{"id":"z"}]}
	]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	ids := []string{doc.Groupings[0].ID, doc.Groupings[1].ID, doc.Groupings[2].ID}
	s.Assert().Equal([]string{"warframe", "mods", "custom"}, ids)
}

func (s *DocumentTestSuite) TestNumericDisplayFields() {
	data := []byte(`{"menus":[{"id":"primary","title":"Primary","items":[
		{"id":"braton","name":"Braton","mastery":4,"vaulted":true}
	]}]}`)

	doc, err := catalog.ParseDocument(data)
	s.Require().NoError(err)

	item := doc.Groupings[0].Items[0].Item
	s.Assert().Equal("4", item.Fields["mastery"])
	s.Assert().Equal("true", item.Fields["vaulted"])
}
