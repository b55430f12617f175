package catalogsource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/clients/catalogsource"
	"github.com/wftrack/loadout-api/internal/errors"
)

const testDocument = `{"menus":[{"id":"primary","title":"Primary","items":[{"id":"braton","name":"Braton"}]}]}`

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TestConfigValidate() {
	testCases := []struct {
		name    string
		config  *catalogsource.Config
		wantErr bool
	}{
		{name: "nil config", config: nil, wantErr: true},
		{name: "no source", config: &catalogsource.Config{}, wantErr: true},
		{name: "both sources", config: &catalogsource.Config{URL: "http://x", Path: "/y"}, wantErr: true},
		{name: "url only", config: &catalogsource.Config{URL: "http://x"}, wantErr: false},
		{name: "path only", config: &catalogsource.Config{Path: "/y"}, wantErr: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := catalogsource.New(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Nil(c)
			} else {
				s.NoError(err)
				s.NotNil(c)
			}
		})
	}
}

func (s *ClientTestSuite) TestLoadFromHTTP() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testDocument))
	}))
	defer srv.Close()

	c, err := catalogsource.New(&catalogsource.Config{URL: srv.URL})
	s.Require().NoError(err)

	doc, err := c.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(doc.Groupings, 1)
	s.Assert().Equal("Primary", doc.Groupings[0].Title)
}

func (s *ClientTestSuite) TestLoadHTTPFailure() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := catalogsource.New(&catalogsource.Config{URL: srv.URL})
	s.Require().NoError(err)

	doc, err := c.Load(s.ctx)
	s.Assert().Nil(doc)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "items.json")
	s.Require().NoError(os.WriteFile(path, []byte(testDocument), 0o600))

	c, err := catalogsource.New(&catalogsource.Config{Path: path})
	s.Require().NoError(err)

	doc, err := c.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Len(doc.Groupings, 1)
}

func (s *ClientTestSuite) TestLoadMissingFile() {
	c, err := catalogsource.New(&catalogsource.Config{Path: "/no/such/items.json"})
	s.Require().NoError(err)

	_, err = c.Load(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestLoadParseFailure() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c, err := catalogsource.New(&catalogsource.Config{URL: srv.URL})
	s.Require().NoError(err)

	_, err = c.Load(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
