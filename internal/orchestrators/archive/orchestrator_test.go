package archive_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/errors"
	"github.com/wftrack/loadout-api/internal/orchestrators/archive"
	archiverepo "github.com/wftrack/loadout-api/internal/repositories/archive"
	"github.com/wftrack/loadout-api/internal/testutils"
	"github.com/wftrack/loadout-api/internal/redis"

	"github.com/alicebob/miniredis/v2"
)

type ArchiveOrchestratorTestSuite struct {
	suite.Suite

	ctx     context.Context
	cleanup func()
	client  redis.Client
	mr      *miniredis.Miniredis
	svc     archive.Service
}

func (s *ArchiveOrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.client = client
	s.mr = mr

	repo, err := archiverepo.NewRedis(&archiverepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	svc, err := archive.NewOrchestrator(&archive.Config{Repository: repo})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ArchiveOrchestratorTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *ArchiveOrchestratorTestSuite) TestExportImportRoundTrip() {
	s.Require().NoError(s.mr.Set("wf:checked:excalibur", "true"))
	s.Require().NoError(s.mr.Set("wf:todo:todo:list", `[{"id":"t1","text":"x","checked":false}]`))
	s.Require().NoError(s.mr.Set("unrelated", "keep out"))

	exported, err := s.svc.Export(s.ctx, &archive.ExportInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, exported.Keys)

	var entries map[string]string
	s.Require().NoError(json.Unmarshal(exported.Payload, &entries))
	s.Assert().Equal("true", entries["wf:checked:excalibur"])
	s.Assert().NotContains(entries, "unrelated")

	cleared, err := s.svc.Clear(s.ctx, &archive.ClearInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, cleared.Removed)

	restored, err := s.svc.Import(s.ctx, &archive.ImportInput{Payload: exported.Payload})
	s.Require().NoError(err)
	s.Assert().Equal(2, restored.Imported)
	s.Assert().Zero(restored.Skipped)

	got, err := s.client.Get(s.ctx, "wf:checked:excalibur").Result()
	s.Require().NoError(err)
	s.Assert().Equal("true", got)
}

func (s *ArchiveOrchestratorTestSuite) TestImportSkipsForeignKeys() {
	payload, err := json.Marshal(map[string]string{
		"wf:checked:boltor": "true",
		"other:key":         "nope",
	})
	s.Require().NoError(err)

	out, err := s.svc.Import(s.ctx, &archive.ImportInput{Payload: payload})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Imported)
	s.Assert().Equal(1, out.Skipped)

	s.Assert().False(s.mr.Exists("other:key"))
}

func (s *ArchiveOrchestratorTestSuite) TestImportRejectsBadPayload() {
	testCases := []struct {
		name    string
		payload []byte
	}{
		{name: "empty", payload: nil},
		{name: "not json", payload: []byte("nope")},
		{name: "empty object", payload: []byte("{}")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.Import(s.ctx, &archive.ImportInput{Payload: tc.payload})
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func TestArchiveOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(ArchiveOrchestratorTestSuite))
}
