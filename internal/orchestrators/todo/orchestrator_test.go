package todo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	"github.com/wftrack/loadout-api/internal/orchestrators/todo"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	todorepo "github.com/wftrack/loadout-api/internal/repositories/todo"
	"github.com/wftrack/loadout-api/internal/testutils"
)

type TodoOrchestratorTestSuite struct {
	suite.Suite

	ctx     context.Context
	cleanup func()
	svc     todo.Service
}

func (s *TodoOrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, _, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := todorepo.NewRedis(&todorepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	svc, err := todo.NewOrchestrator(&todo.Config{
		Repository:  repo,
		IDGenerator: idgen.NewSequential("todo"),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *TodoOrchestratorTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *TodoOrchestratorTestSuite) TestPutAssignsIDWhenMissing() {
	out, err := s.svc.PutEntry(s.ctx, &todo.PutEntryInput{
		Entry: &wf.TodoEntry{Text: "farm Harrow parts"},
	})
	s.Require().NoError(err)
	s.Assert().NotEmpty(out.Entry.ID)

	list, err := s.svc.ListEntries(s.ctx, &todo.ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 1)
	s.Assert().Equal("farm Harrow parts", list.Entries[0].Text)
}

func (s *TodoOrchestratorTestSuite) TestPutUpsertsByID() {
	out, err := s.svc.PutEntry(s.ctx, &todo.PutEntryInput{
		Entry: &wf.TodoEntry{Text: "original"},
	})
	s.Require().NoError(err)

	_, err = s.svc.PutEntry(s.ctx, &todo.PutEntryInput{
		Entry: &wf.TodoEntry{ID: out.Entry.ID, Text: "edited", Checked: true},
	})
	s.Require().NoError(err)

	list, err := s.svc.ListEntries(s.ctx, &todo.ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 1)
	s.Assert().Equal("edited", list.Entries[0].Text)
	s.Assert().True(list.Entries[0].Checked)
}

func (s *TodoOrchestratorTestSuite) TestDeleteIsIdempotent() {
	out, err := s.svc.PutEntry(s.ctx, &todo.PutEntryInput{
		Entry: &wf.TodoEntry{Text: "gone soon"},
	})
	s.Require().NoError(err)

	del, err := s.svc.DeleteEntry(s.ctx, &todo.DeleteEntryInput{ID: out.Entry.ID})
	s.Require().NoError(err)
	s.Assert().True(del.Removed)

	del, err = s.svc.DeleteEntry(s.ctx, &todo.DeleteEntryInput{ID: out.Entry.ID})
	s.Require().NoError(err)
	s.Assert().False(del.Removed)
}

func (s *TodoOrchestratorTestSuite) TestValidation() {
	_, err := s.svc.PutEntry(s.ctx, &todo.PutEntryInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.svc.DeleteEntry(s.ctx, &todo.DeleteEntryInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func TestTodoOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(TodoOrchestratorTestSuite))
}
