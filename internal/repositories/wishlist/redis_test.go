package wishlist_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	redisclient "github.com/wftrack/loadout-api/internal/redis"
	"github.com/wftrack/loadout-api/internal/repositories/wishlist"
	"github.com/wftrack/loadout-api/internal/testutils"
)

type RedisWishlistTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  redisclient.Client
	cleanup func()
	repo    wishlist.Repository
	ctx     context.Context
}

func TestRedisWishlistSuite(t *testing.T) {
	suite.Run(t, new(RedisWishlistTestSuite))
}

func (s *RedisWishlistTestSuite) SetupTest() {
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := wishlist.NewRedis(&wishlist.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisWishlistTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisWishlistTestSuite) TestRoundTrip() {
	entry := &wf.WishEntry{ID: "w1", Item: "Forma", Have: 2, Max: 5, Note: "for Volt"}
	_, err := s.repo.Put(s.ctx, wishlist.PutInput{Entry: entry})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, wishlist.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Assert().Equal(entry, out.Entries[0])
}

func (s *RedisWishlistTestSuite) TestLegacyQtyRename() {
	// legacy records stored the target count under "qty"
	legacy := `[
		{"id":"w1","item":"Forma","qty":5,"note":"","checked":false},
		{"id":"w2","item":"Orokin Reactor","have":1,"max":3,"qty":9,"note":"","checked":true},
		{"id":"w3","item":"Kuva","checked":false}
	]`
	s.Require().NoError(s.mr.Set(wishlist.Key(), legacy))

	out, err := s.repo.List(s.ctx, wishlist.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	// qty becomes max when max is absent
	s.Assert().Equal(5, out.Entries[0].Max)
	s.Assert().Equal(0, out.Entries[0].Have)
	// an explicit max wins over a stale qty
	s.Assert().Equal(3, out.Entries[1].Max)
	// neither present defaults to zero
	s.Assert().Equal(0, out.Entries[2].Max)
}

func (s *RedisWishlistTestSuite) TestDeleteIdempotent() {
	_, err := s.repo.Put(s.ctx, wishlist.PutInput{Entry: &wf.WishEntry{ID: "w1", Item: "Forma"}})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, wishlist.DeleteInput{ID: "w1"})
	s.Require().NoError(err)
	s.Assert().True(out.Removed)

	out, err = s.repo.Delete(s.ctx, wishlist.DeleteInput{ID: "w1"})
	s.Require().NoError(err)
	s.Assert().False(out.Removed)
}
