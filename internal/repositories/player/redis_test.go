package player_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-battle/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/player"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

const (
	testPlayerKey = "player:" + testutils.TestPlayerID
	testIndexKey  = "player:index"
)

var savedAt = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    player.Repository
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	repo, err := player.NewRedis(&player.RedisConfig{
		Client: client,
		Clock:  clock.Fixed{At: savedAt},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testData() *entities.PlayerData {
	p, err := testutils.CreateTestPlayer(nil, narration.Discard)
	s.Require().NoError(err)
	s.Require().NoError(p.EquipItem("Hammer"))
	return p.Data()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := player.NewRedis(&player.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = player.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	data := s.testData()

	out, err := s.repo.Save(s.ctx, player.SaveInput{PlayerData: data})
	s.Require().NoError(err)
	s.Equal(savedAt, out.PlayerData.SavedAt)
	s.True(data.SavedAt.IsZero(), "input must not be modified")

	s.True(s.mr.Exists(testPlayerKey))
	members, err := s.mr.Members(testIndexKey)
	s.Require().NoError(err)
	s.Equal([]string{testutils.TestPlayerID}, members)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(data.ID, got.PlayerData.ID)
	s.Equal(data.Name, got.PlayerData.Name)
	s.Equal(data.Stats, got.PlayerData.Stats)
	s.Equal(data.Gold, got.PlayerData.Gold)
	s.Equal(data.Commands, got.PlayerData.Commands)
	s.Equal(data.Inventory.Entries(), got.PlayerData.Inventory.Entries())
	s.Equal(data.Outfit.Items(), got.PlayerData.Outfit.Items())
	s.Equal("the town square", got.PlayerData.RespawnLocation)
	s.True(savedAt.Equal(got.PlayerData.SavedAt))
}

func (s *RedisRepositoryTestSuite) TestRestoredPlayerMatches() {
	p, err := testutils.CreateTestPlayer(nil, narration.Discard)
	s.Require().NoError(err)
	s.Require().NoError(p.EquipItem("Helmet"))
	p.SetStats(stats(p.Stats().HP - 7))

	_, err = s.repo.Save(s.ctx, player.SaveInput{PlayerData: p.Data()})
	s.Require().NoError(err)
	got, err := s.repo.Get(s.ctx, player.GetInput{ID: p.GetID()})
	s.Require().NoError(err)

	restored, err := entities.PlayerFromData(got.PlayerData, nil, narration.Discard)
	s.Require().NoError(err)
	s.Equal(p.Stats(), restored.Stats())
	s.Require().NoError(restored.UnequipItem("Helmet"))
	s.Equal(30, restored.Stats().MaxHP)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	data := s.testData()
	_, err := s.repo.Save(s.ctx, player.SaveInput{PlayerData: data})
	s.Require().NoError(err)

	data.Gold = 99
	_, err = s.repo.Save(s.ctx, player.SaveInput{PlayerData: data})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: data.ID})
	s.Require().NoError(err)
	s.Equal(99, got.PlayerData.Gold)

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{data.ID}, list.IDs)
}

func (s *RedisRepositoryTestSuite) TestEachSaveIsStamped() {
	ctrl := gomock.NewController(s.T())
	clk := mockclock.NewMockClock(ctrl)
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	repo, err := player.NewRedis(&player.RedisConfig{Client: client, Clock: clk})
	s.Require().NoError(err)

	later := savedAt.Add(time.Hour)
	gomock.InOrder(
		clk.EXPECT().Now().Return(savedAt),
		clk.EXPECT().Now().Return(later),
	)

	data := s.testData()
	first, err := repo.Save(s.ctx, player.SaveInput{PlayerData: data})
	s.Require().NoError(err)
	s.Equal(savedAt, first.PlayerData.SavedAt)

	second, err := repo.Save(s.ctx, player.SaveInput{PlayerData: data})
	s.Require().NoError(err)
	s.Equal(later, second.PlayerData.SavedAt)

	got, err := repo.Get(s.ctx, player.GetInput{ID: data.ID})
	s.Require().NoError(err)
	s.True(later.Equal(got.PlayerData.SavedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, player.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, player.SaveInput{PlayerData: &entities.PlayerData{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, player.GetInput{ID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, player.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorrupt() {
	s.Require().NoError(s.mr.Set(testPlayerKey, "{not json"))

	_, err := s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestPlayerID})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestGetMismatchedID() {
	raw, err := json.Marshal(map[string]interface{}{"id": "someone-else", "name": "Other"})
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set(testPlayerKey, string(raw)))

	_, err = s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestPlayerID})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, player.SaveInput{PlayerData: s.testData()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(testPlayerKey))

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.IDs)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: testutils.TestPlayerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSorted() {
	for _, id := range []string{"zed", "amy", "kim"} {
		data := s.testData()
		data.ID = id
		_, err := s.repo.Save(s.ctx, player.SaveInput{PlayerData: data})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"amy", "kim", "zed"}, list.IDs)
}
