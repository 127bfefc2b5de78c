package entities_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type PlayerTestSuite struct {
	suite.Suite
	ctx     context.Context
	sink    *narration.Buffer
	monster *entities.Monster
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.sink = narration.NewBuffer()

	m, err := testutils.CreateTestMonster("monster-1", testutils.StatsOf(20, 2, 2, 2), testutils.NewScriptedRoller())
	s.Require().NoError(err)
	s.monster = m
}

func (s *PlayerTestSuite) newPlayer(lines ...string) (*entities.Player, *testutils.ScriptedInput) {
	in := testutils.NewScriptedInput(lines...)
	p, err := testutils.CreateTestPlayer(in, s.sink)
	s.Require().NoError(err)
	return p, in
}

func (s *PlayerTestSuite) TestDefaultCommands() {
	p, _ := s.newPlayer()

	s.Equal(entities.TypePlayer, p.GetType())
	s.Equal([]action.Action{action.NewAttack("", 0, -1), action.NewEscape(), action.NewUse()}, p.Commands())
}

func (s *PlayerTestSuite) TestChooseActionRepromptsUntilValid() {
	p, in := s.newPlayer("fireball", "  ", "ATTACK")

	choice, err := p.ChooseAction(s.ctx, s.monster)

	s.Require().NoError(err)
	s.False(choice.Pass)
	s.Equal("Attack", choice.Action.Name)
	s.Len(in.Prompts(), 3)
	s.Contains(s.sink.Lines(), "You don't have 'fireball'")
}

func (s *PlayerTestSuite) TestChooseActionPass() {
	p, _ := s.newPlayer("Pass")

	choice, err := p.ChooseAction(s.ctx, s.monster)

	s.Require().NoError(err)
	s.True(choice.Pass)
}

func (s *PlayerTestSuite) TestChooseActionInputClosed() {
	p, _ := s.newPlayer("fireball")

	_, err := p.ChooseAction(s.ctx, s.monster)

	s.Error(err)
	s.True(errors.IsInternal(err))
}

func (s *PlayerTestSuite) TestChooseActionCanceled() {
	p, _ := s.newPlayer("Attack")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := p.ChooseAction(ctx, s.monster)

	s.True(errors.IsCanceled(err))
}

func (s *PlayerTestSuite) TestChooseActionWithoutInput() {
	p, _ := s.newPlayer()
	p.SetInput(nil)

	_, err := p.ChooseAction(s.ctx, s.monster)

	s.True(errors.IsFailedPrecondition(err))
}

func (s *PlayerTestSuite) TestChooseItemAndTarget() {
	p, _ := s.newPlayer("apple", "banana", "nobody", "alien")

	choice, err := p.ChooseItemAndTarget(s.ctx, s.monster)

	s.Require().NoError(err)
	s.Require().NotNil(choice)
	s.Equal("Banana", choice.ItemName)
	s.Same(s.monster.Base(), choice.Target)
	s.Contains(s.sink.Lines(), entities.MsgNoSuchItem)
	s.Contains(s.sink.Lines(), "What?! Choose either Hero or Alien!")
}

func (s *PlayerTestSuite) TestChooseItemOnSelf() {
	p, _ := s.newPlayer("Banana", "hero")

	choice, err := p.ChooseItemAndTarget(s.ctx, s.monster)

	s.Require().NoError(err)
	s.Require().NotNil(choice)
	s.Same(p.Base(), choice.Target)
}

func (s *PlayerTestSuite) TestChooseItemPass() {
	p, _ := s.newPlayer("pass")
	choice, err := p.ChooseItemAndTarget(s.ctx, s.monster)
	s.Require().NoError(err)
	s.Nil(choice)

	p, _ = s.newPlayer("Banana", "PASS")
	choice, err = p.ChooseItemAndTarget(s.ctx, s.monster)
	s.Require().NoError(err)
	s.Nil(choice)
}

func (s *PlayerTestSuite) TestDieRespawnsHealed() {
	p, _ := s.newPlayer()
	p.SetStats(stats.Update{HP: stats.Value(0)})

	s.Require().NoError(p.Die(s.ctx))

	s.Equal(30, p.Stats().HP)
	s.Contains(s.sink.Lines(), "Hero wakes up in the town square.")
}

func (s *PlayerTestSuite) TestSampleGoldLosesHalf() {
	p, _ := s.newPlayer()

	lost, err := p.SampleGold()

	s.Require().NoError(err)
	s.Equal(10, lost)
	s.Equal(10, p.Gold())
	s.Contains(s.sink.Lines(), "Looks like you lost some gold...")

	treasure, err := p.SampleTreasure()
	s.Require().NoError(err)
	s.Nil(treasure)
}

func (s *PlayerTestSuite) TestSampleGoldWhenBroke() {
	p, _ := s.newPlayer()
	p.SetGold(0)

	lost, err := p.SampleGold()

	s.Require().NoError(err)
	s.Zero(lost)
	s.Empty(s.sink.Lines())
}

func (s *PlayerTestSuite) TestHandleVictoryTakesLoot() {
	roller := testutils.NewScriptedRoller(8)
	loser, err := testutils.CreateTestMonster("monster-2", testutils.StatsOf(20, 2, 2, 2), roller)
	s.Require().NoError(err)
	p, _ := s.newPlayer()

	s.Require().NoError(p.HandleVictory(s.ctx, loser))

	s.Equal(27, p.Gold())
	s.Equal([]string{"Hero defeated the Alien!", "Loot: ", "* 7 gold"}, s.sink.Lines())
}

func (s *PlayerTestSuite) TestDataRoundTrip() {
	p, _ := s.newPlayer()
	s.Require().NoError(p.EquipItem("Hammer"))
	p.SetStats(stats.Update{HP: stats.Value(12)})

	data := p.Data()
	restored, err := entities.PlayerFromData(data, testutils.NewScriptedInput(), s.sink)

	s.Require().NoError(err)
	s.Equal(p.Stats(), restored.Stats())
	s.Equal(p.Gold(), restored.Gold())
	s.Equal(p.Commands(), restored.Commands())
	s.Equal(p.Inventory().Entries(), restored.Inventory().Entries())
	s.Equal(p.Outfit().Items(), restored.Outfit().Items())
	s.Equal("the town square", restored.RespawnLocation())
	s.Equal(entities.TypePlayer, restored.GetType())

	s.Require().NoError(restored.UnequipItem("Hammer"))
	s.Equal(3, restored.Stats().Attack)
}

func (s *PlayerTestSuite) TestFromDataIncomplete() {
	_, err := entities.PlayerFromData(&entities.PlayerData{}, nil, nil)

	s.True(errors.IsDataLoss(err))
}
