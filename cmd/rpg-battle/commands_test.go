package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter/mock"
)

type CommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *encountermock.MockService
	out     bytes.Buffer
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = encountermock.NewMockService(s.ctrl)
	s.out.Reset()
}

func (s *CommandsTestSuite) execute(args ...string) error {
	cmd := newAppCmd(&app{
		cfg: &config.Config{
			Environment:   config.EnvDevelopment,
			LogLevel:      slog.LevelError,
			SaveDir:       s.T().TempDir(),
			DefaultPlayer: "hero",
		},
		in:  strings.NewReader(""),
		out: &s.out,
		svc: s.mockSvc,
	})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func (s *CommandsTestSuite) TestFightPrintsSummary() {
	s.mockSvc.EXPECT().
		Fight(gomock.Any(), &encounter.FightInput{PlayerID: "knight", MonsterID: "ogre"}).
		Return(&encounter.FightOutput{
			Result: &battle.Result{Rounds: 3},
			Player: &entities.PlayerData{Snapshot: entities.Snapshot{
				Stats: stats.Block{MaxHP: 30, HP: 12, Attack: 3, Defense: 2, Agility: 2},
				Gold:  25,
			}},
		}, nil)

	s.Require().NoError(s.execute("--player", "knight", "fight", "ogre"))
	s.Equal("\nAfter 3 round(s): HP 12/30, 25 gold.\n", s.out.String())
}

func (s *CommandsTestSuite) TestFightStorageFailureIsAnError() {
	s.mockSvc.EXPECT().
		Fight(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("failed to save player"))

	err := s.execute("fight", "ogre")
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Empty(s.out.String())
}

func (s *CommandsTestSuite) TestItemNameIsJoined() {
	s.mockSvc.EXPECT().
		Equip(gomock.Any(), &encounter.EquipInput{PlayerID: "player", ItemName: "wooden shield"}).
		Return(&encounter.EquipOutput{}, nil)
	s.mockSvc.EXPECT().
		DropItem(gomock.Any(), &encounter.DropItemInput{PlayerID: "player", ItemName: "quest letter"}).
		Return(&encounter.DropItemOutput{}, nil)

	s.Require().NoError(s.execute("equip", "wooden", "shield"))
	s.Require().NoError(s.execute("drop", "quest", "letter"))
}

func (s *CommandsTestSuite) TestUserErrorIsPrinted() {
	s.mockSvc.EXPECT().
		Unequip(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound(entities.MsgNotEquipped))
	s.mockSvc.EXPECT().
		UseItem(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound(entities.MsgNoSuchItem))

	s.Require().NoError(s.execute("unequip", "helmet"))
	s.Require().NoError(s.execute("use", "pizza"))
	s.Equal(entities.MsgNotEquipped+"\n"+entities.MsgNoSuchItem+"\n", s.out.String())
}

func (s *CommandsTestSuite) TestStatusOfNewPlayer() {
	s.mockSvc.EXPECT().
		Status(gomock.Any(), &encounter.StatusInput{PlayerID: "player"}).
		Return(&encounter.StatusOutput{Text: "Hero", New: true}, nil)

	s.Require().NoError(s.execute("status"))
	s.Equal("No save found for \"player\"; starting a new adventure.\n\nHero\n", s.out.String())
}

func (s *CommandsTestSuite) TestNoSavedPlayers() {
	s.mockSvc.EXPECT().
		ListPlayers(gomock.Any(), gomock.Any()).
		Return(&encounter.ListPlayersOutput{}, nil)

	s.Require().NoError(s.execute("players"))
	s.Equal("No saved players.\n", s.out.String())
}

func (s *CommandsTestSuite) TestResetWithoutSave() {
	s.mockSvc.EXPECT().
		Reset(gomock.Any(), &encounter.ResetInput{PlayerID: "player"}).
		Return(nil, errors.NotFoundf("player with ID %s not found", "player"))

	s.Require().NoError(s.execute("reset"))
	s.Equal("player with ID player not found\n", s.out.String())
}
