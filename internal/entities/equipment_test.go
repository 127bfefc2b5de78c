package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type EquipmentTestSuite struct {
	suite.Suite
	sink   *narration.Buffer
	entity *entities.Entity
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) SetupTest() {
	s.sink = narration.NewBuffer()

	e, err := entities.New(&entities.Config{
		ID:    "entity-1",
		Name:  "Bob",
		Stats: testutils.StatsOf(30, 3, 2, 2),
		Inventory: []items.Entry{
			{Item: testutils.Banana(), Amount: 1},
			{Item: testutils.Hammer(), Amount: 1},
			{Item: testutils.Knife(), Amount: 1},
			{Item: testutils.Helmet(), Amount: 1},
		},
		Narrator: s.sink,
	})
	s.Require().NoError(err)
	s.entity = e
}

func (s *EquipmentTestSuite) assertNotInBoth() {
	inv := s.entity.Inventory()
	for _, worn := range s.entity.Outfit().Items() {
		_, carried := inv.Find(worn.Name)
		s.False(carried, "%s is both worn and carried", worn.Name)
	}
}

func (s *EquipmentTestSuite) TestEquipMovesItemAndAppliesStats() {
	s.Require().NoError(s.entity.EquipItem("hammer"))

	worn, ok := s.entity.Equipped(items.SlotWeapon)
	s.Require().True(ok)
	s.Equal("Hammer", worn.Name)
	_, carried := s.entity.FindItem("Hammer")
	s.False(carried)
	s.Equal(6, s.entity.Stats().Attack)
	_, ok = s.entity.FindCommand("Bash")
	s.True(ok)
	s.Equal([]string{"Bob equips Hammer!"}, s.sink.Lines())
	s.assertNotInBoth()
}

func (s *EquipmentTestSuite) TestEquipSwapsPreviousItem() {
	s.Require().NoError(s.entity.EquipItem("Hammer"))
	s.Require().NoError(s.entity.EquipItem("Knife"))

	worn, _ := s.entity.Equipped(items.SlotWeapon)
	s.Equal("Knife", worn.Name)
	_, carried := s.entity.FindItem("Hammer")
	s.True(carried)
	_, carried = s.entity.FindItem("Knife")
	s.False(carried)

	s.Equal(4, s.entity.Stats().Attack)
	s.Equal(4, s.entity.Stats().Agility)

	names := []string{}
	for _, cmd := range s.entity.Commands() {
		names = append(names, cmd.Name)
	}
	s.Equal([]string{"Stab"}, names)
	s.assertNotInBoth()
}

func (s *EquipmentTestSuite) TestEquipUnequipRoundTrip() {
	before := s.entity.Stats()

	for _, name := range []string{"Hammer", "Helmet", "Knife"} {
		s.Require().NoError(s.entity.EquipItem(name))
		s.assertNotInBoth()
	}
	for _, name := range []string{"helmet", "knife"} {
		s.Require().NoError(s.entity.UnequipItem(name))
		s.assertNotInBoth()
	}

	s.Equal(before, s.entity.Stats())
	s.True(s.entity.Outfit().IsEmpty())
	s.Empty(s.entity.Commands())
	s.Equal(4, s.entity.Inventory().Len())

	// An item that would take stats away can never be worn, so it cannot
	// break the round trip through a clamp.
	heavy := items.NewEquipment("Heavy Helm", items.SlotHelmet, stats.Delta{Agility: -3, MaxHP: -5})
	s.entity.AddItem(heavy, 1)

	err := s.entity.EquipItem("Heavy Helm")
	s.True(errors.IsInvalidArgument(err))
	s.Equal(before, s.entity.Stats())
	s.True(s.entity.Outfit().IsEmpty())
	_, carried := s.entity.FindItem("Heavy Helm")
	s.True(carried)
}

func (s *EquipmentTestSuite) TestEquipDoesNotReviveTheDead() {
	s.entity.SetStats(stats.Update{HP: stats.Value(0)})

	s.Require().NoError(s.entity.EquipItem("Helmet"))
	s.True(s.entity.Dead())
	s.Equal(0, s.entity.Stats().HP)

	s.Require().NoError(s.entity.EquipItem("Hammer"))
	s.Require().NoError(s.entity.EquipItem("Knife"))
	s.True(s.entity.Dead())
}

func (s *EquipmentTestSuite) TestEquipMissingItem() {
	before := s.entity.Stats()

	err := s.entity.EquipItem("Sword")

	s.True(errors.IsNotFound(err))
	s.Equal(entities.MsgNoSuchItem, errors.GetMessage(err))
	s.Equal(before, s.entity.Stats())
	s.Empty(s.sink.Lines())
}

func (s *EquipmentTestSuite) TestEquipNotEquippable() {
	err := s.entity.EquipItem("Banana")

	s.True(errors.IsInvalidArgument(err))
	s.Equal("Banana cannot be equipped!", errors.GetMessage(err))
	_, carried := s.entity.FindItem("Banana")
	s.True(carried)
	s.True(s.entity.Outfit().IsEmpty())
}

func (s *EquipmentTestSuite) TestEquipWithoutSlotIsUnimplemented() {
	s.entity.AddItem(items.Item{Name: "Ring", Kind: items.KindEquipment}, 1)

	err := s.entity.EquipItem("Ring")

	s.True(errors.IsUnimplemented(err))
	_, carried := s.entity.FindItem("Ring")
	s.True(carried)
}

func (s *EquipmentTestSuite) TestUnequipNotEquipped() {
	err := s.entity.UnequipItem("Hammer")

	s.True(errors.IsNotFound(err))
	s.True(errors.IsUserError(err))
	s.Equal(entities.MsgNotEquipped, errors.GetMessage(err))
}

func (s *EquipmentTestSuite) TestUnequipNeverKnocksOut() {
	armor := items.NewEquipment("Plate", items.SlotTorso, stats.Delta{MaxHP: 20})
	s.entity.AddItem(armor, 1)
	s.Require().NoError(s.entity.EquipItem("Plate"))
	s.entity.SetStats(stats.Update{HP: stats.Value(0)})

	s.Require().NoError(s.entity.UnequipItem("Plate"))

	s.Equal(1, s.entity.Stats().HP)
	s.Equal(30, s.entity.Stats().MaxHP)
}

func (s *EquipmentTestSuite) TestUnequipClampsHPToMaxHP() {
	s.Require().NoError(s.entity.EquipItem("Helmet"))
	s.entity.SetStats(stats.Update{HP: stats.Value(35)})

	s.Require().NoError(s.entity.UnequipItem("Helmet"))

	s.Equal(30, s.entity.Stats().HP)
	s.Equal(30, s.entity.Stats().MaxHP)
}

func (s *EquipmentTestSuite) TestSameItemTwiceKeepsOneInInventory() {
	s.entity.AddItem(testutils.Hammer(), 1)

	s.Require().NoError(s.entity.EquipItem("Hammer"))
	s.Require().NoError(s.entity.EquipItem("Hammer"))

	entry, ok := s.entity.Inventory().Entry("Hammer")
	s.Require().True(ok)
	s.Equal(1, entry.Amount)
	s.Equal(6, s.entity.Stats().Attack)
}
