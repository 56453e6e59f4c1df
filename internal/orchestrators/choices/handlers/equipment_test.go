package handlers_test

import (
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices/handlers"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils/builders"
)

const (
	fighterModeID   = "equipment_mode|class|phb:fighter|1|starting_equipment"
	fighterArmorID  = "equipment|class|phb:fighter|1|equipment_choice_1"
	fighterWeaponID = "equipment|class|phb:fighter|1|equipment_choice_2"
	fighterPackID   = "equipment|class|phb:fighter|1|equipment_choice_3"
)

// inventory maps item slug to quantity for rows with an item
func inventory(char *entities.Character) map[string]int {
	out := make(map[string]int)
	for _, row := range char.Inventory {
		if row.ItemSlug != "" {
			out[row.ItemSlug] += row.Quantity
		}
	}
	return out
}

func (s *HandlersTestSuite) TestEquipmentMode_Options() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	d := s.decision(choice.TypeEquipmentMode, char, fighterModeID)
	s.Equal(map[string]any{"formula": "6d4 x 10", "average": 150}, d.Metadata["starting_wealth"])
	gold := d.Option(handlers.EquipmentModeGold)
	s.Require().NotNil(gold)
	s.Equal(150, gold.Metadata["gold_amount"])
	s.True(d.HasOption(handlers.EquipmentModeEquipment))
}

func (s *HandlersTestSuite) TestEquipmentMode_Gold() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	s.Require().NoError(s.resolve(choice.TypeEquipmentMode, char, fighterModeID, selection(handlers.EquipmentModeGold)))
	s.Require().Len(char.Inventory, 2)

	marker := char.Inventory[0]
	s.True(marker.Metadata.Marker)
	s.Zero(marker.Quantity)
	s.Equal(entities.InventoryOriginEquipmentMode, marker.Metadata.Origin)
	s.Equal(handlers.EquipmentModeGold, marker.Metadata.Mode)

	s.Equal(map[string]int{testutils.ItemGold: 150}, inventory(char))
	s.Equal(entities.InventoryOriginStartingWealth, char.Inventory[1].Metadata.Origin)

	d := s.decision(choice.TypeEquipmentMode, char, fighterModeID)
	s.Equal([]string{handlers.EquipmentModeGold}, d.Selected)
	s.Equal(150, d.Metadata["gold_amount"])

	s.Len(s.enumerate(choice.TypeEquipment, char), 3, "equipment decisions are still derivable")

	s.Require().NoError(s.resolve(choice.TypeEquipmentMode, char, fighterModeID, selection(handlers.EquipmentModeEquipment)))
	s.Require().Len(char.Inventory, 1)
	s.Equal(handlers.EquipmentModeEquipment, char.Inventory[0].Metadata.Mode)
	s.Empty(inventory(char))
}

func (s *HandlersTestSuite) TestEquipmentMode_GoldAmount() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	zero := 0
	err := s.resolve(choice.TypeEquipmentMode, char, fighterModeID, &choice.Selection{
		Selected:   []string{handlers.EquipmentModeGold},
		GoldAmount: &zero,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidSelection(err))
	s.Contains(err.Error(), "Gold amount must be greater than zero")
	s.Empty(char.Inventory)

	rolled := 120
	s.Require().NoError(s.resolve(choice.TypeEquipmentMode, char, fighterModeID, &choice.Selection{
		Selected:   []string{handlers.EquipmentModeGold},
		GoldAmount: &rolled,
	}))
	s.Equal(map[string]int{testutils.ItemGold: 120}, inventory(char))

	s.Require().NoError(s.undo(choice.TypeEquipmentMode, char, fighterModeID))
	s.Empty(char.Inventory)
}

func (s *HandlersTestSuite) TestEquipmentMode_OnlyAtFirstLevel() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 2).Build()
	s.Empty(s.enumerate(choice.TypeEquipmentMode, char))
	s.Empty(s.enumerate(choice.TypeEquipment, char))

	barbarian := builders.NewCharacterBuilder().WithClass(testutils.ClassBarbarian, 1).Build()
	s.Empty(s.enumerate(choice.TypeEquipmentMode, barbarian))
}

func (s *HandlersTestSuite) TestEquipment_Options() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	decisions := s.enumerate(choice.TypeEquipment, char)
	s.Require().Len(decisions, 3)
	s.Equal(fighterArmorID, decisions[0].ID)
	s.Equal(fighterWeaponID, decisions[1].ID)
	s.Equal(fighterPackID, decisions[2].ID)

	weapons := decisions[1].Option("a")
	s.Require().NotNil(weapons)
	s.Require().Len(weapons.Items, 2)
	s.True(weapons.Items[0].IsCategory)
	s.Equal("martial-weapon", weapons.Items[0].Category)
	s.Equal("phb:shield", weapons.Items[1].Slug)

	pack := decisions[2].Option("b")
	s.Require().NotNil(pack)
	s.Require().Len(pack.Items, 1)
	s.True(pack.Items[0].IsPack)
	s.Len(pack.Items[0].Contents, 4)
}

func (s *HandlersTestSuite) TestEquipment_ResolveReplacesBundle() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	err := s.resolve(choice.TypeEquipment, char, fighterArmorID, selection("c"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeEquipment, char, fighterArmorID, selection("b")))
	s.Equal(map[string]int{"phb:leather-armor": 1, "phb:longbow": 1, "phb:arrows": 20}, inventory(char))
	for _, row := range char.Inventory {
		s.Equal("b", row.Metadata.SelectedOption)
		s.Equal(entities.InventoryOriginStartingEquipment, row.Metadata.Origin)
	}
	s.Equal([]string{"b"}, s.decision(choice.TypeEquipment, char, fighterArmorID).Selected)

	s.Require().NoError(s.resolve(choice.TypeEquipment, char, fighterArmorID, selection("a")))
	s.Equal(map[string]int{"phb:chain-mail": 1}, inventory(char))
}

func (s *HandlersTestSuite) TestEquipment_CategorySelection() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	testCases := []struct {
		name      string
		selection map[string]string
	}{
		{name: "missing item", selection: nil},
		{name: "wrong category", selection: map[string]string{"0": "phb:dagger"}},
		{name: "unknown item", selection: map[string]string{"0": "phb:vorpal-sword"}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.resolve(choice.TypeEquipment, char, fighterWeaponID, &choice.Selection{
				Selected:       []string{"a"},
				ItemSelections: tc.selection,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidSelection(err))
			s.Empty(char.Inventory)
		})
	}

	s.Require().NoError(s.resolve(choice.TypeEquipment, char, fighterWeaponID, &choice.Selection{
		Selected:       []string{"a"},
		ItemSelections: map[string]string{"0": "phb:longsword"},
	}))
	s.Equal(map[string]int{"phb:longsword": 1, "phb:shield": 1}, inventory(char))
}

func (s *HandlersTestSuite) TestEquipment_PackExpandsContents() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	s.Require().NoError(s.resolve(choice.TypeEquipment, char, fighterPackID, selection("b")))
	s.Equal(map[string]int{
		"phb:backpack": 1,
		"phb:bedroll":  1,
		"phb:torch":    10,
		"phb:rations":  10,
	}, inventory(char))

	s.Require().NoError(s.undo(choice.TypeEquipment, char, fighterPackID))
	s.Empty(char.Inventory)
}
