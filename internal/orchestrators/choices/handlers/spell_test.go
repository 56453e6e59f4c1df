package handlers_test

import (
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils/builders"
)

func (s *HandlersTestSuite) TestSpell_FirstLevelDecisions() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassBard, 1).Build()

	decisions := s.enumerate(choice.TypeSpell, char)
	s.Require().Len(decisions, 2)

	cantrips := decisions[0]
	s.Equal("spell|class|phb:bard|1|cantrips", cantrips.ID)
	s.Equal(choice.SubtypeCantrip, cantrips.Subtype)
	s.Equal(2, cantrips.Quantity)
	s.Nil(cantrips.Options)
	s.Equal("/api/v1/characters/char-test-123/available-spells?max_level=0", cantrips.OptionsEndpoint)
	s.Equal(0, cantrips.Metadata["spell_level"])

	known := decisions[1]
	s.Equal("spell|class|phb:bard|1|spells_known", known.ID)
	s.Equal(choice.SubtypeSpellsKnown, known.Subtype)
	s.Equal(4, known.Quantity)
	s.Equal(1, known.Metadata["spell_level"])
	s.Equal(1, known.Metadata["min_spell_level"])
	s.Equal("/api/v1/characters/char-test-123/available-spells?min_level=1&max_level=1", known.OptionsEndpoint)
}

func (s *HandlersTestSuite) TestSpell_ResolveValidatesSpells() {
	const id = "spell|class|phb:bard|1|cantrips"
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassBard, 1).Build()

	testCases := []struct {
		name   string
		spells []string
	}{
		{name: "unknown spell", spells: []string{"phb:nope"}},
		{name: "other class list", spells: []string{"phb:fire-bolt"}},
		{name: "leveled spell as cantrip", spells: []string{"phb:sleep"}},
		{name: "too many", spells: []string{"phb:light", "phb:mage-hand", "phb:minor-illusion"}},
		{name: "duplicate", spells: []string{"phb:light", "phb:light"}},
		{name: "empty", spells: nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.resolve(choice.TypeSpell, char, id, selection(tc.spells...))
			s.Require().Error(err)
			s.True(errors.IsInvalidSelection(err))
			s.Empty(char.Spells)
		})
	}
}

func (s *HandlersTestSuite) TestSpell_ResolveAndUndo() {
	const id = "spell|class|phb:bard|1|cantrips"
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassBard, 1).Build()

	s.Require().NoError(s.resolve(choice.TypeSpell, char, id, selection("phb:vicious-mockery")))
	d := s.decision(choice.TypeSpell, char, id)
	s.Equal(1, d.Remaining)

	s.Require().NoError(s.resolve(choice.TypeSpell, char, id, selection("phb:vicious-mockery", "phb:light")))
	s.Require().Len(char.Spells, 2)
	for _, sp := range char.Spells {
		s.True(sp.Cantrip)
		s.Equal(testutils.ClassBard, sp.ClassSlug)
		s.Equal(1, sp.LevelAcquired)
		s.Equal("cantrips", sp.ChoiceGroup)
	}

	d = s.decision(choice.TypeSpell, char, id)
	s.ElementsMatch([]string{"phb:vicious-mockery", "phb:light"}, d.Selected)
	s.Zero(d.Remaining)
	s.True(s.handlers[choice.TypeSpell].CanUndo(char, d))

	s.Require().NoError(s.undo(choice.TypeSpell, char, id))
	s.Empty(char.Spells)
}

func (s *HandlersTestSuite) TestSpell_LaterLevelCountsEarlierPicks() {
	const id = "spell|class|phb:bard|2|spells_known"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassBard, 2).
		WithSpell("phb:light", testutils.ClassBard, "cantrips", 1, true).
		WithSpell("phb:vicious-mockery", testutils.ClassBard, "cantrips", 1, true).
		WithSpell("phb:sleep", testutils.ClassBard, "spells_known", 1, false).
		WithSpell("phb:healing-word", testutils.ClassBard, "spells_known", 1, false).
		WithSpell("phb:charm-person", testutils.ClassBard, "spells_known", 1, false).
		WithSpell("phb:thunderwave", testutils.ClassBard, "spells_known", 1, false).
		Build()

	decisions := s.enumerate(choice.TypeSpell, char)
	s.Require().Len(decisions, 1, "cantrips are already full")
	s.Equal(id, decisions[0].ID)
	s.Equal(1, decisions[0].Quantity)

	err := s.resolve(choice.TypeSpell, char, id, selection("phb:sleep"))
	s.True(errors.IsInvalidSelection(err), "a spell learned at an earlier level is already known")

	err = s.resolve(choice.TypeSpell, char, id, selection("phb:invisibility"))
	s.True(errors.IsInvalidSelection(err), "second level spells are out of reach")

	s.Require().NoError(s.resolve(choice.TypeSpell, char, id, selection("phb:dissonant-whispers")))
	s.Len(char.Spells, 7)
}

func (s *HandlersTestSuite) TestSpell_SubclassSpellChoice() {
	const id = "spell|subclass_feature|phb:rogue-arcane-trickster|3|trickster_cantrips"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 3).
		WithSubclass(testutils.ClassRogue, testutils.SubclassTrickster).
		Build()

	decisions := s.enumerate(choice.TypeSpell, char)
	s.Require().Len(decisions, 1)
	d := decisions[0]
	s.Equal(id, d.ID)
	s.Equal(choice.SourceSubclassFeature, d.Source)
	s.Equal(choice.SubtypeCantrip, d.Subtype)
	s.Equal(2, d.Quantity)
	s.Equal(testutils.ClassWizard, d.Metadata["spell_list"])
	s.Equal("/api/v1/characters/char-test-123/available-spells?max_level=0&class=phb:wizard", d.OptionsEndpoint)

	err := s.resolve(choice.TypeSpell, char, id, selection("phb:vicious-mockery"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeSpell, char, id, selection("phb:fire-bolt", "phb:mage-hand")))
	s.Require().Len(char.Spells, 2)
	for _, sp := range char.Spells {
		s.Equal(entities.Owner(entities.OwnerKindSubclass, testutils.SubclassTrickster), sp.Source)
		s.Equal(testutils.ClassRogue, sp.ClassSlug)
		s.True(sp.Cantrip)
	}

	s.Require().NoError(s.undo(choice.TypeSpell, char, id))
	s.Empty(char.Spells)
}
