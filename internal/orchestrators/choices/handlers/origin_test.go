package handlers_test

import (
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils/builders"
)

func (s *HandlersTestSuite) TestSize() {
	const id = "size|race|tce:custom-lineage|1|size"
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceCustomLineage).Build()

	d := s.decision(choice.TypeSize, char, id)
	s.Equal(choice.SourceRace, d.Source)
	s.Equal("Custom Lineage", d.SourceName)
	s.True(d.HasOption("S"))
	s.True(d.HasOption("M"))
	s.Equal(1, d.Remaining)

	err := s.resolve(choice.TypeSize, char, id, selection("L"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeSize, char, id, selection("S")))
	s.Equal("S", char.Size)

	d = s.decision(choice.TypeSize, char, id)
	s.Equal([]string{"S"}, d.Selected)
	s.Zero(d.Remaining)

	s.Require().NoError(s.undo(choice.TypeSize, char, id))
	s.Empty(char.Size)
}

func (s *HandlersTestSuite) TestSize_FixedSizeRace() {
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceHuman).Build()
	s.Empty(s.enumerate(choice.TypeSize, char))
}

func (s *HandlersTestSuite) TestAbilityScore_DifferentAbilities() {
	const id = "ability_score|race|phb:human-variant|1|ability_choice_1"
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceVariantHuman).Build()

	d := s.decision(choice.TypeAbilityScore, char, id)
	s.Equal(2, d.Quantity)
	s.Len(d.Options, 6)
	s.Equal(1, d.Metadata["bonus_value"])

	err := s.resolve(choice.TypeAbilityScore, char, id, selection("STR", "STR"))
	s.True(errors.IsInvalidSelection(err), "duplicate abilities must be rejected")
	s.Empty(char.AbilityBonuses)

	err = s.resolve(choice.TypeAbilityScore, char, id, selection("STR"))
	s.True(errors.IsInvalidSelection(err), "too few abilities must be rejected")

	s.Require().NoError(s.resolve(choice.TypeAbilityScore, char, id, selection("STR", "DEX")))
	s.Len(char.AbilityBonuses, 2)
	s.Equal(11, char.AbilityScore(entities.AbilityStrength))
	s.Equal(11, char.AbilityScore(entities.AbilityDexterity))

	d = s.decision(choice.TypeAbilityScore, char, id)
	s.ElementsMatch([]string{"STR", "DEX"}, d.Selected)
	s.Zero(d.Remaining)
}

func (s *HandlersTestSuite) TestAbilityScore_ResolveReplaces() {
	const id = "ability_score|race|phb:human-variant|1|ability_choice_1"
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceVariantHuman).Build()

	s.Require().NoError(s.resolve(choice.TypeAbilityScore, char, id, selection("STR", "DEX")))
	s.Require().NoError(s.resolve(choice.TypeAbilityScore, char, id, selection("CON", "WIS")))

	s.Len(char.AbilityBonuses, 2)
	s.Equal(10, char.AbilityScore(entities.AbilityStrength))
	s.Equal(11, char.AbilityScore(entities.AbilityConstitution))
	s.Equal(11, char.AbilityScore(entities.AbilityWisdom))

	s.Require().NoError(s.undo(choice.TypeAbilityScore, char, id))
	s.Empty(char.AbilityBonuses)
	s.Equal(2, s.decision(choice.TypeAbilityScore, char, id).Remaining)
}

func (s *HandlersTestSuite) TestAbilityScore_AnyConstraintAllowsSingleAbility() {
	const id = "ability_score|race|tce:custom-lineage|1|ability_choice_1"
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceCustomLineage).Build()

	s.Require().NoError(s.resolve(choice.TypeAbilityScore, char, id, selection("INT")))
	s.Equal(12, char.AbilityScore(entities.AbilityIntelligence))
}

func (s *HandlersTestSuite) TestProficiency_ExcludesHeldSkills() {
	const id = "proficiency|class|phb:fighter|1|skill_choice_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 1).
		WithBackground(testutils.BackgroundAcolyte).
		WithProficiency(entities.ProficiencyKindSkill, testutils.SkillAthletics,
			entities.Owner(entities.OwnerKindBackground, testutils.BackgroundAcolyte)).
		Build()

	d := s.decision(choice.TypeProficiency, char, id)
	s.Equal(2, d.Quantity)
	s.Equal("skill", d.Subtype)
	s.Len(d.Options, 6)
	s.False(d.HasOption(testutils.SkillAthletics))

	err := s.resolve(choice.TypeProficiency, char, id, selection(testutils.SkillPerception, testutils.SkillAthletics))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeProficiency, char, id, selection(testutils.SkillPerception)))
	d = s.decision(choice.TypeProficiency, char, id)
	s.Equal([]string{testutils.SkillPerception}, d.Selected)
	s.Equal(1, d.Remaining)
	s.True(d.HasOption(testutils.SkillPerception), "own picks stay selectable")

	s.Require().NoError(s.resolve(choice.TypeProficiency, char, id, selection("phb:history", "phb:insight")))
	s.Len(char.Proficiencies, 3)
	s.Nil(char.Proficiency(entities.ProficiencyKindSkill, testutils.SkillPerception))

	err = s.resolve(choice.TypeProficiency, char, id, selection("phb:history", "phb:insight", "phb:survival"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.undo(choice.TypeProficiency, char, id))
	s.Len(char.Proficiencies, 1)
}

func (s *HandlersTestSuite) TestProficiency_KeepsExpertise() {
	const id = "proficiency|class|phb:fighter|1|skill_choice_1"
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	s.Require().NoError(s.resolve(choice.TypeProficiency, char, id,
		selection(testutils.SkillPerception, "phb:history")))
	prof := char.Proficiency(entities.ProficiencyKindSkill, testutils.SkillPerception)
	s.Require().NotNil(prof)
	prof.Expertise = true
	prof.ExpertiseGroup = "expertise_1"

	err := s.resolve(choice.TypeProficiency, char, id, selection("phb:history", "phb:insight"))
	s.True(errors.IsInvalidSelection(err))
	s.Len(char.Proficiencies, 2)

	s.Require().NoError(s.resolve(choice.TypeProficiency, char, id,
		selection(testutils.SkillPerception, "phb:insight")))
	prof = char.Proficiency(entities.ProficiencyKindSkill, testutils.SkillPerception)
	s.Require().NotNil(prof)
	s.True(prof.Expertise)
	s.Equal("expertise_1", prof.ExpertiseGroup)
	s.Nil(char.Proficiency(entities.ProficiencyKindSkill, "phb:history"))

	d := s.decision(choice.TypeProficiency, char, id)
	s.False(s.handlers[choice.TypeProficiency].CanUndo(char, d))
	err = s.undo(choice.TypeProficiency, char, id)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Len(char.Proficiencies, 2)

	prof.Expertise = false
	prof.ExpertiseGroup = ""
	s.Require().NoError(s.undo(choice.TypeProficiency, char, id))
	s.Empty(char.Proficiencies)
}

func (s *HandlersTestSuite) TestProficiency_ToolSubcategory() {
	const id = "proficiency|background|phb:guild-artisan|1|tool_choice_1"
	char := builders.NewCharacterBuilder().WithBackground(testutils.BackgroundArtisan).Build()

	d := s.decision(choice.TypeProficiency, char, id)
	s.Equal("artisan", d.Subtype)
	s.Len(d.Options, 3)

	s.Require().NoError(s.resolve(choice.TypeProficiency, char, id, selection("phb:smiths-tools")))
	prof := char.Proficiency(entities.ProficiencyKindTool, "phb:smiths-tools")
	s.Require().NotNil(prof)
	s.Equal(entities.Owner(entities.OwnerKindBackground, testutils.BackgroundArtisan), prof.Source)
	s.Equal("tool_choice_1", prof.ChoiceGroup)
}

func (s *HandlersTestSuite) TestProficiency_RaceChain() {
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceHillDwarf).Build()

	decisions := s.enumerate(choice.TypeProficiency, char)
	s.Require().Len(decisions, 1)
	s.Equal("proficiency|race|phb:dwarf|1|tool_choice_1", decisions[0].ID)
	s.Equal("tool", decisions[0].Subtype)
	s.Len(decisions[0].Options, 3)
}

func (s *HandlersTestSuite) TestLanguage_OptionsExcludeKnownLanguages() {
	const (
		raceID = "language|race|phb:human|1|language_choice_1"
		bgID   = "language|background|phb:acolyte|1|language_choice_1"
	)
	char := builders.NewCharacterBuilder().
		WithRace(testutils.RaceHuman).
		WithBackground(testutils.BackgroundAcolyte).
		WithLanguage(testutils.LanguageCommon, entities.Owner(entities.OwnerKindRace, testutils.RaceHuman)).
		Build()

	decisions := s.enumerate(choice.TypeLanguage, char)
	s.Len(decisions, 2)

	d := s.decision(choice.TypeLanguage, char, raceID)
	s.Len(d.Options, 7)
	s.False(d.HasOption(testutils.LanguageCommon))
	s.False(d.HasOption("phb:thieves-cant"))
	s.Equal([]string{testutils.LanguageCommon}, d.Metadata["known_languages"])

	s.Require().NoError(s.resolve(choice.TypeLanguage, char, raceID, selection(testutils.LanguageElvish)))
	s.True(s.decision(choice.TypeLanguage, char, raceID).HasOption(testutils.LanguageElvish))

	bg := s.decision(choice.TypeLanguage, char, bgID)
	s.Equal(2, bg.Quantity)
	s.False(bg.HasOption(testutils.LanguageElvish))

	err := s.resolve(choice.TypeLanguage, char, bgID, selection(testutils.LanguageElvish))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeLanguage, char, bgID, selection(testutils.LanguageDwarvish, "phb:giant")))
	s.Len(char.Languages, 4)
	s.Zero(s.decision(choice.TypeLanguage, char, bgID).Remaining)

	s.Require().NoError(s.undo(choice.TypeLanguage, char, bgID))
	s.Len(char.Languages, 2)
}

func (s *HandlersTestSuite) TestLanguage_FeatSource() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 4).
		WithFeat(testutils.FeatLinguist, entities.Owner(entities.OwnerKindClass, testutils.ClassFighter), "asi_1", 4).
		Build()

	d := s.decision(choice.TypeLanguage, char, "language|feat|phb:linguist|4|language_choice_1")
	s.Equal(choice.SourceFeat, d.Source)
	s.Equal(3, d.Quantity)
	s.Equal(4, d.LevelGranted)
}

func (s *HandlersTestSuite) TestFeat_BonusFeat() {
	const id = "feat|race|phb:human-variant|1|bonus_feat"
	char := builders.NewCharacterBuilder().
		WithRace(testutils.RaceVariantHuman).
		WithClass(testutils.ClassFighter, 1).
		WithHitPoints(10).
		Build()

	decisions := s.enumerate(choice.TypeFeat, char)
	s.Require().Len(decisions, 1)
	d := decisions[0]
	s.Equal(id, d.ID)
	s.Nil(d.Options)
	s.Equal("/api/v1/feats", d.OptionsEndpoint)

	err := s.resolve(choice.TypeFeat, char, id, &choice.Selection{})
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeFeat, char, id, &choice.Selection{FeatSlug: testutils.FeatTough}))
	s.True(char.HasFeat(testutils.FeatTough))
	s.Equal(12, char.MaxHitPoints)
	s.Equal([]string{testutils.FeatTough}, s.decision(choice.TypeFeat, char, id).Selected)

	s.Require().NoError(s.resolve(choice.TypeFeat, char, id, selection(testutils.FeatAlert)))
	s.False(char.HasFeat(testutils.FeatTough))
	s.True(char.HasFeat(testutils.FeatAlert))
	s.Equal(10, char.MaxHitPoints)

	s.Require().NoError(s.undo(choice.TypeFeat, char, id))
	s.Empty(char.Feats)
}

func (s *HandlersTestSuite) TestFeat_PrerequisiteFailsAsInvalidSelection() {
	const id = "feat|race|tce:custom-lineage|1|bonus_feat"
	char := builders.NewCharacterBuilder().WithRace(testutils.RaceCustomLineage).Build()

	err := s.resolve(choice.TypeFeat, char, id, &choice.Selection{FeatSlug: testutils.FeatGrappler})
	s.Require().Error(err)
	s.True(errors.IsInvalidSelection(err))
	s.Empty(char.Feats)
}

func (s *HandlersTestSuite) TestFeat_GrantsFeatRows() {
	const id = "feat|race|tce:custom-lineage|1|bonus_feat"
	char := builders.NewCharacterBuilder().
		WithRace(testutils.RaceCustomLineage).
		WithClass(testutils.ClassWizard, 1).
		Build()

	s.Require().NoError(s.resolve(choice.TypeFeat, char, id, &choice.Selection{FeatSlug: testutils.FeatHeavilyArmored}))
	s.Equal(11, char.AbilityScore(entities.AbilityStrength))
	s.NotNil(char.Proficiency(entities.ProficiencyKindArmor, "phb:heavy-armor"))

	s.Require().NoError(s.undo(choice.TypeFeat, char, id))
	s.Equal(10, char.AbilityScore(entities.AbilityStrength))
	s.Nil(char.Proficiency(entities.ProficiencyKindArmor, "phb:heavy-armor"))
}
