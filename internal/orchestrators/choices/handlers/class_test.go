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
	fighterSubclassID   = "subclass|class|phb:fighter|3|subclass"
	barbarianSubclassID = "subclass|class|phb:barbarian|3|subclass"
)

func (s *HandlersTestSuite) TestSubclass_NotBeforeSubclassLevel() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 2).Build()
	s.Empty(s.enumerate(choice.TypeSubclass, char))
}

func (s *HandlersTestSuite) TestSubclass_Options() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 3).Build()

	d := s.decision(choice.TypeSubclass, char, fighterSubclassID)
	s.Equal("Martial Archetype", d.Metadata["subclass_feature_name"])
	s.Len(d.Options, 2)

	opt := d.Option(testutils.SubclassBattleMstr)
	s.Require().NotNil(opt)
	s.Equal([]string{"Combat Superiority", "Student of War"}, opt.Metadata["features_preview"])
	s.Empty(opt.Metadata["variant_choices"])
}

func (s *HandlersTestSuite) TestSubclass_ResolveAndUndo() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 3).
		WithFeature("phb:maneuver-parry", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		Build()
	char.Features[0].SubclassSlug = testutils.SubclassBattleMstr

	err := s.resolve(choice.TypeSubclass, char, fighterSubclassID, selection("phb:fighter-eldritch-knight"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeSubclass, char, fighterSubclassID, selection(testutils.SubclassBattleMstr)))
	s.Equal(testutils.SubclassBattleMstr, char.Class(testutils.ClassFighter).SubclassSlug)
	s.Equal([]string{testutils.SubclassBattleMstr}, s.decision(choice.TypeSubclass, char, fighterSubclassID).Selected)

	s.Require().NoError(s.resolve(choice.TypeSubclass, char, fighterSubclassID, selection(testutils.SubclassChampion)))
	s.Equal(testutils.SubclassChampion, char.Class(testutils.ClassFighter).SubclassSlug)
	s.Empty(char.Features, "switching subclass drops the old subclass's features")

	d := s.decision(choice.TypeSubclass, char, fighterSubclassID)
	s.True(s.handlers[choice.TypeSubclass].CanUndo(char, d))
	s.Require().NoError(s.undo(choice.TypeSubclass, char, fighterSubclassID))
	s.Empty(char.Class(testutils.ClassFighter).SubclassSlug)
}

func (s *HandlersTestSuite) TestSubclass_NotUndoableAfterLevelUp() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 4).
		WithSubclass(testutils.ClassFighter, testutils.SubclassChampion).
		Build()

	d := s.decision(choice.TypeSubclass, char, fighterSubclassID)
	s.False(s.handlers[choice.TypeSubclass].CanUndo(char, d))

	err := s.handlers[choice.TypeSubclass].Undo(s.ctx, char, d)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Equal(testutils.SubclassChampion, char.Class(testutils.ClassFighter).SubclassSlug)
}

func (s *HandlersTestSuite) TestSubclass_RequiresVariantChoices() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassBarbarian, 3).Build()

	d := s.decision(choice.TypeSubclass, char, barbarianSubclassID)
	opt := d.Option(testutils.SubclassTotem)
	s.Require().NotNil(opt)
	variants, ok := opt.Metadata["variant_choices"].(map[string]handlers.VariantChoice)
	s.Require().True(ok)
	s.Require().Contains(variants, "totem_spirit")
	s.NotContains(variants, "totem_aspect")
	s.Equal("Totem Spirit", variants["totem_spirit"].Label)
	s.Len(variants["totem_spirit"].Options, 3)
	s.Equal([]string{"Spirit Seeker"}, opt.Metadata["features_preview"])

	err := s.resolve(choice.TypeSubclass, char, barbarianSubclassID, selection(testutils.SubclassTotem))
	s.True(errors.IsInvalidSelection(err))
	s.Empty(char.Class(testutils.ClassBarbarian).SubclassSlug)

	err = s.resolve(choice.TypeSubclass, char, barbarianSubclassID, &choice.Selection{
		Selected:       []string{testutils.SubclassTotem},
		VariantChoices: map[string]string{"totem_spirit": "shark"},
	})
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeSubclass, char, barbarianSubclassID, &choice.Selection{
		Selected:       []string{testutils.SubclassTotem},
		VariantChoices: map[string]string{"totem_spirit": " Bear "},
	}))
	cc := char.Class(testutils.ClassBarbarian)
	s.Equal(testutils.SubclassTotem, cc.SubclassSlug)
	s.Equal(map[string]string{"totem_spirit": "bear"}, cc.SubclassChoices)
}

func (s *HandlersTestSuite) TestSubclassVariant() {
	const id = "subclass_variant|subclass|phb:barbarian-path-of-the-totem-warrior|6|totem_aspect"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassBarbarian, 6).
		WithSubclass(testutils.ClassBarbarian, testutils.SubclassTotem).
		WithSubclassChoice(testutils.ClassBarbarian, "totem_spirit", "bear").
		Build()

	decisions := s.enumerate(choice.TypeSubclassVariant, char)
	s.Require().Len(decisions, 1, "totem spirit belongs to the subclass choice and attunement is not reached yet")
	d := decisions[0]
	s.Equal(id, d.ID)
	s.Equal("totem_aspect", d.Subtype)
	s.Len(d.Options, 3)
	s.Equal(1, d.Remaining)

	err := s.resolve(choice.TypeSubclassVariant, char, id, selection("shark"))
	s.True(errors.IsInvalidSelection(err))

	sel := selection(" Wolf ")
	s.Require().NoError(s.resolve(choice.TypeSubclassVariant, char, id, sel))
	s.Equal([]string{" Wolf "}, sel.Selected, "caller's selection is left as sent")
	s.Equal("wolf", char.Class(testutils.ClassBarbarian).SubclassChoices["totem_aspect"])
	s.Equal("bear", char.Class(testutils.ClassBarbarian).SubclassChoices["totem_spirit"])
	s.Equal([]string{"wolf"}, s.decision(choice.TypeSubclassVariant, char, id).Selected)

	s.Require().NoError(s.undo(choice.TypeSubclassVariant, char, id))
	s.NotContains(char.Class(testutils.ClassBarbarian).SubclassChoices, "totem_aspect")
}

func (s *HandlersTestSuite) TestSubclassVariant_NotUndoableAfterLevelUp() {
	const id = "subclass_variant|subclass|phb:barbarian-path-of-the-totem-warrior|6|totem_aspect"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassBarbarian, 7).
		WithSubclass(testutils.ClassBarbarian, testutils.SubclassTotem).
		WithSubclassChoice(testutils.ClassBarbarian, "totem_aspect", "eagle").
		Build()

	err := s.undo(choice.TypeSubclassVariant, char, id)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Equal("eagle", char.Class(testutils.ClassBarbarian).SubclassChoices["totem_aspect"])
}

func (s *HandlersTestSuite) TestFightingStyle_Permanent() {
	const id = "fighting_style|class|phb:fighter|1|fighting_style"
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 1).Build()

	d := s.decision(choice.TypeFightingStyle, char, id)
	s.Len(d.Options, 4)

	s.Require().NoError(s.resolve(choice.TypeFightingStyle, char, id, selection("phb:archery")))
	s.Require().Len(char.Features, 1)
	s.Equal("fighting_style", char.Features[0].FeatureType)

	d = s.decision(choice.TypeFightingStyle, char, id)
	s.Equal([]string{"phb:archery"}, d.Selected)
	s.False(s.handlers[choice.TypeFightingStyle].CanUndo(char, d))

	err := s.resolve(choice.TypeFightingStyle, char, id, selection("phb:defense"))
	s.True(errors.IsChoiceNotUndoable(err))

	err = s.undo(choice.TypeFightingStyle, char, id)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Len(char.Features, 1)
}

func (s *HandlersTestSuite) TestFightingStyle_ExcludesStylesFromOtherClasses() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 1).
		WithClass(testutils.ClassPaladin, 2).
		WithFeature("phb:defense", "fighting_style", testutils.ClassFighter, "fighting_style", 1).
		Build()

	d := s.decision(choice.TypeFightingStyle, char, "fighting_style|class|phb:paladin|2|fighting_style")
	s.Len(d.Options, 2)
	s.False(d.HasOption("phb:defense"))
	s.False(d.HasOption("phb:archery"))
}

func (s *HandlersTestSuite) TestExpertise_RogueSixthLevel() {
	const (
		firstID = "expertise|class|phb:rogue|1|expertise_1"
		sixthID = "expertise|class|phb:rogue|6|expertise_6"
	)
	rogue := entities.Owner(entities.OwnerKindClass, testutils.ClassRogue)
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 6).
		WithExpertise(entities.ProficiencyKindSkill, testutils.SkillAthletics, "expertise_1", rogue).
		WithExpertise(entities.ProficiencyKindSkill, "phb:acrobatics", "expertise_1", rogue).
		WithProficiency(entities.ProficiencyKindSkill, testutils.SkillStealth, rogue).
		WithProficiency(entities.ProficiencyKindSkill, testutils.SkillPerception, rogue).
		WithProficiency(entities.ProficiencyKindTool, testutils.ToolThieves, rogue).
		WithProficiency(entities.ProficiencyKindTool, "phb:lute", rogue).
		Build()

	s.Len(s.enumerate(choice.TypeExpertise, char), 2)

	first := s.decision(choice.TypeExpertise, char, firstID)
	s.ElementsMatch([]string{testutils.SkillAthletics, "phb:acrobatics"}, first.Selected)

	d := s.decision(choice.TypeExpertise, char, sixthID)
	s.Equal(2, d.Quantity)
	s.Equal([]string{"skill", "tool"}, d.Metadata["allowed_kinds"])
	s.Len(d.Options, 3)
	s.True(d.HasOption(testutils.SkillStealth))
	s.True(d.HasOption(testutils.SkillPerception))
	s.True(d.HasOption(testutils.ToolThieves))
	s.False(d.HasOption("phb:lute"))
	s.False(d.HasOption(testutils.SkillAthletics))

	s.Require().NoError(s.resolve(choice.TypeExpertise, char, sixthID, selection(testutils.SkillStealth, testutils.SkillPerception)))
	for _, slug := range []string{testutils.SkillStealth, testutils.SkillPerception} {
		prof := char.Proficiency(entities.ProficiencyKindSkill, slug)
		s.True(prof.Expertise)
		s.Equal("expertise_6", prof.ExpertiseGroup)
	}
	s.Zero(s.decision(choice.TypeExpertise, char, sixthID).Remaining)

	err := s.undo(choice.TypeExpertise, char, firstID)
	s.True(errors.IsChoiceNotUndoable(err))

	s.Require().NoError(s.undo(choice.TypeExpertise, char, sixthID))
	s.False(char.Proficiency(entities.ProficiencyKindSkill, testutils.SkillStealth).Expertise)
	s.True(char.Proficiency(entities.ProficiencyKindSkill, testutils.SkillAthletics).Expertise)
}

func (s *HandlersTestSuite) TestExpertise_BardSkillsOnly() {
	bard := entities.Owner(entities.OwnerKindClass, testutils.ClassBard)
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassBard, 3).
		WithProficiency(entities.ProficiencyKindSkill, testutils.SkillStealth, bard).
		WithProficiency(entities.ProficiencyKindTool, testutils.ToolThieves, bard).
		Build()

	d := s.decision(choice.TypeExpertise, char, "expertise|class|phb:bard|3|expertise_3")
	s.Equal([]string{"skill"}, d.Metadata["allowed_kinds"])
	s.Len(d.Options, 1)
	s.True(d.HasOption(testutils.SkillStealth))

	err := s.resolve(choice.TypeExpertise, char, d.ID, selection(testutils.ToolThieves))
	s.True(errors.IsInvalidSelection(err))
}

func (s *HandlersTestSuite) TestExpertise_NotOfferedToOtherClasses() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassFighter, 10).Build()
	s.Empty(s.enumerate(choice.TypeExpertise, char))
}

func (s *HandlersTestSuite) TestOptionalFeature_SubclassCounter() {
	const id = "optional_feature|class|phb:fighter|3|maneuver_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 3).
		WithSubclass(testutils.ClassFighter, testutils.SubclassBattleMstr).
		Build()

	d := s.decision(choice.TypeOptionalFeature, char, id)
	s.Equal("maneuver", d.Subtype)
	s.Equal("Battle Master", d.SourceName)
	s.Equal(3, d.Quantity)
	s.Equal("Maneuvers Known", d.Metadata["counter_name"])
	s.Len(d.Options, 5)

	err := s.resolve(choice.TypeOptionalFeature, char, id, selection(
		"phb:maneuver-trip-attack", "phb:maneuver-riposte", "phb:maneuver-parry", "phb:maneuver-precision-attack"))
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeOptionalFeature, char, id, selection(
		"phb:maneuver-trip-attack", "phb:maneuver-riposte", "phb:maneuver-parry")))
	s.Require().Len(char.Features, 3)
	for _, f := range char.Features {
		s.Equal(testutils.SubclassBattleMstr, f.SubclassSlug)
		s.Equal("maneuver_1", f.ChoiceGroup)
	}

	// removing the subclass takes its maneuvers with it
	s.Require().NoError(s.undo(choice.TypeSubclass, char, fighterSubclassID))
	s.Empty(char.Features)
	s.Empty(s.enumerate(choice.TypeOptionalFeature, char))
}

func (s *HandlersTestSuite) TestOptionalFeature_HigherCounterCarriesPicks() {
	const id = "optional_feature|class|phb:fighter|7|maneuver_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 7).
		WithSubclass(testutils.ClassFighter, testutils.SubclassBattleMstr).
		WithFeature("phb:maneuver-trip-attack", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		WithFeature("phb:maneuver-riposte", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		WithFeature("phb:maneuver-parry", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		Build()

	d := s.decision(choice.TypeOptionalFeature, char, id)
	s.Equal(2, d.Quantity)
	s.Empty(d.Selected)
	s.Equal(2, d.Remaining)
	s.Len(d.Options, 2)
	s.False(d.HasOption("phb:maneuver-trip-attack"))
	s.True(s.handlers[choice.TypeOptionalFeature].CanUndo(char, d))

	err := s.resolve(choice.TypeOptionalFeature, char, id, selection("phb:maneuver-trip-attack"))
	s.True(errors.IsInvalidSelection(err))
}

func (s *HandlersTestSuite) TestOptionalFeature_UpgradeKeepsEarlierPicks() {
	const id = "optional_feature|class|phb:fighter|7|maneuver_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 7).
		WithSubclass(testutils.ClassFighter, testutils.SubclassBattleMstr).
		WithFeature("phb:maneuver-trip-attack", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		WithFeature("phb:maneuver-riposte", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		WithFeature("phb:maneuver-parry", "maneuver", testutils.ClassFighter, "maneuver_1", 3).
		Build()

	levelThree := func() []string {
		var out []string
		for _, f := range char.Features {
			if f.LevelAcquired == 3 {
				out = append(out, f.Slug)
			}
		}
		return out
	}

	s.Require().NoError(s.resolve(choice.TypeOptionalFeature, char, id, selection(
		"phb:maneuver-precision-attack", "phb:maneuver-menacing-attack")))
	s.Len(char.Features, 5)
	s.Len(levelThree(), 3)
	for _, f := range char.Features[3:] {
		s.Equal(7, f.LevelAcquired)
	}

	d := s.decision(choice.TypeOptionalFeature, char, id)
	s.ElementsMatch([]string{"phb:maneuver-precision-attack", "phb:maneuver-menacing-attack"}, d.Selected)
	s.Equal(0, d.Remaining)

	// re-resolving replaces only the level 7 picks
	s.Require().NoError(s.resolve(choice.TypeOptionalFeature, char, id, selection("phb:maneuver-menacing-attack")))
	s.Len(char.Features, 4)
	s.Len(levelThree(), 3)

	s.Require().NoError(s.undo(choice.TypeOptionalFeature, char, id))
	s.Len(char.Features, 3)
	s.ElementsMatch([]string{"phb:maneuver-trip-attack", "phb:maneuver-riposte", "phb:maneuver-parry"}, levelThree())

	d = s.decision(choice.TypeOptionalFeature, char, id)
	s.Empty(d.Selected)
	s.Equal(2, d.Remaining)
}

func (s *HandlersTestSuite) TestOptionalFeature_ClassCounterRespectsLevelRequirement() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassWarlock, 2).Build()

	d := s.decision(choice.TypeOptionalFeature, char, "optional_feature|class|phb:warlock|2|eldritch_invocation_1")
	s.Equal(2, d.Quantity)
	s.Len(d.Options, 3)
	s.False(d.HasOption("phb:thirsting-blade"))

	s.Empty(s.enumerate(choice.TypeOptionalFeature,
		builders.NewCharacterBuilder().WithClass(testutils.ClassWarlock, 1).Build()))
}

func (s *HandlersTestSuite) TestASIOrFeat_Levels() {
	testCases := []struct {
		name  string
		class string
		level int
		ids   []string
	}{
		{
			name:  "below first improvement",
			class: testutils.ClassWizard,
			level: 3,
		},
		{
			name:  "fighter extra level",
			class: testutils.ClassFighter,
			level: 6,
			ids: []string{
				"asi_or_feat|class|phb:fighter|4|asi_1",
				"asi_or_feat|class|phb:fighter|6|asi_2",
			},
		},
		{
			name:  "rogue extra level",
			class: testutils.ClassRogue,
			level: 10,
			ids: []string{
				"asi_or_feat|class|phb:rogue|4|asi_1",
				"asi_or_feat|class|phb:rogue|8|asi_2",
				"asi_or_feat|class|phb:rogue|10|asi_3",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			char := builders.NewCharacterBuilder().WithClass(tc.class, tc.level).Build()
			var ids []string
			for _, d := range s.enumerate(choice.TypeASIOrFeat, char) {
				ids = append(ids, d.ID)
			}
			s.Equal(tc.ids, ids)
		})
	}
}

func (s *HandlersTestSuite) TestASIOrFeat_AbilityScoreImprovement() {
	const id = "asi_or_feat|class|phb:fighter|4|asi_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 4).
		WithAbilityScore(entities.AbilityStrength, 16).
		Build()

	d := s.decision(choice.TypeASIOrFeat, char, id)
	s.Nil(d.Options)
	s.Equal("/api/v1/characters/char-test-123/available-feats?source=asi", d.OptionsEndpoint)
	s.Equal(2, d.Metadata["asi_points"])
	s.Equal(20, d.Metadata["max_ability_score"])

	err := s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "asi", Increases: map[string]int{"STR": 1}})
	s.True(errors.IsInvalidSelection(err))

	err = s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "bogus"})
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{
		Type:      "asi",
		Increases: map[string]int{"str": 2, "dex": 0},
	}))
	s.Equal(18, char.AbilityScore(entities.AbilityStrength))

	d = s.decision(choice.TypeASIOrFeat, char, id)
	s.Equal([]string{"asi"}, d.Selected)
	s.Equal("asi", d.Metadata["improvement_kind"])
	s.False(s.handlers[choice.TypeASIOrFeat].CanUndo(char, d))

	err = s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "asi", Increases: map[string]int{"DEX": 2}})
	s.True(errors.IsChoiceNotUndoable(err))

	err = s.undo(choice.TypeASIOrFeat, char, id)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Equal(18, char.AbilityScore(entities.AbilityStrength))
}

func (s *HandlersTestSuite) TestASIOrFeat_Feat() {
	const id = "asi_or_feat|class|phb:fighter|4|asi_1"
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 4).
		WithHitPoints(36).
		Build()

	err := s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "feat"})
	s.True(errors.IsInvalidSelection(err))

	err = s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "feat", FeatSlug: "phb:unknown"})
	s.True(errors.IsInvalidSelection(err))

	s.Require().NoError(s.resolve(choice.TypeASIOrFeat, char, id, &choice.Selection{Type: "feat", FeatSlug: testutils.FeatTough}))
	s.Equal(44, char.MaxHitPoints)
	s.Require().Len(char.Feats, 1)
	s.Equal(4, char.Feats[0].LevelAcquired)

	d := s.decision(choice.TypeASIOrFeat, char, id)
	s.Equal([]string{"feat"}, d.Selected)
	s.Equal(testutils.FeatTough, d.Metadata["feat_slug"])
}
