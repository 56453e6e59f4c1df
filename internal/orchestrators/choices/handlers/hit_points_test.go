package handlers_test

import (
	"context"
	stderrors "errors"

	"go.uber.org/mock/gomock"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils/builders"
)

const secondLevelHitPointsID = "hit_points|level_up|char-test-123|2|hp"

func (s *HandlersTestSuite) TestHitPoints_NoDecisionAtFirstLevel() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassRogue, 1).Build()
	s.Empty(s.enumerate(choice.TypeHitPoints, char))
}

func (s *HandlersTestSuite) TestHitPoints_Options() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 2).
		WithAbilityScore(entities.AbilityConstitution, 8).
		Build()

	d := s.decision(choice.TypeHitPoints, char, secondLevelHitPointsID)
	s.Equal(choice.SourceLevelUp, d.Source)
	s.Equal(8, d.Metadata["hit_die"])
	s.Equal(-1, d.Metadata["con_modifier"])
	s.Equal(testutils.ClassRogue, d.Metadata["class_slug"])

	roll := d.Option(entities.HitPointMethodRoll)
	s.Require().NotNil(roll)
	s.Equal(1, roll.Metadata["min"])
	s.Equal(7, roll.Metadata["max"])
	s.Equal("Roll 1d8 - 1", roll.Description)

	average := d.Option(entities.HitPointMethodAverage)
	s.Require().NotNil(average)
	s.Equal(4, average.Metadata["value"])
	s.Equal("Take 5 - 1", average.Description)
}

func (s *HandlersTestSuite) TestHitPoints_DescriptionPositiveModifier() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 2).
		WithAbilityScore(entities.AbilityConstitution, 14).
		Build()

	d := s.decision(choice.TypeHitPoints, char, secondLevelHitPointsID)
	s.Equal("Roll 1d8 + 2", d.Option(entities.HitPointMethodRoll).Description)
	s.Equal("Take 5 + 2", d.Option(entities.HitPointMethodAverage).Description)
}

func (s *HandlersTestSuite) TestHitPoints_Average() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 2).
		WithAbilityScore(entities.AbilityConstitution, 8).
		WithHitPoints(7).
		Build()

	s.mockEngine.EXPECT().
		AverageHitPoints(gomock.Any(), &engine.AverageHitPointsInput{HitDie: 8, ConstitutionModifier: -1}).
		Return(&engine.AverageHitPointsOutput{Value: 5, Gained: 4}, nil)

	s.Require().NoError(s.resolve(choice.TypeHitPoints, char, secondLevelHitPointsID, selection(entities.HitPointMethodAverage)))
	s.Equal(11, char.MaxHitPoints)
	s.Equal(11, char.CurrentHitPoints)

	record := char.HitPointRollAt(2)
	s.Require().NotNil(record)
	s.Equal(entities.HitPointMethodAverage, record.Method)
	s.Equal(5, record.Roll)
	s.Equal(4, record.Gained)
	s.Equal(testutils.ClassRogue, record.ClassSlug)

	d := s.decision(choice.TypeHitPoints, char, secondLevelHitPointsID)
	s.Equal([]string{entities.HitPointMethodAverage}, d.Selected)
	s.False(s.handlers[choice.TypeHitPoints].CanUndo(char, d))

	err := s.resolve(choice.TypeHitPoints, char, secondLevelHitPointsID, selection(entities.HitPointMethodRoll))
	s.True(errors.IsChoiceNotUndoable(err))

	err = s.undo(choice.TypeHitPoints, char, secondLevelHitPointsID)
	s.True(errors.IsChoiceNotUndoable(err))
	s.Equal(11, char.MaxHitPoints)
}

func (s *HandlersTestSuite) TestHitPoints_RollIsServerSide() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassRogue, 2).
		WithAbilityScore(entities.AbilityConstitution, 8).
		WithHitPoints(7).
		Build()

	s.mockEngine.EXPECT().
		RollHitPoints(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.RollHitPointsInput) (*engine.RollHitPointsOutput, error) {
			s.Equal(8, input.HitDie)
			s.Equal(-1, input.ConstitutionModifier)
			s.Require().NotNil(input.Entity)
			s.Equal("char-test-123", input.Entity.GetID())
			return &engine.RollHitPointsOutput{Roll: 6, Gained: 5}, nil
		})

	s.Require().NoError(s.resolve(choice.TypeHitPoints, char, secondLevelHitPointsID, selection(entities.HitPointMethodRoll)))
	record := char.HitPointRollAt(2)
	s.Require().NotNil(record)
	s.Equal(6, record.Roll)
	s.GreaterOrEqual(record.Gained, 1)
	s.LessOrEqual(record.Gained, 7)
	s.Equal(12, char.MaxHitPoints)
}

func (s *HandlersTestSuite) TestHitPoints_EngineFailureLeavesCharacterUnchanged() {
	char := builders.NewCharacterBuilder().WithClass(testutils.ClassRogue, 2).WithHitPoints(8).Build()

	s.mockEngine.EXPECT().
		RollHitPoints(gomock.Any(), gomock.Any()).
		Return(nil, stderrors.New("dice jammed"))

	err := s.resolve(choice.TypeHitPoints, char, secondLevelHitPointsID, selection(entities.HitPointMethodRoll))
	s.Require().Error(err)
	s.Contains(err.Error(), "dice jammed")
	s.Empty(char.HitPointRolls)
	s.Equal(8, char.MaxHitPoints)
}

func (s *HandlersTestSuite) TestHitPoints_PerLevelBonuses() {
	char := builders.NewCharacterBuilder().
		WithRace(testutils.RaceHillDwarf).
		WithClass(testutils.ClassFighter, 2).
		WithFeat(testutils.FeatTough, entities.Owner(entities.OwnerKindRace, testutils.RaceHillDwarf), "bonus_feat", 1).
		WithHitPoints(14).
		Build()

	s.mockEngine.EXPECT().
		AverageHitPoints(gomock.Any(), &engine.AverageHitPointsInput{HitDie: 10, ConstitutionModifier: 0}).
		Return(&engine.AverageHitPointsOutput{Value: 6, Gained: 6}, nil)

	s.Require().NoError(s.resolve(choice.TypeHitPoints, char, secondLevelHitPointsID, selection(entities.HitPointMethodAverage)))
	s.Equal(9, char.HitPointRollAt(2).Gained)
	s.Equal(23, char.MaxHitPoints)
}

func (s *HandlersTestSuite) TestHitPoints_MulticlassLevelsFollowPrimaryClass() {
	char := builders.NewCharacterBuilder().
		WithClass(testutils.ClassFighter, 2).
		WithClass(testutils.ClassRogue, 1).
		Build()

	decisions := s.enumerate(choice.TypeHitPoints, char)
	s.Require().Len(decisions, 2)
	s.Equal(10, decisions[0].Metadata["hit_die"])
	s.Equal(testutils.ClassFighter, decisions[0].Metadata["class_slug"])
	s.Equal("hit_points|level_up|char-test-123|3|hp", decisions[1].ID)
	s.Equal(8, decisions[1].Metadata["hit_die"])
	s.Equal(testutils.ClassRogue, decisions[1].Metadata["class_slug"])
}
