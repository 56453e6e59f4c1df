package rpgtoolkit

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *stubDiceRoller
	adapter *Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &stubDiceRoller{value: 1}
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.adapter = adapter
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("default roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: dice.DefaultRoller})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

func (s *AdapterTestSuite) TestCalculateAbilityModifier() {
	s.Equal(-1, s.adapter.CalculateAbilityModifier(8))
	s.Equal(-1, s.adapter.CalculateAbilityModifier(9))
	s.Equal(0, s.adapter.CalculateAbilityModifier(10))
	s.Equal(3, s.adapter.CalculateAbilityModifier(17))
}

func (s *AdapterTestSuite) TestRollHitPoints() {
	entity := WrapCharacter(&entities.Character{ID: "char-1"})

	s.Run("floors the gain at one", func() {
		s.roller.value = 1
		out, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{
			Entity:               entity,
			HitDie:               8,
			ConstitutionModifier: -1,
		})
		s.Require().NoError(err)
		s.Equal(1, out.Roll)
		s.Equal(1, out.Gained)
		s.Equal(8, s.roller.lastSize)
	})

	s.Run("adds the modifier", func() {
		s.roller.value = 8
		out, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{
			Entity:               entity,
			HitDie:               8,
			ConstitutionModifier: -1,
		})
		s.Require().NoError(err)
		s.Equal(7, out.Gained)
	})

	s.Run("roller failure", func() {
		s.roller.err = stderrors.New("entropy exhausted")
		defer func() { s.roller.err = nil }()

		_, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{HitDie: 8})
		s.Error(err)
		s.Contains(err.Error(), "failed to roll d8")
	})

	s.Run("invalid die", func() {
		_, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{HitDie: 0})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *AdapterTestSuite) TestAverageHitPoints() {
	tests := []struct {
		name   string
		hitDie int
		mod    int
		value  int
		gained int
	}{
		{name: "d8 with -1", hitDie: 8, mod: -1, value: 5, gained: 4},
		{name: "d10 with +2", hitDie: 10, mod: 2, value: 6, gained: 8},
		{name: "d6 with -5", hitDie: 6, mod: -5, value: 4, gained: 1},
		{name: "d12", hitDie: 12, mod: 0, value: 7, gained: 7},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.adapter.AverageHitPoints(s.ctx, &engine.AverageHitPointsInput{
				HitDie:               tt.hitDie,
				ConstitutionModifier: tt.mod,
			})
			s.Require().NoError(err)
			s.Equal(tt.value, out.Value)
			s.Equal(tt.gained, out.Gained)
		})
	}
}

func (s *AdapterTestSuite) TestCharacterEntity() {
	entity := WrapCharacter(&entities.Character{ID: "char-9"})
	s.Equal("char-9", entity.GetID())
	s.Equal("character", entity.GetType())
}

type stubDiceRoller struct {
	value    int
	err      error
	lastSize int
}

func (s *stubDiceRoller) Roll(size int) (int, error) {
	s.lastSize = size
	if s.err != nil {
		return 0, s.err
	}
	return s.value, nil
}

func (s *stubDiceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *AdapterTestSuite) TestWrapCharacter() {
	entity := WrapCharacter(&entities.Character{ID: "char-3"})
	s.Equal("char-3", entity.GetID())
	s.Equal("character", entity.GetType())

	s.Nil(WrapCharacter(nil))
}
