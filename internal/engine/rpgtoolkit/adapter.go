// Package rpgtoolkit backs engine.Engine with rpg-toolkit dice
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// Adapter rolls through an injected dice.Roller so tests can script results
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig holds the adapter dependencies
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate requires a roller
func (c *AdapterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates an Adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

var _ engine.Engine = (*Adapter)(nil)

// CalculateAbilityModifier is floor((score-10)/2)
func (a *Adapter) CalculateAbilityModifier(score int) int {
	return entities.Modifier(score)
}

// RollHitPoints rolls the hit die with the configured roller
func (a *Adapter) RollHitPoints(ctx context.Context, input *engine.RollHitPointsInput) (*engine.RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HitDie <= 0 {
		return nil, errors.InvalidArgumentf("invalid hit die d%d", input.HitDie)
	}

	roll, err := a.diceRoller.Roll(input.HitDie)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", input.HitDie)
	}

	attrs := []any{"hit_die", input.HitDie, "roll", roll}
	if input.Entity != nil {
		attrs = append(attrs, "entity_id", input.Entity.GetID(), "entity_type", input.Entity.GetType())
	}
	slog.DebugContext(ctx, "rolled hit die", attrs...)

	return &engine.RollHitPointsOutput{
		Roll:   roll,
		Gained: max(1, roll+input.ConstitutionModifier),
	}, nil
}

// AverageHitPoints computes the fixed hit point gain for a level
func (a *Adapter) AverageHitPoints(_ context.Context, input *engine.AverageHitPointsInput) (*engine.AverageHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HitDie <= 0 {
		return nil, errors.InvalidArgumentf("invalid hit die d%d", input.HitDie)
	}

	value := input.HitDie/2 + 1
	return &engine.AverageHitPointsOutput{
		Value:  value,
		Gained: max(1, value+input.ConstitutionModifier),
	}, nil
}
