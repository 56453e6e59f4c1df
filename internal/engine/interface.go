// Package engine wraps the rpg toolkit for the rules math choices depend on
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Engine provides game mechanics and rules calculations
type Engine interface {
	// CalculateAbilityModifier converts a score to its modifier
	CalculateAbilityModifier(score int) int

	// RollHitPoints rolls one hit die server side and applies the
	// constitution modifier. The gain is never below 1.
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)

	// AverageHitPoints returns the fixed per-level gain: half the die plus
	// one, plus the constitution modifier, never below 1.
	AverageHitPoints(ctx context.Context, input *AverageHitPointsInput) (*AverageHitPointsOutput, error)
}

// RollHitPointsInput identifies who is rolling and with which die
type RollHitPointsInput struct {
	Entity               core.Entity
	HitDie               int
	ConstitutionModifier int
}

// RollHitPointsOutput holds the raw die result and the resulting gain
type RollHitPointsOutput struct {
	Roll   int
	Gained int
}

// AverageHitPointsInput holds the die and modifier
type AverageHitPointsInput struct {
	HitDie               int
	ConstitutionModifier int
}

// AverageHitPointsOutput holds the fixed die value and the resulting gain
type AverageHitPointsOutput struct {
	Value  int
	Gained int
}
