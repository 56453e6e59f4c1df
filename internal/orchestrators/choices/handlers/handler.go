// Package handlers implements one Handler per decision type. Handlers read
// and mutate the in-memory character only; loading, saving and atomicity
// belong to the caller.
package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/improvement"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

//go:generate mockgen -destination=mock/mock_handler.go -package=handlersmock github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices/handlers Handler

// Handler discovers, applies and reverses the decisions of one type.
//
// Enumerate returns every instance derivable from the character's current
// state, including exhausted ones, so a resolved decision can still be
// addressed by Undo. Resolve replaces any earlier resolution of the same
// decision. Undo fails with ChoiceNotUndoable when CanUndo is false.
type Handler interface {
	Type() choice.Type
	Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error)
	Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error
	CanUndo(char *entities.Character, d *choice.Decision) bool
	Undo(ctx context.Context, char *entities.Character, d *choice.Decision) error
}

// Config holds the dependencies shared by all handlers
type Config struct {
	Catalog      catalog.Repository
	Engine       engine.Engine
	Improvements improvement.Applier
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Improvements == nil {
		vb.RequiredField("Improvements")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// All builds every handler in registration order. The order is the safe
// resolution order: a handler may read state written by an earlier one.
func All(cfg *Config) ([]Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := base{catalog: cfg.Catalog, ids: cfg.IDGenerator}
	return []Handler{
		&SizeHandler{base: b},
		&AbilityScoreHandler{base: b},
		&ProficiencyHandler{base: b},
		&LanguageHandler{base: b},
		&FeatHandler{base: b, improvements: cfg.Improvements},
		&SubclassHandler{base: b},
		&SubclassVariantHandler{base: b},
		&FightingStyleHandler{base: b},
		&ExpertiseHandler{base: b},
		&OptionalFeatureHandler{base: b},
		&ASIOrFeatHandler{base: b, improvements: cfg.Improvements},
		&SpellHandler{base: b},
		&HitPointsHandler{base: b, engine: cfg.Engine},
		&EquipmentModeHandler{base: b},
		&EquipmentHandler{base: b},
	}, nil
}
