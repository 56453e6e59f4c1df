package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

const (
	fightingStyleType  = "fighting_style"
	fightingStyleGroup = "fighting_style"
)

// FightingStyleHandler resolves the fighting style a martial class gains.
// The choice is permanent.
type FightingStyleHandler struct {
	base
}

// Type implements Handler
func (h *FightingStyleHandler) Type() choice.Type { return choice.TypeFightingStyle }

// Enumerate implements Handler
func (h *FightingStyleHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}
		if cls.FightingStyleLevel <= 0 || cc.Level < cls.FightingStyleLevel {
			continue
		}

		d, err := newDecision(choice.TypeFightingStyle, choice.SourceClass, cls.Slug, cls.FightingStyleLevel, fightingStyleGroup)
		if err != nil {
			return nil, err
		}
		d.SourceName = cls.Name

		selected := []string{}
		elsewhere := make(map[string]bool)
		for _, f := range char.Features {
			if f.FeatureType != fightingStyleType {
				continue
			}
			if f.ClassSlug == cls.Slug && f.ChoiceGroup == fightingStyleGroup {
				selected = append(selected, f.Slug)
			} else {
				elsewhere[f.Slug] = true
			}
		}

		styles, err := h.catalog.ListOptionalFeatures(ctx, catalog.ListOptionalFeaturesInput{
			FeatureType: fightingStyleType,
			ClassSlug:   cls.Slug,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list fighting styles")
		}
		d.Options = make([]choice.Option, 0, len(styles))
		for _, style := range styles {
			if elsewhere[style.Slug] {
				continue
			}
			d.Options = append(d.Options, choice.Option{Key: style.Slug, Name: style.Name, Description: style.Description})
		}
		d.SetSelected(selected)
		out = append(out, d)
	}
	return out, nil
}

// Resolve implements Handler
func (h *FightingStyleHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	if err := permanent(d); err != nil {
		return err
	}
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}

	classSlug := sourceKey(d)
	char.Features = append(char.Features, &entities.FeatureSelection{
		ID:            h.ids.Generate(),
		Slug:          keys[0],
		FeatureType:   fightingStyleType,
		ClassSlug:     classSlug,
		LevelAcquired: d.LevelGranted,
		ChoiceGroup:   fightingStyleGroup,
	})
	return nil
}

// CanUndo implements Handler
func (h *FightingStyleHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return false }

// Undo implements Handler
func (h *FightingStyleHandler) Undo(_ context.Context, _ *entities.Character, d *choice.Decision) error {
	return notUndoable(d, "fighting styles are permanent once chosen")
}
