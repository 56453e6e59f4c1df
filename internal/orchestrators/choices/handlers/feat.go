package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/improvement"
)

const (
	bonusFeatGroup    = "bonus_feat"
	featsEndpoint     = "/api/v1/feats"
	metaFeatSlug      = "feat_slug"
	selectionTypeFeat = "feat"
)

// FeatHandler resolves the bonus feat some races and backgrounds grant at
// first level.
type FeatHandler struct {
	base
	improvements improvement.Applier
}

// Type implements Handler
func (h *FeatHandler) Type() choice.Type { return choice.TypeFeat }

// Enumerate implements Handler
func (h *FeatHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision

	races, err := h.races(ctx, char)
	if err != nil {
		return nil, err
	}
	for _, race := range races {
		if !race.BonusFeat {
			continue
		}
		d, err := h.decision(char, choice.SourceRace, entities.Owner(entities.OwnerKindRace, race.Slug), race.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		break
	}

	bg, err := h.background(ctx, char)
	if err != nil {
		return nil, err
	}
	if bg != nil && bg.BonusFeat {
		d, err := h.decision(char, choice.SourceBackground, entities.Owner(entities.OwnerKindBackground, bg.Slug), bg.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (h *FeatHandler) decision(char *entities.Character, source choice.Source, owner entities.OwnerRef, name string) (*choice.Decision, error) {
	d, err := newDecision(choice.TypeFeat, source, owner.Key, 1, bonusFeatGroup)
	if err != nil {
		return nil, err
	}
	d.SourceName = name
	d.Options = nil
	d.OptionsEndpoint = featsEndpoint

	selected := []string{}
	for _, feat := range char.Feats {
		if feat.Source == owner && feat.ChoiceGroup == bonusFeatGroup {
			selected = append(selected, feat.Slug)
		}
	}
	d.SetSelected(selected)
	return d, nil
}

// Resolve implements Handler
func (h *FeatHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	slug := featSlug(sel)
	if slug == "" {
		return invalidEmptyFeat(d)
	}

	for _, prior := range d.Selected {
		if _, err := h.improvements.RemoveFeat(ctx, &improvement.RemoveFeatInput{Character: char, FeatSlug: prior}); err != nil {
			return err
		}
	}

	_, err := h.improvements.ApplyFeat(ctx, &improvement.ApplyFeatInput{
		Character: char,
		FeatSlug:  slug,
		Source:    ownerFor(d.Source, sourceKey(d)),
		Group:     bonusFeatGroup,
		Level:     d.LevelGranted,
	})
	if err != nil {
		return asSelection(d, slug, err)
	}
	return nil
}

// CanUndo implements Handler
func (h *FeatHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return true }

// Undo implements Handler
func (h *FeatHandler) Undo(ctx context.Context, char *entities.Character, d *choice.Decision) error {
	for _, slug := range d.Selected {
		if _, err := h.improvements.RemoveFeat(ctx, &improvement.RemoveFeatInput{Character: char, FeatSlug: slug}); err != nil {
			return err
		}
	}
	return nil
}

// featSlug reads feat_slug, falling back to the first selected key
func featSlug(sel *choice.Selection) string {
	if sel == nil {
		return ""
	}
	if sel.FeatSlug != "" {
		return sel.FeatSlug
	}
	return sel.First()
}
