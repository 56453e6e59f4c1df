package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
)

// AbilityScoreHandler resolves choice-flagged racial ability bonuses such as
// the half-elf's two +1 increases.
type AbilityScoreHandler struct {
	base
}

// Type implements Handler
func (h *AbilityScoreHandler) Type() choice.Type { return choice.TypeAbilityScore }

// Enumerate implements Handler
func (h *AbilityScoreHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	races, err := h.races(ctx, char)
	if err != nil {
		return nil, err
	}

	var out []*choice.Decision
	for _, race := range races {
		owner := entities.Owner(entities.OwnerKindRace, race.Slug)
		for _, ac := range race.AbilityChoices {
			d, err := newDecision(choice.TypeAbilityScore, choice.SourceRace, race.Slug, 1, ac.Group)
			if err != nil {
				return nil, err
			}
			d.SourceName = race.Name
			d.Quantity = ac.Quantity
			d.Options = abilityOptions()
			d.Metadata["bonus_value"] = ac.Value
			d.Metadata["constraint"] = ac.Constraint

			selected := []string{}
			for _, bonus := range char.AbilityBonuses {
				if bonus.Source == owner && bonus.ChoiceGroup == ac.Group {
					selected = append(selected, string(bonus.Ability))
				}
			}
			d.SetSelected(selected)
			out = append(out, d)
		}
	}
	return out, nil
}

// Resolve implements Handler
func (h *AbilityScoreHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := requireSelected(d, sel)
	if err != nil {
		return err
	}
	if err := requireExact(d, keys); err != nil {
		return err
	}
	if err := requireOptions(d, keys); err != nil {
		return err
	}
	if metaString(d, "constraint") != entities.AbilityConstraintAny {
		if err := requireDistinct(d, keys); err != nil {
			return err
		}
	}

	owner := entities.Owner(entities.OwnerKindRace, sourceKey(d))
	grp := group(d)
	h.clear(char, owner, grp)

	value := metaInt(d, "bonus_value")
	for _, key := range keys {
		char.AbilityBonuses = append(char.AbilityBonuses, &entities.CharacterAbilityBonus{
			ID:          h.ids.Generate(),
			Ability:     entities.Ability(key),
			Bonus:       value,
			Source:      owner,
			ChoiceGroup: grp,
		})
	}
	return nil
}

// CanUndo implements Handler
func (h *AbilityScoreHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return true }

// Undo implements Handler
func (h *AbilityScoreHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	h.clear(char, entities.Owner(entities.OwnerKindRace, sourceKey(d)), group(d))
	return nil
}

func (h *AbilityScoreHandler) clear(char *entities.Character, owner entities.OwnerRef, grp string) {
	char.AbilityBonuses = removeWhere(char.AbilityBonuses, func(b *entities.CharacterAbilityBonus) bool {
		return b.Source == owner && b.ChoiceGroup == grp
	})
}
