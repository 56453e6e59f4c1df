package handlers

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/improvement"
)

const (
	selectionTypeASI    = "asi"
	availableFeatsFmt   = "/api/v1/characters/%s/available-feats?source=asi"
	asiGroupFmt         = "asi_%d"
	metaAbilityScores   = "ability_scores"
	metaChoiceOptions   = "choice_options"
	metaASIPoints       = "asi_points"
	metaMaxAbilityScore = "max_ability_score"
	metaImprovementKind = "improvement_kind"
)

var (
	standardASILevels = []int{4, 8, 12, 16, 19}
	extraASILevels    = map[string][]int{
		"fighter": {6, 14},
		"rogue":   {10},
	}
)

// ASIOrFeatHandler resolves each ability score improvement allotment as
// either two ability points or a feat. Both outcomes are permanent.
type ASIOrFeatHandler struct {
	base
	improvements improvement.Applier
}

// Type implements Handler
func (h *ASIOrFeatHandler) Type() choice.Type { return choice.TypeASIOrFeat }

// asiLevels returns the class levels that grant an improvement, ascending
func asiLevels(cls *entities.Class) []int {
	if len(cls.ASILevels) > 0 {
		levels := slices.Clone(cls.ASILevels)
		slices.Sort(levels)
		return levels
	}
	levels := slices.Clone(standardASILevels)
	levels = append(levels, extraASILevels[baseSlug(cls.Slug)]...)
	slices.Sort(levels)
	return levels
}

// Enumerate implements Handler
func (h *ASIOrFeatHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	scores := make(map[string]int, len(entities.Abilities()))
	for _, ability := range entities.Abilities() {
		scores[string(ability)] = char.AbilityScore(ability)
	}

	var out []*choice.Decision
	for _, cc := range char.Classes {
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}
		for n, level := range asiLevels(cls) {
			if level > cc.Level {
				break
			}
			grp := fmt.Sprintf(asiGroupFmt, n+1)
			d, err := newDecision(choice.TypeASIOrFeat, choice.SourceClass, cls.Slug, level, grp)
			if err != nil {
				return nil, err
			}
			d.SourceName = cls.Name
			d.Options = nil
			d.OptionsEndpoint = fmt.Sprintf(availableFeatsFmt, char.ID)
			d.Metadata[metaAbilityScores] = scores
			d.Metadata[metaChoiceOptions] = []string{selectionTypeASI, selectionTypeFeat}
			d.Metadata[metaASIPoints] = improvement.ASIPoints
			d.Metadata[metaMaxAbilityScore] = entities.MaxAbilityScore

			for _, imp := range char.Improvements {
				if imp.ClassSlug != cls.Slug || imp.Group != grp {
					continue
				}
				d.Metadata[metaImprovementKind] = imp.Kind
				if imp.Kind == entities.ImprovementKindFeat {
					d.Metadata[metaFeatSlug] = imp.FeatSlug
				}
				d.SetSelected([]string{imp.Kind})
				break
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// Resolve implements Handler
func (h *ASIOrFeatHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	if err := permanent(d); err != nil {
		return err
	}
	if sel == nil {
		return errors.InvalidSelection(d.ID, "", "selection is required")
	}

	allotment := improvement.Allotment{ClassSlug: sourceKey(d), Level: d.LevelGranted, Group: group(d)}

	switch strings.ToLower(sel.Type) {
	case selectionTypeASI:
		increases := make(map[entities.Ability]int, len(sel.Increases))
		for code, points := range sel.Increases {
			if points == 0 {
				continue
			}
			increases[entities.Ability(strings.ToUpper(code))] += points
		}
		if _, err := h.improvements.ApplyAbilityIncrease(ctx, &improvement.ApplyAbilityIncreaseInput{
			Character: char,
			Allotment: allotment,
			Increases: increases,
		}); err != nil {
			return asSelection(d, sel.Increases, err)
		}
		return nil

	case selectionTypeFeat:
		slug := featSlug(sel)
		if slug == "" {
			return invalidEmptyFeat(d)
		}
		if _, err := h.improvements.ApplyFeat(ctx, &improvement.ApplyFeatInput{
			Character: char,
			FeatSlug:  slug,
			Source:    entities.Owner(entities.OwnerKindClass, allotment.ClassSlug),
			Group:     allotment.Group,
			Level:     char.TotalLevel(),
			Allotment: &allotment,
		}); err != nil {
			return asSelection(d, slug, err)
		}
		return nil
	}

	return errors.InvalidSelection(d.ID, sel.Type, "type must be asi or feat")
}

// CanUndo implements Handler
func (h *ASIOrFeatHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return false }

// Undo implements Handler
func (h *ASIOrFeatHandler) Undo(_ context.Context, _ *entities.Character, d *choice.Decision) error {
	return notUndoable(d, "ability score improvements are permanent once applied")
}
