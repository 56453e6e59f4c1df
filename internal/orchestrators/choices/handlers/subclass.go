package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

const subclassGroup = "subclass"

// VariantChoice is a variant slot offered alongside a subclass option
type VariantChoice struct {
	Required bool            `json:"required"`
	Label    string          `json:"label"`
	Options  []VariantOption `json:"options"`
}

// VariantOption is one pick inside a VariantChoice
type VariantOption struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubclassHandler resolves the subclass a class unlocks at its subclass
// level, together with any variant slots available at that level.
type SubclassHandler struct {
	base
}

// Type implements Handler
func (h *SubclassHandler) Type() choice.Type { return choice.TypeSubclass }

// Enumerate implements Handler
func (h *SubclassHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}
		if cls.SubclassLevel <= 0 || cc.Level < cls.SubclassLevel {
			continue
		}

		d, err := newDecision(choice.TypeSubclass, choice.SourceClass, cls.Slug, cls.SubclassLevel, subclassGroup)
		if err != nil {
			return nil, err
		}
		d.SourceName = cls.Name
		d.Metadata["class_slug"] = cls.Slug
		d.Metadata["subclass_feature_name"] = cls.SubclassFeatureName

		subclasses, err := h.catalog.ListSubclasses(ctx, cls.Slug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list subclasses of %s", cls.Slug)
		}
		d.Options = make([]choice.Option, 0, len(subclasses))
		for _, sub := range subclasses {
			d.Options = append(d.Options, subclassOption(sub, cls.SubclassLevel))
		}

		if cc.SubclassSlug != "" {
			d.SetSelected([]string{cc.SubclassSlug})
		}
		out = append(out, d)
	}
	return out, nil
}

func subclassOption(sub *entities.Subclass, level int) choice.Option {
	preview := []string{}
	for _, f := range sub.Features {
		if f.Level == level && f.ChoiceGroup == "" {
			preview = append(preview, f.Name)
		}
	}
	return choice.Option{
		Key:  sub.Slug,
		Name: sub.Name,
		Metadata: map[string]any{
			"features_preview": preview,
			"variant_choices":  variantChoices(sub, level),
		},
	}
}

// variantChoices collects the variant groups owned by the subclass choice:
// those whose first level is at or immediately after the subclass level.
func variantChoices(sub *entities.Subclass, subclassLevel int) map[string]VariantChoice {
	out := map[string]VariantChoice{}
	for group, features := range variantGroups(sub) {
		if features[0].Level > subclassLevel+1 {
			continue
		}
		vc := VariantChoice{Required: true, Label: groupLabel(group)}
		for _, f := range features {
			vc.Options = append(vc.Options, VariantOption{
				Value:       f.VariantKey(),
				Name:        f.Name,
				Description: f.Description,
			})
		}
		out[group] = vc
	}
	return out
}

// variantGroups groups choice-flagged features by group, each sorted by level
func variantGroups(sub *entities.Subclass) map[string][]entities.SubclassFeature {
	out := make(map[string][]entities.SubclassFeature)
	for _, f := range sub.Features {
		if f.ChoiceGroup == "" {
			continue
		}
		out[f.ChoiceGroup] = append(out[f.ChoiceGroup], f)
	}
	for _, features := range out {
		sort.SliceStable(features, func(i, j int) bool { return features[i].Level < features[j].Level })
	}
	return out
}

func groupLabel(group string) string {
	words := strings.Fields(strings.ReplaceAll(group, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Resolve implements Handler
func (h *SubclassHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}

	classSlug := sourceKey(d)
	cc := char.Class(classSlug)
	if cc == nil {
		return errors.InvalidSelection(d.ID, classSlug, "character has no levels in "+classSlug)
	}

	opt := d.Option(keys[0])
	variants, _ := opt.Metadata["variant_choices"].(map[string]VariantChoice)
	chosen, err := validateVariants(d, variants, sel.VariantChoices)
	if err != nil {
		return err
	}

	if cc.SubclassSlug != "" {
		clearSubclass(char, cc)
	}
	cc.SubclassSlug = keys[0]
	if len(chosen) > 0 {
		cc.SubclassChoices = chosen
	}

	slog.DebugContext(ctx, "subclass chosen",
		"character_id", char.ID,
		"class_slug", classSlug,
		"subclass_slug", cc.SubclassSlug)
	return nil
}

func validateVariants(d *choice.Decision, variants map[string]VariantChoice, picks map[string]string) (map[string]string, error) {
	chosen := make(map[string]string, len(picks))
	for grp, value := range picks {
		vc, ok := variants[grp]
		if !ok {
			return nil, errors.InvalidSelection(d.ID, grp, fmt.Sprintf("unknown variant choice group %s", grp))
		}
		value = strings.ToLower(strings.TrimSpace(value))
		valid := false
		for _, opt := range vc.Options {
			if opt.Value == value {
				valid = true
				break
			}
		}
		if !valid {
			return nil, errors.InvalidSelection(d.ID, value, fmt.Sprintf("%s is not a valid %s", value, vc.Label))
		}
		chosen[grp] = value
	}
	for grp, vc := range variants {
		if _, ok := chosen[grp]; vc.Required && !ok {
			return nil, errors.InvalidSelection(d.ID, grp, fmt.Sprintf("%s must be chosen with this subclass", vc.Label))
		}
	}
	return chosen, nil
}

// CanUndo implements Handler
func (h *SubclassHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	cc := char.Class(sourceKey(d))
	return cc != nil && cc.SubclassSlug != "" && cc.Level == d.LevelGranted
}

// Undo implements Handler
func (h *SubclassHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "subclass can only be changed at the level it was chosen")
	}
	clearSubclass(char, char.Class(sourceKey(d)))
	return nil
}

// clearSubclass removes the subclass, its variant picks and every row the
// subclass owns.
func clearSubclass(char *entities.Character, cc *entities.CharacterClass) {
	owner := entities.Owner(entities.OwnerKindSubclass, cc.SubclassSlug)
	sub := cc.SubclassSlug

	char.Features = removeWhere(char.Features, func(f *entities.FeatureSelection) bool { return f.SubclassSlug == sub })
	char.Spells = removeWhere(char.Spells, func(s *entities.CharacterSpell) bool { return s.Source == owner })
	char.Proficiencies = removeWhere(char.Proficiencies, func(p *entities.CharacterProficiency) bool { return p.Source == owner })
	char.Languages = removeWhere(char.Languages, func(l *entities.CharacterLanguage) bool { return l.Source == owner })
	char.AbilityBonuses = removeWhere(char.AbilityBonuses, func(b *entities.CharacterAbilityBonus) bool { return b.Source == owner })

	cc.SubclassSlug = ""
	cc.SubclassChoices = nil
}
