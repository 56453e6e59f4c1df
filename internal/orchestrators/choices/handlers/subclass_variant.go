package handlers

import (
	"context"
	"sort"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// SubclassVariantHandler resolves variant slots a subclass opens at later
// levels, such as a totem warrior's aspect of the beast. Slots at or right
// after the subclass level belong to the subclass choice and are skipped.
type SubclassVariantHandler struct {
	base
}

// Type implements Handler
func (h *SubclassVariantHandler) Type() choice.Type { return choice.TypeSubclassVariant }

// Enumerate implements Handler
func (h *SubclassVariantHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		if cc.SubclassSlug == "" {
			continue
		}
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}
		sub, err := h.catalog.GetSubclass(ctx, cc.SubclassSlug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load subclass %s", cc.SubclassSlug)
		}

		groups := variantGroups(sub)
		names := make([]string, 0, len(groups))
		for grp := range groups {
			names = append(names, grp)
		}
		sort.Slice(names, func(i, j int) bool {
			li, lj := groups[names[i]][0].Level, groups[names[j]][0].Level
			if li != lj {
				return li < lj
			}
			return names[i] < names[j]
		})

		for _, grp := range names {
			features := groups[grp]
			level := features[0].Level
			if level > cc.Level || level <= cls.SubclassLevel+1 {
				continue
			}

			d, err := newDecision(choice.TypeSubclassVariant, choice.SourceSubclass, sub.Slug, level, grp)
			if err != nil {
				return nil, err
			}
			d.Subtype = grp
			d.SourceName = sub.Name
			d.Metadata["class_slug"] = cls.Slug
			d.Metadata["subclass_slug"] = sub.Slug
			d.Metadata["choice_group"] = grp
			d.Options = make([]choice.Option, 0, len(features))
			for _, f := range features {
				d.Options = append(d.Options, choice.Option{Key: f.VariantKey(), Name: f.Name, Description: f.Description})
			}
			if value, ok := cc.SubclassChoices[grp]; ok {
				d.SetSelected([]string{value})
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// Resolve implements Handler
func (h *SubclassVariantHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	if sel != nil {
		normalized := make([]string, len(sel.Selected))
		for i, key := range sel.Selected {
			normalized[i] = strings.ToLower(strings.TrimSpace(key))
		}
		local := *sel
		local.Selected = normalized
		sel = &local
	}
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}

	cc := h.owningClass(char, d)
	if cc == nil {
		return errors.InvalidSelection(d.ID, sourceKey(d), "character does not have this subclass")
	}
	if cc.SubclassChoices == nil {
		cc.SubclassChoices = make(map[string]string)
	}
	cc.SubclassChoices[group(d)] = keys[0]
	return nil
}

func (h *SubclassVariantHandler) owningClass(char *entities.Character, d *choice.Decision) *entities.CharacterClass {
	sub := sourceKey(d)
	for _, cc := range char.Classes {
		if cc.SubclassSlug == sub {
			return cc
		}
	}
	return nil
}

// CanUndo implements Handler
func (h *SubclassVariantHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	cc := h.owningClass(char, d)
	return cc != nil && cc.Level == d.LevelGranted
}

// Undo implements Handler
func (h *SubclassVariantHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "variant can only be changed at the level it was chosen")
	}
	delete(h.owningClass(char, d).SubclassChoices, group(d))
	return nil
}
