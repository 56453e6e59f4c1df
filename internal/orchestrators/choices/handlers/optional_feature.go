package handlers

import (
	"context"
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

// counterFeatureTypes maps "known" counters to the optional feature pool
// they allow picks from.
var counterFeatureTypes = map[string]string{
	"Maneuvers Known":             "maneuver",
	"Metamagic Known":             "metamagic",
	"Infusions Known":             "artificer_infusion",
	"Fighting Styles Known":       "fighting_style",
	"Runes Known":                 "rune",
	"Arcane Shots Known":          "arcane_shot",
	"Elemental Disciplines Known": "elemental_discipline",
	"Eldritch Invocations Known":  "eldritch_invocation",
}

// OptionalFeatureHandler resolves picks from class and subclass feature
// pools such as maneuvers, metamagic and eldritch invocations.
type OptionalFeatureHandler struct {
	base
}

type featurePool struct {
	featureType string
	counter     entities.Counter
	subclass    *entities.Subclass
}

// Type implements Handler
func (h *OptionalFeatureHandler) Type() choice.Type { return choice.TypeOptionalFeature }

// Enumerate implements Handler
func (h *OptionalFeatureHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}
		var sub *entities.Subclass
		if cc.SubclassSlug != "" {
			if sub, err = h.catalog.GetSubclass(ctx, cc.SubclassSlug); err != nil {
				return nil, errors.Wrapf(err, "failed to load subclass %s", cc.SubclassSlug)
			}
		}

		for _, pool := range pools(cls, sub, cc.Level) {
			d, err := h.decision(ctx, char, cls, cc, pool)
			if err != nil {
				return nil, err
			}
			if d != nil {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

// pools picks, per feature type, the highest counter at or below level.
// Class counters come before subclass counters.
func pools(cls *entities.Class, sub *entities.Subclass, level int) []featurePool {
	var out []featurePool
	index := make(map[string]int)
	consider := func(counters []entities.Counter, owner *entities.Subclass) {
		for _, c := range counters {
			featureType, ok := counterFeatureTypes[c.Name]
			if !ok || c.Level > level {
				continue
			}
			if i, seen := index[featureType]; seen {
				if c.Level > out[i].counter.Level {
					out[i] = featurePool{featureType: featureType, counter: c, subclass: owner}
				}
				continue
			}
			index[featureType] = len(out)
			out = append(out, featurePool{featureType: featureType, counter: c, subclass: owner})
		}
	}
	consider(cls.Counters, nil)
	if sub != nil {
		consider(sub.Counters, sub)
	}
	return out
}

func poolGroup(featureType string) string {
	return fmt.Sprintf("%s_1", featureType)
}

// decision builds the pick for the highest counter reached. Picks made at
// earlier counter levels are kept and count against the counter value, so
// only picks acquired at the counter level belong to this decision.
func (h *OptionalFeatureHandler) decision(
	ctx context.Context,
	char *entities.Character,
	cls *entities.Class,
	cc *entities.CharacterClass,
	pool featurePool,
) (*choice.Decision, error) {
	grp := poolGroup(pool.featureType)
	level := pool.counter.Level

	earlier := 0
	selected := []string{}
	elsewhere := make(map[string]bool)
	for _, f := range char.Features {
		if f.FeatureType != pool.featureType {
			continue
		}
		switch {
		case f.ClassSlug != cls.Slug || f.ChoiceGroup != grp:
			elsewhere[f.Slug] = true
		case f.LevelAcquired < level:
			earlier++
			elsewhere[f.Slug] = true
		default:
			selected = append(selected, f.Slug)
		}
	}

	quantity := pool.counter.Value - earlier
	if quantity <= 0 && len(selected) == 0 {
		return nil, nil
	}

	d, err := newDecision(choice.TypeOptionalFeature, choice.SourceClass, cls.Slug, level, grp)
	if err != nil {
		return nil, err
	}
	d.Subtype = pool.featureType
	d.SourceName = cls.Name
	d.Quantity = max(quantity, len(selected))
	d.Metadata["class"] = cls.Slug
	d.Metadata["subclass"] = cc.SubclassSlug
	d.Metadata["counter_name"] = pool.counter.Name
	if pool.subclass != nil {
		d.SourceName = pool.subclass.Name
	}

	features, err := h.catalog.ListOptionalFeatures(ctx, catalog.ListOptionalFeaturesInput{
		FeatureType:  pool.featureType,
		ClassSlug:    cls.Slug,
		SubclassSlug: cc.SubclassSlug,
		MaxLevel:     cc.Level,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s features", pool.featureType)
	}
	d.Options = make([]choice.Option, 0, len(features))
	for _, f := range features {
		if elsewhere[f.Slug] {
			continue
		}
		d.Options = append(d.Options, choice.Option{
			Key:         f.Slug,
			Name:        f.Name,
			Description: f.Description,
			Metadata:    map[string]any{"level_requirement": f.LevelRequirement},
		})
	}
	d.SetSelected(selected)
	return d, nil
}

// Resolve implements Handler
func (h *OptionalFeatureHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, false)
	if err != nil {
		return err
	}

	classSlug := sourceKey(d)
	cc := char.Class(classSlug)
	if cc == nil {
		return errors.InvalidSelection(d.ID, classSlug, "character has no levels in "+classSlug)
	}

	h.clear(char, classSlug, d)
	for _, key := range keys {
		char.Features = append(char.Features, &entities.FeatureSelection{
			ID:            h.ids.Generate(),
			Slug:          key,
			FeatureType:   d.Subtype,
			ClassSlug:     classSlug,
			SubclassSlug:  metaString(d, "subclass"),
			LevelAcquired: d.LevelGranted,
			ChoiceGroup:   group(d),
		})
	}
	return nil
}

// CanUndo implements Handler
func (h *OptionalFeatureHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	return char.ClassLevel(sourceKey(d)) == d.LevelGranted
}

// Undo implements Handler
func (h *OptionalFeatureHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "selections can only be changed at the level they were granted")
	}
	h.clear(char, sourceKey(d), d)
	return nil
}

// clear drops the picks acquired at the decision's counter level. Earlier
// picks of the same pool stay.
func (h *OptionalFeatureHandler) clear(char *entities.Character, classSlug string, d *choice.Decision) {
	grp := group(d)
	char.Features = removeWhere(char.Features, func(f *entities.FeatureSelection) bool {
		return f.ClassSlug == classSlug && f.FeatureType == d.Subtype && f.ChoiceGroup == grp &&
			f.LevelAcquired >= d.LevelGranted
	})
}
