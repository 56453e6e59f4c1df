package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

const (
	cantripsGroup    = "cantrips"
	spellsKnownGroup = "spells_known"

	metaSpellLevel    = "spell_level"
	metaMinSpellLevel = "min_spell_level"
	metaClassSlug     = "class_slug"
	metaSpellList     = "spell_list"

	availableSpellsFmt = "/api/v1/characters/%s/available-spells?%s"
)

// SpellHandler resolves cantrips and spells known from a class's
// progression table, plus extra spells granted by subclass features.
type SpellHandler struct {
	base
}

// Type implements Handler
func (h *SpellHandler) Type() choice.Type { return choice.TypeSpell }

// Enumerate implements Handler
func (h *SpellHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}

		if prog := progressionAt(cls, cc.Level); prog != nil {
			cantrips, err := h.classDecision(char, cls, cc.Level, true, prog.CantripsKnown, 0)
			if err != nil {
				return nil, err
			}
			known, err := h.classDecision(char, cls, cc.Level, false, prog.SpellsKnown, prog.MaxSpellLevel)
			if err != nil {
				return nil, err
			}
			for _, d := range []*choice.Decision{cantrips, known} {
				if d != nil {
					out = append(out, d)
				}
			}
		}

		if cc.SubclassSlug == "" {
			continue
		}
		sub, err := h.catalog.GetSubclass(ctx, cc.SubclassSlug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load subclass %s", cc.SubclassSlug)
		}
		for _, sc := range sub.SpellChoices {
			if sc.Level > cc.Level {
				continue
			}
			d, err := h.subclassDecision(char, cls, sub, sc)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// progressionAt returns the latest progression row at or below level
func progressionAt(cls *entities.Class, level int) *entities.SpellProgression {
	var best *entities.SpellProgression
	for i := range cls.Progression {
		row := &cls.Progression[i]
		if row.Level <= level && (best == nil || row.Level > best.Level) {
			best = row
		}
	}
	return best
}

// classDecision builds the cantrip or spells known decision for the
// current class level. Quantity is what the table allows minus what was
// learned at earlier levels, so a skipped level rolls forward.
func (h *SpellHandler) classDecision(
	char *entities.Character,
	cls *entities.Class,
	level int,
	cantrip bool,
	cumulative int,
	maxSpellLevel int,
) (*choice.Decision, error) {
	grp, subtype := spellsKnownGroup, choice.SubtypeSpellsKnown
	if cantrip {
		grp, subtype = cantripsGroup, choice.SubtypeCantrip
	}
	owner := entities.Owner(entities.OwnerKindClass, cls.Slug)

	earlier := 0
	selected := []string{}
	for _, sp := range char.Spells {
		if sp.Source != owner || sp.Cantrip != cantrip {
			continue
		}
		switch {
		case sp.LevelAcquired < level:
			earlier++
		case sp.LevelAcquired == level && sp.ChoiceGroup == grp:
			selected = append(selected, sp.Slug)
		}
	}

	quantity := cumulative - earlier
	if quantity <= 0 && len(selected) == 0 {
		return nil, nil
	}

	d, err := newDecision(choice.TypeSpell, choice.SourceClass, cls.Slug, level, grp)
	if err != nil {
		return nil, err
	}
	d.Subtype = subtype
	d.SourceName = cls.Name
	d.Quantity = max(quantity, len(selected))
	d.Options = nil
	d.Metadata[metaClassSlug] = cls.Slug
	d.Metadata[metaSpellList] = cls.Slug
	if cantrip {
		d.Metadata[metaSpellLevel] = 0
		d.Metadata[metaMinSpellLevel] = 0
		d.OptionsEndpoint = fmt.Sprintf(availableSpellsFmt, char.ID, "max_level=0")
	} else {
		d.Metadata[metaSpellLevel] = maxSpellLevel
		d.Metadata[metaMinSpellLevel] = 1
		d.OptionsEndpoint = fmt.Sprintf(availableSpellsFmt, char.ID,
			fmt.Sprintf("min_level=1&max_level=%d", maxSpellLevel))
	}
	d.SetSelected(selected)
	return d, nil
}

func (h *SpellHandler) subclassDecision(
	char *entities.Character,
	cls *entities.Class,
	sub *entities.Subclass,
	sc entities.SubclassSpellChoice,
) (*choice.Decision, error) {
	d, err := newDecision(choice.TypeSpell, choice.SourceSubclassFeature, sub.Slug, sc.Level, sc.Group)
	if err != nil {
		return nil, err
	}
	d.SourceName = sub.Name
	d.Subtype = choice.SubtypeSpellsKnown
	minLevel := 1
	if sc.MaxSpellLevel == 0 {
		d.Subtype = choice.SubtypeCantrip
		minLevel = 0
	}
	d.Quantity = sc.Quantity
	d.Options = nil
	d.OptionsEndpoint = fmt.Sprintf(availableSpellsFmt, char.ID,
		fmt.Sprintf("max_level=%d&class=%s", sc.MaxSpellLevel, sc.SpellList))
	d.Metadata[metaClassSlug] = cls.Slug
	d.Metadata[metaSpellList] = sc.SpellList
	d.Metadata[metaSpellLevel] = sc.MaxSpellLevel
	d.Metadata[metaMinSpellLevel] = minLevel

	owner := entities.Owner(entities.OwnerKindSubclass, sub.Slug)
	selected := []string{}
	for _, sp := range char.Spells {
		if sp.Source == owner && sp.ChoiceGroup == sc.Group {
			selected = append(selected, sp.Slug)
		}
	}
	d.SetSelected(selected)
	return d, nil
}

// Resolve implements Handler
func (h *SpellHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := requireSelected(d, sel)
	if err != nil {
		return err
	}
	if err := requireDistinct(d, keys); err != nil {
		return err
	}
	if err := requireAtMost(d, keys); err != nil {
		return err
	}

	owner := ownerFor(d.Source, sourceKey(d))
	grp := group(d)
	classSlug := metaString(d, metaClassSlug)
	spellList := metaString(d, metaSpellList)
	minLevel, maxLevel := metaInt(d, metaMinSpellLevel), metaInt(d, metaSpellLevel)
	cantrip := d.Subtype == choice.SubtypeCantrip

	spells := make([]*entities.Spell, 0, len(keys))
	for _, key := range keys {
		spell, err := h.catalog.GetSpell(ctx, key)
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.InvalidSelection(d.ID, key, fmt.Sprintf("spell %s does not exist", key))
			}
			return errors.Wrapf(err, "failed to load spell %s", key)
		}
		if spell.Level < minLevel || spell.Level > maxLevel {
			return errors.InvalidSelection(d.ID, key,
				fmt.Sprintf("%s is level %d, allowed levels are %d to %d", spell.Name, spell.Level, minLevel, maxLevel))
		}
		if !slices.Contains(spell.Classes, spellList) {
			return errors.InvalidSelection(d.ID, key, fmt.Sprintf("%s is not on the %s spell list", spell.Name, spellList))
		}
		if h.knownElsewhere(char, classSlug, owner, grp, d.LevelGranted, key) {
			return errors.InvalidSelection(d.ID, key, fmt.Sprintf("%s is already known", spell.Name))
		}
		spells = append(spells, spell)
	}

	h.clear(char, owner, grp, d.LevelGranted, cantrip)
	for _, spell := range spells {
		char.Spells = append(char.Spells, &entities.CharacterSpell{
			ID:            h.ids.Generate(),
			Slug:          spell.Slug,
			ClassSlug:     classSlug,
			Source:        owner,
			LevelAcquired: d.LevelGranted,
			ChoiceGroup:   grp,
			Cantrip:       cantrip,
		})
	}
	return nil
}

func (h *SpellHandler) knownElsewhere(char *entities.Character, classSlug string, owner entities.OwnerRef, grp string, level int, slug string) bool {
	for _, sp := range char.Spells {
		if sp.Slug != slug || sp.ClassSlug != classSlug {
			continue
		}
		if sp.Source == owner && sp.ChoiceGroup == grp && sp.LevelAcquired == level {
			continue
		}
		return true
	}
	return false
}

// CanUndo implements Handler
func (h *SpellHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	return char.ClassLevel(metaString(d, metaClassSlug)) == d.LevelGranted
}

// Undo implements Handler
func (h *SpellHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "spells can only be changed at the level they were learned")
	}
	h.clear(char, ownerFor(d.Source, sourceKey(d)), group(d), d.LevelGranted, d.Subtype == choice.SubtypeCantrip)
	return nil
}

func (h *SpellHandler) clear(char *entities.Character, owner entities.OwnerRef, grp string, level int, cantrip bool) {
	char.Spells = removeWhere(char.Spells, func(sp *entities.CharacterSpell) bool {
		return sp.Source == owner && sp.ChoiceGroup == grp && sp.LevelAcquired == level && sp.Cantrip == cantrip
	})
}
