package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

const metaProficiencyKind = "proficiency_kind"

// ProficiencyHandler resolves skill and tool picks granted by the primary
// class, the race and the background.
type ProficiencyHandler struct {
	base
}

type proficiencySource struct {
	source  choice.Source
	owner   entities.OwnerRef
	name    string
	choices []entities.ProficiencyChoice
}

// Type implements Handler
func (h *ProficiencyHandler) Type() choice.Type { return choice.TypeProficiency }

func (h *ProficiencyHandler) sources(ctx context.Context, char *entities.Character) ([]proficiencySource, error) {
	var out []proficiencySource

	if primary := char.PrimaryClass(); primary != nil {
		cls, err := h.class(ctx, primary.ClassSlug)
		if err != nil {
			return nil, err
		}
		out = append(out, proficiencySource{
			source:  choice.SourceClass,
			owner:   entities.Owner(entities.OwnerKindClass, cls.Slug),
			name:    cls.Name,
			choices: cls.ProficiencyChoices,
		})
	}

	races, err := h.races(ctx, char)
	if err != nil {
		return nil, err
	}
	for _, race := range races {
		out = append(out, proficiencySource{
			source:  choice.SourceRace,
			owner:   entities.Owner(entities.OwnerKindRace, race.Slug),
			name:    race.Name,
			choices: race.ProficiencyChoices,
		})
	}

	bg, err := h.background(ctx, char)
	if err != nil {
		return nil, err
	}
	if bg != nil {
		out = append(out, proficiencySource{
			source:  choice.SourceBackground,
			owner:   entities.Owner(entities.OwnerKindBackground, bg.Slug),
			name:    bg.Name,
			choices: bg.ProficiencyChoices,
		})
	}
	return out, nil
}

// Enumerate implements Handler
func (h *ProficiencyHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	sources, err := h.sources(ctx, char)
	if err != nil {
		return nil, err
	}

	var out []*choice.Decision
	for _, src := range sources {
		for _, pc := range src.choices {
			d, err := newDecision(choice.TypeProficiency, src.source, src.owner.Key, 1, pc.Group)
			if err != nil {
				return nil, err
			}
			d.SourceName = src.name
			d.Quantity = pc.Quantity
			d.Subtype = string(pc.Kind)
			if pc.Subcategory != "" {
				d.Subtype = pc.Subcategory
			}
			d.Metadata[metaProficiencyKind] = string(pc.Kind)

			selected := []string{}
			for _, prof := range char.Proficiencies {
				if prof.Source == src.owner && prof.ChoiceGroup == pc.Group {
					selected = append(selected, prof.Slug)
				}
			}

			options, err := h.options(ctx, pc)
			if err != nil {
				return nil, err
			}
			d.Options = make([]choice.Option, 0, len(options))
			for _, opt := range options {
				held := char.Proficiency(pc.Kind, opt.Key)
				if held != nil && (held.Source != src.owner || held.ChoiceGroup != pc.Group) {
					continue
				}
				d.Options = append(d.Options, opt)
			}
			d.SetSelected(selected)
			out = append(out, d)
		}
	}
	return out, nil
}

func (h *ProficiencyHandler) options(ctx context.Context, pc entities.ProficiencyChoice) ([]choice.Option, error) {
	var out []choice.Option
	if len(pc.Options) > 0 {
		for _, slug := range pc.Options {
			name, err := h.proficiencyName(ctx, pc.Kind, slug)
			if err != nil {
				return nil, err
			}
			out = append(out, choice.Option{Key: slug, Name: name})
		}
		return out, nil
	}

	if pc.Kind == entities.ProficiencyKindSkill {
		skills, err := h.catalog.ListSkills(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list skills")
		}
		for _, skill := range skills {
			out = append(out, choice.Option{Key: skill.Slug, Name: skill.Name})
		}
		return out, nil
	}

	types, err := h.catalog.ListProficiencyTypes(ctx, catalog.ListProficiencyTypesInput{
		Kind:        pc.Kind,
		Subcategory: pc.Subcategory,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list proficiency types")
	}
	for _, pt := range types {
		out = append(out, choice.Option{Key: pt.Slug, Name: pt.Name})
	}
	return out, nil
}

func (h *ProficiencyHandler) proficiencyName(ctx context.Context, kind entities.ProficiencyKind, slug string) (string, error) {
	if kind == entities.ProficiencyKindSkill {
		skill, err := h.catalog.GetSkill(ctx, slug)
		if err != nil {
			return "", errors.Wrapf(err, "failed to load skill %s", slug)
		}
		return skill.Name, nil
	}
	pt, err := h.catalog.GetProficiencyType(ctx, slug)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load proficiency type %s", slug)
	}
	return pt.Name, nil
}

// Resolve implements Handler
func (h *ProficiencyHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, false)
	if err != nil {
		return err
	}

	owner := ownerFor(d.Source, sourceKey(d))
	grp := group(d)
	kind := entities.ProficiencyKind(metaString(d, metaProficiencyKind))

	// expertise follows a proficiency that is picked again
	expertise := expertiseRows(char, owner, grp)
	for slug, p := range expertise {
		if !slices.Contains(keys, slug) {
			return errors.InvalidSelection(d.ID, slug,
				fmt.Sprintf("%s has expertise from %s; undo that choice first", slug, p.ExpertiseGroup))
		}
	}
	h.clear(char, owner, grp)

	for _, key := range keys {
		row := &entities.CharacterProficiency{
			ID:          h.ids.Generate(),
			Kind:        kind,
			Slug:        key,
			Source:      owner,
			ChoiceGroup: grp,
		}
		if p, ok := expertise[key]; ok {
			row.Expertise = true
			row.ExpertiseGroup = p.ExpertiseGroup
		}
		char.Proficiencies = append(char.Proficiencies, row)
	}
	return nil
}

// CanUndo is false while any proficiency of the group carries expertise
func (h *ProficiencyHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	return len(expertiseRows(char, ownerFor(d.Source, sourceKey(d)), group(d))) == 0
}

// Undo implements Handler
func (h *ProficiencyHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "a proficiency from this choice has expertise; undo the expertise first")
	}
	h.clear(char, ownerFor(d.Source, sourceKey(d)), group(d))
	return nil
}

func expertiseRows(char *entities.Character, owner entities.OwnerRef, grp string) map[string]*entities.CharacterProficiency {
	out := make(map[string]*entities.CharacterProficiency)
	for _, p := range char.Proficiencies {
		if p.Source == owner && p.ChoiceGroup == grp && p.Expertise {
			out[p.Slug] = p
		}
	}
	return out
}

func (h *ProficiencyHandler) clear(char *entities.Character, owner entities.OwnerRef, grp string) {
	char.Proficiencies = removeWhere(char.Proficiencies, func(p *entities.CharacterProficiency) bool {
		return p.Source == owner && p.ChoiceGroup == grp
	})
}
