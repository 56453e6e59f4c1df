package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
)

const (
	expertisePicks    = 2
	thievesToolsSlug  = "thieves-tools"
	metaAllowedKinds  = "allowed_kinds"
	expertiseGroupFmt = "expertise_%d"
)

// expertiseRule is a class pattern that grants expertise at fixed levels
type expertiseRule struct {
	levels []int
	tools  bool
}

var expertiseRules = map[string]expertiseRule{
	"rogue": {levels: []int{1, 6}, tools: true},
	"bard":  {levels: []int{3, 10}},
}

// ExpertiseHandler upgrades held proficiencies to expertise. Rogues pick
// from skills and thieves' tools, bards from skills only.
type ExpertiseHandler struct {
	base
}

// Type implements Handler
func (h *ExpertiseHandler) Type() choice.Type { return choice.TypeExpertise }

// Enumerate implements Handler
func (h *ExpertiseHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	var out []*choice.Decision
	for _, cc := range char.Classes {
		rule, ok := expertiseRules[baseSlug(cc.ClassSlug)]
		if !ok {
			continue
		}
		cls, err := h.class(ctx, cc.ClassSlug)
		if err != nil {
			return nil, err
		}

		for _, level := range rule.levels {
			if level > cc.Level {
				continue
			}
			grp := fmt.Sprintf(expertiseGroupFmt, level)
			d, err := newDecision(choice.TypeExpertise, choice.SourceClass, cls.Slug, level, grp)
			if err != nil {
				return nil, err
			}
			d.SourceName = cls.Name
			d.Quantity = expertisePicks
			kinds := []string{string(entities.ProficiencyKindSkill)}
			if rule.tools {
				kinds = append(kinds, string(entities.ProficiencyKindTool))
			}
			d.Metadata[metaAllowedKinds] = kinds

			selected := []string{}
			d.Options = []choice.Option{}
			for _, prof := range char.Proficiencies {
				if !eligibleForExpertise(prof, rule) {
					continue
				}
				if prof.Expertise && prof.ExpertiseGroup == grp {
					selected = append(selected, prof.Slug)
				}
				if prof.Expertise && prof.ExpertiseGroup != grp {
					continue
				}
				if d.HasOption(prof.Slug) {
					continue
				}
				d.Options = append(d.Options, choice.Option{
					Key:  prof.Slug,
					Name: h.displayName(ctx, prof),
				})
			}
			d.SetSelected(selected)
			out = append(out, d)
		}
	}
	return out, nil
}

func eligibleForExpertise(prof *entities.CharacterProficiency, rule expertiseRule) bool {
	switch prof.Kind {
	case entities.ProficiencyKindSkill:
		return true
	case entities.ProficiencyKindTool:
		return rule.tools && baseSlug(prof.Slug) == thievesToolsSlug
	}
	return false
}

func (h *ExpertiseHandler) displayName(ctx context.Context, prof *entities.CharacterProficiency) string {
	if prof.Kind == entities.ProficiencyKindSkill {
		if skill, err := h.catalog.GetSkill(ctx, prof.Slug); err == nil {
			return skill.Name
		}
		return prof.Slug
	}
	if pt, err := h.catalog.GetProficiencyType(ctx, prof.Slug); err == nil {
		return pt.Name
	}
	return prof.Slug
}

// Resolve implements Handler
func (h *ExpertiseHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, false)
	if err != nil {
		return err
	}

	grp := group(d)
	h.clear(char, grp)

	allowed, _ := d.Metadata[metaAllowedKinds].([]string)
	for _, prof := range char.Proficiencies {
		if !slices.Contains(keys, prof.Slug) || !slices.Contains(allowed, string(prof.Kind)) || prof.Expertise {
			continue
		}
		prof.Expertise = true
		prof.ExpertiseGroup = grp
	}
	return nil
}

// CanUndo implements Handler
func (h *ExpertiseHandler) CanUndo(char *entities.Character, d *choice.Decision) bool {
	return char.ClassLevel(sourceKey(d)) == d.LevelGranted
}

// Undo implements Handler
func (h *ExpertiseHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "expertise can only be changed at the level it was granted")
	}
	h.clear(char, group(d))
	return nil
}

func (h *ExpertiseHandler) clear(char *entities.Character, grp string) {
	for _, prof := range char.Proficiencies {
		if prof.Expertise && prof.ExpertiseGroup == grp {
			prof.Expertise = false
			prof.ExpertiseGroup = ""
		}
	}
}
