package external

import (
	"strconv"
	"strings"

	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
)

const (
	sourcePrefix = "srd:"
	skillPrefix  = "skill-"
)

// srdSlug turns an API key into a catalog slug: "half-elf" -> "srd:half-elf"
func srdSlug(key string) string {
	if key == "" {
		return ""
	}
	return sourcePrefix + key
}

// trimSource strips the "source:" part of a slug
func trimSource(slug string) string {
	if i := strings.Index(slug, ":"); i >= 0 {
		return slug[i+1:]
	}
	return slug
}

// sizeCode maps "Medium" to "M"
func sizeCode(size string) string {
	size = strings.TrimSpace(size)
	if size == "" {
		return ""
	}
	return strings.ToUpper(size[:1])
}

func convertRace(apiRace *apientities.Race) *entities.Race {
	if apiRace == nil {
		return nil
	}

	race := &entities.Race{
		Slug:  srdSlug(apiRace.Key),
		Name:  apiRace.Name,
		Size:  sizeCode(apiRace.Size),
		Speed: int(apiRace.Speed),
	}

	for _, bonus := range apiRace.AbilityBonuses {
		if bonus.AbilityScore == nil {
			continue
		}
		ability := entities.Ability(strings.ToUpper(bonus.AbilityScore.Key))
		if !ability.Valid() {
			continue
		}
		race.AbilityBonuses = append(race.AbilityBonuses, entities.AbilityBonus{
			Ability: ability,
			Bonus:   int(bonus.Bonus),
		})
	}

	for _, lang := range apiRace.Languages {
		race.Languages = append(race.Languages, srdSlug(lang.Key))
	}

	if apiRace.LanguageOptions != nil {
		race.LanguageChoices = append(race.LanguageChoices, entities.LanguageChoice{
			Group:    "language_choice_1",
			Quantity: int(apiRace.LanguageOptions.ChoiceCount),
			Options:  referenceKeys(apiRace.LanguageOptions),
		})
	}

	if apiRace.StartingProficiencyOptions != nil {
		if pc, ok := convertProficiencyChoice(apiRace.StartingProficiencyOptions, "proficiency_choice_1"); ok {
			race.ProficiencyChoices = append(race.ProficiencyChoices, pc)
		}
	}

	return race
}

func convertClass(apiClass *apientities.Class, levels []*apientities.Level) *entities.Class {
	if apiClass == nil {
		return nil
	}

	class := &entities.Class{
		Slug:   srdSlug(apiClass.Key),
		Name:   apiClass.Name,
		HitDie: int(apiClass.HitDie),
	}

	n := 0
	for _, choice := range apiClass.ProficiencyChoices {
		if choice == nil {
			continue
		}
		n++
		if pc, ok := convertProficiencyChoice(choice, "proficiency_choice_"+strconv.Itoa(n)); ok {
			class.ProficiencyChoices = append(class.ProficiencyChoices, pc)
		}
	}

	for i, lvl := range levels {
		if lvl == nil || lvl.SpellCasting == nil {
			continue
		}
		level := i + 1
		cantrips := int(lvl.SpellCasting.CantripsKnown)
		known := int(lvl.SpellCasting.SpellsKnown)
		if cantrips == 0 && known == 0 {
			continue
		}
		class.Progression = append(class.Progression, entities.SpellProgression{
			Level:         level,
			CantripsKnown: cantrips,
			SpellsKnown:   known,
			MaxSpellLevel: fullCasterMaxSpellLevel(level),
		})
	}

	return class
}

// fullCasterMaxSpellLevel is the highest spell level a full caster can learn
// at a class level. Half casters need a curated override in the catalog.
func fullCasterMaxSpellLevel(level int) int {
	maxLevel := (level + 1) / 2
	if maxLevel > 9 {
		return 9
	}
	return maxLevel
}

func convertSpell(apiSpell *apientities.Spell) *entities.Spell {
	if apiSpell == nil {
		return nil
	}

	spell := &entities.Spell{
		Slug:  srdSlug(apiSpell.Key),
		Name:  apiSpell.Name,
		Level: int(apiSpell.SpellLevel),
	}
	if apiSpell.SpellSchool != nil {
		spell.School = strings.ToLower(apiSpell.SpellSchool.Name)
	}
	for _, class := range apiSpell.SpellClasses {
		if class != nil {
			spell.Classes = append(spell.Classes, srdSlug(class.Key))
		}
	}
	return spell
}

// convertProficiencyChoice keeps choices whose options are all skills or all
// other proficiencies. Skill keys lose their "skill-" prefix.
func convertProficiencyChoice(choice *apientities.ChoiceOption, group string) (entities.ProficiencyChoice, bool) {
	keys := referenceKeys(choice)
	if len(keys) == 0 {
		return entities.ProficiencyChoice{}, false
	}

	kind := entities.ProficiencyKindTool
	skills := 0
	for _, key := range keys {
		if strings.HasPrefix(trimSource(key), skillPrefix) {
			skills++
		}
	}
	switch skills {
	case len(keys):
		kind = entities.ProficiencyKindSkill
		for i, key := range keys {
			keys[i] = srdSlug(strings.TrimPrefix(trimSource(key), skillPrefix))
		}
	case 0:
	default:
		return entities.ProficiencyChoice{}, false
	}

	return entities.ProficiencyChoice{
		Group:    group,
		Kind:     kind,
		Quantity: int(choice.ChoiceCount),
		Options:  keys,
	}, true
}

// referenceKeys returns the slugs of the reference options of a choice
func referenceKeys(choice *apientities.ChoiceOption) []string {
	if choice == nil || choice.OptionList == nil {
		return nil
	}

	var keys []string
	for _, option := range choice.OptionList.Options {
		if refOpt, ok := option.(*apientities.ReferenceOption); ok && refOpt.Reference != nil {
			keys = append(keys, srdSlug(refOpt.Reference.Key))
		}
	}
	return keys
}
