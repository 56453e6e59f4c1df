package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

// Reference slugs used across fixtures
const (
	RaceHuman          = "phb:human"
	RaceVariantHuman   = "phb:human-variant"
	RaceHalfElf        = "phb:half-elf"
	RaceElf            = "phb:elf"
	RaceHighElf        = "phb:elf-high"
	RaceDwarf          = "phb:dwarf"
	RaceHillDwarf      = "phb:dwarf-hill"
	RaceCustomLineage  = "tce:custom-lineage"
	BackgroundAcolyte  = "phb:acolyte"
	BackgroundArtisan  = "phb:guild-artisan"
	ClassFighter       = "phb:fighter"
	ClassRogue         = "phb:rogue"
	ClassBard          = "phb:bard"
	ClassWizard        = "phb:wizard"
	ClassBarbarian     = "phb:barbarian"
	ClassWarlock       = "phb:warlock"
	ClassPaladin       = "phb:paladin"
	ClassSorcerer      = "phb:sorcerer"
	SubclassBattleMstr = "phb:fighter-battle-master"
	SubclassChampion   = "phb:fighter-champion"
	SubclassTotem      = "phb:barbarian-path-of-the-totem-warrior"
	SubclassBerserker  = "phb:barbarian-path-of-the-berserker"
	SubclassTrickster  = "phb:rogue-arcane-trickster"
	SubclassThief      = "phb:rogue-thief"
	SubclassEvocation  = "phb:wizard-school-of-evocation"
	SubclassFiend      = "phb:warlock-the-fiend"
	ItemGold           = "phb:gold-gp"
	ItemExplorersPack  = "phb:explorers-pack"
	SkillStealth       = "phb:stealth"
	SkillPerception    = "phb:perception"
	SkillAthletics     = "phb:athletics"
	ToolThieves        = "phb:thieves-tools"
	LanguageCommon     = "phb:common"
	LanguageElvish     = "phb:elvish"
	LanguageDwarvish   = "phb:dwarvish"
	FeatAlert          = "phb:alert"
	FeatTough          = "phb:tough"
	FeatGrappler       = "phb:grappler"
	FeatActor          = "phb:actor"
	FeatLinguist       = "phb:linguist"
	FeatFeyTouched     = "tce:fey-touched"
	FeatHeavilyArmored = "phb:heavily-armored"
)

// CatalogData returns a fresh reference data set covering every decision
// type. Callers may mutate the result.
func CatalogData() *entities.CatalogData {
	return &entities.CatalogData{
		Races:            races(),
		Backgrounds:      backgrounds(),
		Classes:          classes(),
		Subclasses:       subclasses(),
		Feats:            feats(),
		Spells:           spells(),
		Languages:        languages(),
		Skills:           skills(),
		ProficiencyTypes: proficiencyTypes(),
		OptionalFeatures: optionalFeatures(),
		Items:            items(),
	}
}

// CreateTestCatalog indexes data, or the default fixture when data is nil
func CreateTestCatalog(t *testing.T, data *entities.CatalogData) catalog.Repository {
	if data == nil {
		data = CatalogData()
	}
	repo, err := catalog.NewInMemory(&catalog.Config{Data: data})
	require.NoError(t, err, "failed to index test catalog")
	return repo
}

func races() []*entities.Race {
	return []*entities.Race{
		{
			Slug:            RaceHuman,
			Name:            "Human",
			Size:            "M",
			Speed:           30,
			Languages:       []string{LanguageCommon},
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 1}},
		},
		{
			Slug:       RaceVariantHuman,
			Name:       "Variant Human",
			ParentSlug: RaceHuman,
			Size:       "M",
			Speed:      30,
			AbilityChoices: []entities.AbilityChoice{
				{Group: "ability_choice_1", Quantity: 2, Value: 1, Constraint: entities.AbilityConstraintDifferent},
			},
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "skill_choice_1", Kind: entities.ProficiencyKindSkill, Quantity: 1},
			},
			BonusFeat: true,
		},
		{
			Slug:  RaceHalfElf,
			Name:  "Half-Elf",
			Size:  "M",
			Speed: 30,
			AbilityBonuses: []entities.AbilityBonus{
				{Ability: entities.AbilityCharisma, Bonus: 2},
			},
			AbilityChoices: []entities.AbilityChoice{
				{Group: "ability_choice_1", Quantity: 2, Value: 1, Constraint: entities.AbilityConstraintDifferent},
			},
			Languages:       []string{LanguageCommon, LanguageElvish},
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 1}},
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "skill_choice_1", Kind: entities.ProficiencyKindSkill, Quantity: 2},
			},
		},
		{
			Slug:  RaceElf,
			Name:  "Elf",
			Size:  "M",
			Speed: 30,
			AbilityBonuses: []entities.AbilityBonus{
				{Ability: entities.AbilityDexterity, Bonus: 2},
			},
			Languages: []string{LanguageCommon, LanguageElvish},
		},
		{
			Slug:       RaceHighElf,
			Name:       "High Elf",
			ParentSlug: RaceElf,
			Size:       "M",
			Speed:      30,
			AbilityBonuses: []entities.AbilityBonus{
				{Ability: entities.AbilityIntelligence, Bonus: 1},
			},
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 1}},
		},
		{
			Slug:  RaceDwarf,
			Name:  "Dwarf",
			Size:  "M",
			Speed: 25,
			AbilityBonuses: []entities.AbilityBonus{
				{Ability: entities.AbilityConstitution, Bonus: 2},
			},
			Languages: []string{LanguageCommon, LanguageDwarvish},
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "tool_choice_1", Kind: entities.ProficiencyKindTool, Quantity: 1,
					Options: []string{"phb:smiths-tools", "phb:brewers-supplies", "phb:masons-tools"}},
			},
		},
		{
			Slug:       RaceHillDwarf,
			Name:       "Hill Dwarf",
			ParentSlug: RaceDwarf,
			Size:       "M",
			Speed:      25,
			AbilityBonuses: []entities.AbilityBonus{
				{Ability: entities.AbilityWisdom, Bonus: 1},
			},
			HitPointsPerLevel: 1,
		},
		{
			Slug:          RaceCustomLineage,
			Name:          "Custom Lineage",
			HasSizeChoice: true,
			Speed:         30,
			AbilityChoices: []entities.AbilityChoice{
				{Group: "ability_choice_1", Quantity: 1, Value: 2, Constraint: entities.AbilityConstraintAny},
			},
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 1}},
			BonusFeat:       true,
		},
	}
}

func backgrounds() []*entities.Background {
	return []*entities.Background{
		{
			Slug:            BackgroundAcolyte,
			Name:            "Acolyte",
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 2}},
			StartingGold:    15,
		},
		{
			Slug: BackgroundArtisan,
			Name: "Guild Artisan",
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "tool_choice_1", Kind: entities.ProficiencyKindTool, Subcategory: "artisan", Quantity: 1},
			},
			LanguageChoices: []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 1}},
			StartingGold:    15,
		},
	}
}

func classes() []*entities.Class {
	return []*entities.Class{
		{
			Slug:                ClassFighter,
			Name:                "Fighter",
			HitDie:              10,
			SubclassLevel:       3,
			SubclassFeatureName: "Martial Archetype",
			FightingStyleLevel:  1,
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "skill_choice_1", Kind: entities.ProficiencyKindSkill, Quantity: 2,
					Options: []string{"phb:acrobatics", SkillAthletics, "phb:history", "phb:insight",
						"phb:intimidation", SkillPerception, "phb:survival"}},
			},
			StartingWealth: &entities.StartingWealth{Formula: "6d4 x 10", Average: 150},
			EquipmentChoices: []entities.EquipmentChoice{
				{Group: "equipment_choice_1", Option: 1, Description: "chain mail",
					Items: []entities.EquipmentItem{{Item: "phb:chain-mail", Quantity: 1}}},
				{Group: "equipment_choice_1", Option: 2, Description: "leather armor, longbow, and 20 arrows",
					Items: []entities.EquipmentItem{
						{Item: "phb:leather-armor", Quantity: 1},
						{Item: "phb:longbow", Quantity: 1},
						{Item: "phb:arrows", Quantity: 20},
					}},
				{Group: "equipment_choice_2", Option: 1, Description: "a martial weapon and a shield",
					Items: []entities.EquipmentItem{
						{Category: "martial-weapon", Quantity: 1},
						{Item: "phb:shield", Quantity: 1},
					}},
				{Group: "equipment_choice_2", Option: 2, Description: "two martial weapons",
					Items: []entities.EquipmentItem{{Category: "martial-weapon", Quantity: 2}}},
				{Group: "equipment_choice_3", Option: 1, Description: "a dungeoneer's pack",
					Items: []entities.EquipmentItem{{Item: "phb:dungeoneers-pack", Quantity: 1}}},
				{Group: "equipment_choice_3", Option: 2, Description: "an explorer's pack",
					Items: []entities.EquipmentItem{{Item: ItemExplorersPack, Quantity: 1}}},
			},
		},
		{
			Slug:                ClassRogue,
			Name:                "Rogue",
			HitDie:              8,
			SubclassLevel:       3,
			SubclassFeatureName: "Roguish Archetype",
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "skill_choice_1", Kind: entities.ProficiencyKindSkill, Quantity: 4,
					Options: []string{"phb:acrobatics", SkillAthletics, "phb:deception", "phb:insight",
						"phb:intimidation", "phb:investigation", SkillPerception, "phb:persuasion",
						"phb:sleight-of-hand", SkillStealth}},
			},
			StartingWealth: &entities.StartingWealth{Formula: "4d4 x 10", Average: 100},
			EquipmentChoices: []entities.EquipmentChoice{
				{Group: "equipment_choice_1", Option: 1, Description: "a rapier",
					Items: []entities.EquipmentItem{{Item: "phb:rapier", Quantity: 1}}},
				{Group: "equipment_choice_1", Option: 2, Description: "a shortsword",
					Items: []entities.EquipmentItem{{Item: "phb:shortsword", Quantity: 1}}},
			},
		},
		{
			Slug:                ClassBard,
			Name:                "Bard",
			HitDie:              8,
			SubclassLevel:       3,
			SubclassFeatureName: "Bard College",
			SpellcastingAbility: entities.AbilityCharisma,
			ProficiencyChoices: []entities.ProficiencyChoice{
				{Group: "skill_choice_1", Kind: entities.ProficiencyKindSkill, Quantity: 3},
				{Group: "instrument_choice_1", Kind: entities.ProficiencyKindTool, Subcategory: "musical-instrument", Quantity: 3},
			},
			Progression: []entities.SpellProgression{
				{Level: 1, CantripsKnown: 2, SpellsKnown: 4, MaxSpellLevel: 1},
				{Level: 2, CantripsKnown: 2, SpellsKnown: 5, MaxSpellLevel: 1},
				{Level: 3, CantripsKnown: 2, SpellsKnown: 6, MaxSpellLevel: 2},
				{Level: 4, CantripsKnown: 3, SpellsKnown: 7, MaxSpellLevel: 2},
			},
		},
		{
			Slug:                ClassWizard,
			Name:                "Wizard",
			HitDie:              6,
			SubclassLevel:       2,
			SubclassFeatureName: "Arcane Tradition",
			SpellcastingAbility: entities.AbilityIntelligence,
			Progression: []entities.SpellProgression{
				{Level: 1, CantripsKnown: 3, SpellsKnown: 6, MaxSpellLevel: 1},
				{Level: 2, CantripsKnown: 3, SpellsKnown: 8, MaxSpellLevel: 1},
				{Level: 3, CantripsKnown: 3, SpellsKnown: 10, MaxSpellLevel: 2},
			},
		},
		{
			Slug:                ClassBarbarian,
			Name:                "Barbarian",
			HitDie:              12,
			SubclassLevel:       3,
			SubclassFeatureName: "Primal Path",
		},
		{
			Slug:                ClassWarlock,
			Name:                "Warlock",
			HitDie:              8,
			SubclassLevel:       1,
			SubclassFeatureName: "Otherworldly Patron",
			SpellcastingAbility: entities.AbilityCharisma,
			Progression: []entities.SpellProgression{
				{Level: 1, CantripsKnown: 2, SpellsKnown: 2, MaxSpellLevel: 1},
				{Level: 2, CantripsKnown: 2, SpellsKnown: 3, MaxSpellLevel: 1},
			},
			Counters: []entities.Counter{
				{Name: "Eldritch Invocations Known", Level: 2, Value: 2},
				{Name: "Eldritch Invocations Known", Level: 5, Value: 3},
			},
		},
		{
			Slug:                ClassPaladin,
			Name:                "Paladin",
			HitDie:              10,
			SubclassLevel:       3,
			SubclassFeatureName: "Sacred Oath",
			FightingStyleLevel:  2,
		},
		{
			Slug:                ClassSorcerer,
			Name:                "Sorcerer",
			HitDie:              6,
			SubclassLevel:       1,
			SubclassFeatureName: "Sorcerous Origin",
			SpellcastingAbility: entities.AbilityCharisma,
			Counters: []entities.Counter{
				{Name: "Metamagic Known", Level: 3, Value: 2},
				{Name: "Metamagic Known", Level: 10, Value: 3},
			},
		},
	}
}

func subclasses() []*entities.Subclass {
	return []*entities.Subclass{
		{
			Slug:      SubclassBattleMstr,
			Name:      "Battle Master",
			ClassSlug: ClassFighter,
			Features: []entities.SubclassFeature{
				{Slug: "combat-superiority", Name: "Combat Superiority", Level: 3},
				{Slug: "student-of-war", Name: "Student of War", Level: 3},
			},
			Counters: []entities.Counter{
				{Name: "Maneuvers Known", Level: 3, Value: 3},
				{Name: "Maneuvers Known", Level: 7, Value: 5},
			},
		},
		{
			Slug:      SubclassChampion,
			Name:      "Champion",
			ClassSlug: ClassFighter,
			Features: []entities.SubclassFeature{
				{Slug: "improved-critical", Name: "Improved Critical", Level: 3},
			},
		},
		{
			Slug:      SubclassTotem,
			Name:      "Path of the Totem Warrior",
			ClassSlug: ClassBarbarian,
			Features: []entities.SubclassFeature{
				{Slug: "spirit-seeker", Name: "Spirit Seeker", Level: 3},
				{Slug: "totem-spirit-bear", Name: "Bear (Totem Spirit)", Level: 3, ChoiceGroup: "totem_spirit"},
				{Slug: "totem-spirit-eagle", Name: "Eagle (Totem Spirit)", Level: 3, ChoiceGroup: "totem_spirit"},
				{Slug: "totem-spirit-wolf", Name: "Wolf (Totem Spirit)", Level: 3, ChoiceGroup: "totem_spirit"},
				{Slug: "aspect-bear", Name: "Bear (Aspect of the Beast)", Level: 6, ChoiceGroup: "totem_aspect"},
				{Slug: "aspect-eagle", Name: "Eagle (Aspect of the Beast)", Level: 6, ChoiceGroup: "totem_aspect"},
				{Slug: "aspect-wolf", Name: "Wolf (Aspect of the Beast)", Level: 6, ChoiceGroup: "totem_aspect"},
				{Slug: "attunement-bear", Name: "Bear (Totemic Attunement)", Level: 14, ChoiceGroup: "totem_attunement"},
				{Slug: "attunement-eagle", Name: "Eagle (Totemic Attunement)", Level: 14, ChoiceGroup: "totem_attunement"},
				{Slug: "attunement-wolf", Name: "Wolf (Totemic Attunement)", Level: 14, ChoiceGroup: "totem_attunement"},
			},
		},
		{
			Slug:      SubclassBerserker,
			Name:      "Path of the Berserker",
			ClassSlug: ClassBarbarian,
			Features: []entities.SubclassFeature{
				{Slug: "frenzy", Name: "Frenzy", Level: 3},
			},
		},
		{
			Slug:      SubclassTrickster,
			Name:      "Arcane Trickster",
			ClassSlug: ClassRogue,
			Features: []entities.SubclassFeature{
				{Slug: "mage-hand-legerdemain", Name: "Mage Hand Legerdemain", Level: 3},
			},
			SpellChoices: []entities.SubclassSpellChoice{
				{Level: 3, Group: "trickster_cantrips", Quantity: 2, SpellList: ClassWizard, MaxSpellLevel: 0},
			},
		},
		{
			Slug:      SubclassThief,
			Name:      "Thief",
			ClassSlug: ClassRogue,
			Features: []entities.SubclassFeature{
				{Slug: "fast-hands", Name: "Fast Hands", Level: 3},
			},
		},
		{
			Slug:      SubclassEvocation,
			Name:      "School of Evocation",
			ClassSlug: ClassWizard,
			Features: []entities.SubclassFeature{
				{Slug: "evocation-savant", Name: "Evocation Savant", Level: 2},
			},
		},
		{
			Slug:      SubclassFiend,
			Name:      "The Fiend",
			ClassSlug: ClassWarlock,
			Features: []entities.SubclassFeature{
				{Slug: "dark-ones-blessing", Name: "Dark One's Blessing", Level: 1},
			},
		},
	}
}

func feats() []*entities.Feat {
	return []*entities.Feat{
		{Slug: FeatAlert, Name: "Alert"},
		{Slug: FeatTough, Name: "Tough", HitPointsPerLevel: 2},
		{
			Slug:          FeatGrappler,
			Name:          "Grappler",
			Prerequisites: []entities.FeatPrerequisite{{Ability: entities.AbilityStrength, Minimum: 13}},
		},
		{
			Slug:             FeatActor,
			Name:             "Actor",
			AbilityIncreases: []entities.AbilityBonus{{Ability: entities.AbilityCharisma, Bonus: 1}},
		},
		{
			Slug:             FeatLinguist,
			Name:             "Linguist",
			AbilityIncreases: []entities.AbilityBonus{{Ability: entities.AbilityIntelligence, Bonus: 1}},
			LanguageChoices:  []entities.LanguageChoice{{Group: "language_choice_1", Quantity: 3}},
		},
		{
			Slug:             FeatFeyTouched,
			Name:             "Fey Touched",
			AbilityIncreases: []entities.AbilityBonus{{Ability: entities.AbilityWisdom, Bonus: 1}},
			Spells:           []string{"phb:misty-step"},
		},
		{
			Slug:             FeatHeavilyArmored,
			Name:             "Heavily Armored",
			AbilityIncreases: []entities.AbilityBonus{{Ability: entities.AbilityStrength, Bonus: 1}},
			Proficiencies:    []entities.FeatProficiency{{Kind: entities.ProficiencyKindArmor, Slug: "phb:heavy-armor"}},
		},
	}
}

func spells() []*entities.Spell {
	wizard, sorcerer, bard, warlock := ClassWizard, ClassSorcerer, ClassBard, ClassWarlock
	return []*entities.Spell{
		{Slug: "phb:fire-bolt", Name: "Fire Bolt", Level: 0, School: "Evocation", Classes: []string{wizard, sorcerer}},
		{Slug: "phb:mage-hand", Name: "Mage Hand", Level: 0, School: "Conjuration", Classes: []string{wizard, sorcerer, bard, warlock}},
		{Slug: "phb:light", Name: "Light", Level: 0, School: "Evocation", Classes: []string{wizard, sorcerer, bard}},
		{Slug: "phb:minor-illusion", Name: "Minor Illusion", Level: 0, School: "Illusion", Classes: []string{wizard, sorcerer, bard, warlock}},
		{Slug: "phb:vicious-mockery", Name: "Vicious Mockery", Level: 0, School: "Enchantment", Classes: []string{bard}},
		{Slug: "phb:eldritch-blast", Name: "Eldritch Blast", Level: 0, School: "Evocation", Classes: []string{warlock}},
		{Slug: "phb:magic-missile", Name: "Magic Missile", Level: 1, School: "Evocation", Classes: []string{wizard, sorcerer}},
		{Slug: "phb:sleep", Name: "Sleep", Level: 1, School: "Enchantment", Classes: []string{wizard, sorcerer, bard}},
		{Slug: "phb:healing-word", Name: "Healing Word", Level: 1, School: "Evocation", Classes: []string{bard}},
		{Slug: "phb:charm-person", Name: "Charm Person", Level: 1, School: "Enchantment", Classes: []string{wizard, sorcerer, bard, warlock}},
		{Slug: "phb:dissonant-whispers", Name: "Dissonant Whispers", Level: 1, School: "Enchantment", Classes: []string{bard}},
		{Slug: "phb:thunderwave", Name: "Thunderwave", Level: 1, School: "Evocation", Classes: []string{wizard, sorcerer, bard}},
		{Slug: "phb:hex", Name: "Hex", Level: 1, School: "Enchantment", Classes: []string{warlock}},
		{Slug: "phb:burning-hands", Name: "Burning Hands", Level: 1, School: "Evocation", Classes: []string{wizard, sorcerer}},
		{Slug: "phb:misty-step", Name: "Misty Step", Level: 2, School: "Conjuration", Classes: []string{wizard, sorcerer, warlock}},
		{Slug: "phb:invisibility", Name: "Invisibility", Level: 2, School: "Illusion", Classes: []string{wizard, sorcerer, bard, warlock}},
		{Slug: "phb:fireball", Name: "Fireball", Level: 3, School: "Evocation", Classes: []string{wizard, sorcerer}},
	}
}

func languages() []*entities.Language {
	return []*entities.Language{
		{Slug: LanguageCommon, Name: "Common", Learnable: true},
		{Slug: LanguageElvish, Name: "Elvish", Learnable: true},
		{Slug: LanguageDwarvish, Name: "Dwarvish", Learnable: true},
		{Slug: "phb:giant", Name: "Giant", Learnable: true},
		{Slug: "phb:gnomish", Name: "Gnomish", Learnable: true},
		{Slug: "phb:halfling", Name: "Halfling", Learnable: true},
		{Slug: "phb:orc", Name: "Orc", Learnable: true},
		{Slug: "phb:draconic", Name: "Draconic", Learnable: true},
		{Slug: "phb:thieves-cant", Name: "Thieves' Cant", Learnable: false},
		{Slug: "phb:druidic", Name: "Druidic", Learnable: false},
	}
}

func skills() []*entities.Skill {
	return []*entities.Skill{
		{Slug: "phb:acrobatics", Name: "Acrobatics", Ability: entities.AbilityDexterity},
		{Slug: SkillAthletics, Name: "Athletics", Ability: entities.AbilityStrength},
		{Slug: "phb:arcana", Name: "Arcana", Ability: entities.AbilityIntelligence},
		{Slug: "phb:deception", Name: "Deception", Ability: entities.AbilityCharisma},
		{Slug: "phb:history", Name: "History", Ability: entities.AbilityIntelligence},
		{Slug: "phb:insight", Name: "Insight", Ability: entities.AbilityWisdom},
		{Slug: "phb:intimidation", Name: "Intimidation", Ability: entities.AbilityCharisma},
		{Slug: "phb:investigation", Name: "Investigation", Ability: entities.AbilityIntelligence},
		{Slug: SkillPerception, Name: "Perception", Ability: entities.AbilityWisdom},
		{Slug: "phb:persuasion", Name: "Persuasion", Ability: entities.AbilityCharisma},
		{Slug: "phb:religion", Name: "Religion", Ability: entities.AbilityIntelligence},
		{Slug: "phb:sleight-of-hand", Name: "Sleight of Hand", Ability: entities.AbilityDexterity},
		{Slug: SkillStealth, Name: "Stealth", Ability: entities.AbilityDexterity},
		{Slug: "phb:survival", Name: "Survival", Ability: entities.AbilityWisdom},
	}
}

func proficiencyTypes() []*entities.ProficiencyType {
	return []*entities.ProficiencyType{
		{Slug: ToolThieves, Name: "Thieves' Tools", Kind: entities.ProficiencyKindTool},
		{Slug: "phb:smiths-tools", Name: "Smith's Tools", Kind: entities.ProficiencyKindTool, Subcategory: "artisan"},
		{Slug: "phb:brewers-supplies", Name: "Brewer's Supplies", Kind: entities.ProficiencyKindTool, Subcategory: "artisan"},
		{Slug: "phb:masons-tools", Name: "Mason's Tools", Kind: entities.ProficiencyKindTool, Subcategory: "artisan"},
		{Slug: "phb:lute", Name: "Lute", Kind: entities.ProficiencyKindTool, Subcategory: "musical-instrument"},
		{Slug: "phb:flute", Name: "Flute", Kind: entities.ProficiencyKindTool, Subcategory: "musical-instrument"},
		{Slug: "phb:drum", Name: "Drum", Kind: entities.ProficiencyKindTool, Subcategory: "musical-instrument"},
		{Slug: "phb:lyre", Name: "Lyre", Kind: entities.ProficiencyKindTool, Subcategory: "musical-instrument"},
		{Slug: "phb:martial-weapons", Name: "Martial Weapons", Kind: entities.ProficiencyKindWeapon, Subcategory: "martial"},
		{Slug: "phb:heavy-armor", Name: "Heavy Armor", Kind: entities.ProficiencyKindArmor},
	}
}

func optionalFeatures() []*entities.OptionalFeature {
	fighter, paladin, warlock, sorcerer := ClassFighter, ClassPaladin, ClassWarlock, ClassSorcerer
	return []*entities.OptionalFeature{
		{Slug: "phb:archery", Name: "Archery", FeatureType: "fighting_style", Classes: []string{fighter}, LevelRequirement: 1},
		{Slug: "phb:defense", Name: "Defense", FeatureType: "fighting_style", Classes: []string{fighter, paladin}, LevelRequirement: 1},
		{Slug: "phb:dueling", Name: "Dueling", FeatureType: "fighting_style", Classes: []string{fighter, paladin}, LevelRequirement: 1},
		{Slug: "phb:protection", Name: "Protection", FeatureType: "fighting_style", Classes: []string{fighter, paladin}, LevelRequirement: 1},
		{Slug: "phb:maneuver-trip-attack", Name: "Trip Attack", FeatureType: "maneuver", Subclasses: []string{SubclassBattleMstr}, LevelRequirement: 3},
		{Slug: "phb:maneuver-riposte", Name: "Riposte", FeatureType: "maneuver", Subclasses: []string{SubclassBattleMstr}, LevelRequirement: 3},
		{Slug: "phb:maneuver-parry", Name: "Parry", FeatureType: "maneuver", Subclasses: []string{SubclassBattleMstr}, LevelRequirement: 3},
		{Slug: "phb:maneuver-precision-attack", Name: "Precision Attack", FeatureType: "maneuver", Subclasses: []string{SubclassBattleMstr}, LevelRequirement: 3},
		{Slug: "phb:maneuver-menacing-attack", Name: "Menacing Attack", FeatureType: "maneuver", Subclasses: []string{SubclassBattleMstr}, LevelRequirement: 3},
		{Slug: "phb:agonizing-blast", Name: "Agonizing Blast", FeatureType: "eldritch_invocation", Classes: []string{warlock}, LevelRequirement: 2},
		{Slug: "phb:armor-of-shadows", Name: "Armor of Shadows", FeatureType: "eldritch_invocation", Classes: []string{warlock}, LevelRequirement: 2},
		{Slug: "phb:devils-sight", Name: "Devil's Sight", FeatureType: "eldritch_invocation", Classes: []string{warlock}, LevelRequirement: 2},
		{Slug: "phb:thirsting-blade", Name: "Thirsting Blade", FeatureType: "eldritch_invocation", Classes: []string{warlock}, LevelRequirement: 5},
		{Slug: "phb:quickened-spell", Name: "Quickened Spell", FeatureType: "metamagic", Classes: []string{sorcerer}, LevelRequirement: 3},
		{Slug: "phb:twinned-spell", Name: "Twinned Spell", FeatureType: "metamagic", Classes: []string{sorcerer}, LevelRequirement: 3},
		{Slug: "phb:subtle-spell", Name: "Subtle Spell", FeatureType: "metamagic", Classes: []string{sorcerer}, LevelRequirement: 3},
	}
}

func items() []*entities.Item {
	return []*entities.Item{
		{Slug: "phb:chain-mail", Name: "Chain Mail", Category: "armor"},
		{Slug: "phb:leather-armor", Name: "Leather Armor", Category: "armor"},
		{Slug: "phb:shield", Name: "Shield", Category: "armor"},
		{Slug: "phb:longbow", Name: "Longbow", Category: "martial-weapon"},
		{Slug: "phb:longsword", Name: "Longsword", Category: "martial-weapon"},
		{Slug: "phb:battleaxe", Name: "Battleaxe", Category: "martial-weapon"},
		{Slug: "phb:rapier", Name: "Rapier", Category: "martial-weapon"},
		{Slug: "phb:shortsword", Name: "Shortsword", Category: "martial-weapon"},
		{Slug: "phb:dagger", Name: "Dagger", Category: "simple-weapon"},
		{Slug: "phb:arrows", Name: "Arrows", Category: "ammunition"},
		{Slug: "phb:backpack", Name: "Backpack", Category: "adventuring-gear"},
		{Slug: "phb:bedroll", Name: "Bedroll", Category: "adventuring-gear"},
		{Slug: "phb:torch", Name: "Torch", Category: "adventuring-gear"},
		{Slug: "phb:rations", Name: "Rations (1 day)", Category: "adventuring-gear"},
		{Slug: "phb:crowbar", Name: "Crowbar", Category: "adventuring-gear"},
		{Slug: ToolThieves, Name: "Thieves' Tools", Category: "tool"},
		{
			Slug:     "phb:dungeoneers-pack",
			Name:     "Dungeoneer's Pack",
			Category: "adventuring-gear",
			IsPack:   true,
			Contents: []entities.PackItem{
				{Item: "phb:backpack", Quantity: 1},
				{Item: "phb:crowbar", Quantity: 1},
				{Item: "phb:torch", Quantity: 10},
			},
		},
		{
			Slug:     ItemExplorersPack,
			Name:     "Explorer's Pack",
			Category: "adventuring-gear",
			IsPack:   true,
			Contents: []entities.PackItem{
				{Item: "phb:backpack", Quantity: 1},
				{Item: "phb:bedroll", Quantity: 1},
				{Item: "phb:torch", Quantity: 10},
				{Item: "phb:rations", Quantity: 10},
			},
		},
		{Slug: ItemGold, Name: "Gold (gp)", Category: "currency"},
	}
}
