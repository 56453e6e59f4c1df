package entities

import "strings"

// ProficiencyKind is the category of a proficiency
type ProficiencyKind string

// Proficiency kinds
const (
	ProficiencyKindSkill  ProficiencyKind = "skill"
	ProficiencyKindTool   ProficiencyKind = "tool"
	ProficiencyKindWeapon ProficiencyKind = "weapon"
	ProficiencyKindArmor  ProficiencyKind = "armor"
)

// Ability choice constraints
const (
	AbilityConstraintDifferent = "different"
	AbilityConstraintAny       = "any"
)

// AbilityBonus is a fixed ability score increase
type AbilityBonus struct {
	Ability Ability `yaml:"ability" json:"ability"`
	Bonus   int     `yaml:"bonus" json:"bonus"`
}

// AbilityChoice is a choice-flagged ability bonus modifier: pick Quantity
// abilities and add Value to each.
type AbilityChoice struct {
	Group      string `yaml:"group"`
	Quantity   int    `yaml:"quantity"`
	Value      int    `yaml:"value"`
	Constraint string `yaml:"constraint"`
}

// ProficiencyChoice lets the character pick Quantity proficiencies. An empty
// Options list means any proficiency of Kind (and Subcategory, when set).
type ProficiencyChoice struct {
	Group       string          `yaml:"group"`
	Kind        ProficiencyKind `yaml:"kind"`
	Subcategory string          `yaml:"subcategory"`
	Quantity    int             `yaml:"quantity"`
	Options     []string        `yaml:"options"`
}

// LanguageChoice lets the character learn Quantity languages. An empty
// Options list means any learnable language.
type LanguageChoice struct {
	Group    string   `yaml:"group"`
	Quantity int      `yaml:"quantity"`
	Options  []string `yaml:"options"`
}

// Race is a playable race or subrace
type Race struct {
	Slug               string              `yaml:"slug"`
	Name               string              `yaml:"name"`
	ParentSlug         string              `yaml:"parent"`
	Size               string              `yaml:"size"`
	HasSizeChoice      bool                `yaml:"has_size_choice"`
	Speed              int                 `yaml:"speed"`
	AbilityBonuses     []AbilityBonus      `yaml:"ability_bonuses"`
	AbilityChoices     []AbilityChoice     `yaml:"ability_choices"`
	Languages          []string            `yaml:"languages"`
	LanguageChoices    []LanguageChoice    `yaml:"language_choices"`
	ProficiencyChoices []ProficiencyChoice `yaml:"proficiency_choices"`
	BonusFeat          bool                `yaml:"bonus_feat"`
	HitPointsPerLevel  int                 `yaml:"hit_points_per_level"`
}

// Background is a character background
type Background struct {
	Slug               string              `yaml:"slug"`
	Name               string              `yaml:"name"`
	LanguageChoices    []LanguageChoice    `yaml:"language_choices"`
	ProficiencyChoices []ProficiencyChoice `yaml:"proficiency_choices"`
	StartingGold       int                 `yaml:"starting_gold"`
	BonusFeat          bool                `yaml:"bonus_feat"`
}

// StartingWealth is the gold alternative to class starting equipment
type StartingWealth struct {
	Formula string `yaml:"formula"`
	Average int    `yaml:"average"`
}

// EquipmentItem is one line of an equipment option. Category is set instead
// of Item when the player picks any item of that category.
type EquipmentItem struct {
	Item     string `yaml:"item"`
	Category string `yaml:"category"`
	Quantity int    `yaml:"quantity"`
}

// EquipmentChoice is one lettered option inside an equipment choice group.
// Option 1 is displayed as "a", 2 as "b" and so on.
type EquipmentChoice struct {
	Group       string          `yaml:"group"`
	Option      int             `yaml:"option"`
	Description string          `yaml:"description"`
	Items       []EquipmentItem `yaml:"items"`
}

// SpellProgression holds cumulative spells known at a class level
type SpellProgression struct {
	Level         int `yaml:"level"`
	CantripsKnown int `yaml:"cantrips_known"`
	SpellsKnown   int `yaml:"spells_known"`
	MaxSpellLevel int `yaml:"max_spell_level"`
}

// Counter is a per-level allowance such as "Maneuvers Known"
type Counter struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Value int    `yaml:"value"`
}

// Class is a character class
type Class struct {
	Slug                string              `yaml:"slug"`
	Name                string              `yaml:"name"`
	HitDie              int                 `yaml:"hit_die"`
	SubclassLevel       int                 `yaml:"subclass_level"`
	SubclassFeatureName string              `yaml:"subclass_feature_name"`
	ASILevels           []int               `yaml:"asi_levels"`
	FightingStyleLevel  int                 `yaml:"fighting_style_level"`
	SpellcastingAbility Ability             `yaml:"spellcasting_ability"`
	ProficiencyChoices  []ProficiencyChoice `yaml:"proficiency_choices"`
	StartingWealth      *StartingWealth     `yaml:"starting_wealth"`
	EquipmentChoices    []EquipmentChoice   `yaml:"equipment_choices"`
	Progression         []SpellProgression  `yaml:"progression"`
	Counters            []Counter           `yaml:"counters"`
}

// ProgressionAt returns the spell progression row for level, if any
func (c *Class) ProgressionAt(level int) *SpellProgression {
	for i := range c.Progression {
		if c.Progression[i].Level == level {
			return &c.Progression[i]
		}
	}
	return nil
}

// SubclassFeature is a feature granted by a subclass. Features sharing a
// ChoiceGroup are alternatives the player picks between.
type SubclassFeature struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	ChoiceGroup string `yaml:"choice_group"`
	Description string `yaml:"description"`
}

// VariantKey is the lower-cased variant name: "Bear (Totem Spirit)" becomes
// "bear".
func (f *SubclassFeature) VariantKey() string {
	name := f.Name
	if i := strings.Index(name, " ("); i > 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// SubclassSpellChoice grants extra spells known from a class list
type SubclassSpellChoice struct {
	Level         int    `yaml:"level"`
	Group         string `yaml:"group"`
	Quantity      int    `yaml:"quantity"`
	SpellList     string `yaml:"spell_list"`
	MaxSpellLevel int    `yaml:"max_spell_level"`
}

// Subclass is a class specialization
type Subclass struct {
	Slug         string                `yaml:"slug"`
	Name         string                `yaml:"name"`
	ClassSlug    string                `yaml:"class"`
	Features     []SubclassFeature     `yaml:"features"`
	Counters     []Counter             `yaml:"counters"`
	SpellChoices []SubclassSpellChoice `yaml:"spell_choices"`
}

// FeatPrerequisite is a minimum ability score required to take a feat
type FeatPrerequisite struct {
	Ability Ability `yaml:"ability"`
	Minimum int     `yaml:"minimum"`
}

// FeatProficiency is a proficiency granted by a feat
type FeatProficiency struct {
	Kind ProficiencyKind `yaml:"kind"`
	Slug string          `yaml:"slug"`
}

// Feat is an optional character feat
type Feat struct {
	Slug              string             `yaml:"slug"`
	Name              string             `yaml:"name"`
	Description       string             `yaml:"description"`
	Prerequisites     []FeatPrerequisite `yaml:"prerequisites"`
	AbilityIncreases  []AbilityBonus     `yaml:"ability_increases"`
	Proficiencies     []FeatProficiency  `yaml:"proficiencies"`
	Spells            []string           `yaml:"spells"`
	LanguageChoices   []LanguageChoice   `yaml:"language_choices"`
	HitPointsPerLevel int                `yaml:"hit_points_per_level"`
	Repeatable        bool               `yaml:"repeatable"`
}

// Spell is a spell in the compendium
type Spell struct {
	Slug    string   `yaml:"slug"`
	Name    string   `yaml:"name"`
	Level   int      `yaml:"level"`
	School  string   `yaml:"school"`
	Classes []string `yaml:"classes"`
}

// Language is a spoken language
type Language struct {
	Slug      string `yaml:"slug"`
	Name      string `yaml:"name"`
	Learnable bool   `yaml:"learnable"`
}

// Skill is a skill proficiency
type Skill struct {
	Slug    string  `yaml:"slug"`
	Name    string  `yaml:"name"`
	Ability Ability `yaml:"ability"`
}

// ProficiencyType is a non-skill proficiency such as a tool or weapon
type ProficiencyType struct {
	Slug        string          `yaml:"slug"`
	Name        string          `yaml:"name"`
	Kind        ProficiencyKind `yaml:"kind"`
	Subcategory string          `yaml:"subcategory"`
}

// OptionalFeature is a member of a class feature pool such as maneuvers or
// eldritch invocations.
type OptionalFeature struct {
	Slug             string   `yaml:"slug"`
	Name             string   `yaml:"name"`
	FeatureType      string   `yaml:"feature_type"`
	Classes          []string `yaml:"classes"`
	Subclasses       []string `yaml:"subclasses"`
	LevelRequirement int      `yaml:"level_requirement"`
	Description      string   `yaml:"description"`
}

// PackItem is one entry in an equipment pack
type PackItem struct {
	Item     string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// Item is an equipment item. Packs expand into their Contents when granted.
type Item struct {
	Slug     string     `yaml:"slug"`
	Name     string     `yaml:"name"`
	Category string     `yaml:"category"`
	IsPack   bool       `yaml:"is_pack"`
	Contents []PackItem `yaml:"contents"`
}

// CatalogData is the full reference data set
type CatalogData struct {
	Races            []*Race            `yaml:"races"`
	Backgrounds      []*Background      `yaml:"backgrounds"`
	Classes          []*Class           `yaml:"classes"`
	Subclasses       []*Subclass        `yaml:"subclasses"`
	Feats            []*Feat            `yaml:"feats"`
	Spells           []*Spell           `yaml:"spells"`
	Languages        []*Language        `yaml:"languages"`
	Skills           []*Skill           `yaml:"skills"`
	ProficiencyTypes []*ProficiencyType `yaml:"proficiency_types"`
	OptionalFeatures []*OptionalFeature `yaml:"optional_features"`
	Items            []*Item            `yaml:"items"`
}
