package entities

// Hit point resolution methods
const (
	HitPointMethodRoll    = "roll"
	HitPointMethodAverage = "average"
)

// Improvement kinds
const (
	ImprovementKindASI  = "asi"
	ImprovementKindFeat = "feat"
)

// Character is the aggregate the choice engine reads and mutates. Child rows
// carry an owner and choice group so a resolution can be found again.
type Character struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	PlayerID         string                   `json:"player_id"`
	RaceSlug         string                   `json:"race_slug"`
	BackgroundSlug   string                   `json:"background_slug"`
	Size             string                   `json:"size,omitempty"`
	AbilityScores    map[Ability]int          `json:"ability_scores"`
	Classes          []*CharacterClass        `json:"classes"`
	MaxHitPoints     int                      `json:"max_hit_points"`
	CurrentHitPoints int                      `json:"current_hit_points"`
	HitPointRolls    []*HitPointRoll          `json:"hit_point_rolls,omitempty"`
	AbilityBonuses   []*CharacterAbilityBonus `json:"ability_bonuses,omitempty"`
	Proficiencies    []*CharacterProficiency  `json:"proficiencies,omitempty"`
	Languages        []*CharacterLanguage     `json:"languages,omitempty"`
	Spells           []*CharacterSpell        `json:"spells,omitempty"`
	Inventory        []*InventoryItem         `json:"inventory,omitempty"`
	Features         []*FeatureSelection      `json:"features,omitempty"`
	Feats            []*CharacterFeat         `json:"feats,omitempty"`
	Improvements     []*Improvement           `json:"improvements,omitempty"`
	CreatedAt        int64                    `json:"created_at"`
	UpdatedAt        int64                    `json:"updated_at"`
}

// CharacterClass is one class a character has levels in
type CharacterClass struct {
	ClassSlug       string            `json:"class_slug"`
	SubclassSlug    string            `json:"subclass_slug,omitempty"`
	Level           int               `json:"level"`
	IsPrimary       bool              `json:"is_primary"`
	SubclassChoices map[string]string `json:"subclass_choices,omitempty"`
}

// HitPointRoll records the hit points gained at a character level
type HitPointRoll struct {
	Level     int    `json:"level"`
	ClassSlug string `json:"class_slug"`
	Method    string `json:"method"`
	Roll      int    `json:"roll"`
	Gained    int    `json:"gained"`
}

// CharacterAbilityBonus is an ability score bonus granted by an owner
type CharacterAbilityBonus struct {
	ID          string   `json:"id"`
	Ability     Ability  `json:"ability"`
	Bonus       int      `json:"bonus"`
	Source      OwnerRef `json:"source"`
	ChoiceGroup string   `json:"choice_group,omitempty"`
}

// CharacterProficiency is a skill or proficiency-type proficiency
type CharacterProficiency struct {
	ID             string          `json:"id"`
	Kind           ProficiencyKind `json:"kind"`
	Slug           string          `json:"slug"`
	Expertise      bool            `json:"expertise"`
	ExpertiseGroup string          `json:"expertise_group,omitempty"`
	Source         OwnerRef        `json:"source"`
	ChoiceGroup    string          `json:"choice_group,omitempty"`
}

// CharacterLanguage is a known language
type CharacterLanguage struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Source      OwnerRef `json:"source"`
	ChoiceGroup string   `json:"choice_group,omitempty"`
}

// CharacterSpell is a spell known by the character
type CharacterSpell struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	ClassSlug     string   `json:"class_slug"`
	Source        OwnerRef `json:"source"`
	LevelAcquired int      `json:"level_acquired"`
	ChoiceGroup   string   `json:"choice_group,omitempty"`
	Cantrip       bool     `json:"cantrip"`
}

// InventoryMetadata records why an inventory row exists. Marker rows have
// zero quantity and only record the starting equipment mode.
type InventoryMetadata struct {
	Origin         string `json:"origin,omitempty"`
	ChoiceGroup    string `json:"choice_group,omitempty"`
	SelectedOption string `json:"selected_option,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Marker         bool   `json:"marker,omitempty"`
}

// Inventory row origins
const (
	InventoryOriginStartingEquipment = "starting_equipment"
	InventoryOriginStartingWealth    = "starting_wealth"
	InventoryOriginEquipmentMode     = "equipment_mode"
)

// InventoryItem is a row in the character's inventory
type InventoryItem struct {
	ID       string            `json:"id"`
	ItemSlug string            `json:"item_slug,omitempty"`
	Quantity int               `json:"quantity"`
	Source   OwnerRef          `json:"source"`
	Metadata InventoryMetadata `json:"metadata"`
}

// FeatureSelection is a chosen optional feature such as a maneuver
type FeatureSelection struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	FeatureType   string `json:"feature_type"`
	ClassSlug     string `json:"class_slug"`
	SubclassSlug  string `json:"subclass_slug,omitempty"`
	LevelAcquired int    `json:"level_acquired"`
	ChoiceGroup   string `json:"choice_group"`
}

// CharacterFeat is a feat the character has taken
type CharacterFeat struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Source        OwnerRef `json:"source"`
	ChoiceGroup   string   `json:"choice_group"`
	LevelAcquired int      `json:"level_acquired"`
}

// Improvement records a consumed ability score improvement allotment
type Improvement struct {
	ID        string          `json:"id"`
	ClassSlug string          `json:"class_slug"`
	Level     int             `json:"level"`
	Group     string          `json:"group"`
	Kind      string          `json:"kind"`
	FeatSlug  string          `json:"feat_slug,omitempty"`
	Increases map[Ability]int `json:"increases,omitempty"`
}

// TotalLevel is the sum of all class levels
func (c *Character) TotalLevel() int {
	total := 0
	for _, cls := range c.Classes {
		total += cls.Level
	}
	return total
}

// PrimaryClass returns the class flagged primary, or the first class
func (c *Character) PrimaryClass() *CharacterClass {
	for _, cls := range c.Classes {
		if cls.IsPrimary {
			return cls
		}
	}
	if len(c.Classes) > 0 {
		return c.Classes[0]
	}
	return nil
}

// Class returns the character's levels in classSlug, or nil
func (c *Character) Class(classSlug string) *CharacterClass {
	for _, cls := range c.Classes {
		if cls.ClassSlug == classSlug {
			return cls
		}
	}
	return nil
}

// ClassLevel returns the character's level in classSlug
func (c *Character) ClassLevel(classSlug string) int {
	if cls := c.Class(classSlug); cls != nil {
		return cls.Level
	}
	return 0
}

// AbilityScore returns the base score plus bonuses and improvements
func (c *Character) AbilityScore(ability Ability) int {
	score := c.AbilityScores[ability]
	for _, bonus := range c.AbilityBonuses {
		if bonus.Ability == ability {
			score += bonus.Bonus
		}
	}
	for _, imp := range c.Improvements {
		score += imp.Increases[ability]
	}
	return score
}

// AbilityModifier returns the modifier for the current ability score
func (c *Character) AbilityModifier(ability Ability) int {
	return Modifier(c.AbilityScore(ability))
}

// HitPointRollAt returns the hit point record for a character level, or nil
func (c *Character) HitPointRollAt(level int) *HitPointRoll {
	for _, roll := range c.HitPointRolls {
		if roll.Level == level {
			return roll
		}
	}
	return nil
}

// HasFeat reports whether the character has taken featSlug
func (c *Character) HasFeat(featSlug string) bool {
	for _, feat := range c.Feats {
		if feat.Slug == featSlug {
			return true
		}
	}
	return false
}

// Proficiency returns the proficiency with kind and slug, or nil
func (c *Character) Proficiency(kind ProficiencyKind, slug string) *CharacterProficiency {
	for _, prof := range c.Proficiencies {
		if prof.Kind == kind && prof.Slug == slug {
			return prof
		}
	}
	return nil
}

// KnowsLanguage reports whether the character knows slug
func (c *Character) KnowsLanguage(slug string) bool {
	for _, lang := range c.Languages {
		if lang.Slug == slug {
			return true
		}
	}
	return false
}
