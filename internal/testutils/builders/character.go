// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
	rows      int
}

// NewCharacterBuilder creates a new builder with minimal defaults: every
// ability score at 10 and no classes.
func NewCharacterBuilder() *CharacterBuilder {
	scores := make(map[entities.Ability]int)
	for _, ability := range entities.Abilities() {
		scores[ability] = 10
	}
	return &CharacterBuilder{
		character: &entities.Character{
			ID:            "char-test-123",
			Name:          "Test Character",
			PlayerID:      "player-test-123",
			AbilityScores: scores,
			CreatedAt:     1700000000,
			UpdatedAt:     1700000000,
		},
	}
}

func (b *CharacterBuilder) nextID(prefix string) string {
	b.rows++
	return fmt.Sprintf("%s-seed-%d", prefix, b.rows)
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithRace sets the race slug
func (b *CharacterBuilder) WithRace(slug string) *CharacterBuilder {
	b.character.RaceSlug = slug
	return b
}

// WithBackground sets the background slug
func (b *CharacterBuilder) WithBackground(slug string) *CharacterBuilder {
	b.character.BackgroundSlug = slug
	return b
}

// WithSize sets the size code
func (b *CharacterBuilder) WithSize(size string) *CharacterBuilder {
	b.character.Size = size
	return b
}

// WithAbilityScore sets a base ability score
func (b *CharacterBuilder) WithAbilityScore(ability entities.Ability, score int) *CharacterBuilder {
	b.character.AbilityScores[ability] = score
	return b
}

// WithClass adds levels in a class. The first class added is primary.
func (b *CharacterBuilder) WithClass(slug string, level int) *CharacterBuilder {
	b.character.Classes = append(b.character.Classes, &entities.CharacterClass{
		ClassSlug: slug,
		Level:     level,
		IsPrimary: len(b.character.Classes) == 0,
	})
	return b
}

// WithSubclass sets the subclass of an existing class
func (b *CharacterBuilder) WithSubclass(classSlug, subclassSlug string) *CharacterBuilder {
	if cls := b.character.Class(classSlug); cls != nil {
		cls.SubclassSlug = subclassSlug
	}
	return b
}

// WithSubclassChoice records a subclass variant pick
func (b *CharacterBuilder) WithSubclassChoice(classSlug, group, value string) *CharacterBuilder {
	if cls := b.character.Class(classSlug); cls != nil {
		if cls.SubclassChoices == nil {
			cls.SubclassChoices = make(map[string]string)
		}
		cls.SubclassChoices[group] = value
	}
	return b
}

// WithHitPoints sets max and current hit points
func (b *CharacterBuilder) WithHitPoints(hp int) *CharacterBuilder {
	b.character.MaxHitPoints = hp
	b.character.CurrentHitPoints = hp
	return b
}

// WithHitPointRoll marks a character level as settled
func (b *CharacterBuilder) WithHitPointRoll(level int, classSlug string, gained int) *CharacterBuilder {
	b.character.HitPointRolls = append(b.character.HitPointRolls, &entities.HitPointRoll{
		Level:     level,
		ClassSlug: classSlug,
		Method:    entities.HitPointMethodAverage,
		Roll:      gained,
		Gained:    gained,
	})
	return b
}

// WithProficiency adds a fixed proficiency owned by source
func (b *CharacterBuilder) WithProficiency(kind entities.ProficiencyKind, slug string, source entities.OwnerRef) *CharacterBuilder {
	b.character.Proficiencies = append(b.character.Proficiencies, &entities.CharacterProficiency{
		ID:     b.nextID("prof"),
		Kind:   kind,
		Slug:   slug,
		Source: source,
	})
	return b
}

// WithExpertise adds a proficiency that already has expertise
func (b *CharacterBuilder) WithExpertise(kind entities.ProficiencyKind, slug, group string, source entities.OwnerRef) *CharacterBuilder {
	b.character.Proficiencies = append(b.character.Proficiencies, &entities.CharacterProficiency{
		ID:             b.nextID("prof"),
		Kind:           kind,
		Slug:           slug,
		Expertise:      true,
		ExpertiseGroup: group,
		Source:         source,
	})
	return b
}

// WithLanguage adds a fixed language owned by source
func (b *CharacterBuilder) WithLanguage(slug string, source entities.OwnerRef) *CharacterBuilder {
	b.character.Languages = append(b.character.Languages, &entities.CharacterLanguage{
		ID:     b.nextID("lang"),
		Slug:   slug,
		Source: source,
	})
	return b
}

// WithSpell adds a known spell for a class
func (b *CharacterBuilder) WithSpell(slug, classSlug, group string, level int, cantrip bool) *CharacterBuilder {
	b.character.Spells = append(b.character.Spells, &entities.CharacterSpell{
		ID:            b.nextID("spell"),
		Slug:          slug,
		ClassSlug:     classSlug,
		Source:        entities.Owner(entities.OwnerKindClass, classSlug),
		LevelAcquired: level,
		ChoiceGroup:   group,
		Cantrip:       cantrip,
	})
	return b
}

// WithFeat adds a feat owned by source
func (b *CharacterBuilder) WithFeat(slug string, source entities.OwnerRef, group string, level int) *CharacterBuilder {
	b.character.Feats = append(b.character.Feats, &entities.CharacterFeat{
		ID:            b.nextID("feat"),
		Slug:          slug,
		Source:        source,
		ChoiceGroup:   group,
		LevelAcquired: level,
	})
	return b
}

// WithFeature adds an optional feature selection
func (b *CharacterBuilder) WithFeature(slug, featureType, classSlug, group string, level int) *CharacterBuilder {
	b.character.Features = append(b.character.Features, &entities.FeatureSelection{
		ID:            b.nextID("feature"),
		Slug:          slug,
		FeatureType:   featureType,
		ClassSlug:     classSlug,
		LevelAcquired: level,
		ChoiceGroup:   group,
	})
	return b
}

// WithImprovement records a consumed ability score improvement
func (b *CharacterBuilder) WithImprovement(classSlug string, level int, group string, increases map[entities.Ability]int) *CharacterBuilder {
	b.character.Improvements = append(b.character.Improvements, &entities.Improvement{
		ID:        b.nextID("imp"),
		ClassSlug: classSlug,
		Level:     level,
		Group:     group,
		Kind:      entities.ImprovementKindASI,
		Increases: increases,
	})
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
