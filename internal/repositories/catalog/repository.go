// Package catalog provides read access to reference data: races, classes,
// feats, spells and the other entities choices are made from.
package catalog

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
)

// Repository is the read-only catalog. Getters return errors.NotFound for
// unknown slugs; list methods return an empty slice when nothing matches.
type Repository interface {
	GetRace(ctx context.Context, slug string) (*entities.Race, error)
	GetBackground(ctx context.Context, slug string) (*entities.Background, error)
	GetClass(ctx context.Context, slug string) (*entities.Class, error)
	GetSubclass(ctx context.Context, slug string) (*entities.Subclass, error)
	ListSubclasses(ctx context.Context, classSlug string) ([]*entities.Subclass, error)
	GetFeat(ctx context.Context, slug string) (*entities.Feat, error)
	ListFeats(ctx context.Context) ([]*entities.Feat, error)
	GetSpell(ctx context.Context, slug string) (*entities.Spell, error)
	ListSpells(ctx context.Context, input ListSpellsInput) ([]*entities.Spell, error)
	GetLanguage(ctx context.Context, slug string) (*entities.Language, error)
	ListLanguages(ctx context.Context, input ListLanguagesInput) ([]*entities.Language, error)
	GetSkill(ctx context.Context, slug string) (*entities.Skill, error)
	ListSkills(ctx context.Context) ([]*entities.Skill, error)
	GetProficiencyType(ctx context.Context, slug string) (*entities.ProficiencyType, error)
	ListProficiencyTypes(ctx context.Context, input ListProficiencyTypesInput) ([]*entities.ProficiencyType, error)
	GetOptionalFeature(ctx context.Context, slug string) (*entities.OptionalFeature, error)
	ListOptionalFeatures(ctx context.Context, input ListOptionalFeaturesInput) ([]*entities.OptionalFeature, error)
	GetItem(ctx context.Context, slug string) (*entities.Item, error)
	ListItems(ctx context.Context, input ListItemsInput) ([]*entities.Item, error)
}

// ListSpellsInput filters spells. Nil pointers do not filter.
type ListSpellsInput struct {
	ClassSlug string
	Level     *int
	MaxLevel  *int
}

// ListLanguagesInput filters languages
type ListLanguagesInput struct {
	LearnableOnly bool
}

// ListProficiencyTypesInput filters proficiency types
type ListProficiencyTypesInput struct {
	Kind        entities.ProficiencyKind
	Subcategory string
}

// ListOptionalFeaturesInput filters optional features. A feature matches
// when it lists ClassSlug or SubclassSlug and its level requirement is at or
// below MaxLevel.
type ListOptionalFeaturesInput struct {
	FeatureType  string
	ClassSlug    string
	SubclassSlug string
	MaxLevel     int
}

// ListItemsInput filters items
type ListItemsInput struct {
	Category string
}
