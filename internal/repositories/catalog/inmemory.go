package catalog

import (
	"context"
	"slices"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// Config configures the in-memory catalog
type Config struct {
	Data *entities.CatalogData
}

// Validate ensures the config carries data
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Data == nil {
		vb.RequiredField("Data")
	}
	return vb.Build()
}

type inMemory struct {
	data *entities.CatalogData

	races            map[string]*entities.Race
	backgrounds      map[string]*entities.Background
	classes          map[string]*entities.Class
	subclasses       map[string]*entities.Subclass
	feats            map[string]*entities.Feat
	spells           map[string]*entities.Spell
	languages        map[string]*entities.Language
	skills           map[string]*entities.Skill
	proficiencyTypes map[string]*entities.ProficiencyType
	optionalFeatures map[string]*entities.OptionalFeature
	items            map[string]*entities.Item
}

// NewInMemory indexes the catalog data by slug. Lists keep the order of the
// source data. Duplicate slugs are rejected.
func NewInMemory(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &inMemory{data: cfg.Data}
	var err error
	if r.races, err = index("race", cfg.Data.Races, func(v *entities.Race) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.backgrounds, err = index("background", cfg.Data.Backgrounds, func(v *entities.Background) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.classes, err = index("class", cfg.Data.Classes, func(v *entities.Class) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.subclasses, err = index("subclass", cfg.Data.Subclasses, func(v *entities.Subclass) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.feats, err = index("feat", cfg.Data.Feats, func(v *entities.Feat) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.spells, err = index("spell", cfg.Data.Spells, func(v *entities.Spell) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.languages, err = index("language", cfg.Data.Languages, func(v *entities.Language) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.skills, err = index("skill", cfg.Data.Skills, func(v *entities.Skill) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.proficiencyTypes, err = index("proficiency type", cfg.Data.ProficiencyTypes, func(v *entities.ProficiencyType) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.optionalFeatures, err = index("optional feature", cfg.Data.OptionalFeatures, func(v *entities.OptionalFeature) string { return v.Slug }); err != nil {
		return nil, err
	}
	if r.items, err = index("item", cfg.Data.Items, func(v *entities.Item) string { return v.Slug }); err != nil {
		return nil, err
	}

	return r, nil
}

func index[T any](kind string, values []*T, key func(*T) string) (map[string]*T, error) {
	out := make(map[string]*T, len(values))
	for _, v := range values {
		slug := key(v)
		if slug == "" {
			return nil, errors.InvalidArgumentf("%s with empty slug", kind)
		}
		if _, exists := out[slug]; exists {
			return nil, errors.AlreadyExistsf("duplicate %s slug %s", kind, slug)
		}
		out[slug] = v
	}
	return out, nil
}

func lookup[T any](kind string, values map[string]*T, slug string) (*T, error) {
	if slug == "" {
		return nil, errors.InvalidArgumentf("%s slug is required", kind)
	}
	v, ok := values[slug]
	if !ok {
		return nil, errors.NotFoundf("%s %s not found", kind, slug).WithMeta("slug", slug)
	}
	return v, nil
}

func filter[T any](values []*T, keep func(*T) bool) []*T {
	out := make([]*T, 0, len(values))
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (r *inMemory) GetRace(_ context.Context, slug string) (*entities.Race, error) {
	return lookup("race", r.races, slug)
}

func (r *inMemory) GetBackground(_ context.Context, slug string) (*entities.Background, error) {
	return lookup("background", r.backgrounds, slug)
}

func (r *inMemory) GetClass(_ context.Context, slug string) (*entities.Class, error) {
	return lookup("class", r.classes, slug)
}

func (r *inMemory) GetSubclass(_ context.Context, slug string) (*entities.Subclass, error) {
	return lookup("subclass", r.subclasses, slug)
}

func (r *inMemory) ListSubclasses(_ context.Context, classSlug string) ([]*entities.Subclass, error) {
	return filter(r.data.Subclasses, func(s *entities.Subclass) bool {
		return s.ClassSlug == classSlug
	}), nil
}

func (r *inMemory) GetFeat(_ context.Context, slug string) (*entities.Feat, error) {
	return lookup("feat", r.feats, slug)
}

func (r *inMemory) ListFeats(_ context.Context) ([]*entities.Feat, error) {
	return slices.Clone(r.data.Feats), nil
}

func (r *inMemory) GetSpell(_ context.Context, slug string) (*entities.Spell, error) {
	return lookup("spell", r.spells, slug)
}

func (r *inMemory) ListSpells(_ context.Context, input ListSpellsInput) ([]*entities.Spell, error) {
	return filter(r.data.Spells, func(s *entities.Spell) bool {
		if input.ClassSlug != "" && !slices.Contains(s.Classes, input.ClassSlug) {
			return false
		}
		if input.Level != nil && s.Level != *input.Level {
			return false
		}
		if input.MaxLevel != nil && s.Level > *input.MaxLevel {
			return false
		}
		return true
	}), nil
}

func (r *inMemory) GetLanguage(_ context.Context, slug string) (*entities.Language, error) {
	return lookup("language", r.languages, slug)
}

func (r *inMemory) ListLanguages(_ context.Context, input ListLanguagesInput) ([]*entities.Language, error) {
	return filter(r.data.Languages, func(l *entities.Language) bool {
		return !input.LearnableOnly || l.Learnable
	}), nil
}

func (r *inMemory) GetSkill(_ context.Context, slug string) (*entities.Skill, error) {
	return lookup("skill", r.skills, slug)
}

func (r *inMemory) ListSkills(_ context.Context) ([]*entities.Skill, error) {
	return slices.Clone(r.data.Skills), nil
}

func (r *inMemory) GetProficiencyType(_ context.Context, slug string) (*entities.ProficiencyType, error) {
	return lookup("proficiency type", r.proficiencyTypes, slug)
}

func (r *inMemory) ListProficiencyTypes(_ context.Context, input ListProficiencyTypesInput) ([]*entities.ProficiencyType, error) {
	return filter(r.data.ProficiencyTypes, func(p *entities.ProficiencyType) bool {
		if input.Kind != "" && p.Kind != input.Kind {
			return false
		}
		return input.Subcategory == "" || p.Subcategory == input.Subcategory
	}), nil
}

func (r *inMemory) GetOptionalFeature(_ context.Context, slug string) (*entities.OptionalFeature, error) {
	return lookup("optional feature", r.optionalFeatures, slug)
}

func (r *inMemory) ListOptionalFeatures(_ context.Context, input ListOptionalFeaturesInput) ([]*entities.OptionalFeature, error) {
	return filter(r.data.OptionalFeatures, func(f *entities.OptionalFeature) bool {
		if input.FeatureType != "" && f.FeatureType != input.FeatureType {
			return false
		}
		if input.MaxLevel > 0 && f.LevelRequirement > input.MaxLevel {
			return false
		}
		if input.ClassSlug == "" && input.SubclassSlug == "" {
			return true
		}
		return (input.ClassSlug != "" && slices.Contains(f.Classes, input.ClassSlug)) ||
			(input.SubclassSlug != "" && slices.Contains(f.Subclasses, input.SubclassSlug))
	}), nil
}

func (r *inMemory) GetItem(_ context.Context, slug string) (*entities.Item, error) {
	return lookup("item", r.items, slug)
}

func (r *inMemory) ListItems(_ context.Context, input ListItemsInput) ([]*entities.Item, error) {
	return filter(r.data.Items, func(i *entities.Item) bool {
		return input.Category == "" || i.Category == input.Category
	}), nil
}
