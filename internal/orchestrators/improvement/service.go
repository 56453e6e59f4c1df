// Package improvement applies ability score improvements and feats to a
// character. Both the asi_or_feat and bonus feat choices delegate here so a
// feat's cascading grants are written in one place.
package improvement

import (
	"context"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

const (
	// ASIPoints is the number of points an ability score improvement grants
	ASIPoints = 2

	featSpellGroup = "feat_spells"
)

// Applier mutates a character in memory. Persistence is the caller's job.
type Applier interface {
	ApplyAbilityIncrease(ctx context.Context, input *ApplyAbilityIncreaseInput) (*ApplyAbilityIncreaseOutput, error)
	ApplyFeat(ctx context.Context, input *ApplyFeatInput) (*ApplyFeatOutput, error)
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*RemoveFeatOutput, error)
}

// Allotment identifies the class level improvement being consumed
type Allotment struct {
	ClassSlug string
	Level     int
	Group     string
}

// ApplyAbilityIncreaseInput spends an allotment on ability scores
type ApplyAbilityIncreaseInput struct {
	Character *entities.Character
	Allotment Allotment
	Increases map[entities.Ability]int
}

// ApplyAbilityIncreaseOutput returns the recorded improvement
type ApplyAbilityIncreaseOutput struct {
	Improvement *entities.Improvement
}

// ApplyFeatInput grants a feat. Allotment is nil for bonus feats that do not
// consume an ability score improvement.
type ApplyFeatInput struct {
	Character *entities.Character
	FeatSlug  string
	Source    entities.OwnerRef
	Group     string
	Level     int
	Allotment *Allotment
}

// ApplyFeatOutput returns the recorded feat
type ApplyFeatOutput struct {
	Feat      *entities.CharacterFeat
	HitPoints int
}

// RemoveFeatInput removes a feat and everything it granted
type RemoveFeatInput struct {
	Character *entities.Character
	FeatSlug  string
}

// RemoveFeatOutput reports what was removed
type RemoveFeatOutput struct {
	Removed   bool
	HitPoints int
}

// Config holds the dependencies for the improvement service
type Config struct {
	Catalog     catalog.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Service implements Applier
type Service struct {
	catalog catalog.Repository
	ids     idgen.Generator
}

var _ Applier = (*Service)(nil)

// New creates a new improvement service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Service{catalog: cfg.Catalog, ids: cfg.IDGenerator}, nil
}

// ApplyAbilityIncrease records an ability score improvement. The increases
// must total exactly two points, one or two per ability, without raising a
// score above 20.
func (s *Service) ApplyAbilityIncrease(
	ctx context.Context,
	input *ApplyAbilityIncreaseInput,
) (*ApplyAbilityIncreaseOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	total := 0
	for ability, points := range input.Increases {
		if !ability.Valid() {
			return nil, errors.InvalidArgumentf("invalid ability score code %q", ability).
				WithMeta("ability", string(ability))
		}
		if points < 1 || points > ASIPoints {
			return nil, errors.InvalidArgumentf("increase for %s must be 1 or 2, got %d", ability, points)
		}
		if score := input.Character.AbilityScore(ability) + points; score > entities.MaxAbilityScore {
			return nil, errors.InvalidArgumentf("%s would be %d, above the maximum of %d",
				ability.Name(), score, entities.MaxAbilityScore)
		}
		total += points
	}
	if total != ASIPoints {
		return nil, errors.InvalidArgumentf("ability score improvement must total %d points, got %d", ASIPoints, total)
	}

	increases := make(map[entities.Ability]int, len(input.Increases))
	for ability, points := range input.Increases {
		increases[ability] = points
	}

	imp := &entities.Improvement{
		ID:        s.ids.Generate(),
		ClassSlug: input.Allotment.ClassSlug,
		Level:     input.Allotment.Level,
		Group:     input.Allotment.Group,
		Kind:      entities.ImprovementKindASI,
		Increases: increases,
	}
	input.Character.Improvements = append(input.Character.Improvements, imp)

	slog.DebugContext(ctx, "applied ability score improvement",
		"character_id", input.Character.ID,
		"class_slug", imp.ClassSlug,
		"level", imp.Level)

	return &ApplyAbilityIncreaseOutput{Improvement: imp}, nil
}

// ApplyFeat grants a feat with its ability increases, proficiencies, spells
// and retroactive hit points.
func (s *Service) ApplyFeat(ctx context.Context, input *ApplyFeatInput) (*ApplyFeatOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.FeatSlug == "" {
		return nil, errors.InvalidArgument("feat slug is required")
	}

	feat, err := s.catalog.GetFeat(ctx, input.FeatSlug)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgumentf("feat %s does not exist", input.FeatSlug).
				WithMeta("feat_slug", input.FeatSlug)
		}
		return nil, errors.Wrapf(err, "failed to load feat %s", input.FeatSlug)
	}

	char := input.Character
	if char.HasFeat(feat.Slug) && !feat.Repeatable {
		return nil, errors.InvalidArgumentf("%s has already been taken", feat.Name).
			WithMeta("feat_slug", feat.Slug)
	}
	for _, prereq := range feat.Prerequisites {
		if char.AbilityScore(prereq.Ability) < prereq.Minimum {
			return nil, errors.InvalidArgumentf("%s requires %s %d", feat.Name, prereq.Ability.Name(), prereq.Minimum).
				WithMeta("feat_slug", feat.Slug)
		}
	}

	owner := entities.Owner(entities.OwnerKindFeat, feat.Slug)

	row := &entities.CharacterFeat{
		ID:            s.ids.Generate(),
		Slug:          feat.Slug,
		Source:        input.Source,
		ChoiceGroup:   input.Group,
		LevelAcquired: input.Level,
	}
	char.Feats = append(char.Feats, row)

	for _, inc := range feat.AbilityIncreases {
		bonus := min(inc.Bonus, entities.MaxAbilityScore-char.AbilityScore(inc.Ability))
		if bonus <= 0 {
			continue
		}
		char.AbilityBonuses = append(char.AbilityBonuses, &entities.CharacterAbilityBonus{
			ID:      s.ids.Generate(),
			Ability: inc.Ability,
			Bonus:   bonus,
			Source:  owner,
		})
	}

	for _, prof := range feat.Proficiencies {
		if char.Proficiency(prof.Kind, prof.Slug) != nil {
			continue
		}
		char.Proficiencies = append(char.Proficiencies, &entities.CharacterProficiency{
			ID:     s.ids.Generate(),
			Kind:   prof.Kind,
			Slug:   prof.Slug,
			Source: owner,
		})
	}

	for _, spellSlug := range feat.Spells {
		spell, err := s.catalog.GetSpell(ctx, spellSlug)
		if err != nil {
			return nil, errors.Wrapf(err, "feat %s references spell %s", feat.Slug, spellSlug)
		}
		char.Spells = append(char.Spells, &entities.CharacterSpell{
			ID:            s.ids.Generate(),
			Slug:          spell.Slug,
			Source:        owner,
			LevelAcquired: input.Level,
			ChoiceGroup:   featSpellGroup,
			Cantrip:       spell.Level == 0,
		})
	}

	hp := feat.HitPointsPerLevel * char.TotalLevel()
	char.MaxHitPoints += hp
	char.CurrentHitPoints += hp

	if input.Allotment != nil {
		char.Improvements = append(char.Improvements, &entities.Improvement{
			ID:        s.ids.Generate(),
			ClassSlug: input.Allotment.ClassSlug,
			Level:     input.Allotment.Level,
			Group:     input.Allotment.Group,
			Kind:      entities.ImprovementKindFeat,
			FeatSlug:  feat.Slug,
		})
	}

	slog.DebugContext(ctx, "applied feat",
		"character_id", char.ID,
		"feat_slug", feat.Slug,
		"source", input.Source.String(),
		"hit_points", hp)

	return &ApplyFeatOutput{Feat: row, HitPoints: hp}, nil
}

// RemoveFeat deletes a feat and every row it owns. Removing a feat the
// character does not have is a no-op.
func (s *Service) RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*RemoveFeatOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	char := input.Character
	if !char.HasFeat(input.FeatSlug) {
		return &RemoveFeatOutput{}, nil
	}

	owner := entities.Owner(entities.OwnerKindFeat, input.FeatSlug)

	char.Feats = removeWhere(char.Feats, func(f *entities.CharacterFeat) bool { return f.Slug == input.FeatSlug })
	char.AbilityBonuses = removeWhere(char.AbilityBonuses, func(b *entities.CharacterAbilityBonus) bool { return b.Source == owner })
	char.Proficiencies = removeWhere(char.Proficiencies, func(p *entities.CharacterProficiency) bool { return p.Source == owner })
	char.Languages = removeWhere(char.Languages, func(l *entities.CharacterLanguage) bool { return l.Source == owner })
	char.Spells = removeWhere(char.Spells, func(sp *entities.CharacterSpell) bool { return sp.Source == owner })
	char.Improvements = removeWhere(char.Improvements, func(i *entities.Improvement) bool {
		return i.Kind == entities.ImprovementKindFeat && i.FeatSlug == input.FeatSlug
	})

	hp := 0
	if feat, err := s.catalog.GetFeat(ctx, input.FeatSlug); err == nil {
		hp = feat.HitPointsPerLevel * char.TotalLevel()
		char.MaxHitPoints = max(0, char.MaxHitPoints-hp)
		char.CurrentHitPoints = min(char.CurrentHitPoints, char.MaxHitPoints)
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to load feat %s", input.FeatSlug)
	}

	slog.DebugContext(ctx, "removed feat",
		"character_id", char.ID,
		"feat_slug", input.FeatSlug)

	return &RemoveFeatOutput{Removed: true, HitPoints: hp}, nil
}

func removeWhere[T any](rows []T, drop func(T) bool) []T {
	out := rows[:0]
	for _, row := range rows {
		if !drop(row) {
			out = append(out, row)
		}
	}
	return out
}
