package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine/rpgtoolkit"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

const (
	hitPointsGroup = "hp"
	metaHitDie     = "hit_die"
	metaConMod     = "con_modifier"
)

// HitPointsHandler settles the hit points gained at each level after the
// first. Rolls happen server side; the result is permanent.
type HitPointsHandler struct {
	base
	engine engine.Engine
}

// Type implements Handler
func (h *HitPointsHandler) Type() choice.Type { return choice.TypeHitPoints }

// levelClasses assigns each character level to the class that gained it.
// The primary class fills the lowest levels, other classes follow in order.
func levelClasses(char *entities.Character) []string {
	out := []string{""}
	primary := char.PrimaryClass()
	if primary == nil {
		return out
	}
	for i := 0; i < primary.Level; i++ {
		out = append(out, primary.ClassSlug)
	}
	for _, cc := range char.Classes {
		if cc == primary {
			continue
		}
		for i := 0; i < cc.Level; i++ {
			out = append(out, cc.ClassSlug)
		}
	}
	return out
}

// Enumerate implements Handler
func (h *HitPointsHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	conMod := h.engine.CalculateAbilityModifier(char.AbilityScore(entities.AbilityConstitution))
	classes := levelClasses(char)

	var out []*choice.Decision
	for level := 2; level < len(classes); level++ {
		cls, err := h.class(ctx, classes[level])
		if err != nil {
			return nil, err
		}
		d, err := newDecision(choice.TypeHitPoints, choice.SourceLevelUp, char.ID, level, hitPointsGroup)
		if err != nil {
			return nil, err
		}
		d.SourceName = fmt.Sprintf("Level %d", level)
		d.Metadata[metaHitDie] = cls.HitDie
		d.Metadata[metaConMod] = conMod
		d.Metadata[metaClassSlug] = cls.Slug

		average := cls.HitDie/2 + 1
		d.Options = []choice.Option{
			{
				Key:         entities.HitPointMethodRoll,
				Name:        "Roll",
				Description: fmt.Sprintf("Roll 1d%d %s", cls.HitDie, withSign(conMod)),
				Metadata: map[string]any{
					"min": max(1, 1+conMod),
					"max": max(1, cls.HitDie+conMod),
				},
			},
			{
				Key:         entities.HitPointMethodAverage,
				Name:        "Average",
				Description: fmt.Sprintf("Take %d %s", average, withSign(conMod)),
				Metadata: map[string]any{
					"value": max(1, average+conMod),
				},
			},
		}

		if roll := char.HitPointRollAt(level); roll != nil {
			d.SetSelected([]string{roll.Method})
		}
		out = append(out, d)
	}
	return out, nil
}

// Resolve implements Handler
func (h *HitPointsHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	if char.HitPointRollAt(d.LevelGranted) != nil {
		return notUndoable(d, fmt.Sprintf("hit points for level %d are already settled", d.LevelGranted))
	}
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}

	hitDie, conMod := metaInt(d, metaHitDie), metaInt(d, metaConMod)
	record := &entities.HitPointRoll{
		Level:     d.LevelGranted,
		ClassSlug: metaString(d, metaClassSlug),
		Method:    keys[0],
	}

	switch keys[0] {
	case entities.HitPointMethodRoll:
		out, err := h.engine.RollHitPoints(ctx, &engine.RollHitPointsInput{
			Entity:               rpgtoolkit.WrapCharacter(char),
			HitDie:               hitDie,
			ConstitutionModifier: conMod,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to roll hit points for level %d", d.LevelGranted)
		}
		record.Roll, record.Gained = out.Roll, out.Gained
	default:
		out, err := h.engine.AverageHitPoints(ctx, &engine.AverageHitPointsInput{
			HitDie:               hitDie,
			ConstitutionModifier: conMod,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to average hit points for level %d", d.LevelGranted)
		}
		record.Roll, record.Gained = out.Value, out.Gained
	}

	bonus, err := h.perLevelBonus(ctx, char)
	if err != nil {
		return err
	}
	record.Gained += bonus

	char.HitPointRolls = append(char.HitPointRolls, record)
	char.MaxHitPoints += record.Gained
	char.CurrentHitPoints += record.Gained

	slog.DebugContext(ctx, "hit points settled",
		"character_id", char.ID,
		"level", record.Level,
		"method", record.Method,
		"roll", record.Roll,
		"gained", record.Gained)
	return nil
}

// perLevelBonus sums hit points granted per level by the race and feats
func (h *HitPointsHandler) perLevelBonus(ctx context.Context, char *entities.Character) (int, error) {
	bonus := 0
	races, err := h.races(ctx, char)
	if err != nil {
		return 0, err
	}
	for _, race := range races {
		bonus += race.HitPointsPerLevel
	}
	for _, cf := range char.Feats {
		feat, err := h.catalog.GetFeat(ctx, cf.Slug)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to load feat %s", cf.Slug)
		}
		bonus += feat.HitPointsPerLevel
	}
	return bonus, nil
}

// CanUndo implements Handler
func (h *HitPointsHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return false }

// Undo implements Handler
func (h *HitPointsHandler) Undo(_ context.Context, _ *entities.Character, d *choice.Decision) error {
	return notUndoable(d, "hit point rolls are permanent")
}

// withSign renders a modifier as "+ 2" or "- 1"
func withSign(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}
