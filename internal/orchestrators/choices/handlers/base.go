package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

type base struct {
	catalog catalog.Repository
	ids     idgen.Generator
}

func newDecision(t choice.Type, source choice.Source, sourceKey string, level int, group string) (*choice.Decision, error) {
	id, err := choice.EncodeID(t, source, sourceKey, level, group)
	if err != nil {
		return nil, err
	}
	return &choice.Decision{
		ID:           id,
		Type:         t,
		Source:       source,
		LevelGranted: level,
		Required:     true,
		Quantity:     1,
		Remaining:    1,
		Selected:     []string{},
		Metadata:     map[string]any{},
	}, nil
}

// races returns the character's race followed by its parent race
func (b *base) races(ctx context.Context, char *entities.Character) ([]*entities.Race, error) {
	if char.RaceSlug == "" {
		return nil, nil
	}
	race, err := b.catalog.GetRace(ctx, char.RaceSlug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load race %s", char.RaceSlug)
	}
	out := []*entities.Race{race}
	if race.ParentSlug != "" {
		parent, err := b.catalog.GetRace(ctx, race.ParentSlug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load parent race %s", race.ParentSlug)
		}
		out = append(out, parent)
	}
	return out, nil
}

func (b *base) background(ctx context.Context, char *entities.Character) (*entities.Background, error) {
	if char.BackgroundSlug == "" {
		return nil, nil
	}
	bg, err := b.catalog.GetBackground(ctx, char.BackgroundSlug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load background %s", char.BackgroundSlug)
	}
	return bg, nil
}

func (b *base) class(ctx context.Context, slug string) (*entities.Class, error) {
	cls, err := b.catalog.GetClass(ctx, slug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load class %s", slug)
	}
	return cls, nil
}

// requireSelected returns the selected keys or fails when there are none
func requireSelected(d *choice.Decision, sel *choice.Selection) ([]string, error) {
	if sel == nil || len(sel.Selected) == 0 {
		return nil, errors.InvalidSelection(d.ID, "[]", "selection cannot be empty")
	}
	for _, key := range sel.Selected {
		if strings.TrimSpace(key) == "" {
			return nil, errors.InvalidSelection(d.ID, sel.Selected, "selection contains an empty key")
		}
	}
	return sel.Selected, nil
}

func requireDistinct(d *choice.Decision, keys []string) error {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			return errors.InvalidSelection(d.ID, keys, fmt.Sprintf("%s selected more than once", key))
		}
		seen[key] = true
	}
	return nil
}

func requireExact(d *choice.Decision, keys []string) error {
	if len(keys) != d.Quantity {
		return errors.InvalidSelection(d.ID, keys,
			fmt.Sprintf("exactly %d selection(s) required, got %d", d.Quantity, len(keys)))
	}
	return nil
}

func requireAtMost(d *choice.Decision, keys []string) error {
	if len(keys) > d.Quantity {
		return errors.InvalidSelection(d.ID, keys,
			fmt.Sprintf("at most %d selection(s) allowed, got %d", d.Quantity, len(keys)))
	}
	return nil
}

func requireOptions(d *choice.Decision, keys []string) error {
	for _, key := range keys {
		if !d.HasOption(key) {
			return errors.InvalidSelection(d.ID, key, fmt.Sprintf("%s is not an available option", key))
		}
	}
	return nil
}

// pick runs the checks most list decisions share: non-empty, distinct, no
// more than Quantity and every key an inline option.
func pick(d *choice.Decision, sel *choice.Selection, exact bool) ([]string, error) {
	keys, err := requireSelected(d, sel)
	if err != nil {
		return nil, err
	}
	if err := requireDistinct(d, keys); err != nil {
		return nil, err
	}
	if exact {
		err = requireExact(d, keys)
	} else {
		err = requireAtMost(d, keys)
	}
	if err != nil {
		return nil, err
	}
	if err := requireOptions(d, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func invalidEmptyFeat(d *choice.Decision) error {
	return errors.InvalidSelection(d.ID, "", "feat_slug is required")
}

func notUndoable(d *choice.Decision, reason string) error {
	return errors.ChoiceNotUndoable(d.ID, reason)
}

// permanent fails a second resolution of a decision that cannot be changed
func permanent(d *choice.Decision) error {
	if len(d.Selected) > 0 && !d.Pending() {
		return notUndoable(d, fmt.Sprintf("%s decisions are permanent once made", d.Type))
	}
	return nil
}

// asSelection converts an application error from a collaborator into an
// InvalidSelection for d. Other errors pass through.
func asSelection(d *choice.Decision, value any, err error) error {
	if errors.IsInvalidArgument(err) {
		return errors.InvalidSelection(d.ID, value, errors.GetMessage(err))
	}
	return err
}

func removeWhere[T any](rows []T, drop func(T) bool) []T {
	out := rows[:0]
	for _, row := range rows {
		if !drop(row) {
			out = append(out, row)
		}
	}
	clear(rows[len(out):])
	return out
}

// baseSlug strips the source prefix: "phb:rogue" becomes "rogue"
func baseSlug(slug string) string {
	if i := strings.LastIndex(slug, ":"); i >= 0 {
		return slug[i+1:]
	}
	return slug
}

// ownerFor maps a decision source to the kind of entity that owns its rows
func ownerFor(source choice.Source, key string) entities.OwnerRef {
	switch source {
	case choice.SourceRace:
		return entities.Owner(entities.OwnerKindRace, key)
	case choice.SourceBackground:
		return entities.Owner(entities.OwnerKindBackground, key)
	case choice.SourceSubclass, choice.SourceSubclassFeature:
		return entities.Owner(entities.OwnerKindSubclass, key)
	case choice.SourceFeat:
		return entities.Owner(entities.OwnerKindFeat, key)
	default:
		return entities.Owner(entities.OwnerKindClass, key)
	}
}

// sourceKey recovers the source key encoded in a decision id
func sourceKey(d *choice.Decision) string {
	id, err := choice.DecodeID(d.ID)
	if err != nil {
		return ""
	}
	return id.SourceKey
}

// group recovers the choice group encoded in a decision id
func group(d *choice.Decision) string {
	id, err := choice.DecodeID(d.ID)
	if err != nil {
		return ""
	}
	return id.Group
}

func metaInt(d *choice.Decision, key string) int {
	return intValue(d.Metadata[key])
}

func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func metaString(d *choice.Decision, key string) string {
	s, _ := d.Metadata[key].(string)
	return s
}

func abilityOptions() []choice.Option {
	out := make([]choice.Option, 0, len(entities.Abilities()))
	for _, ability := range entities.Abilities() {
		out = append(out, choice.Option{Key: string(ability), Name: ability.Name()})
	}
	return out
}
