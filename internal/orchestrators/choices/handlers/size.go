package handlers

import (
	"context"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
)

const sizeGroup = "size"

// SizeHandler offers Small or Medium to races that let the player choose
type SizeHandler struct {
	base
}

// Type implements Handler
func (h *SizeHandler) Type() choice.Type { return choice.TypeSize }

// Enumerate implements Handler
func (h *SizeHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	races, err := h.races(ctx, char)
	if err != nil {
		return nil, err
	}
	for _, race := range races {
		if !race.HasSizeChoice {
			continue
		}
		d, err := newDecision(choice.TypeSize, choice.SourceRace, race.Slug, 1, sizeGroup)
		if err != nil {
			return nil, err
		}
		d.SourceName = race.Name
		d.Options = []choice.Option{
			{Key: "S", Name: "Small"},
			{Key: "M", Name: "Medium"},
		}
		if char.Size != "" {
			d.SetSelected([]string{char.Size})
		}
		return []*choice.Decision{d}, nil
	}
	return nil, nil
}

// Resolve implements Handler
func (h *SizeHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}
	char.Size = keys[0]
	slog.DebugContext(ctx, "size chosen", "character_id", char.ID, "size", char.Size)
	return nil
}

// CanUndo implements Handler
func (h *SizeHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return true }

// Undo implements Handler
func (h *SizeHandler) Undo(_ context.Context, char *entities.Character, _ *choice.Decision) error {
	char.Size = ""
	return nil
}
