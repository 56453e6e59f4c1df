// Package v1alpha1 handles the choice grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/services/choices"
)

// Request keys
const (
	FieldCharacterID   = "character_id"
	FieldChoiceID      = "choice_id"
	FieldType          = "type"
	FieldEquipmentMode = "equipment_mode"
	FieldSelection     = "selection"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ChoiceService choices.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.ChoiceService == nil {
		return errors.InvalidArgument("choice service is required")
	}
	return nil
}

// Handler implements the choice gRPC service
type Handler struct {
	choiceService choices.Service
}

var _ ChoiceServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		choiceService: cfg.ChoiceService,
	}, nil
}

// ListChoices lists a character's pending decisions
func (h *Handler) ListChoices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.choiceService.ListChoices(ctx, &choices.ListChoicesInput{
		CharacterID:   characterID,
		Type:          choice.Type(stringField(req, FieldType)),
		EquipmentMode: stringField(req, FieldEquipmentMode),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"choices": output.Choices})
}

// GetChoice returns one decision
func (h *Handler) GetChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID, choiceID, err := choiceRef(req)
	if err != nil {
		return nil, err
	}

	output, err := h.choiceService.GetChoice(ctx, &choices.GetChoiceInput{
		CharacterID: characterID,
		ChoiceID:    choiceID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"choice": output.Choice})
}

// ResolveChoice applies a selection to a decision
func (h *Handler) ResolveChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID, choiceID, err := choiceRef(req)
	if err != nil {
		return nil, err
	}

	selection, err := decodeSelection(choiceID, req.GetFields()[FieldSelection])
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.choiceService.ResolveChoice(ctx, &choices.ResolveChoiceInput{
		CharacterID: characterID,
		ChoiceID:    choiceID,
		Selection:   selection,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"choice":    output.Choice,
		"character": output.Character,
	})
}

// CanUndoChoice reports whether a decision can be undone
func (h *Handler) CanUndoChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID, choiceID, err := choiceRef(req)
	if err != nil {
		return nil, err
	}

	output, err := h.choiceService.CanUndo(ctx, &choices.CanUndoInput{
		CharacterID: characterID,
		ChoiceID:    choiceID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"can_undo": output.CanUndo})
}

// UndoChoice reverses a decision's resolution
func (h *Handler) UndoChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID, choiceID, err := choiceRef(req)
	if err != nil {
		return nil, err
	}

	output, err := h.choiceService.UndoChoice(ctx, &choices.UndoChoiceInput{
		CharacterID: characterID,
		ChoiceID:    choiceID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"choice":    output.Choice,
		"character": output.Character,
	})
}

// GetChoiceSummary counts a character's pending decisions
func (h *Handler) GetChoiceSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.choiceService.GetSummary(ctx, &choices.GetSummaryInput{
		CharacterID: characterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"summary": output.Summary})
}

func choiceRef(req *structpb.Struct) (string, string, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return "", "", errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	choiceID := stringField(req, FieldChoiceID)
	if choiceID == "" {
		return "", "", errors.ToGRPCError(errors.InvalidArgument("choice_id is required"))
	}
	return characterID, choiceID, nil
}
