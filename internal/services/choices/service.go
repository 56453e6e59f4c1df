// Package choices defines the interface for choice operations
package choices

//go:generate mockgen -destination=mock/mock_service.go -package=choicesmock github.com/dfox288/ledger-of-heroes-backend-sub012/internal/services/choices Service

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
)

// Service defines the interface for choice operations
type Service interface {
	// Discovery
	ListChoices(ctx context.Context, input *ListChoicesInput) (*ListChoicesOutput, error)
	GetChoice(ctx context.Context, input *GetChoiceInput) (*GetChoiceOutput, error)
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// Mutation
	ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error)
	CanUndo(ctx context.Context, input *CanUndoInput) (*CanUndoOutput, error)
	UndoChoice(ctx context.Context, input *UndoChoiceInput) (*UndoChoiceOutput, error)
}

// ListChoicesInput defines the request for listing pending decisions
type ListChoicesInput struct {
	CharacterID string
	Type        choice.Type // Optional
	// EquipmentMode is the caller's chosen starting equipment mode. When it
	// is "gold" equipment decisions are left out.
	EquipmentMode string // Optional
}

// ListChoicesOutput defines the response for listing pending decisions
type ListChoicesOutput struct {
	Choices []*choice.Decision
}

// GetChoiceInput defines the request for getting one decision
type GetChoiceInput struct {
	CharacterID string
	ChoiceID    string
}

// GetChoiceOutput defines the response for getting one decision
type GetChoiceOutput struct {
	Choice *choice.Decision
}

// GetSummaryInput defines the request for counting pending decisions
type GetSummaryInput struct {
	CharacterID string
}

// GetSummaryOutput defines the response for counting pending decisions
type GetSummaryOutput struct {
	Summary *choice.Summary
}

// ResolveChoiceInput defines the request for resolving a decision
type ResolveChoiceInput struct {
	CharacterID string
	ChoiceID    string
	Selection   *choice.Selection
}

// ResolveChoiceOutput defines the response for resolving a decision
type ResolveChoiceOutput struct {
	// Choice is the decision derived again after the write
	Choice    *choice.Decision
	Character *entities.Character
}

// CanUndoInput defines the request for checking whether a decision can be undone
type CanUndoInput struct {
	CharacterID string
	ChoiceID    string
}

// CanUndoOutput defines the response for checking whether a decision can be undone
type CanUndoOutput struct {
	CanUndo bool
}

// UndoChoiceInput defines the request for undoing a decision
type UndoChoiceInput struct {
	CharacterID string
	ChoiceID    string
}

// UndoChoiceOutput defines the response for undoing a decision
type UndoChoiceOutput struct {
	Choice    *choice.Decision
	Character *entities.Character
}
