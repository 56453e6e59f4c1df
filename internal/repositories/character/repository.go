// Package character persists character aggregates
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/character Repository

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
)

// Repository stores character aggregates keyed by ID, with a secondary index
// by player. Validation failures are InvalidArgument, missing characters
// are NotFound and storage failures are Internal.
type Repository interface {
	// Create stores a new character. AlreadyExists when the ID is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored character and moves it between player
	// indexes if the owner changed
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID drops index entries whose character no longer exists
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Transact loads the character, applies Fn and saves the result
	// atomically. The write is discarded and retried when the character
	// changed underneath; errors returned by Fn abort without writing.
	// Aborted when retries are exhausted.
	Transact(ctx context.Context, input TransactInput) (*TransactOutput, error)
}

// MutateFunc changes a loaded character in place
type MutateFunc func(ctx context.Context, character *entities.Character) error

// CreateInput carries a character with its ID already assigned
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput holds the character with timestamps filled in
type CreateOutput struct {
	Character *entities.Character
}

// GetInput names the character to load
type GetInput struct {
	ID string
}

// GetOutput holds the stored character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput carries the full replacement aggregate
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput holds the character as written
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput names the character to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// ListByPlayerIDInput names the owning player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput holds the player's characters in no particular order
type ListByPlayerIDOutput struct {
	Characters []*entities.Character
}

// TransactInput defines the input for a read-modify-write of one character
type TransactInput struct {
	ID string
	Fn MutateFunc
}

// TransactOutput holds the character as it was saved
type TransactOutput struct {
	Character *entities.Character
	Attempts  int
}
