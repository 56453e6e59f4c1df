package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
)

const entityTypeCharacter = "character"

// CharacterEntity lets a character take part in toolkit calls that log or
// key on the acting entity
type CharacterEntity struct {
	*entities.Character
}

func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType is always "character"
func (c *CharacterEntity) GetType() string {
	return entityTypeCharacter
}

// WrapCharacter returns nil for a nil character
func WrapCharacter(character *entities.Character) core.Entity {
	if character == nil {
		return nil
	}
	return &CharacterEntity{Character: character}
}
