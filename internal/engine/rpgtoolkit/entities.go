package rpgtoolkit

import "github.com/KirkDiggler/character-sheet/internal/entities/sheet"

// Entity types published on the event bus
const (
	EntityTypeCharacter = "character"
	EntityTypeRoster    = "roster"
)

// CharacterEntity wraps sheet.Character to implement core.Entity interface
type CharacterEntity struct {
	*sheet.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// RosterEntity wraps sheet.Roster to implement core.Entity interface
type RosterEntity struct {
	*sheet.Roster
}

// GetID returns the roster's ID
func (r *RosterEntity) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *RosterEntity) GetType() string {
	return EntityTypeRoster
}

// WrapCharacter converts a sheet.Character to a CharacterEntity
func WrapCharacter(character *sheet.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// WrapRoster converts a sheet.Roster to a RosterEntity
func WrapRoster(roster *sheet.Roster) *RosterEntity {
	return &RosterEntity{Roster: roster}
}
