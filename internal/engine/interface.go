// Package engine implements the character rules: derived values, mutation checks and
// class eligibility
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/character-sheet/internal/engine Engine

import "github.com/KirkDiggler/character-sheet/internal/entities/sheet"

// Engine applies the rule tables to characters.
// Every mutation takes a character value and returns a new one; the input is never
// modified. A rejected mutation returns the input unchanged with a coded error.
type Engine interface {
	// Rules returns the rule tables the engine was built with
	Rules() *sheet.Ruleset

	// Creation
	NewCharacter() sheet.Character

	// Attribute operations
	IncrementAttribute(character sheet.Character, attribute string) (sheet.Character, error)
	DecrementAttribute(character sheet.Character, attribute string) (sheet.Character, error)

	// Skill operations
	IncrementSkill(character sheet.Character, skill string) (sheet.Character, error)
	DecrementSkill(character sheet.Character, skill string) (sheet.Character, error)

	// Class operations
	SelectClass(character sheet.Character, class string) (sheet.Character, error)
	EligibleClasses(character sheet.Character) []ClassEligibility
	Requirements(class string) ([]Requirement, error)

	// Derived values
	AttributeModifier(character sheet.Character, attribute string) int
	SkillTotal(character sheet.Character, skill sheet.SkillDefinition) int
	AttributeTotal(character sheet.Character) int
	RemainingPool(character sheet.Character) int
}
