// Package rpgtoolkit connects character sheets to rpg-toolkit: entities for the event
// bus and d20 skill checks through the toolkit's dice roller.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

const d20 = 20

// Verify the wrappers implement core.Entity
var (
	_ core.Entity = (*CharacterEntity)(nil)
	_ core.Entity = (*RosterEntity)(nil)
)

// CheckResult is the outcome of a single skill check
type CheckResult struct {
	Skill    string
	Roll     int
	Modifier int
	Total    int
}

// CheckerConfig contains configuration for creating a new Checker
type CheckerConfig struct {
	Engine     engine.Engine
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *CheckerConfig) Validate() error {
	if c.Engine == nil {
		return errors.InvalidArgument("engine is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// Checker rolls skill checks for characters
type Checker struct {
	engine     engine.Engine
	diceRoller dice.Roller
}

// NewChecker creates a new skill checker
func NewChecker(cfg *CheckerConfig) (*Checker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Checker{
		engine:     cfg.Engine,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// CheckSkill rolls a d20 and adds the character's skill total
func (c *Checker) CheckSkill(character sheet.Character, skill string) (*CheckResult, error) {
	def, ok := c.engine.Rules().Skill(skill)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown skill %q", skill)
	}

	roll, err := c.diceRoller.Roll(d20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll skill check")
	}

	modifier := c.engine.SkillTotal(character, def)
	return &CheckResult{
		Skill:    def.Name,
		Roll:     roll,
		Modifier: modifier,
		Total:    roll + modifier,
	}, nil
}
