package engine

import (
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

type engine struct {
	rules *sheet.Ruleset
}

// Config configures the rule engine
type Config struct {
	Rules *sheet.Ruleset
}

// Validate checks the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Rules == nil {
		vb.RequiredField("Rules")
	}
	return vb.Build()
}

// New creates a rule engine over the given tables
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{rules: cfg.Rules}, nil
}

// Modifier returns floor((score - 10) / 2)
func Modifier(score int) int {
	delta := score - 10
	if delta < 0 {
		// Go division truncates toward zero
		return (delta - 1) / 2
	}
	return delta / 2
}

func (e *engine) Rules() *sheet.Ruleset {
	return e.rules
}

func (e *engine) NewCharacter() sheet.Character {
	c := sheet.Character{
		Attributes:  make(map[string]int, len(e.rules.Attributes)),
		Skills:      make(map[string]int, len(e.rules.Skills)),
		SkillPoints: e.rules.SkillPoints,
	}
	for _, attr := range e.rules.Attributes {
		c.Attributes[attr] = e.rules.Baseline
	}
	for _, skill := range e.rules.Skills {
		c.Skills[skill.Name] = 0
	}
	return c
}

func (e *engine) IncrementAttribute(character sheet.Character, attribute string) (sheet.Character, error) {
	if !e.rules.HasAttribute(attribute) {
		return character, errors.InvalidArgumentf("unknown attribute %q", attribute)
	}

	if e.AttributeTotal(character) >= e.rules.AttributePool {
		return character, errors.PoolExhausted(e.rules.AttributePool).WithMeta("attribute", attribute)
	}

	updated := character.Clone()
	updated.Attributes[attribute]++
	return updated, nil
}

// DecrementAttribute floors at zero and has no rejection path
func (e *engine) DecrementAttribute(character sheet.Character, attribute string) (sheet.Character, error) {
	if !e.rules.HasAttribute(attribute) {
		return character, errors.InvalidArgumentf("unknown attribute %q", attribute)
	}

	updated := character.Clone()
	if updated.Attributes[attribute] > 0 {
		updated.Attributes[attribute]--
	} else {
		updated.Attributes[attribute] = 0
	}
	return updated, nil
}

func (e *engine) IncrementSkill(character sheet.Character, skill string) (sheet.Character, error) {
	if _, ok := e.rules.Skill(skill); !ok {
		return character, errors.InvalidArgumentf("unknown skill %q", skill)
	}

	if character.SkillPoints <= 0 {
		return character, errors.SkillPointsExhausted().WithMeta("skill", skill)
	}

	updated := character.Clone()
	updated.Skills[skill]++
	updated.SkillPoints--
	return updated, nil
}

func (e *engine) DecrementSkill(character sheet.Character, skill string) (sheet.Character, error) {
	if _, ok := e.rules.Skill(skill); !ok {
		return character, errors.InvalidArgumentf("unknown skill %q", skill)
	}

	if character.Skills[skill] <= 0 {
		return character, errors.SkillPointsUnderflow().WithMeta("skill", skill)
	}

	updated := character.Clone()
	updated.Skills[skill]--
	updated.SkillPoints++
	return updated, nil
}

// SelectClass gates on eligibility once. A selected class is not re-checked when
// attributes later drop below its thresholds.
func (e *engine) SelectClass(character sheet.Character, class string) (sheet.Character, error) {
	def, ok := e.rules.Class(class)
	if !ok {
		return character, errors.InvalidArgumentf("unknown class %q", class)
	}

	if !meets(character, def) {
		return character, errors.ClassRequirementsNotMet(class).WithMeta("class", class)
	}

	updated := character.Clone()
	updated.SelectedClass = class
	return updated, nil
}

func (e *engine) EligibleClasses(character sheet.Character) []ClassEligibility {
	out := make([]ClassEligibility, len(e.rules.Classes))
	for i, def := range e.rules.Classes {
		out[i] = ClassEligibility{Name: def.Name, Eligible: meets(character, def)}
	}
	return out
}

// Requirements lists a class's thresholds in attribute order
func (e *engine) Requirements(class string) ([]Requirement, error) {
	def, ok := e.rules.Class(class)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown class %q", class)
	}

	out := make([]Requirement, 0, len(def.Requirements))
	for _, attr := range e.rules.Attributes {
		if minimum, ok := def.Requirements[attr]; ok {
			out = append(out, Requirement{Attribute: attr, Minimum: minimum})
		}
	}
	return out, nil
}

// AttributeModifier returns 0 for an attribute the character does not carry
func (e *engine) AttributeModifier(character sheet.Character, attribute string) int {
	score, ok := character.Attributes[attribute]
	if !ok {
		return 0
	}
	return Modifier(score)
}

func (e *engine) SkillTotal(character sheet.Character, skill sheet.SkillDefinition) int {
	return character.Skills[skill.Name] + e.AttributeModifier(character, skill.Attribute)
}

func (e *engine) AttributeTotal(character sheet.Character) int {
	total := 0
	for _, attr := range e.rules.Attributes {
		total += character.Attributes[attr]
	}
	return total
}

func (e *engine) RemainingPool(character sheet.Character) int {
	remaining := e.rules.AttributePool - e.AttributeTotal(character)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// meets treats a missing attribute as a score of zero
func meets(character sheet.Character, def sheet.ClassDefinition) bool {
	for attr, minimum := range def.Requirements {
		if character.Attributes[attr] < minimum {
			return false
		}
	}
	return true
}
