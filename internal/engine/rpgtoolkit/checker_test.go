package rpgtoolkit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/rules"
)

// stubDiceRoller returns a fixed value and records the die size
type stubDiceRoller struct {
	value    int
	err      error
	lastSize int
}

func (s *stubDiceRoller) Roll(size int) (int, error) {
	s.lastSize = size
	return s.value, s.err
}

func (s *stubDiceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.value
	}
	s.lastSize = size
	return out, s.err
}

type CheckerTestSuite struct {
	suite.Suite
	engine  engine.Engine
	roller  *stubDiceRoller
	checker *rpgtoolkit.Checker
}

func (s *CheckerTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	s.Require().NoError(err)
	s.engine = e
	s.roller = &stubDiceRoller{value: 12}

	s.checker, err = rpgtoolkit.NewChecker(&rpgtoolkit.CheckerConfig{
		Engine:     s.engine,
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerTestSuite))
}

func (s *CheckerTestSuite) TestNewCheckerValidation() {
	_, err := rpgtoolkit.NewChecker(nil)
	s.Assert().Error(err)

	_, err = rpgtoolkit.NewChecker(&rpgtoolkit.CheckerConfig{DiceRoller: s.roller})
	s.Assert().EqualError(err, "INVALID_ARGUMENT: engine is required")

	_, err = rpgtoolkit.NewChecker(&rpgtoolkit.CheckerConfig{Engine: s.engine})
	s.Assert().EqualError(err, "INVALID_ARGUMENT: dice roller is required")
}

func (s *CheckerTestSuite) TestCheckSkill() {
	c := s.engine.NewCharacter()
	c.Attributes[sheet.AttributeDexterity] = 14
	c.Skills[sheet.SkillStealth] = 2

	result, err := s.checker.CheckSkill(c, sheet.SkillStealth)
	s.Require().NoError(err)

	s.Assert().Equal(20, s.roller.lastSize)
	s.Assert().Equal(sheet.SkillStealth, result.Skill)
	s.Assert().Equal(12, result.Roll)
	s.Assert().Equal(4, result.Modifier)
	s.Assert().Equal(16, result.Total)
}

func (s *CheckerTestSuite) TestCheckSkillNegativeModifier() {
	c := s.engine.NewCharacter()
	c.Attributes[sheet.AttributeWisdom] = 6

	result, err := s.checker.CheckSkill(c, sheet.SkillPerception)
	s.Require().NoError(err)
	s.Assert().Equal(-2, result.Modifier)
	s.Assert().Equal(10, result.Total)
}

func (s *CheckerTestSuite) TestCheckSkillUnknown() {
	_, err := s.checker.CheckSkill(s.engine.NewCharacter(), "Juggling")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CheckerTestSuite) TestCheckSkillRollerFailure() {
	s.roller.err = fmt.Errorf("dice fell off the table")

	_, err := s.checker.CheckSkill(s.engine.NewCharacter(), sheet.SkillArcana)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func TestEntities(t *testing.T) {
	character := &sheet.Character{ID: "char-123"}
	entity := rpgtoolkit.WrapCharacter(character)
	assert.Equal(t, "char-123", entity.GetID())
	assert.Equal(t, "character", entity.GetType())
	assert.Equal(t, character, entity.Character)

	roster := &sheet.Roster{ID: "roster-1"}
	rosterEntity := rpgtoolkit.WrapRoster(roster)
	require.NotNil(t, rosterEntity)
	assert.Equal(t, "roster-1", rosterEntity.GetID())
	assert.Equal(t, "roster", rosterEntity.GetType())
}
