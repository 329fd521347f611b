package engine_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/rules"
)

func newEngine(t interface{ Fatalf(string, ...any) }) engine.Engine {
	e, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func floorDiv2(n int) int {
	q := n / 2
	if n%2 != 0 && n < 0 {
		q--
	}
	return q
}

func TestModifierFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		score := rapid.IntRange(-100, 100).Draw(t, "score")
		if got, want := engine.Modifier(score), floorDiv2(score-10); got != want {
			t.Fatalf("Modifier(%d) = %d, want %d", score, got, want)
		}
	})
}

// randomCharacter applies a random sequence of mutations to a fresh character
func randomCharacter(t *rapid.T, e engine.Engine) sheet.Character {
	rs := e.Rules()
	c := e.NewCharacter()

	steps := rapid.IntRange(0, 60).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		attr := rapid.SampledFrom(rs.Attributes).Draw(t, "attr")
		skill := rapid.SampledFrom(rs.Skills).Draw(t, "skill").Name

		switch rapid.IntRange(0, 3).Draw(t, "op") {
		case 0:
			c, _ = e.IncrementAttribute(c, attr)
		case 1:
			c, _ = e.DecrementAttribute(c, attr)
		case 2:
			c, _ = e.IncrementSkill(c, skill)
		case 3:
			c, _ = e.DecrementSkill(c, skill)
		}
	}
	return c
}

func TestAttributeBounds(t *testing.T) {
	e := newEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		c := randomCharacter(t, e)

		if total := e.AttributeTotal(c); total > e.Rules().AttributePool {
			t.Fatalf("attribute total %d exceeds pool", total)
		}
		for attr, score := range c.Attributes {
			if score < 0 {
				t.Fatalf("%s is negative: %d", attr, score)
			}
		}
	})
}

func TestSkillPointConservation(t *testing.T) {
	e := newEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		c := randomCharacter(t, e)

		invested := 0
		for skill, points := range c.Skills {
			if points < 0 {
				t.Fatalf("%s has negative points: %d", skill, points)
			}
			invested += points
		}
		if c.SkillPoints < 0 {
			t.Fatalf("budget is negative: %d", c.SkillPoints)
		}
		if c.SkillPoints+invested != e.Rules().SkillPoints {
			t.Fatalf("budget %d + invested %d != %d", c.SkillPoints, invested, e.Rules().SkillPoints)
		}
	})
}

func TestEligibilityMonotonic(t *testing.T) {
	e := newEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		c := e.NewCharacter()
		for _, attr := range e.Rules().Attributes {
			c.Attributes[attr] = rapid.IntRange(0, 20).Draw(t, attr)
		}
		before := e.EligibleClasses(c)

		raised := c.Clone()
		attr := rapid.SampledFrom(e.Rules().Attributes).Draw(t, "raise")
		raised.Attributes[attr] += rapid.IntRange(1, 10).Draw(t, "by")
		after := e.EligibleClasses(raised)

		for i := range before {
			if before[i].Eligible && !after[i].Eligible {
				t.Fatalf("raising %s removed %s", attr, before[i].Name)
			}
		}
	})
}

func TestSelectClassIffEligible(t *testing.T) {
	e := newEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		c := e.NewCharacter()
		for _, attr := range e.Rules().Attributes {
			c.Attributes[attr] = rapid.IntRange(5, 18).Draw(t, attr)
		}
		idx := rapid.IntRange(0, len(e.Rules().Classes)-1).Draw(t, "class")
		class := e.Rules().Classes[idx].Name
		eligible := e.EligibleClasses(c)[idx].Eligible

		got, err := e.SelectClass(c, class)
		if eligible {
			if err != nil || got.SelectedClass != class {
				t.Fatalf("eligible selection of %s failed: %v", class, err)
			}
			return
		}
		if !errors.HasReason(err, errors.ReasonClassRequirementsNotMet) {
			t.Fatalf("expected requirements rejection, got %v", err)
		}
		if got.SelectedClass != c.SelectedClass {
			t.Fatalf("rejected selection changed the character")
		}
	})
}
