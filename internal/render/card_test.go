package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/render"
	"github.com/KirkDiggler/character-sheet/internal/rules"
)

func newEngine(t *testing.T) engine.Engine {
	t.Helper()
	e, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	require.NoError(t, err)
	return e
}

func TestCardFreshCharacter(t *testing.T) {
	e := newEngine(t)

	view := render.Card(e, 0, e.NewCharacter())

	assert.Equal(t, "Character 1", view.Title)
	require.Len(t, view.Attributes, 6)
	assert.Equal(t, render.AttributeRow{Name: sheet.AttributeStrength, Score: 10, Modifier: 0}, view.Attributes[0])
	assert.Equal(t, 60, view.AttributeSum)
	assert.Equal(t, 10, view.RemainingPool)

	require.Len(t, view.Classes, 3)
	for _, c := range view.Classes {
		assert.False(t, c.Eligible, c.Name)
	}

	assert.Empty(t, view.SelectedClass)
	assert.Empty(t, view.Requirements)
	assert.Equal(t, 10, view.SkillPoints)
	require.Len(t, view.Skills, 18)
	assert.Equal(t, render.SkillRow{Name: sheet.SkillAcrobatics, Attribute: sheet.AttributeDexterity}, view.Skills[0])
}

func TestCardSelectedClass(t *testing.T) {
	e := newEngine(t)

	c := e.NewCharacter()
	c.Attributes[sheet.AttributeStrength] = 16
	c.Skills[sheet.SkillAthletics] = 2
	c.SkillPoints = 8
	c, err := e.SelectClass(c, sheet.ClassBarbarian)
	require.NoError(t, err)

	view := render.Card(e, 2, c)

	assert.Equal(t, "Character 3", view.Title)
	assert.Equal(t, 3, view.Attributes[0].Modifier)
	assert.True(t, view.Classes[0].Eligible)
	assert.Equal(t, sheet.ClassBarbarian, view.SelectedClass)
	require.Len(t, view.Requirements, 6)
	assert.Equal(t, render.RequirementRow{Attribute: sheet.AttributeStrength, Minimum: 14}, view.Requirements[0])

	var athletics render.SkillRow
	for _, s := range view.Skills {
		if s.Name == sheet.SkillAthletics {
			athletics = s
		}
	}
	assert.Equal(t, 2, athletics.Points)
	assert.Equal(t, 5, athletics.Total)
}

func TestCards(t *testing.T) {
	e := newEngine(t)
	roster := sheet.Roster{Characters: []sheet.Character{e.NewCharacter(), e.NewCharacter()}}

	views := render.Cards(e, roster)
	require.Len(t, views, 2)
	assert.Equal(t, 0, views[0].Index)
	assert.Equal(t, "Character 2", views[1].Title)
}

func TestWriteCard(t *testing.T) {
	e := newEngine(t)

	c := e.NewCharacter()
	c.Attributes[sheet.AttributeCharisma] = 14
	c.Attributes[sheet.AttributeWisdom] = 9
	c, err := e.SelectClass(c, sheet.ClassBard)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteCard(&buf, render.Card(e, 0, c)))
	out := buf.String()

	assert.Contains(t, out, "Character 1\n===========\n")
	assert.Contains(t, out, "Attributes (63 used, 7 remaining)")
	assert.Contains(t, out, "Charisma        14  (+2)")
	assert.Contains(t, out, "Wisdom           9  (-1)")
	assert.Contains(t, out, "[*] Bard")
	assert.Contains(t, out, "[ ] Wizard")
	assert.Contains(t, out, "Selected class: Bard")
	assert.Contains(t, out, "  Charisma: 14\n")
	assert.Contains(t, out, "Skills (10 points remaining)")
}

func TestCardWithoutClassesEncodesEmptyLists(t *testing.T) {
	rs, err := rules.Parse([]byte(`
attributePool: 20
baseline: 10
skillPoints: 2
attributes: [Strength]
`))
	require.NoError(t, err)
	e, err := engine.New(&engine.Config{Rules: rs})
	require.NoError(t, err)

	view := render.Card(e, 0, e.NewCharacter())
	assert.NotNil(t, view.Classes)
	assert.NotNil(t, view.Skills)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"classes":[]`)
	assert.Contains(t, string(data), `"skills":[]`)
}
