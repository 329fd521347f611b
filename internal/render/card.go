// Package render builds character cards from the authoritative character record.
// Nothing here holds state; every card is derived on demand.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
)

// AttributeRow is one attribute score with its modifier
type AttributeRow struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Modifier int    `json:"modifier"`
}

// ClassRow is one class annotated with eligibility
type ClassRow struct {
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
}

// RequirementRow is one minimum score of the selected class
type RequirementRow struct {
	Attribute string `json:"attribute"`
	Minimum   int    `json:"minimum"`
}

// SkillRow is one skill with its invested points and total
type SkillRow struct {
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	Points    int    `json:"points"`
	Total     int    `json:"total"`
}

// CardView is everything shown for a single character
type CardView struct {
	Index         int              `json:"index"`
	Title         string           `json:"title"`
	CharacterID   string           `json:"characterId,omitempty"`
	Attributes    []AttributeRow   `json:"attributes"`
	AttributeSum  int              `json:"attributeSum"`
	RemainingPool int              `json:"remainingPool"`
	Classes       []ClassRow       `json:"classes"`
	SelectedClass string           `json:"selectedClass,omitempty"`
	Requirements  []RequirementRow `json:"requirements,omitempty"`
	SkillPoints   int              `json:"skillPoints"`
	Skills        []SkillRow       `json:"skills"`
}

// Card derives the view for the character at the given zero-based roster index
func Card(e engine.Engine, index int, character sheet.Character) CardView {
	rs := e.Rules()

	view := CardView{
		Index:         index,
		Title:         fmt.Sprintf("Character %d", index+1),
		CharacterID:   character.ID,
		Attributes:    make([]AttributeRow, 0, len(rs.Attributes)),
		Classes:       make([]ClassRow, 0, len(rs.Classes)),
		AttributeSum:  e.AttributeTotal(character),
		RemainingPool: e.RemainingPool(character),
		SelectedClass: character.SelectedClass,
		SkillPoints:   character.SkillPoints,
		Skills:        make([]SkillRow, 0, len(rs.Skills)),
	}

	for _, attr := range rs.Attributes {
		view.Attributes = append(view.Attributes, AttributeRow{
			Name:     attr,
			Score:    character.Attributes[attr],
			Modifier: e.AttributeModifier(character, attr),
		})
	}

	for _, class := range e.EligibleClasses(character) {
		view.Classes = append(view.Classes, ClassRow{Name: class.Name, Eligible: class.Eligible})
	}

	if character.HasClass() {
		// a class removed from the rule tables renders without requirements
		if reqs, err := e.Requirements(character.SelectedClass); err == nil {
			for _, req := range reqs {
				view.Requirements = append(view.Requirements, RequirementRow{
					Attribute: req.Attribute,
					Minimum:   req.Minimum,
				})
			}
		}
	}

	for _, skill := range rs.Skills {
		view.Skills = append(view.Skills, SkillRow{
			Name:      skill.Name,
			Attribute: skill.Attribute,
			Points:    character.Skills[skill.Name],
			Total:     e.SkillTotal(character, skill),
		})
	}

	return view
}

// Cards derives a view for every character on the roster in order
func Cards(e engine.Engine, roster sheet.Roster) []CardView {
	out := make([]CardView, len(roster.Characters))
	for i, c := range roster.Characters {
		out[i] = Card(e, i, c)
	}
	return out
}

// WriteCard renders a card as plain text
func WriteCard(w io.Writer, view CardView) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", view.Title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", len(view.Title)))

	fmt.Fprintf(&b, "Attributes (%d used, %d remaining)\n", view.AttributeSum, view.RemainingPool)
	for _, a := range view.Attributes {
		fmt.Fprintf(&b, "  %-14s %3d  (%s)\n", a.Name, a.Score, signed(a.Modifier))
	}

	b.WriteString("Classes\n")
	for _, c := range view.Classes {
		mark := " "
		if c.Eligible {
			mark = "*"
		}
		fmt.Fprintf(&b, "  [%s] %s\n", mark, c.Name)
	}

	if view.SelectedClass != "" {
		fmt.Fprintf(&b, "Selected class: %s\n", view.SelectedClass)
		for _, r := range view.Requirements {
			fmt.Fprintf(&b, "  %s: %d\n", r.Attribute, r.Minimum)
		}
	}

	fmt.Fprintf(&b, "Skills (%d points remaining)\n", view.SkillPoints)
	for _, s := range view.Skills {
		fmt.Fprintf(&b, "  %-16s %-13s points %d  total %s\n", s.Name, s.Attribute, s.Points, signed(s.Total))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func signed(n int) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
