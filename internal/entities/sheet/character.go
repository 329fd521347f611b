// Package sheet holds the character sheet entities and the static rule tables
package sheet

// Character is a single sheet on a roster.
// NOTE: This is a data-only struct. Modifiers, skill totals and class eligibility are
// derived by the engine, never stored here.
type Character struct {
	ID            string         `json:"id,omitempty"`
	Attributes    map[string]int `json:"attributes"`
	Skills        map[string]int `json:"skills"`
	SkillPoints   int            `json:"skillPoints"`
	SelectedClass string         `json:"selectedClass,omitempty"`
}

// Clone returns a deep copy so callers can hand out values without sharing maps
func (c Character) Clone() Character {
	out := c
	out.Attributes = make(map[string]int, len(c.Attributes))
	for k, v := range c.Attributes {
		out.Attributes[k] = v
	}
	out.Skills = make(map[string]int, len(c.Skills))
	for k, v := range c.Skills {
		out.Skills[k] = v
	}
	return out
}

// HasClass reports whether a class has been selected
func (c Character) HasClass() bool {
	return c.SelectedClass != ""
}

// Roster is the ordered collection of characters managed in one session.
// Insertion order is display order and save order.
type Roster struct {
	ID         string      `json:"id"`
	Characters []Character `json:"characters"`
	CreatedAt  int64       `json:"createdAt"`
	UpdatedAt  int64       `json:"updatedAt"`
}

// Clone returns a deep copy of the roster
func (r Roster) Clone() Roster {
	out := r
	out.Characters = make([]Character, len(r.Characters))
	for i, c := range r.Characters {
		out.Characters[i] = c.Clone()
	}
	return out
}

// Len returns the number of characters on the roster
func (r Roster) Len() int {
	return len(r.Characters)
}
