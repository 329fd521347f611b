package testutils

import (
	"time"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
)

// Fixture identifiers
const (
	TestRosterID    = "roster_test_001"
	TestCharacterID = "char_test_001"
)

// TestTime is the timestamp fixtures are stamped with
var TestTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCharacter creates a baseline character under the default rule tables
func CreateTestCharacter(id string) sheet.Character {
	c := sheet.Character{
		ID: id,
		Attributes: map[string]int{
			sheet.AttributeStrength:     sheet.DefaultBaseline,
			sheet.AttributeDexterity:    sheet.DefaultBaseline,
			sheet.AttributeConstitution: sheet.DefaultBaseline,
			sheet.AttributeIntelligence: sheet.DefaultBaseline,
			sheet.AttributeWisdom:       sheet.DefaultBaseline,
			sheet.AttributeCharisma:     sheet.DefaultBaseline,
		},
		Skills:      map[string]int{},
		SkillPoints: sheet.DefaultSkillPoints,
	}
	return c
}

// CreateTestWizard creates a character that has qualified for and selected Wizard
func CreateTestWizard(id string) sheet.Character {
	c := CreateTestCharacter(id)
	c.Attributes[sheet.AttributeIntelligence] = 14
	c.Attributes[sheet.AttributeStrength] = 9
	c.Skills[sheet.SkillArcana] = 3
	c.SkillPoints = sheet.DefaultSkillPoints - 3
	c.SelectedClass = sheet.ClassWizard
	return c
}

// CreateTestRoster creates a roster holding the given characters
func CreateTestRoster(id string, characters ...sheet.Character) *sheet.Roster {
	return &sheet.Roster{
		ID:         id,
		Characters: characters,
		CreatedAt:  TestTime.Unix(),
		UpdatedAt:  TestTime.Unix(),
	}
}
