package roster

import (
	"context"

	"github.com/KirkDiggler/character-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
)

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/character-sheet/internal/orchestrators/roster Service

// Service defines the roster orchestrator interface
type Service interface {
	// Roster lifecycle
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error)
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error)
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)

	// Character intents
	IncrementAttribute(ctx context.Context, input *IncrementAttributeInput) (*UpdateCharacterOutput, error)
	DecrementAttribute(ctx context.Context, input *DecrementAttributeInput) (*UpdateCharacterOutput, error)
	IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*UpdateCharacterOutput, error)
	DecrementSkill(ctx context.Context, input *DecrementSkillInput) (*UpdateCharacterOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*UpdateCharacterOutput, error)

	// Read-only actions
	CheckSkill(ctx context.Context, input *CheckSkillInput) (*CheckSkillOutput, error)

	// Persistence
	SaveRoster(ctx context.Context, input *SaveRosterInput) (*SaveRosterOutput, error)
}

// SkillChecker rolls skill checks
type SkillChecker interface {
	CheckSkill(character sheet.Character, skill string) (*rpgtoolkit.CheckResult, error)
}

// CreateRosterInput defines the input for creating a roster
type CreateRosterInput struct {
	// Empty skips the default first character
	Empty bool
}

// CreateRosterOutput defines the output for creating a roster
type CreateRosterOutput struct {
	Roster *sheet.Roster
}

// GetRosterInput defines the input for getting a roster
type GetRosterInput struct {
	RosterID string
}

// GetRosterOutput defines the output for getting a roster
type GetRosterOutput struct {
	Roster *sheet.Roster
}

// DeleteRosterInput defines the input for ending a roster session
type DeleteRosterInput struct {
	RosterID string
}

// DeleteRosterOutput defines the output for ending a roster session
type DeleteRosterOutput struct{}

// AddCharacterInput defines the input for appending a default character
type AddCharacterInput struct {
	RosterID string
}

// AddCharacterOutput defines the output for appending a default character
type AddCharacterOutput struct {
	Roster *sheet.Roster
	Index  int
}

// IncrementAttributeInput defines the input for raising an attribute by one
type IncrementAttributeInput struct {
	RosterID  string
	Index     int
	Attribute string
}

// DecrementAttributeInput defines the input for lowering an attribute by one
type DecrementAttributeInput struct {
	RosterID  string
	Index     int
	Attribute string
}

// IncrementSkillInput defines the input for investing a skill point
type IncrementSkillInput struct {
	RosterID string
	Index    int
	Skill    string
}

// DecrementSkillInput defines the input for removing a skill point
type DecrementSkillInput struct {
	RosterID string
	Index    int
	Skill    string
}

// SelectClassInput defines the input for choosing a class
type SelectClassInput struct {
	RosterID string
	Index    int
	Class    string
}

// UpdateCharacterOutput is returned by every character intent that was applied
type UpdateCharacterOutput struct {
	Roster    *sheet.Roster
	Index     int
	Character sheet.Character
}

// CheckSkillInput defines the input for rolling a skill check
type CheckSkillInput struct {
	RosterID string
	Index    int
	Skill    string
}

// CheckSkillOutput defines the output for rolling a skill check
type CheckSkillOutput struct {
	Result *rpgtoolkit.CheckResult
}

// SaveRosterInput defines the input for saving a roster
type SaveRosterInput struct {
	RosterID string
}

// SaveRosterOutput defines the output for saving a roster
type SaveRosterOutput struct {
	Saved      int
	StatusCode int
	Message    string
}
