package v1alpha1

import "github.com/KirkDiggler/character-sheet/internal/render"

// CreateRosterRequest starts a roster session
type CreateRosterRequest struct {
	Empty bool `json:"empty,omitempty"`
}

// GetRosterRequest fetches a roster
type GetRosterRequest struct {
	RosterID string `json:"rosterId"`
}

// DeleteRosterRequest ends a roster session
type DeleteRosterRequest struct {
	RosterID string `json:"rosterId"`
}

// DeleteRosterResponse is empty
type DeleteRosterResponse struct{}

// RosterResponse carries every character card of a roster in order
type RosterResponse struct {
	RosterID  string            `json:"rosterId"`
	Cards     []render.CardView `json:"cards"`
	CreatedAt int64             `json:"createdAt"`
	UpdatedAt int64             `json:"updatedAt"`
}

// AddCharacterRequest appends a default character
type AddCharacterRequest struct {
	RosterID string `json:"rosterId"`
}

// IntentRequest targets one character with a named attribute, skill or class
type IntentRequest struct {
	RosterID string `json:"rosterId"`
	Index    int    `json:"index"`
	Name     string `json:"name"`
}

// CharacterResponse carries the card of the character an intent was applied to
type CharacterResponse struct {
	RosterID string          `json:"rosterId"`
	Card     render.CardView `json:"card"`
}

// CheckSkillRequest rolls a skill check
type CheckSkillRequest struct {
	RosterID string `json:"rosterId"`
	Index    int    `json:"index"`
	Skill    string `json:"skill"`
}

// CheckSkillResponse is the outcome of a skill check
type CheckSkillResponse struct {
	Skill    string `json:"skill"`
	Roll     int    `json:"roll"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// SaveRosterRequest posts a roster to the character API
type SaveRosterRequest struct {
	RosterID string `json:"rosterId"`
}

// SaveRosterResponse reports a successful save
type SaveRosterResponse struct {
	Saved      int    `json:"saved"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
