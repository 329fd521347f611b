// Package roster provides the interface for roster session persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/character-sheet/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

// Repository defines the interface for roster session persistence
type Repository interface {
	// Create stores a new roster
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a roster with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a roster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing roster
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a roster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a roster
type CreateInput struct {
	Roster *sheet.Roster
}

// CreateOutput defines the output for creating a roster
type CreateOutput struct {
	Roster *sheet.Roster
}

// GetInput defines the input for getting a roster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a roster
type GetOutput struct {
	Roster *sheet.Roster
}

// UpdateInput defines the input for updating a roster
type UpdateInput struct {
	Roster *sheet.Roster
}

// UpdateOutput defines the output for updating a roster
type UpdateOutput struct {
	Roster *sheet.Roster
}

// DeleteInput defines the input for deleting a roster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a roster
type DeleteOutput struct{}

const (
	errRosterNil     = "roster cannot be nil"
	errRosterIDEmpty = "roster ID cannot be empty"
)

func validateRoster(r *sheet.Roster) error {
	if r == nil {
		return errors.InvalidArgument(errRosterNil)
	}
	if r.ID == "" {
		return errors.InvalidArgument(errRosterIDEmpty)
	}
	return nil
}
