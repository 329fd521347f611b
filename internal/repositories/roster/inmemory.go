package roster

import (
	"context"
	"sync"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]sheet.Roster
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]sheet.Roster),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new roster
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRoster(input.Roster); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Roster.ID]; exists {
		return nil, errors.AlreadyExistsf("roster with ID %s already exists", input.Roster.ID)
	}

	r.store[input.Roster.ID] = input.Roster.Clone()

	out := input.Roster.Clone()
	return &CreateOutput{Roster: &out}, nil
}

// Get retrieves a roster by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	out := stored.Clone()
	return &GetOutput{Roster: &out}, nil
}

// Update replaces an existing roster
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRoster(input.Roster); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Roster.ID]; !exists {
		return nil, errors.NotFoundf("roster with ID %s not found", input.Roster.ID)
	}

	r.store[input.Roster.ID] = input.Roster.Clone()

	out := input.Roster.Clone()
	return &UpdateOutput{Roster: &out}, nil
}

// Delete removes a roster by ID
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}
