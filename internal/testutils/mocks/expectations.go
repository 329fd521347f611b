// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	rosterrepo "github.com/KirkDiggler/character-sheet/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/character-sheet/internal/repositories/roster/mock"
)

// ExpectRosterLoad returns a copy of roster when the repository is asked for it
func ExpectRosterLoad(ctx context.Context, repo *rostermock.MockRepository, roster *sheet.Roster) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, rosterrepo.GetInput{ID: roster.ID}).
		DoAndReturn(func(context.Context, rosterrepo.GetInput) (*rosterrepo.GetOutput, error) {
			clone := roster.Clone()
			return &rosterrepo.GetOutput{Roster: &clone}, nil
		})
}

// ExpectRosterUpdate echoes the stored roster back and hands it to capture when set
func ExpectRosterUpdate(
	ctx context.Context,
	repo *rostermock.MockRepository,
	capture func(*sheet.Roster),
) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rosterrepo.UpdateInput) (*rosterrepo.UpdateOutput, error) {
			if capture != nil {
				capture(input.Roster)
			}
			return &rosterrepo.UpdateOutput{Roster: input.Roster}, nil
		})
}

// ExpectRosterCreate echoes the created roster back and hands it to capture when set
func ExpectRosterCreate(
	ctx context.Context,
	repo *rostermock.MockRepository,
	capture func(*sheet.Roster),
) *gomock.Call {
	return repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rosterrepo.CreateInput) (*rosterrepo.CreateOutput, error) {
			if capture != nil {
				capture(input.Roster)
			}
			return &rosterrepo.CreateOutput{Roster: input.Roster}, nil
		})
}
