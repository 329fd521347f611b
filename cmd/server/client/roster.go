package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/character-sheet/internal/render"
)

var emptyRoster bool

var createRosterCmd = &cobra.Command{
	Use:   "create-roster",
	Short: "Start a new roster",
	Long:  `Start a new roster session holding one baseline character, or none with --empty.`,
	Args:  cobra.NoArgs,
	RunE:  runCreateRoster,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show every character card of a roster",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var addCharacterCmd = &cobra.Command{
	Use:   "add-character",
	Short: "Append a baseline character to a roster",
	Args:  cobra.NoArgs,
	RunE:  runAddCharacter,
}

var deleteRosterCmd = &cobra.Command{
	Use:   "delete-roster",
	Short: "End a roster session",
	Args:  cobra.NoArgs,
	RunE:  runDeleteRoster,
}

func init() {
	createRosterCmd.Flags().BoolVar(&emptyRoster, "empty", false, "Start without a character")
	rosterFlags(showCmd)
	rosterFlags(addCharacterCmd)
	rosterFlags(deleteRosterCmd)
}

func runCreateRoster(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		resp, err := client.CreateRoster(ctx, &v1alpha1.CreateRosterRequest{Empty: emptyRoster})
		if err != nil {
			return handleError(out, "create roster", err)
		}

		_, _ = fmt.Fprintf(out, "Roster ID: %s\n\n", resp.RosterID)
		return printCards(out, resp.Cards)
	})
}

func runShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		resp, err := client.GetRoster(ctx, &v1alpha1.GetRosterRequest{RosterID: rosterID})
		if err != nil {
			return handleError(out, "get roster", err)
		}

		if len(resp.Cards) == 0 {
			_, _ = fmt.Fprintf(out, "Roster %s has no characters\n", resp.RosterID)
			return nil
		}
		return printCards(out, resp.Cards)
	})
}

func runAddCharacter(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		resp, err := client.AddCharacter(ctx, &v1alpha1.AddCharacterRequest{RosterID: rosterID})
		if err != nil {
			return handleError(out, "add character", err)
		}
		return render.WriteCard(out, resp.Card)
	})
}

func runDeleteRoster(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		if _, err := client.DeleteRoster(ctx, &v1alpha1.DeleteRosterRequest{RosterID: rosterID}); err != nil {
			return handleError(out, "delete roster", err)
		}

		_, _ = fmt.Fprintf(out, "Roster %s deleted\n", rosterID)
		return nil
	})
}
