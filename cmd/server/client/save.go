package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save every character of a roster to the character API",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

func init() {
	rosterFlags(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		resp, err := client.SaveRoster(ctx, &v1alpha1.SaveRosterRequest{RosterID: rosterID})
		if err != nil {
			return handleError(out, "save roster", err)
		}

		_, _ = fmt.Fprintf(out, "%s (%d characters)\n", resp.Message, resp.Saved)
		return nil
	})
}
