package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
)

var checkSkillCmd = &cobra.Command{
	Use:   "check-skill <skill>",
	Short: "Roll a d20 skill check for a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckSkill,
}

func init() {
	characterFlags(checkSkillCmd)
}

func runCheckSkill(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
		resp, err := client.CheckSkill(ctx, &v1alpha1.CheckSkillRequest{
			RosterID: rosterID,
			Index:    index,
			Skill:    args[0],
		})
		if err != nil {
			return handleError(out, "check skill", err)
		}

		_, _ = fmt.Fprintf(out, "%s check: rolled %d %+d = %d\n", resp.Skill, resp.Roll, resp.Modifier, resp.Total)
		return nil
	})
}
