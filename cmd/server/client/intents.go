package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/character-sheet/internal/render"
)

// intentCall is one of the character intent methods of the roster client
type intentCall func(
	client v1alpha1.RosterServiceClient,
	ctx context.Context,
	in *v1alpha1.IntentRequest,
	opts ...grpc.CallOption,
) (*v1alpha1.CharacterResponse, error)

var (
	incAttrCmd = newIntentCmd("inc-attr <attribute>", "Raise an attribute by one",
		"increment attribute", v1alpha1.RosterServiceClient.IncrementAttribute)
	decAttrCmd = newIntentCmd("dec-attr <attribute>", "Lower an attribute by one",
		"decrement attribute", v1alpha1.RosterServiceClient.DecrementAttribute)
	incSkillCmd = newIntentCmd("inc-skill <skill>", "Invest one skill point",
		"increment skill", v1alpha1.RosterServiceClient.IncrementSkill)
	decSkillCmd = newIntentCmd("dec-skill <skill>", "Remove one skill point",
		"decrement skill", v1alpha1.RosterServiceClient.DecrementSkill)
	selectClassCmd = newIntentCmd("select-class <class>", "Choose the character's class",
		"select class", v1alpha1.RosterServiceClient.SelectClass)
)

// newIntentCmd builds a command that applies one intent and prints the updated card
func newIntentCmd(use, short, action string, call intentCall) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withClient(func(ctx context.Context, client v1alpha1.RosterServiceClient) error {
				resp, err := call(client, ctx, &v1alpha1.IntentRequest{
					RosterID: rosterID,
					Index:    index,
					Name:     args[0],
				})
				if err != nil {
					return handleError(out, action, err)
				}
				return render.WriteCard(out, resp.Card)
			})
		},
	}
	characterFlags(cmd)
	return cmd
}
