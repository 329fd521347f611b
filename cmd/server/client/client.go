// Package client provides commands that drive the roster service over gRPC
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/character-sheet/internal/errors"
	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/character-sheet/internal/render"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Target flags shared by the roster commands
	rosterID string
	index    int

	// dialOptions are appended to every connection
	dialOptions []grpc.DialOption
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character sheet service",
	Long:  `Client commands drive a roster on a running server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Roster commands
	ClientCmd.AddCommand(createRosterCmd)
	ClientCmd.AddCommand(showCmd)
	ClientCmd.AddCommand(addCharacterCmd)
	ClientCmd.AddCommand(deleteRosterCmd)

	// Character intents
	ClientCmd.AddCommand(incAttrCmd)
	ClientCmd.AddCommand(decAttrCmd)
	ClientCmd.AddCommand(incSkillCmd)
	ClientCmd.AddCommand(decSkillCmd)
	ClientCmd.AddCommand(selectClassCmd)

	// Rolls and persistence
	ClientCmd.AddCommand(checkSkillCmd)
	ClientCmd.AddCommand(saveCmd)
}

// rosterFlags registers --roster on a command
func rosterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rosterID, "roster", "", "Roster ID (required)")
	_ = cmd.MarkFlagRequired("roster") // nolint:errcheck // safe to ignore in init
}

// characterFlags registers --roster and --index on a command
func characterFlags(cmd *cobra.Command) {
	rosterFlags(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "Zero-based character index")
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, dialOptions...)

	conn, err := grpc.NewClient(serverAddr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createRosterClient creates a roster service client
func createRosterClient() (v1alpha1.RosterServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewRosterServiceClient(conn), cleanup, nil
}

// withClient runs call against a fresh client under the request timeout
func withClient(call func(ctx context.Context, client v1alpha1.RosterServiceClient) error) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return call(ctx, client)
}

// handleError prints a rejected intent as a notice and swallows it; every
// other error is returned
func handleError(out io.Writer, action string, err error) error {
	converted := errors.FromGRPCError(err)
	if errors.IsRejection(converted) {
		_, _ = fmt.Fprintf(out, "Notice: %s\n", errors.GetMessage(converted))
		return nil
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

func printCards(out io.Writer, cards []render.CardView) error {
	for i, card := range cards {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		if err := render.WriteCard(out, card); err != nil {
			return err
		}
	}
	return nil
}
