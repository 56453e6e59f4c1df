// Package client provides test commands for the choice gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/handlers/choices/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared request flags
	characterID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the choice service",
	Long:  `Client commands exercise the choice service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&characterID, "character", "", "Character ID")

	ClientCmd.AddCommand(listChoicesCmd)
	ClientCmd.AddCommand(getChoiceCmd)
	ClientCmd.AddCommand(summaryCmd)
	ClientCmd.AddCommand(resolveChoiceCmd)
	ClientCmd.AddCommand(canUndoCmd)
	ClientCmd.AddCommand(undoChoiceCmd)
}

// createChoiceClient creates a choice service client
func createChoiceClient() (v1alpha1.ChoiceServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewChoiceServiceClient(conn), cleanup, nil
}

// newRequest builds a request struct, leaving out empty strings
func newRequest(fields map[string]any) (*structpb.Struct, error) {
	clean := make(map[string]any, len(fields))
	for key, value := range fields {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		clean[key] = value
	}
	return structpb.NewStruct(clean)
}

// parseSelection reads a JSON object given on the command line
func parseSelection(raw string) (*structpb.Value, error) {
	if raw == "" {
		return nil, fmt.Errorf("--selection is required")
	}
	value := &structpb.Value{}
	if err := protojson.Unmarshal([]byte(raw), value); err != nil {
		return nil, fmt.Errorf("selection is not valid JSON: %w", err)
	}
	if value.GetStructValue() == nil {
		return nil, fmt.Errorf("selection must be a JSON object")
	}
	return value, nil
}

func printResponse(resp *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func requireCharacter() error {
	if characterID == "" {
		return fmt.Errorf("--character is required")
	}
	return nil
}
