package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/handlers/choices/v1alpha1"
)

var (
	choiceID  string
	selection string
)

var getChoiceCmd = &cobra.Command{
	Use:   "get-choice",
	Short: "Show one choice",
	RunE:  runChoiceCall("get choice", v1alpha1.ChoiceServiceClient.GetChoice),
}

var canUndoCmd = &cobra.Command{
	Use:   "can-undo",
	Short: "Check whether a choice can be undone",
	RunE:  runChoiceCall("check undo", v1alpha1.ChoiceServiceClient.CanUndoChoice),
}

var undoChoiceCmd = &cobra.Command{
	Use:   "undo-choice",
	Short: "Undo a resolved choice",
	RunE:  runChoiceCall("undo choice", v1alpha1.ChoiceServiceClient.UndoChoice),
}

var resolveChoiceCmd = &cobra.Command{
	Use:   "resolve-choice",
	Short: "Resolve a choice",
	Long: `Resolve a choice with a JSON selection, for example:

  client resolve-choice --character c1 --choice 'proficiency|class|phb:fighter|1|proficiency_choice_1' \
    --selection '{"selected":["phb:athletics","phb:perception"]}'`,
	RunE: runResolveChoice,
}

func init() {
	for _, cmd := range []*cobra.Command{getChoiceCmd, canUndoCmd, undoChoiceCmd, resolveChoiceCmd} {
		cmd.Flags().StringVar(&choiceID, "choice", "", "Choice ID")
	}
	resolveChoiceCmd.Flags().StringVar(&selection, "selection", "", "Selection as a JSON object")
}

type choiceCall func(v1alpha1.ChoiceServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

func runChoiceCall(action string, call choiceCall) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		req, err := choiceRequest(nil)
		if err != nil {
			return err
		}

		client, cleanup, err := createChoiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := call(client, ctx, req)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", action, err)
		}
		return printResponse(resp)
	}
}

func runResolveChoice(_ *cobra.Command, _ []string) error {
	value, err := parseSelection(selection)
	if err != nil {
		return err
	}

	req, err := choiceRequest(value)
	if err != nil {
		return err
	}

	client, cleanup, err := createChoiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Resolving %s for %s...", choiceID, characterID)

	resp, err := client.ResolveChoice(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to resolve choice: %w", err)
	}
	return printResponse(resp)
}

// choiceRequest builds a request addressing one choice, with an optional
// selection
func choiceRequest(sel *structpb.Value) (*structpb.Struct, error) {
	if err := requireCharacter(); err != nil {
		return nil, err
	}
	if choiceID == "" {
		return nil, fmt.Errorf("--choice is required")
	}

	req, err := newRequest(map[string]any{
		v1alpha1.FieldCharacterID: characterID,
		v1alpha1.FieldChoiceID:    choiceID,
	})
	if err != nil {
		return nil, err
	}
	if sel != nil {
		req.Fields[v1alpha1.FieldSelection] = sel
	}
	return req, nil
}
