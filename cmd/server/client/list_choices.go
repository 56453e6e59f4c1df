package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/handlers/choices/v1alpha1"
)

var (
	choiceType    string
	equipmentMode string
)

var listChoicesCmd = &cobra.Command{
	Use:   "list-choices",
	Short: "List a character's pending choices",
	Long:  `List the pending decisions of a character, optionally filtered by choice type.`,
	RunE:  runListChoices,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count a character's pending choices",
	RunE:  runSummary,
}

func init() {
	listChoicesCmd.Flags().StringVar(&choiceType, "type", "", "Only list choices of this type (e.g. proficiency, spell)")
	listChoicesCmd.Flags().StringVar(&equipmentMode, "equipment-mode", "", "Starting equipment mode: equipment or gold")
}

func runListChoices(_ *cobra.Command, _ []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}

	client, cleanup, err := createChoiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting pending choices for %s from %s...", characterID, serverAddr)

	req, err := newRequest(map[string]any{
		v1alpha1.FieldCharacterID:   characterID,
		v1alpha1.FieldType:          choiceType,
		v1alpha1.FieldEquipmentMode: equipmentMode,
	})
	if err != nil {
		return err
	}

	resp, err := client.ListChoices(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list choices: %w", err)
	}

	return printResponse(resp)
}

func runSummary(_ *cobra.Command, _ []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}

	client, cleanup, err := createChoiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := newRequest(map[string]any{v1alpha1.FieldCharacterID: characterID})
	if err != nil {
		return err
	}

	resp, err := client.GetChoiceSummary(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get choice summary: %w", err)
	}

	return printResponse(resp)
}
