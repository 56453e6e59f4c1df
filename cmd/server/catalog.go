package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/clients/external"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

var (
	importOut     string
	importBaseURL string
	importRaces   bool
	importClasses bool
	importSpells  bool
	importTimeout time.Duration
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage reference catalog data",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import SRD reference data from the D&D 5e API",
	Long: `Fetch races, classes and spells from the D&D 5e API and write them as ` +
		`catalog YAML. Imported slugs use the "srd:" source prefix; subclass, feat ` +
		`and equipment data still has to be curated by hand.`,
	RunE: runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().StringVarP(&importOut, "out", "o", "catalog.srd.yaml", "Output YAML file")
	catalogImportCmd.Flags().StringVar(&importBaseURL, "base-url", "", "D&D 5e API base URL")
	catalogImportCmd.Flags().BoolVar(&importRaces, "races", true, "Import races and their languages")
	catalogImportCmd.Flags().BoolVar(&importClasses, "classes", true, "Import classes with spell progression")
	catalogImportCmd.Flags().BoolVar(&importSpells, "spells", true, "Import spells")
	catalogImportCmd.Flags().DurationVar(&importTimeout, "timeout", 10*time.Minute, "Overall import timeout")

	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogImport(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	client, err := external.New(&external.Config{BaseURL: importBaseURL})
	if err != nil {
		return errors.Wrap(err, "failed to create external client")
	}

	output, err := client.ImportCatalog(ctx, &external.ImportInput{
		Races:   importRaces,
		Classes: importClasses,
		Spells:  importSpells,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(importOut) // #nosec G304
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", importOut)
	}
	defer func() { _ = f.Close() }()

	if err := catalog.WriteYAML(f, output.Data); err != nil {
		return err
	}

	slog.InfoContext(ctx, "catalog written", "path", importOut)
	return nil
}
