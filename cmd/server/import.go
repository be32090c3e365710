package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/farabi1038/lang-portal/internal/importer"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import vocabulary from an xlsx workbook",
		Long: "Import vocabulary from an xlsx workbook whose first sheet has the\n" +
			"columns Japanese | Romaji | English | Group. Groups are created as\n" +
			"needed and words are linked to them.",
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	imp := importer.New(app.wordStore, app.groupStore, log)
	result, err := imp.Import(ctx, f)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d words (%d groups created, %d rows skipped)\n",
		result.WordsCreated, result.GroupsCreated, result.Skipped)
	for _, rowErr := range result.Errors {
		fmt.Fprintln(os.Stderr, "warning:", rowErr)
	}
	return nil
}
