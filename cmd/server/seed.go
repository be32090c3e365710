package main

import (
	"github.com/spf13/cobra"

	"github.com/farabi1038/lang-portal/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter activities, groups and vocabulary",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
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

	if err := seed.Apply(ctx, app.activityStore, app.groupStore, app.wordStore); err != nil {
		return err
	}

	log.Info("seed data applied")
	return nil
}
