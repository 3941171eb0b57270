package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"legacy2pbr/internal/relocate"
)

func newRelocateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "relocate",
		Short: "Move already-converted maps into the final directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelocate(cmd, ctx)
		},
	}
}

func runRelocate(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	moved, err := relocate.New(logger).Run(cmd.Context(), cfg.Paths.OutputDir, cfg.Paths.FinalDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved %d files to %s\n", moved, cfg.Paths.FinalDir)
	return nil
}
