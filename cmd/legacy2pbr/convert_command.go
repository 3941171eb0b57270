package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"legacy2pbr/internal/batch"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert every matched texture set in the source directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx)
		},
	}
}

func runConvert(cmd *cobra.Command, ctx *commandContext) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runner, err := batch.New(cfg, logger)
	if err != nil {
		return err
	}

	summary, runErr := runner.Run(signalCtx)
	if runErr != nil && batch.Fatal(runErr) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if len(summary.Results) > 0 {
		rows := make([][]string, 0, len(summary.Results))
		for _, result := range summary.Results {
			status := "converted"
			if result.Err != nil {
				status = "failed: " + result.Err.Error()
			}
			rows = append(rows, []string{
				result.Stem,
				strconv.Itoa(len(result.Written)),
				status,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Set", "Files", "Status"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
	}

	fmt.Fprintf(out, "Converted %d of %d sets (%d files written", summary.Converted, summary.Sets, summary.FilesWritten)
	if cfg.Output.Relocate {
		fmt.Fprintf(out, ", %d relocated to %s", summary.FilesMoved, cfg.Paths.FinalDir)
	}
	fmt.Fprintln(out, ")")

	return runErr
}
