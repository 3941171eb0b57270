package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"legacy2pbr/internal/roleset"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Preview the texture sets that convert would process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, ctx)
		},
	}
}

func runScan(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	listing, err := roleset.Scan(cfg.Paths.SourceDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Role", "Suffix", "Files"},
		[][]string{
			{"normal", roleset.RoleNormal.Suffix(), strconv.Itoa(len(listing.Normal))},
			{"specular", roleset.RoleSpecular.Suffix(), strconv.Itoa(len(listing.Specular))},
			{"ambient", roleset.RoleAmbient.Suffix(), strconv.Itoa(len(listing.Ambient))},
			{"diffuse", roleset.RoleDiffuse.Suffix(), strconv.Itoa(len(listing.Diffuse))},
		},
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))

	if err := listing.Validate(); err != nil {
		return err
	}

	sets := listing.Sets()
	rows := make([][]string, 0, len(sets))
	for _, set := range sets {
		rows = append(rows, []string{
			set.Stem,
			filepath.Base(set.Normal),
			filepath.Base(set.Specular),
			filepath.Base(set.Ambient),
			filepath.Base(set.Diffuse),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Set", "Normal", "Specular", "Ambient", "Diffuse"},
		rows,
		nil,
	))
	fmt.Fprintf(out, "%d sets matched in %s\n", len(sets), cfg.Paths.SourceDir)
	return nil
}
