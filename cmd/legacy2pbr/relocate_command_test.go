package main

import (
	"os"
	"path/filepath"
	"testing"

	"legacy2pbr/internal/testsupport"
)

func TestRelocateCommandMovesPackedMaps(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.OutputDir, "rock_NMO.png"), 4, 4, 1, 2, 3, 255)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.OutputDir, "rock_BCR.png"), 4, 4, 1, 2, 3, 255)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.OutputDir, "rock_nohq.png"), 4, 4, 1, 2, 3, 255)

	out, _, err := runCLI(t, []string{"relocate"}, env.configPath)
	if err != nil {
		t.Fatalf("relocate: %v", err)
	}
	requireContains(t, out, "Moved 2 files")

	for _, name := range []string{"rock_NMO.png", "rock_BCR.png"} {
		if _, err := os.Stat(filepath.Join(env.cfg.Paths.FinalDir, name)); err != nil {
			t.Fatalf("expected %s in final dir: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, "rock_nohq.png")); err != nil {
		t.Fatalf("input file should stay put: %v", err)
	}
}
