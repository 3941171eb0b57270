package main

import (
	"os"
	"path/filepath"
	"testing"

	"legacy2pbr/internal/testsupport"
)

func TestConvertCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteRoleSet(t, env.cfg.Paths.SourceDir, "rock", 4, 4)

	out, _, err := runCLI(t, []string{"convert"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "rock")
	requireContains(t, out, "Converted 1 of 1 sets")

	for _, name := range []string{"rock_NMO.png", "rock_BCR.png"} {
		if _, err := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, name)); err != nil {
			t.Fatalf("expected packed map %s: %v", name, err)
		}
	}
}

func TestConvertCommandMissingRoleFails(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.SourceDir, "rock_nohq.png"), 4, 4, 1, 2, 3, 255)

	_, _, err := runCLI(t, []string{"convert"}, env.configPath)
	if err == nil {
		t.Fatal("expected convert to fail without a full role set")
	}
}

func TestConvertCommandReportsFailedSets(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteRoleSet(t, env.cfg.Paths.SourceDir, "rock", 4, 4)
	corrupt := filepath.Join(env.cfg.Paths.SourceDir, "sand_nohq.png")
	if err := os.WriteFile(corrupt, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.SourceDir, "sand_smdi.png"), 4, 4, 11, 12, 13, 255)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.SourceDir, "sand_as.png"), 4, 4, 21, 22, 23, 255)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.SourceDir, "sand_co.png"), 4, 4, 31, 32, 33, 255)

	out, _, err := runCLI(t, []string{"convert"}, env.configPath)
	if err == nil {
		t.Fatal("expected non-nil error when a set fails")
	}
	requireContains(t, out, "Converted 1 of 2 sets")
	requireContains(t, out, "failed")

	if _, statErr := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, "rock_NMO.png")); statErr != nil {
		t.Fatalf("expected surviving set output: %v", statErr)
	}
}
