package main

import (
	"path/filepath"
	"testing"

	"legacy2pbr/internal/testsupport"
)

func TestScanCommandListsSets(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteRoleSet(t, env.cfg.Paths.SourceDir, "rock", 4, 4)
	testsupport.WriteRoleSet(t, env.cfg.Paths.SourceDir, "sand", 4, 4)

	out, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "rock")
	requireContains(t, out, "sand_nohq.png")
	requireContains(t, out, "2 sets matched")
}

func TestScanCommandReportsMissingRole(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WritePNG(t, filepath.Join(env.cfg.Paths.SourceDir, "rock_nohq.png"), 4, 4, 1, 2, 3, 255)

	out, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err == nil {
		t.Fatal("expected scan to report missing roles")
	}
	requireContains(t, out, "_nohq")
	requireContains(t, err.Error(), "_smdi")
}
