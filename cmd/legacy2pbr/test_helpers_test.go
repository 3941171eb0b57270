package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"legacy2pbr/internal/config"
	"legacy2pbr/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "legacy2pbr.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	formats := make([]string, 0, len(cfg.Output.Formats))
	for _, format := range cfg.Output.Formats {
		formats = append(formats, fmt.Sprintf("%q", format))
	}
	content := fmt.Sprintf(
		"[paths]\nsource_dir = %q\noutput_dir = %q\nfinal_dir = %q\nlog_dir = %q\n\n"+
			"[output]\nformats = [%s]\nrelocate = %t\n\n"+
			"[repack]\nocclusion_alpha = %q\ndimension_policy = %q\nresize_filter = %q\n\n"+
			"[logging]\nformat = %q\nlevel = %q\n",
		cfg.Paths.SourceDir,
		cfg.Paths.OutputDir,
		cfg.Paths.FinalDir,
		cfg.Paths.LogDir,
		strings.Join(formats, ", "),
		cfg.Output.Relocate,
		cfg.Repack.OcclusionAlpha,
		cfg.Repack.DimensionPolicy,
		cfg.Repack.ResizeFilter,
		"console",
		"error",
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
