package testsupport

import (
	"path/filepath"
	"testing"

	"legacy2pbr/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Outputs default to PNG only so tests stay fast; relocation is off unless a
// test opts in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "TGA_Result")
	cfg.Paths.OutputDir = cfg.Paths.SourceDir
	cfg.Paths.FinalDir = filepath.Join(base, "PBR_Result")
	cfg.Output.Formats = []string{"png"}
	cfg.Output.Relocate = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFormats overrides the output format list.
func WithFormats(formats ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Formats = formats
	}
}

// WithRelocation enables the relocation stage.
func WithRelocation() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Relocate = true
	}
}

// WithRepackPolicy sets the three repack policy knobs at once.
func WithRepackPolicy(occlusionAlpha, dimensionPolicy, resizeFilter string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Repack.OcclusionAlpha = occlusionAlpha
		cfg.Repack.DimensionPolicy = dimensionPolicy
		cfg.Repack.ResizeFilter = resizeFilter
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.SourceDir)
}
