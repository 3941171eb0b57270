package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeRepack()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		c.Paths.SourceDir = defaultSourceDir
	}
	if c.Paths.SourceDir, err = expandPath(c.Paths.SourceDir); err != nil {
		return fmt.Errorf("paths.source_dir: %w", err)
	}
	// Outputs land next to the inputs unless redirected.
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = c.Paths.SourceDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.FinalDir) == "" {
		c.Paths.FinalDir = defaultFinalDir
	}
	if c.Paths.FinalDir, err = expandPath(c.Paths.FinalDir); err != nil {
		return fmt.Errorf("paths.final_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeOutput() {
	seen := make(map[string]struct{}, len(c.Output.Formats))
	formats := make([]string, 0, len(c.Output.Formats))
	for _, format := range c.Output.Formats {
		normalized := strings.ToLower(strings.TrimSpace(format))
		if normalized == "tiff" {
			normalized = "tif"
		}
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		formats = append(formats, normalized)
	}
	c.Output.Formats = formats
}

func (c *Config) normalizeRepack() {
	c.Repack.OcclusionAlpha = strings.ToLower(strings.TrimSpace(c.Repack.OcclusionAlpha))
	if c.Repack.OcclusionAlpha == "" {
		c.Repack.OcclusionAlpha = defaultOcclusionAlpha
	}
	c.Repack.DimensionPolicy = strings.ToLower(strings.TrimSpace(c.Repack.DimensionPolicy))
	if c.Repack.DimensionPolicy == "" {
		c.Repack.DimensionPolicy = defaultDimensionPolicy
	}
	c.Repack.ResizeFilter = strings.ToLower(strings.TrimSpace(c.Repack.ResizeFilter))
	if c.Repack.ResizeFilter == "" {
		c.Repack.ResizeFilter = defaultResizeFilter
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
