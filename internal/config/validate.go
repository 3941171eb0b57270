package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateRepack(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if len(c.Output.Formats) == 0 {
		return errors.New("output.formats must name at least one of tga, tif, png")
	}
	for _, format := range c.Output.Formats {
		switch format {
		case "tga", "tif", "png":
		default:
			return fmt.Errorf("output.formats: unsupported format %q (want tga, tif, or png)", format)
		}
	}
	return nil
}

func (c *Config) validateRepack() error {
	switch c.Repack.OcclusionAlpha {
	case "direct", "average":
	default:
		return fmt.Errorf("repack.occlusion_alpha: unsupported value %q (want direct or average)", c.Repack.OcclusionAlpha)
	}
	switch c.Repack.DimensionPolicy {
	case "strict", "resize":
	default:
		return fmt.Errorf("repack.dimension_policy: unsupported value %q (want strict or resize)", c.Repack.DimensionPolicy)
	}
	switch c.Repack.ResizeFilter {
	case "linear", "nearest":
	default:
		return fmt.Errorf("repack.resize_filter: unsupported value %q (want linear or nearest)", c.Repack.ResizeFilter)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
