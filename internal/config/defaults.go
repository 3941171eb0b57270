package config

const (
	defaultSourceDir       = "TGA_Result"
	defaultFinalDir        = "PBR_Result"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultOcclusionAlpha  = "direct"
	defaultDimensionPolicy = "strict"
	defaultResizeFilter    = "linear"
)

func defaultFormats() []string {
	return []string{"tga", "tif", "png"}
}

// Default returns a Config populated with repository defaults. Directories
// are relative to the working directory until normalize expands them, which
// matches the convention-driven layout the legacy tooling used.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			FinalDir:  defaultFinalDir,
		},
		Output: Output{
			Formats:  defaultFormats(),
			Relocate: true,
		},
		Repack: Repack{
			OcclusionAlpha:  defaultOcclusionAlpha,
			DimensionPolicy: defaultDimensionPolicy,
			ResizeFilter:    defaultResizeFilter,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
