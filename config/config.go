// Package config holds the dukatools configuration: defaults, an optional
// YAML config file, and validation. Command-line flags are bound in cmd/
// and override anything loaded here (flags > file > defaults).
package config

// Config holds all toolbox configuration options
type Config struct {
	// FFmpeg overrides the ffmpeg binary path or name.
	// Empty means resolve via $DUKATOOLS_FFMPEG, then PATH.
	FFmpeg string `yaml:"ffmpeg"`

	// Per-tool sections
	Vidcut VidcutConfig `yaml:"vidcut"`
	Dump   DumpConfig   `yaml:"dump"`
	Pydown PydownConfig `yaml:"pydown"`
}

// VidcutConfig holds trimming defaults
type VidcutConfig struct {
	Suffix string      `yaml:"suffix"` // appended to batch output stems
	Video  VideoConfig `yaml:"video"`  // re-encode fallback settings
}

// VideoConfig holds video encoding settings for the frame-accurate fallback
type VideoConfig struct {
	Codec  string `yaml:"codec"`  // e.g., "libx264", "libx265"
	Preset string `yaml:"preset"` // e.g., "ultrafast", "veryfast", "medium"
	CRF    int    `yaml:"crf"`    // Constant Rate Factor (0-51, lower = better quality)
}

// DumpConfig holds directory-dumper defaults
type DumpConfig struct {
	ExcludeNames    []string `yaml:"exclude_names"`    // exact base names to skip
	ExcludePatterns []string `yaml:"exclude_patterns"` // regexes over the relative path
}

// PydownConfig holds python-build-standalone downloader defaults
type PydownConfig struct {
	API     string `yaml:"api"`     // releases API endpoint
	Variant string `yaml:"variant"` // asset variant to select
}

// DefaultAPI is the latest-release endpoint of python-build-standalone.
const DefaultAPI = "https://api.github.com/repos/astral-sh/python-build-standalone/releases/latest"

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		FFmpeg: "", // Resolve via env/PATH

		Vidcut: VidcutConfig{
			Suffix: "_cut",
			// x264 at CRF 18 is visually lossless for most sources;
			// veryfast keeps the fallback tolerable on long clips.
			Video: VideoConfig{
				Codec:  "libx264",
				Preset: "veryfast",
				CRF:    18,
			},
		},

		Dump: DumpConfig{
			ExcludeNames:    nil, // No auto-excludes
			ExcludePatterns: nil,
		},

		Pydown: PydownConfig{
			API:     DefaultAPI,
			Variant: "install_only_stripped",
		},
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Dump.ExcludeNames = append([]string(nil), c.Dump.ExcludeNames...)
	copy.Dump.ExcludePatterns = append([]string(nil), c.Dump.ExcludePatterns...)
	return &copy
}

// VariantValues returns valid pydown asset variants
func VariantValues() []string {
	return []string{"install_only_stripped", "install_only", "full", "debug"}
}

// IsValidVariant checks if variant is valid
func IsValidVariant(variant string) bool {
	for _, valid := range VariantValues() {
		if variant == valid {
			return true
		}
	}
	return false
}
