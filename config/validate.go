package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Validate vidcut config
	if err := c.Vidcut.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("vidcut config: %v", err))
	}

	// Validate dump config
	if err := c.Dump.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("dump config: %v", err))
	}

	// Validate pydown config
	if err := c.Pydown.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("pydown config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if vidcut configuration is valid
func (vc *VidcutConfig) Validate() error {
	var errors []string

	if vc.Suffix == "" {
		errors = append(errors, "suffix is required (derived outputs would collide with inputs)")
	}

	if vc.Video.Codec == "" {
		errors = append(errors, "video codec is required")
	}

	if vc.Video.Preset == "" {
		errors = append(errors, "video preset is required")
	}

	if vc.Video.CRF < 0 || vc.Video.CRF > 51 {
		errors = append(errors, fmt.Sprintf("video crf must be in [0, 51], got %d", vc.Video.CRF))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if dump configuration is valid
func (dc *DumpConfig) Validate() error {
	var errors []string

	for _, pattern := range dc.ExcludePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			errors = append(errors, fmt.Sprintf("invalid exclude pattern %q: %v", pattern, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if pydown configuration is valid
func (pc *PydownConfig) Validate() error {
	var errors []string

	if !strings.HasPrefix(pc.API, "http://") && !strings.HasPrefix(pc.API, "https://") {
		errors = append(errors, fmt.Sprintf("api must be an http(s) URL, got %q", pc.API))
	}

	if !IsValidVariant(pc.Variant) {
		errors = append(errors, fmt.Sprintf("invalid variant '%s', must be one of: %s",
			pc.Variant, strings.Join(VariantValues(), ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
