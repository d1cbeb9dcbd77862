package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Vidcut.Suffix != "_cut" {
		t.Errorf("Expected default suffix '_cut', got '%s'", cfg.Vidcut.Suffix)
	}
	if cfg.Vidcut.Video.Codec != "libx264" {
		t.Errorf("Expected default codec 'libx264', got '%s'", cfg.Vidcut.Video.Codec)
	}
	if cfg.Vidcut.Video.CRF != 18 {
		t.Errorf("Expected default CRF 18, got %d", cfg.Vidcut.Video.CRF)
	}
	if cfg.Pydown.Variant != "install_only_stripped" {
		t.Errorf("Expected default variant 'install_only_stripped', got '%s'", cfg.Pydown.Variant)
	}
	if cfg.Pydown.API != DefaultAPI {
		t.Errorf("Expected default API endpoint, got '%s'", cfg.Pydown.API)
	}

	// Defaults must pass their own validation
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig failed validation: %v", err)
	}
}

func TestConfigCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dump.ExcludeNames = []string{".git"}

	cp := cfg.Copy()
	cp.Dump.ExcludeNames[0] = "node_modules"
	cp.Vidcut.Suffix = "_x"

	if cfg.Dump.ExcludeNames[0] != ".git" {
		t.Error("Copy should not share the exclude names slice")
	}
	if cfg.Vidcut.Suffix != "_cut" {
		t.Error("Copy should not share scalar fields")
	}
}

func TestIsValidVariant(t *testing.T) {
	for _, variant := range VariantValues() {
		if !IsValidVariant(variant) {
			t.Errorf("IsValidVariant(%q) = false; want true", variant)
		}
	}
	if IsValidVariant("nightly") {
		t.Error("IsValidVariant('nightly') = true; want false")
	}
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vidcut.Suffix = ""
	cfg.Vidcut.Video.CRF = 99
	cfg.Pydown.Variant = "bogus"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation failure")
	}

	msg := err.Error()
	for _, want := range []string{"suffix", "crf", "variant"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validation error should mention %q, got: %v", want, msg)
		}
	}
}

func TestValidate_BadExcludePattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dump.ExcludePatterns = []string{"["}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation failure for bad regex")
	}
	if !strings.Contains(err.Error(), "exclude pattern") {
		t.Errorf("Expected exclude pattern error, got: %v", err)
	}
}

func TestValidate_BadAPI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pydown.API = "ftp://example.com"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation failure for non-http API URL")
	}
}
