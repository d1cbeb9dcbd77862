// Package cmd wires the dukatools subcommands together with cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dukatools/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dukatools",
	Short: "A personal toolbox of small command-line utilities",
	Long: `dukatools bundles a handful of small utilities behind one binary:

  vidcut  - trim videos fast (stream copy) with a frame-accurate fallback
  tree    - print a directory tree
  dump    - dump directory contents as text
  pydown  - download standalone CPython builds
  doctor  - check that external tools are available`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: auto-discover)")
}

// loadConfig resolves the effective configuration for a command invocation.
// Flags are applied on top by each command after this returns.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
