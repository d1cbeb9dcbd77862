package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dukatools/dirproc"
)

var (
	dumpOutput          string
	dumpNonRecursive    bool
	dumpExcludeNames    []string
	dumpExcludePatterns []string
)

var dumpCmd = &cobra.Command{
	Use:   "dump [dir]",
	Short: "Dump directory contents as plain text",
	Long: `Walk a directory and print every file as a "File: <path>" header
followed by its content, transcoding non-UTF-8 files along the way.
Useful for feeding a codebase to tools that want a single text blob.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	flags := dumpCmd.Flags()
	flags.StringVarP(&dumpOutput, "output", "o", "", "write to this file instead of stdout")
	flags.BoolVar(&dumpNonRecursive, "non-recursive", false, "only dump files in the top-level directory")
	flags.StringArrayVar(&dumpExcludeNames, "exclude-name", nil, "skip entries with this base name (repeatable)")
	flags.StringArrayVar(&dumpExcludePatterns, "exclude-pattern", nil, "skip entries whose relative path matches this regex (repeatable)")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	names := append(append([]string(nil), cfg.Dump.ExcludeNames...), dumpExcludeNames...)
	rawPatterns := append(append([]string(nil), cfg.Dump.ExcludePatterns...), dumpExcludePatterns...)
	patterns, err := dirproc.CompilePatterns(rawPatterns)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if dumpOutput != "" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return dirproc.NewDumper(root, out).
		SetRecursive(!dumpNonRecursive).
		SetExcludes(names, patterns).
		Run()
}
