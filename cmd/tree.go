package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dukatools/dirproc"
)

var (
	treeDirsOnly        bool
	treeExcludeNames    []string
	treeExcludePatterns []string
)

var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Print a directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	flags := treeCmd.Flags()
	flags.BoolVarP(&treeDirsOnly, "dirs-only", "d", false, "list directories only")
	flags.StringArrayVar(&treeExcludeNames, "exclude-name", nil, "skip entries with this base name (repeatable)")
	flags.StringArrayVar(&treeExcludePatterns, "exclude-pattern", nil, "skip entries whose relative path matches this regex (repeatable)")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	patterns, err := dirproc.CompilePatterns(treeExcludePatterns)
	if err != nil {
		return err
	}

	return dirproc.NewTreePrinter(root, os.Stdout).
		SetDirsOnly(treeDirsOnly).
		SetExcludes(treeExcludeNames, patterns).
		Run()
}
