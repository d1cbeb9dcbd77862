package dirproc

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

// TreePrinter renders a directory as a box-drawing tree, honoring the same
// exclusion rules as the Dumper.
type TreePrinter struct {
	root     string
	out      io.Writer
	dirsOnly bool
	excl     *excluder
}

// NewTreePrinter creates a TreePrinter for root writing to out.
func NewTreePrinter(root string, out io.Writer) *TreePrinter {
	return &TreePrinter{
		root: root,
		out:  out,
		excl: newExcluder(nil, nil),
	}
}

// SetDirsOnly restricts the tree to directories.
func (t *TreePrinter) SetDirsOnly(dirsOnly bool) *TreePrinter {
	t.dirsOnly = dirsOnly
	return t
}

// SetExcludes sets the exclusion rules: exact base names and compiled
// regexes over the relative slash path.
func (t *TreePrinter) SetExcludes(names []string, patterns []*regexp.Regexp) *TreePrinter {
	t.excl = newExcluder(names, patterns)
	return t
}

// Run prints the tree rooted at the configured directory.
func (t *TreePrinter) Run() error {
	info, err := os.Stat(t.root)
	if err != nil {
		return fmt.Errorf("path not found: %s", t.root)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", t.root)
	}

	fmt.Fprintln(t.out, filepath.Base(filepath.Clean(t.root)))
	return t.walk(".", "")
}

func (t *TreePrinter) walk(rel, prefix string) error {
	entries, err := os.ReadDir(filepath.Join(t.root, filepath.FromSlash(rel)))
	if err != nil {
		fmt.Fprintf(t.out, "%s└── [error: %v]\n", prefix, err)
		return nil
	}

	kept := entries[:0]
	for _, entry := range entries {
		if t.dirsOnly && !entry.IsDir() {
			continue
		}
		if t.excl.skip(entry.Name(), path.Join(rel, entry.Name())) {
			continue
		}
		kept = append(kept, entry)
	}

	for i, entry := range kept {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(kept)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(t.out, "%s%s%s\n", prefix, connector, entry.Name())

		if entry.IsDir() {
			if err := t.walk(path.Join(rel, entry.Name()), childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}
