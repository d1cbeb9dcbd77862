package dirproc

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"golang.org/x/net/html/charset"
)

// Dumper writes the text content of every file under a root directory as
// "File: <rel>" blocks, decoding each file to UTF-8 from whatever charset
// it appears to use.
//
// Read and decode errors are reported inline per file; the walk never
// aborts because of one unreadable entry.
type Dumper struct {
	root      string
	out       io.Writer
	recursive bool
	excl      *excluder
}

// NewDumper creates a Dumper for root writing to out.
func NewDumper(root string, out io.Writer) *Dumper {
	return &Dumper{
		root:      root,
		out:       out,
		recursive: true,
		excl:      newExcluder(nil, nil),
	}
}

// SetRecursive sets whether subdirectories are descended into.
func (d *Dumper) SetRecursive(recursive bool) *Dumper {
	d.recursive = recursive
	return d
}

// SetExcludes sets the exclusion rules: exact base names and compiled
// regexes over the relative slash path.
func (d *Dumper) SetExcludes(names []string, patterns []*regexp.Regexp) *Dumper {
	d.excl = newExcluder(names, patterns)
	return d
}

// Run walks the tree and writes one block per file.
func (d *Dumper) Run() error {
	if _, err := os.Stat(d.root); err != nil {
		return fmt.Errorf("path not found: %s", d.root)
	}
	return d.walk(".")
}

func (d *Dumper) walk(rel string) error {
	entries, err := os.ReadDir(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil {
		fmt.Fprintf(d.out, "Error reading directory %s: %v\n\n", rel, err)
		return nil
	}

	for _, entry := range entries {
		entryRel := path.Join(rel, entry.Name())
		if d.excl.skip(entry.Name(), entryRel) {
			continue
		}

		if entry.IsDir() {
			if d.recursive {
				if err := d.walk(entryRel); err != nil {
					return err
				}
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		d.dumpFile(entryRel)
	}
	return nil
}

// dumpFile writes a single "File:" block, or an inline error line when the
// file cannot be read or decoded.
func (d *Dumper) dumpFile(rel string) {
	fmt.Fprintf(d.out, "File: %s\n\n", rel)

	content, err := readDecoded(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil {
		fmt.Fprintf(d.out, "Error reading file %s: %v\n\n", rel, err)
		return
	}

	fmt.Fprintf(d.out, "Content:\n%s\n\n", content)
}

// readDecoded reads a file and converts it to UTF-8, sniffing the source
// charset from the content itself.
func readDecoded(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// charset.NewReader sniffs the encoding from the first chunk and
	// transcodes the rest; undecodable bytes become replacement runes.
	reader, err := charset.NewReader(f, "")
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
