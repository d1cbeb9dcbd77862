// Package dirproc walks directories for the dump and tree tools.
//
// Both tools share the same exclusion rules: exact base-name matches and
// regular expressions applied to the slash-separated relative path.
package dirproc

import (
	"fmt"
	"regexp"
)

// CompilePatterns compiles exclusion regexes, failing on the first bad one.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		rx, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, rx)
	}
	return compiled, nil
}

// excluder decides which entries a walk skips.
type excluder struct {
	names    map[string]bool
	patterns []*regexp.Regexp
}

func newExcluder(names []string, patterns []*regexp.Regexp) *excluder {
	nameSet := make(map[string]bool, len(names))
	for _, name := range names {
		nameSet[name] = true
	}
	return &excluder{names: nameSet, patterns: patterns}
}

// skip reports whether the entry is excluded. An excluded directory is not
// descended into.
func (e *excluder) skip(baseName, relPath string) bool {
	if e.names[baseName] {
		return true
	}
	for _, rx := range e.patterns {
		if rx.MatchString(relPath) {
			return true
		}
	}
	return false
}
