package watcher

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher decides which file names in the settings directory trigger a reload
type Matcher interface {
	Match(path string) bool
}

type matcher struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles include and ignore patterns. Patterns apply to the base name only.
func NewMatcher(includes, ignores []string) (Matcher, error) {
	m := &matcher{}

	var err error

	if m.includes, err = compile(includes); err != nil {
		return nil, err
	}

	if m.ignores, err = compile(ignores); err != nil {
		return nil, err
	}

	return m, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		out = append(out, g)
	}

	return out, nil
}

// Match reports whether the base name of path is included and not ignored
func (m *matcher) Match(path string) bool {
	name := filepath.Base(path)

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return false
		}
	}

	for _, include := range m.includes {
		if include.Match(name) {
			return true
		}
	}

	return false
}
