package finder

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// Name matches entries whose basename equals any of the given names.
func Name(names ...string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return func(_ context.Context, path string) (bool, error) {
		_, ok := set[filepath.Base(path)]
		return ok, nil
	}
}

// NameRegexp matches entries whose basename matches any of the given
// expressions.
func NameRegexp(patterns ...*regexp.Regexp) Predicate {
	return func(_ context.Context, path string) (bool, error) {
		base := filepath.Base(path)
		for _, pattern := range patterns {
			if pattern.MatchString(base) {
				return true, nil
			}
		}
		return false, nil
	}
}

// NameGlob matches entries whose basename matches any of the given glob
// patterns (gobwas/glob syntax, e.g. "plan-*.md"). Patterns are compiled on
// first evaluation; a malformed pattern surfaces as the predicate's error,
// failing the search it is used in.
func NameGlob(patterns ...string) Predicate {
	compile := sync.OnceValues(func() ([]glob.Glob, error) {
		globs := make([]glob.Glob, 0, len(patterns))
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
			}
			globs = append(globs, g)
		}
		return globs, nil
	})
	return func(_ context.Context, path string) (bool, error) {
		globs, err := compile()
		if err != nil {
			return false, err
		}
		base := filepath.Base(path)
		for _, g := range globs {
			if g.Match(base) {
				return true, nil
			}
		}
		return false, nil
	}
}

// Extension matches entries carrying any of the given file extensions.
// Matching is case-insensitive and the leading dot is optional, so ".MD",
// ".md", and "md" all match file.md and file.MD.
func Extension(exts ...string) Predicate {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = struct{}{}
	}
	return func(_ context.Context, path string) (bool, error) {
		_, ok := set[strings.ToLower(filepath.Ext(path))]
		return ok, nil
	}
}

// IsDir matches entries that are directories on the Finder's filesystem.
// Symlinks are followed, so a symlink to a directory matches.
func (f *Finder) IsDir() Predicate {
	return f.kindIs(true)
}

// IsFile matches entries that are regular files on the Finder's filesystem.
// Symlinks are followed, so a symlink to a file matches.
func (f *Finder) IsFile() Predicate {
	return f.kindIs(false)
}

func (f *Finder) kindIs(wantDir bool) Predicate {
	return func(_ context.Context, path string) (bool, error) {
		info, err := f.fs.Stat(path)
		if err != nil {
			return false, err
		}
		return info.IsDir() == wantDir, nil
	}
}
