package finder

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// traverse drives the search over roots in order, calling yield with each
// matching absolute path. Within one root, matches are yielded sorted
// ascending; across roots, groups follow the roots' order. yield returning
// false stops the traversal early without error (the single-match aggregator
// uses this to abandon the search after a second match).
//
// Empty roots or an empty predicate chain short-circuit to an immediate nil:
// both mean nothing can match, and the filesystem is never touched.
func (f *Finder) traverse(ctx context.Context, roots []string, preds chain, yield func(path string) bool) error {
	if len(roots) == 0 || len(preds) == 0 {
		return nil
	}
	for _, root := range roots {
		matches, err := f.scanRoot(ctx, root, preds)
		if err != nil {
			return err
		}
		for _, match := range matches {
			if !yield(match) {
				return nil
			}
		}
	}
	return nil
}

// scanRoot validates a single root, lists its immediate entries, and returns
// the entries that pass the predicate chain, sorted ascending by absolute
// path. A missing or non-directory root is fatal for the whole call, never a
// per-root skip. A failing predicate aborts the scan with a *PredicateError
// carrying the original cause.
func (f *Finder) scanRoot(ctx context.Context, root string, preds chain) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stat follows symlinks on the OS filesystem, so a root that is a
	// symlink to a directory is accepted and searched at its own path.
	info, err := f.fs.Stat(root)
	if err != nil {
		return nil, &InvalidRootError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidRootError{Path: root, Err: ErrNotDirectory}
	}

	entries, err := afero.ReadDir(f.fs, root)
	if err != nil {
		return nil, &InvalidRootError{Path: root, Err: err}
	}

	// Directory listing order is incidental; sort candidates before
	// evaluation so output order never depends on the filesystem.
	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, filepath.Join(root, entry.Name()))
	}
	sort.Strings(candidates)

	var matches []string
	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := preds.evaluate(ctx, path)
		switch result {
		case outcomeErrored:
			return nil, &PredicateError{Path: path, Err: err}
		case outcomePass:
			matches = append(matches, path)
		}
	}
	return matches, nil
}
