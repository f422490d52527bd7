package finder

import (
	"context"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Finder searches the immediate entries of root directories for paths that
// satisfy a predicate chain. The zero value is not usable; construct with New.
// A Finder holds no per-call state and is safe for concurrent use.
type Finder struct {
	fs          afero.Fs
	workDir     string
	concurrency int
}

// Option configures a Finder.
type Option func(*Finder)

// WithFS sets the filesystem the Finder searches. Defaults to the OS
// filesystem. Supplying afero.NewMemMapFs() (together with WithWorkDir, since
// the in-memory filesystem has no process working directory) is the usual
// testing setup.
func WithFS(fs afero.Fs) Option {
	return func(f *Finder) { f.fs = fs }
}

// WithWorkDir sets the directory relative paths are resolved against and the
// directory searched when dirs is nil. When unset, the process working
// directory is looked up at call time.
func WithWorkDir(dir string) Option {
	return func(f *Finder) { f.workDir = dir }
}

// WithConcurrency bounds how many roots FindAll lists concurrently.
// Zero or negative means unbounded, matching one goroutine per root.
func WithConcurrency(n int) Option {
	return func(f *Finder) { f.concurrency = n }
}

// New creates a Finder searching the OS filesystem with paths resolved
// against the process working directory, unless options say otherwise.
func New(opts ...Option) *Finder {
	f := &Finder{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindAll collects every entry immediately beneath the given roots whose
// absolute path passes all predicates, deduplicated and sorted ascending.
// Roots may be listed and filtered concurrently, but results are assembled in
// root order so the output is identical to FindAllSync for the same
// filesystem state. Any invalid root or failing predicate fails the whole
// call with no partial results; ctx cancellation fails the call with ctx's
// error. dirs follows the nil / empty / populated shapes described in the
// package documentation.
func (f *Finder) FindAll(ctx context.Context, dirs []string, predicates ...Predicate) ([]string, error) {
	roots, err := f.normalizeDirs(dirs)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 || len(predicates) == 0 {
		return []string{}, nil
	}

	groups := make([][]string, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	if f.concurrency > 0 {
		g.SetLimit(f.concurrency)
	}
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			matches, err := f.scanRoot(gctx, root, chain(predicates))
			if err != nil {
				return err
			}
			groups[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, group := range groups {
		all = append(all, group...)
	}
	return dedupeSorted(all), nil
}

// FindAllSync is the blocking form of FindAll: every filesystem call and
// predicate evaluation happens sequentially on the caller's goroutine, roots
// in order, entries within each root in ascending path order.
func (f *Finder) FindAllSync(dirs []string, predicates ...Predicate) ([]string, error) {
	roots, err := f.normalizeDirs(dirs)
	if err != nil {
		return nil, err
	}
	var all []string
	err = f.traverse(context.Background(), roots, chain(predicates), func(path string) bool {
		all = append(all, path)
		return true
	})
	if err != nil {
		return nil, err
	}
	return dedupeSorted(all), nil
}

// FindOnlyOne locates at most one entry beneath the given roots passing all
// predicates. It returns (path, true, nil) for exactly one match and
// ("", false, nil) when nothing matches — absence is an ordinary outcome, not
// an error. Observing a second match stops the search and fails with a
// *MultipleMatchError; the same absolute path reached through two duplicate
// roots counts as two observations. Traversal is incremental, so ctx
// cancellation between filesystem calls and predicate runs fails the call.
func (f *Finder) FindOnlyOne(ctx context.Context, dirs []string, predicates ...Predicate) (string, bool, error) {
	return f.findOnlyOne(ctx, dirs, predicates)
}

// FindOnlyOneSync is the blocking form of FindOnlyOne.
func (f *Finder) FindOnlyOneSync(dirs []string, predicates ...Predicate) (string, bool, error) {
	return f.findOnlyOne(context.Background(), dirs, predicates)
}

func (f *Finder) findOnlyOne(ctx context.Context, dirs []string, predicates []Predicate) (string, bool, error) {
	roots, err := f.normalizeDirs(dirs)
	if err != nil {
		return "", false, err
	}

	var (
		first    string
		found    bool
		multiple *MultipleMatchError
	)
	err = f.traverse(ctx, roots, chain(predicates), func(path string) bool {
		if !found {
			first, found = path, true
			return true
		}
		multiple = &MultipleMatchError{First: first, Second: path}
		return false
	})
	if err != nil {
		return "", false, err
	}
	if multiple != nil {
		return "", false, multiple
	}
	return first, found, nil
}

// dedupeSorted sorts paths ascending and drops duplicates in place. The
// result is always non-nil so callers can distinguish "empty result" from
// the nil returned on failure.
func dedupeSorted(paths []string) []string {
	if len(paths) == 0 {
		return []string{}
	}
	sort.Strings(paths)
	unique := paths[:1]
	for _, path := range paths[1:] {
		if path != unique[len(unique)-1] {
			unique = append(unique, path)
		}
	}
	return unique
}

// Package-level convenience wrappers over a default OS-filesystem Finder.

var defaultFinder = New()

// FindAll searches with a default OS Finder. See (*Finder).FindAll.
func FindAll(ctx context.Context, dirs []string, predicates ...Predicate) ([]string, error) {
	return defaultFinder.FindAll(ctx, dirs, predicates...)
}

// FindAllSync searches with a default OS Finder. See (*Finder).FindAllSync.
func FindAllSync(dirs []string, predicates ...Predicate) ([]string, error) {
	return defaultFinder.FindAllSync(dirs, predicates...)
}

// FindOnlyOne searches with a default OS Finder. See (*Finder).FindOnlyOne.
func FindOnlyOne(ctx context.Context, dirs []string, predicates ...Predicate) (string, bool, error) {
	return defaultFinder.FindOnlyOne(ctx, dirs, predicates...)
}

// FindOnlyOneSync searches with a default OS Finder. See (*Finder).FindOnlyOneSync.
func FindOnlyOneSync(dirs []string, predicates ...Predicate) (string, bool, error) {
	return defaultFinder.FindOnlyOneSync(dirs, predicates...)
}
