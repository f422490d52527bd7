// Package finder locates filesystem entries (files or directories) immediately
// beneath a set of root directories whose absolute paths satisfy a chain of
// caller-supplied predicates.
//
// The package offers two result families with identical matching semantics:
//   - FindAll / FindAllSync collect every matching entry across all roots into
//     a deduplicated slice sorted ascending by absolute path.
//   - FindOnlyOne / FindOnlyOneSync locate at most one matching entry and fail
//     with a *MultipleMatchError when a second match is observed.
//
// Each family comes in a blocking form (FindAllSync, FindOnlyOneSync) and a
// context-aware form (FindAll, FindOnlyOne). The context-aware form honors
// cancellation between filesystem calls and predicate evaluations, and FindAll
// may overlap directory I/O across roots; given the same filesystem state both
// forms produce byte-identical results.
//
// # Directories argument
//
// The dirs argument of every entry point is a []string with three shapes:
//   - nil: search exactly the current working directory
//   - empty (non-nil): search nothing; the result is empty, the filesystem is
//     never touched, and no error is returned
//   - one or more paths: each resolved to absolute form against the working
//     directory and searched in order; duplicates are kept as separate roots
//
// Traversal never recurses: only the immediate entries of each root are
// examined. Matching a subdirectory's own path and supplying it as a further
// root is how deeper structure is reached.
//
// # Predicates
//
// A Predicate maps an absolute path to a pass/fail outcome and may fail.
// Predicates are evaluated in the order supplied and every predicate must pass
// for an entry to match. Supplying zero predicates means nothing can match:
// the result is empty and the filesystem is never touched, keeping "no
// filters" and "no directories" symmetric.
//
// Convenience factories for the common cases (basename equality, glob, regexp,
// extension, entry kind) live in match.go.
//
// # Failure model
//
// All failures are fatal for the whole call and no partial results are ever
// returned: a root that is missing or not a directory yields a
// *InvalidRootError, a predicate failure yields a *PredicateError wrapping the
// original cause, and a second match in the single-match family yields a
// *MultipleMatchError. A zero-match single search is not an error; it reports
// found == false.
//
// # Example
//
//	f := finder.New()
//	paths, err := f.FindAllSync([]string{"docs", "archive"},
//		finder.Extension(".md"),
//		finder.NameGlob("plan-*"),
//	)
//
// The filesystem is accessed through an afero.Fs, so tests can run against an
// in-memory filesystem via finder.New(finder.WithFS(afero.NewMemMapFs()),
// finder.WithWorkDir("/")).
package finder
