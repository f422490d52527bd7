package finder

import "path/filepath"

// normalizeDirs converts the caller-facing dirs argument into the concrete
// ordered sequence of absolute roots to traverse:
//
//   - nil: exactly the working directory
//   - empty (non-nil): no roots at all, so the search yields nothing
//   - otherwise: each element resolved independently against the working
//     directory, input order preserved, duplicates kept (each root may
//     contribute matches on its own; the all-matches aggregator dedupes)
//
// Resolution is pure path arithmetic; the filesystem is not consulted here.
// Root existence is checked later, during traversal.
func (f *Finder) normalizeDirs(dirs []string) ([]string, error) {
	if dirs == nil {
		cwd, err := f.resolve(".")
		if err != nil {
			return nil, err
		}
		return []string{cwd}, nil
	}
	roots := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := f.resolve(dir)
		if err != nil {
			return nil, err
		}
		roots = append(roots, abs)
	}
	return roots, nil
}

// resolve returns the absolute, cleaned form of path. Relative paths are
// joined onto the Finder's working directory; when no working directory was
// configured the process working directory is used, looked up at call time so
// a chdir between calls is respected.
func (f *Finder) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if f.workDir != "" {
		return filepath.Join(f.workDir, path), nil
	}
	return filepath.Abs(path)
}
