package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsHidden reports whether any component of rel starts with "." other than
// the literal "." and ".." components. rel is relative to the walk root.
func IsHidden(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// collectFiles returns every non-hidden regular file below dir whose
// extension is exactly ext. Hidden directories are not descended into.
// The result is in walk order.
func collectFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if IsHidden(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || filepath.Ext(path) != ext || !isRegular(path, d) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return files, nil
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// sortImages orders paths by file name, then by full path.
func sortImages(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		ni, nj := filepath.Base(paths[i]), filepath.Base(paths[j])
		if ni != nj {
			return ni < nj
		}
		return paths[i] < paths[j]
	})
}

// requireDir fails with a DirectoryNotFoundError unless path is a directory.
func requireDir(kind, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &DirectoryNotFoundError{Kind: kind, Path: path}
		}
		return fmt.Errorf("failed to stat %s directory: %w", kind, err)
	}
	if !info.IsDir() {
		return &DirectoryNotFoundError{Kind: kind, Path: path}
	}
	return nil
}
