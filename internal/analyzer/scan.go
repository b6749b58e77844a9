package analyzer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// alwaysSkipped are directories never worth descending into, regardless of
// configured exclusions
var alwaysSkipped = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
}

// ScanDirectory walks the project root and collects every regular file,
// excluding directories matching excludePatterns. The returned list is
// sorted so downstream processing is deterministic.
func ScanDirectory(root string, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if alwaysSkipped[d.Name()] {
				return filepath.SkipDir
			}

			relPath, _ := filepath.Rel(root, path)
			relPath = filepath.ToSlash(relPath)

			for _, pat := range excludePatterns {
				if matchGlob(relPath, pat) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		files = append(files, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// matchGlob supports the ** recursive form used in exclusion patterns.
// Matching is anchored on path segment boundaries: **/out/** excludes an
// "out" segment anywhere in the path but never a directory whose name
// merely ends with "out" (checkout, layouts).
func matchGlob(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		clean := strings.Trim(strings.ReplaceAll(pattern, "**", ""), "/")
		if clean == "" {
			return false
		}
		return path == clean ||
			strings.HasPrefix(path, clean+"/") ||
			strings.Contains(path, "/"+clean+"/") ||
			strings.HasSuffix(path, "/"+clean)
	}
	ok, err := filepath.Match(pattern, path)
	return err == nil && ok
}
