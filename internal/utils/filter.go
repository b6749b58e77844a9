package utils

import "strings"

// IsNoise determines if a directory name should be filtered out from reports
// This implements the STRICT filtering logic shared across all exporters
func IsNoise(name string) bool {
	// RULE 1: Empty or whitespace-only names
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}

	// Normalize to lowercase for case-insensitive matching
	lower := strings.ToLower(trimmed)

	// RULE 2: Tooling and VCS metadata directories
	metadata := map[string]bool{
		".git":          true,
		".svn":          true,
		".hg":           true,
		".idea":         true,
		".vscode":       true,
		".ds_store":     true,
		"__pycache__":   true,
		".pytest_cache": true,
		".cache":        true,
	}

	if metadata[lower] {
		return true
	}

	// RULE 3: Dependency and build output directories
	generated := map[string]bool{
		"node_modules":     true,
		"bower_components": true,
		"vendor":           true,
		"dist":             true,
		"build":            true,
		"out":              true,
		"target":           true,
		"coverage":         true,
		".next":            true,
		".nuxt":            true,
		".turbo":           true,
		".parcel-cache":    true,
	}

	return generated[lower]
}
