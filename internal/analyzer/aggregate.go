package analyzer

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"dirsight/internal/model"
)

// Per-directory aggregation helpers: everything derivable from direct child
// filenames without reading content.

// primaryShareThreshold is the minimum share of direct children a file type
// needs to count as primary
const primaryShareThreshold = 0.20

// primaryFileTypes returns the categories holding at least 20% of the
// directory's direct files, in deterministic order
func primaryFileTypes(distribution map[model.FileCategory]int, total int) []model.FileCategory {
	if total == 0 {
		return nil
	}

	var primary []model.FileCategory
	for cat, count := range distribution {
		if float64(count)/float64(total) >= primaryShareThreshold {
			primary = append(primary, cat)
		}
	}
	// Sort by count descending, then name, so output is stable
	sort.Slice(primary, func(i, j int) bool {
		ci, cj := primary[i], primary[j]
		if distribution[ci] != distribution[cj] {
			return distribution[ci] > distribution[cj]
		}
		return ci < cj
	})
	return primary
}

// detectNamingPattern classifies the dominant filename casing of a
// directory's direct children
func detectNamingPattern(fileNames []string) string {
	counts := map[string]int{}

	for _, name := range fileNames {
		stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
		// Secondary extensions like .test or .module still belong to the
		// stem's casing
		if idx := strings.Index(stem, "."); idx > 0 {
			stem = stem[:idx]
		}
		if stem == "" || stem == "index" {
			continue
		}
		if pattern := caseOf(stem); pattern != "" {
			counts[pattern]++
		}
	}

	if len(counts) == 0 {
		return ""
	}
	if len(counts) > 1 {
		return "mixed"
	}
	for pattern := range counts {
		return pattern
	}
	return ""
}

var (
	pascalRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	camelRe  = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*[A-Z][a-zA-Z0-9]*$`)
	kebabRe  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)+$`)
	snakeRe  = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)+$`)
)

func caseOf(stem string) string {
	switch {
	case pascalRe.MatchString(stem):
		return "PascalCase"
	case camelRe.MatchString(stem):
		return "camelCase"
	case kebabRe.MatchString(stem):
		return "kebab-case"
	case snakeRe.MatchString(stem):
		return "snake_case"
	}
	return ""
}

// detectCoLocation reports which auxiliary kinds sit next to source files
func detectCoLocation(fileNames []string) model.CoLocationPattern {
	var pattern model.CoLocationPattern
	hasSource := false

	for _, name := range fileNames {
		base := strings.ToLower(path.Base(name))
		ext := path.Ext(base)

		switch ext {
		case ".js", ".jsx", ".ts", ".tsx", ".vue", ".svelte":
			if !strings.Contains(base, ".test.") && !strings.Contains(base, ".spec.") &&
				!strings.HasSuffix(base, ".d.ts") {
				hasSource = true
			}
		}

		switch {
		case ext == ".css" || ext == ".scss" || ext == ".sass" || ext == ".less":
			pattern.Styles = true
		case strings.Contains(base, ".test.") || strings.Contains(base, ".spec."):
			pattern.Tests = true
		case strings.HasSuffix(base, ".d.ts") || strings.Contains(base, ".types."):
			pattern.Types = true
		}
	}

	if !hasSource {
		return model.CoLocationPattern{}
	}
	return pattern
}

// hasIndexFile reports whether the directory re-exports through an index
// file
func hasIndexFile(fileNames []string) bool {
	for _, name := range fileNames {
		stem := strings.ToLower(path.Base(name))
		if strings.HasPrefix(stem, "index.") {
			return true
		}
	}
	return false
}

var versionTagRe = regexp.MustCompile(`^v[0-9]+$`)

var eraNames = map[string]bool{
	"legacy":     true,
	"old":        true,
	"deprecated": true,
	"next":       true,
}

// detectVersionTag finds a version or era tag in the path segments; the
// deepest tag wins
func detectVersionTag(dirPath string) string {
	tag := ""
	for _, seg := range strings.Split(dirPath, "/") {
		lower := strings.ToLower(seg)
		if versionTagRe.MatchString(lower) || eraNames[lower] {
			tag = lower
		}
	}
	return tag
}

// assignModule finds the owning module by longest boundary path prefix
func assignModule(dirPath string, modules []model.ModuleBoundary) string {
	best := ""
	bestLen := -1
	for _, m := range modules {
		p := strings.Trim(m.Path, "/")
		if p == "" {
			continue
		}
		if dirPath == p || strings.HasPrefix(dirPath, p+"/") {
			if len(p) > bestLen {
				best = m.Name
				bestLen = len(p)
			}
		}
	}
	return best
}
