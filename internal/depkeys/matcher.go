package depkeys

import (
	"path"
	"strings"

	"dirsight/internal/model"
)

// activeEntry is one activated convention: a table entry plus the declared
// dependency that activated it.
type activeEntry struct {
	entry      *keywordEntry
	dependency string
}

// Index is the immutable dependency keyword index built once per run.
// It is safe to share between resolver calls because it is never mutated
// after Build returns.
type Index struct {
	active []activeEntry
}

// Relation is the result of checking one directory against the index
type Relation struct {
	IsRelated  bool
	Dependency string
	Purpose    string

	// Confirmed is set when a content scan found the dependency referenced
	// inside the directory. A strong basename match stands without it.
	Confirmed bool
}

// ReadSampleFunc reads up to maxBytes of one file's content for
// confirmation scans. Errors are treated as "no content".
type ReadSampleFunc func(path string) (string, error)

// Build creates an Index from the declared dependency list. Only table
// entries with at least one declared dependency are activated; activation
// order follows the table so that first-registered wins ties.
func Build(dependencies []model.Dependency) *Index {
	ix := &Index{}

	for i := range keywordTable {
		entry := &keywordTable[i]
		for _, dep := range dependencies {
			if matchesDependency(dep.Name, entry.Patterns) {
				ix.active = append(ix.active, activeEntry{entry: entry, dependency: dep.Name})
				break
			}
		}
	}

	return ix
}

// Empty reports whether no conventions were activated
func (ix *Index) Empty() bool {
	return len(ix.active) == 0
}

// confirmSampleLimit bounds confirmation reads per directory. Purely a
// performance ceiling: confirmation only strengthens an existing match.
const confirmSampleLimit = 3

// CheckRelation compares the directory's own basename (never ancestors)
// against every active keyword. A positive basename match may be confirmed
// by scanning a few of the directory's files for the dependency's markers;
// a failed confirmation does not invalidate the match.
func (ix *Index) CheckRelation(dirPath string, dirFiles []string, read ReadSampleFunc) Relation {
	base := strings.ToLower(path.Base(dirPath))
	if base == "" || base == "." {
		return Relation{}
	}

	for _, act := range ix.active {
		keyword, ok := matchBasename(base, act.entry.Keywords)
		if !ok {
			continue
		}

		rel := Relation{
			IsRelated:  true,
			Dependency: act.dependency,
			Purpose:    act.entry.Purpose,
		}

		// Submodule qualifier: a nested folder whose name is not the
		// dependency's own conventional name gets called out explicitly,
		// e.g. a "checkout" folder under a redux store tree.
		if base != keyword && base != strings.ToLower(act.entry.Canonical) {
			rel.Purpose = act.entry.Purpose + " submodule (" + base + ")"
		}

		if read != nil {
			rel.Confirmed = confirmRelation(act.entry, dirFiles, read)
		}

		return rel
	}

	return Relation{}
}

// matchBasename tests the five supported naming patterns and returns the
// keyword that matched.
func matchBasename(base string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		switch {
		case base == kw:
			return kw, true
		case base == kw+"s" || base+"s" == kw:
			// pluralized exact match in either direction
			return kw, true
		case strings.HasPrefix(base, kw+"-"):
			return kw, true
		case strings.HasSuffix(base, "-"+kw):
			return kw, true
		case strings.Contains(base, "-"+kw+"-"):
			return kw, true
		}
	}
	return "", false
}

// confirmRelation scans a small sample of the directory's files for the
// entry's markers
func confirmRelation(entry *keywordEntry, dirFiles []string, read ReadSampleFunc) bool {
	limit := confirmSampleLimit
	if len(dirFiles) < limit {
		limit = len(dirFiles)
	}

	for _, file := range dirFiles[:limit] {
		content, err := read(file)
		if err != nil {
			continue
		}
		for _, marker := range entry.Markers {
			if strings.Contains(content, marker) {
				return true
			}
		}
	}
	return false
}

// matchesDependency reports whether a declared dependency name activates
// one of the entry's patterns. Scoped package names match on the full name
// or on their final path segment.
func matchesDependency(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	tail := lower
	if idx := strings.LastIndex(lower, "/"); idx >= 0 {
		tail = lower[idx+1:]
	}

	for _, pat := range patterns {
		pat = strings.ToLower(pat)
		if lower == pat || tail == pat {
			return true
		}
	}
	return false
}
