package common

import (
	"sort"

	"dirsight/internal/model"
)

// FlattenedRecord represents a record with its indentation level for display
type FlattenedRecord struct {
	Record *model.DirectoryRecord
	Indent int
}

// FlattenHierarchy walks the resolved hierarchy depth-first and returns one
// row per record in display order. Roots come first in path order; children
// follow their parent using the sorted ChildDirectories lists, so every
// exporter renders the same ordering.
func FlattenHierarchy(records []*model.DirectoryRecord) []*FlattenedRecord {
	byPath := make(map[string]*model.DirectoryRecord, len(records))
	for _, rec := range records {
		byPath[rec.Path] = rec
	}

	var roots []*model.DirectoryRecord
	for _, rec := range records {
		if rec.ParentDirectory == "" {
			roots = append(roots, rec)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Path < roots[j].Path })

	var rows []*FlattenedRecord
	for _, root := range roots {
		appendSubtree(root, 0, byPath, &rows)
	}
	return rows
}

func appendSubtree(rec *model.DirectoryRecord, indent int, byPath map[string]*model.DirectoryRecord, rows *[]*FlattenedRecord) {
	*rows = append(*rows, &FlattenedRecord{Record: rec, Indent: indent})
	for _, childPath := range rec.ChildDirectories {
		if child, ok := byPath[childPath]; ok {
			appendSubtree(child, indent+1, byPath, rows)
		}
	}
}
