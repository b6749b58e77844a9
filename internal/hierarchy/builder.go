package hierarchy

import (
	"fmt"
	"sort"
	"strings"

	"dirsight/internal/model"
)

// Build assigns parent/child references across a flat record list by
// longest-matching path prefix. Records are matched on their slash paths
// only; the input set is exactly partitioned into roots and referenced
// children.
func Build(records []*model.DirectoryRecord) {
	byPath := make(map[string]*model.DirectoryRecord, len(records))
	for _, rec := range records {
		byPath[rec.Path] = rec
		rec.ParentDirectory = ""
		rec.ChildDirectories = nil
	}

	for _, rec := range records {
		parent := longestPrefixParent(rec.Path, byPath)
		if parent == nil {
			continue
		}
		rec.ParentDirectory = parent.Path
		parent.ChildDirectories = append(parent.ChildDirectories, rec.Path)
	}

	for _, rec := range records {
		sort.Strings(rec.ChildDirectories)
	}
}

// longestPrefixParent finds the nearest existing ancestor record. Walking
// segment by segment handles gaps where an intermediate directory had no
// files and was excluded from the record set.
func longestPrefixParent(path string, byPath map[string]*model.DirectoryRecord) *model.DirectoryRecord {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i > 0; i-- {
		candidate := strings.Join(segments[:i], "/")
		if rec, ok := byPath[candidate]; ok {
			return rec
		}
	}
	return nil
}

// Roots returns the records with no parent, in path order
func Roots(records []*model.DirectoryRecord) []*model.DirectoryRecord {
	var roots []*model.DirectoryRecord
	for _, rec := range records {
		if rec.ParentDirectory == "" {
			roots = append(roots, rec)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Path < roots[j].Path })
	return roots
}

// RenderTree produces the indentation-based tree representation used for
// progress reporting and handed to the documentation renderers. Each line
// carries the directory name, its purpose when present, and its direct
// file count.
func RenderTree(records []*model.DirectoryRecord) string {
	byPath := make(map[string]*model.DirectoryRecord, len(records))
	for _, rec := range records {
		byPath[rec.Path] = rec
	}

	var sb strings.Builder
	for _, root := range Roots(records) {
		renderNode(&sb, root, byPath, 0)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, rec *model.DirectoryRecord, byPath map[string]*model.DirectoryRecord, depth int) {
	indent := strings.Repeat("  ", depth)
	label := rec.Basename()
	if label == "" {
		label = rec.Path
	}

	if rec.Purpose != "" {
		fmt.Fprintf(sb, "%s%s/ - %s (%d files)\n", indent, label, rec.Purpose, rec.FileCount)
	} else {
		fmt.Fprintf(sb, "%s%s/ (%d files)\n", indent, label, rec.FileCount)
	}

	for _, childPath := range rec.ChildDirectories {
		if child, ok := byPath[childPath]; ok {
			renderNode(sb, child, byPath, depth+1)
		}
	}
}
