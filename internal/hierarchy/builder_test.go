package hierarchy

import (
	"strings"
	"testing"

	"dirsight/internal/model"
)

func recs(paths ...string) []*model.DirectoryRecord {
	out := make([]*model.DirectoryRecord, len(paths))
	for i, p := range paths {
		out[i] = &model.DirectoryRecord{Path: p}
	}
	return out
}

func byPath(records []*model.DirectoryRecord) map[string]*model.DirectoryRecord {
	m := make(map[string]*model.DirectoryRecord)
	for _, r := range records {
		m[r.Path] = r
	}
	return m
}

func TestBuildParentLinks(t *testing.T) {
	records := recs("src", "src/components", "src/components/forms", "src/utils")
	Build(records)
	m := byPath(records)

	if m["src/components"].ParentDirectory != "src" {
		t.Errorf("expected src as parent, got %q", m["src/components"].ParentDirectory)
	}
	if m["src/components/forms"].ParentDirectory != "src/components" {
		t.Errorf("expected src/components as parent, got %q", m["src/components/forms"].ParentDirectory)
	}
	if m["src"].ParentDirectory != "" {
		t.Errorf("expected src to be a root, got parent %q", m["src"].ParentDirectory)
	}

	children := m["src"].ChildDirectories
	if len(children) != 2 || children[0] != "src/components" || children[1] != "src/utils" {
		t.Errorf("unexpected children for src: %v", children)
	}
}

func TestBuildSkipsMissingIntermediate(t *testing.T) {
	// src/assets had no files and produced no record; the grandchild still
	// attaches to the nearest existing ancestor
	records := recs("src", "src/assets/icons")
	Build(records)
	m := byPath(records)

	if m["src/assets/icons"].ParentDirectory != "src" {
		t.Errorf("expected gap to close to src, got %q", m["src/assets/icons"].ParentDirectory)
	}
}

func TestRoots(t *testing.T) {
	records := recs("src", "src/a", "docs")
	Build(records)

	roots := Roots(records)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Path != "docs" || roots[1].Path != "src" {
		t.Errorf("unexpected root order: %s, %s", roots[0].Path, roots[1].Path)
	}
}

func TestRenderTree(t *testing.T) {
	records := recs("src", "src/components")
	records[0].FileCount = 1
	records[1].Purpose = "UI components"
	records[1].FileCount = 4
	Build(records)

	tree := RenderTree(records)

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), tree)
	}
	if lines[0] != "src/ (1 files)" {
		t.Errorf("unexpected root line: %q", lines[0])
	}
	if lines[1] != "  components/ - UI components (4 files)" {
		t.Errorf("unexpected child line: %q", lines[1])
	}
}
