package analyzer

import (
	"path/filepath"
	"strings"
	"testing"

	"dirsight/internal/model"
)

const sampleProject = "testdata/sample_project"

func analyzeSample(t *testing.T, deps []model.Dependency) map[string]*model.DirectoryRecord {
	t.Helper()

	files, err := ScanDirectory(sampleProject, nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected fixture files")
	}

	engine := NewEngine(DefaultConfig(sampleProject))
	records, _, err := engine.Analyze(files, deps, nil)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	byPath := make(map[string]*model.DirectoryRecord)
	for _, rec := range records {
		byPath[rec.Path] = rec
	}
	return byPath
}

func TestEngineAnalyzeSampleProject(t *testing.T) {
	deps := []model.Dependency{
		{Name: "react"},
		{Name: "redux"},
		{Name: "i18next"},
	}
	byPath := analyzeSample(t, deps)

	tests := []struct {
		path     string
		purpose  string
		category string
	}{
		{"src", "", "other"}, // container
		{"src/components", "UI components", "component"},
		{"src/pages", "pages", "page"},
		{"src/utils", "utility functions", "utility"},
		{"src/store", "Redux state management", "other"},
		{"src/locales", "internationalization resources", "other"},
	}

	for _, tt := range tests {
		rec, ok := byPath[tt.path]
		if !ok {
			t.Errorf("missing record for %s (have %v)", tt.path, paths(byPath))
			continue
		}
		if rec.Purpose != tt.purpose {
			t.Errorf("%s purpose = %q, expected %q", tt.path, rec.Purpose, tt.purpose)
		}
		if rec.Category != tt.category {
			t.Errorf("%s category = %q, expected %q", tt.path, rec.Category, tt.category)
		}
	}
}

func TestEngineRecordAggregates(t *testing.T) {
	byPath := analyzeSample(t, nil)

	components := byPath["src/components"]
	if components == nil {
		t.Fatal("missing src/components record")
	}

	if components.FileCount != 2 {
		t.Errorf("FileCount = %d, expected 2", components.FileCount)
	}
	if components.FileTypeDistribution[model.FileComponent] != 1 {
		t.Errorf("expected one component file, got %v", components.FileTypeDistribution)
	}
	if components.FileTypeDistribution[model.FileStyle] != 1 {
		t.Errorf("expected one style file, got %v", components.FileTypeDistribution)
	}
	if !components.CoLocation.Styles {
		t.Error("expected co-located styles")
	}
	if components.Depth != 2 {
		t.Errorf("Depth = %d, expected 2", components.Depth)
	}
	if components.ParentDirectory != "src" {
		t.Errorf("ParentDirectory = %q, expected src", components.ParentDirectory)
	}
}

func TestEngineHierarchy(t *testing.T) {
	byPath := analyzeSample(t, nil)

	src := byPath["src"]
	if src == nil {
		t.Fatal("missing src record")
	}

	expected := []string{"src/components", "src/locales", "src/pages", "src/store", "src/utils"}
	if strings.Join(src.ChildDirectories, ",") != strings.Join(expected, ",") {
		t.Errorf("unexpected children: %v", src.ChildDirectories)
	}
}

func TestEngineOnDirectoryCallback(t *testing.T) {
	files, err := ScanDirectory(sampleProject, nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var seen []string
	cfg := DefaultConfig(sampleProject)
	cfg.OnDirectory = func(path string) { seen = append(seen, path) }

	engine := NewEngine(cfg)
	records, _, err := engine.Analyze(files, nil, nil)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(seen) != len(records) {
		t.Errorf("callback fired %d times for %d records", len(seen), len(records))
	}
}

func TestEngineEmptyInput(t *testing.T) {
	engine := NewEngine(DefaultConfig("."))
	records, arch, err := engine.Analyze(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
	if arch.Type != model.ArchUnknown {
		t.Errorf("expected unknown architecture, got %s", arch.Type)
	}
}

func TestEngineModuleAssignment(t *testing.T) {
	files, err := ScanDirectory(sampleProject, nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	modules := []model.ModuleBoundary{{Name: "web", Path: "src"}}
	engine := NewEngine(DefaultConfig(sampleProject))
	records, _, err := engine.Analyze(files, nil, modules)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	for _, rec := range records {
		if rec.Module != "web" {
			t.Errorf("%s module = %q, expected web", rec.Path, rec.Module)
		}
	}
}

func paths(byPath map[string]*model.DirectoryRecord) []string {
	var out []string
	for p := range byPath {
		out = append(out, p)
	}
	return out
}

func TestScanDirectoryExcludes(t *testing.T) {
	files, err := ScanDirectory(sampleProject, []string{"**/locales/**"})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	for _, f := range files {
		if strings.Contains(filepath.ToSlash(f), "/locales/") {
			t.Errorf("excluded path leaked into scan: %s", f)
		}
	}
}

func TestReadFileSampleStripsComments(t *testing.T) {
	text, err := ReadFileSample(filepath.Join(sampleProject, "src/store/cart.ts"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(text, "createSlice") {
		t.Error("expected file content")
	}

	stripped := stripComments("const a = 1 // trailing\n/* block */const b = 2")
	if strings.Contains(stripped, "trailing") || strings.Contains(stripped, "block") {
		t.Errorf("comments not stripped: %q", stripped)
	}
}
