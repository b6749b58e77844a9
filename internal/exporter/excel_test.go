package exporter

import (
	"os"
	"strings"
	"testing"

	"dirsight/internal/config"
	"dirsight/internal/model"

	"github.com/xuri/excelize/v2"
)

func testRecords() []*model.DirectoryRecord {
	return []*model.DirectoryRecord{
		{
			Path:             "src",
			Category:         "other",
			Depth:            1,
			ChildDirectories: []string{"src/components", "src/node_modules", "src/utils"},
		},
		{
			Path:     "src/components",
			Purpose:  "UI components",
			Category: "component",
			FileTypeDistribution: map[model.FileCategory]int{
				model.FileComponent: 3,
				model.FileStyle:     1,
			},
			PrimaryFileTypes: []model.FileCategory{model.FileComponent, model.FileStyle},
			NamingPattern:    "PascalCase",
			FileCount:        4,
			Depth:            2,
			ParentDirectory:  "src",
		},
		{
			Path:            "src/node_modules",
			Category:        "other",
			FileCount:       120,
			Depth:           2,
			ParentDirectory: "src",
		},
		{
			Path:     "src/utils",
			Purpose:  "utility functions",
			Category: "utility",
			FileTypeDistribution: map[model.FileCategory]int{
				model.FileUtility: 2,
			},
			PrimaryFileTypes: []model.FileCategory{model.FileUtility},
			NamingPattern:    "camelCase",
			FileCount:        2,
			Depth:            2,
			ParentDirectory:  "src",
		},
	}
}

func testSummary(records []*model.DirectoryRecord) *model.Summary {
	arch := model.ArchitectureClassification{
		Type:       model.ArchFeatureBased,
		Confidence: model.ConfidenceMedium,
		Indicators: []string{"feature directory checkout"},
	}
	return model.BuildSummary(records, arch, "2026-08-31")
}

func TestExcelExport(t *testing.T) {
	records := testRecords()
	cfg := &config.Config{
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "test_report",
		},
	}

	exporter := NewExcelExporter()
	if err := exporter.Export(testSummary(records), records, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	outputPath := cfg.GetOutputPath()
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatal("Output file was not created")
	}

	f, err := excelize.OpenFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Overview", "Directories"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
			t.Errorf("Missing sheet %q", sheet)
		}
	}
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		t.Error("Default Sheet1 should be removed")
	}
}

func TestExcelDirectoriesSheet(t *testing.T) {
	records := testRecords()
	cfg := &config.Config{
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "test_directories",
		},
	}

	exporter := NewExcelExporter()
	if err := exporter.Export(testSummary(records), records, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Directories")
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows) < 2 || rows[0][0] != "Directory" {
		t.Fatalf("Missing header row, got %v", rows)
	}

	// Hierarchy ordering: parent first, children indented below it
	if rows[1][0] != "src/" {
		t.Errorf("Row 2 = %q, expected src/", rows[1][0])
	}
	if rows[2][0] != "  components/" {
		t.Errorf("Row 3 = %q, expected indented components/", rows[2][0])
	}
	if rows[2][1] != "UI components" {
		t.Errorf("Row 3 purpose = %q", rows[2][1])
	}

	// node_modules is noise and must not get a report row
	for i, row := range rows {
		if len(row) > 0 && strings.Contains(row[0], "node_modules") {
			t.Errorf("Row %d: noise directory leaked into report", i+1)
		}
	}

	// 1 header + src + components + utils
	if len(rows) != 4 {
		t.Errorf("Expected 4 rows, got %d: %v", len(rows), rows)
	}

	t.Log("✅ Verified row ordering and noise filtering")
}

func TestExcelOverviewSheet(t *testing.T) {
	records := testRecords()
	cfg := &config.Config{
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "test_overview",
		},
	}

	exporter := NewExcelExporter()
	if err := exporter.Export(testSummary(records), records, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Overview")
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	values := make(map[string]string)
	for _, row := range rows {
		if len(row) >= 2 {
			values[row[0]] = row[1]
		}
	}

	checks := map[string]string{
		"Analysis Date":           "2026-08-31",
		"Total Directories":       "4",
		"Total Files":             "126",
		"Architecture":            "feature-based",
		"Architecture Confidence": "medium",
	}
	for key, want := range checks {
		if got := values[key]; got != want {
			t.Errorf("%s = %q, expected %q", key, got, want)
		}
	}

	// "other" only shows up in the category section, "style" only in the
	// file-type section ("component" appears in both, so it is ambiguous here)
	if got := values["other"]; got != "2" {
		t.Errorf("other category count = %q, expected 2", got)
	}
	if got := values["style"]; got != "1" {
		t.Errorf("style file count = %q, expected 1", got)
	}
}
