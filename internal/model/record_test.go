package model

import "testing"

func TestDominantFileType(t *testing.T) {
	tests := []struct {
		name         string
		distribution map[FileCategory]int
		expected     FileCategory
	}{
		{
			name:         "empty distribution",
			distribution: nil,
			expected:     FileOther,
		},
		{
			name:         "clear majority",
			distribution: map[FileCategory]int{FileComponent: 1, FileService: 5},
			expected:     FileService,
		},
		{
			name:         "tie prefers component",
			distribution: map[FileCategory]int{FileComponent: 3, FileService: 3},
			expected:     FileComponent,
		},
		{
			name:         "tie prefers page over service",
			distribution: map[FileCategory]int{FileService: 2, FilePage: 2},
			expected:     FilePage,
		},
		{
			name:         "tie between unranked types is alphabetical",
			distribution: map[FileCategory]int{FileStyle: 2, FileConfig: 2},
			expected:     FileConfig,
		},
		{
			name:         "ranked type beats unranked on tie",
			distribution: map[FileCategory]int{FileModel: 2, FileConfig: 2},
			expected:     FileModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &DirectoryRecord{FileTypeDistribution: tt.distribution}
			if got := rec.DominantFileType(); got != tt.expected {
				t.Errorf("DominantFileType() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestDominantFileTypeDeterminism(t *testing.T) {
	rec := &DirectoryRecord{FileTypeDistribution: map[FileCategory]int{
		FileComponent: 2,
		FileUtility:   2,
		FileHook:      2,
		FileStyle:     2,
	}}

	first := rec.DominantFileType()
	for i := 0; i < 20; i++ {
		if got := rec.DominantFileType(); got != first {
			t.Fatalf("DominantFileType not deterministic: %s vs %s", got, first)
		}
	}
	if first != FileComponent {
		t.Errorf("expected component to win the tie, got %s", first)
	}
}

func TestConfidenceAtLeast(t *testing.T) {
	if !ConfidenceHigh.AtLeast(ConfidenceMedium) {
		t.Error("high should be at least medium")
	}
	if ConfidenceLow.AtLeast(ConfidenceMedium) {
		t.Error("low should not be at least medium")
	}
	if !ConfidenceMedium.AtLeast(ConfidenceMedium) {
		t.Error("medium should be at least itself")
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"src/components/forms", "forms"},
		{"src", "src"},
		{"", ""},
	}

	for _, tt := range tests {
		rec := &DirectoryRecord{Path: tt.path}
		if got := rec.Basename(); got != tt.expected {
			t.Errorf("Basename(%s) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	records := []*DirectoryRecord{
		{Path: "src/components", Category: "component", FileCount: 3,
			FileTypeDistribution: map[FileCategory]int{FileComponent: 3}},
		{Path: "src/utils", Category: "utility", FileCount: 2,
			FileTypeDistribution: map[FileCategory]int{FileUtility: 2}},
		{Path: "src/widgets", Category: "component", FileCount: 1,
			FileTypeDistribution: map[FileCategory]int{FileComponent: 1}},
	}

	s := BuildSummary(records, ArchitectureClassification{Type: ArchUnknown}, "2026-01-01")

	if s.TotalDirectories != 3 {
		t.Errorf("TotalDirectories = %d, expected 3", s.TotalDirectories)
	}
	if s.TotalFiles != 6 {
		t.Errorf("TotalFiles = %d, expected 6", s.TotalFiles)
	}
	if s.CategoryCounts["component"] != 2 {
		t.Errorf("component count = %d, expected 2", s.CategoryCounts["component"])
	}
	if s.FileTypeCounts[FileComponent] != 4 {
		t.Errorf("component file count = %d, expected 4", s.FileTypeCounts[FileComponent])
	}

	sorted := s.SortedCategories()
	if len(sorted) != 2 || sorted[0] != "component" || sorted[1] != "utility" {
		t.Errorf("unexpected sorted categories: %v", sorted)
	}
}
