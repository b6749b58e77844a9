package model

import "sort"

// Summary holds system-level statistics for the Overview report surfaces
type Summary struct {
	TotalDirectories int
	TotalFiles       int
	AnalysisDate     string

	// Count of directories per resolved category
	CategoryCounts map[string]int

	// Count of files per file-type category across the whole project
	FileTypeCounts map[FileCategory]int

	Architecture ArchitectureClassification
}

// BuildSummary generates a Summary from resolved records
func BuildSummary(records []*DirectoryRecord, arch ArchitectureClassification, analysisDate string) *Summary {
	s := &Summary{
		AnalysisDate:   analysisDate,
		CategoryCounts: make(map[string]int),
		FileTypeCounts: make(map[FileCategory]int),
		Architecture:   arch,
	}

	for _, rec := range records {
		s.TotalDirectories++
		s.TotalFiles += rec.FileCount
		s.CategoryCounts[rec.Category]++
		for cat, n := range rec.FileTypeDistribution {
			s.FileTypeCounts[cat] += n
		}
	}

	return s
}

// SortedCategories returns the category names in descending count order,
// alphabetical on ties
func (s *Summary) SortedCategories() []string {
	names := make([]string, 0, len(s.CategoryCounts))
	for name := range s.CategoryCounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.CategoryCounts[names[i]] != s.CategoryCounts[names[j]] {
			return s.CategoryCounts[names[i]] > s.CategoryCounts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
