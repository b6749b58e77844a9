package structure

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"dirsight/internal/config"
	"dirsight/internal/model"
)

// Report is the root object of the JSON export. Field order and sorted
// slices keep repeated runs byte-identical for diffing.
type Report struct {
	GeneratedAt  string       `json:"generatedAt"`
	Summary      Totals       `json:"summary"`
	Architecture Architecture `json:"architecture"`
	Directories  []Directory  `json:"directories"`
}

type Totals struct {
	Directories int            `json:"directories"`
	Files       int            `json:"files"`
	Categories  map[string]int `json:"categories"`
}

type Architecture struct {
	Type       string   `json:"type"`
	Confidence string   `json:"confidence"`
	Indicators []string `json:"indicators,omitempty"`
}

type Directory struct {
	Path          string         `json:"path"`
	Purpose       string         `json:"purpose,omitempty"`
	Category      string         `json:"category"`
	FileCount     int            `json:"fileCount"`
	Depth         int            `json:"depth"`
	PrimaryTypes  []string       `json:"primaryTypes,omitempty"`
	FileTypes     map[string]int `json:"fileTypes,omitempty"`
	NamingPattern string         `json:"namingPattern,omitempty"`
	HasIndexFiles bool           `json:"hasIndexFiles,omitempty"`
	Module        string         `json:"module,omitempty"`
	Version       string         `json:"version,omitempty"`
	Parent        string         `json:"parent,omitempty"`
	Children      []string       `json:"children,omitempty"`
}

// StructureExporter writes the machine-readable JSON report
type StructureExporter struct {
	// Stateless
}

func NewStructureExporter() *StructureExporter {
	return &StructureExporter{}
}

func (e *StructureExporter) Export(summary *model.Summary, records []*model.DirectoryRecord, cfg *config.Config) error {
	report := Report{
		GeneratedAt: summary.AnalysisDate,
		Summary: Totals{
			Directories: summary.TotalDirectories,
			Files:       summary.TotalFiles,
			Categories:  summary.CategoryCounts,
		},
		Architecture: Architecture{
			Type:       string(summary.Architecture.Type),
			Confidence: string(summary.Architecture.Confidence),
			Indicators: summary.Architecture.Indicators,
		},
	}

	sorted := make([]*model.DirectoryRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, rec := range sorted {
		report.Directories = append(report.Directories, toDirectory(rec))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal structure report: %w", err)
	}

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".json"
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write structure report: %w", err)
	}

	return nil
}

func toDirectory(rec *model.DirectoryRecord) Directory {
	dir := Directory{
		Path:          rec.Path,
		Purpose:       rec.Purpose,
		Category:      rec.Category,
		FileCount:     rec.FileCount,
		Depth:         rec.Depth,
		NamingPattern: rec.NamingPattern,
		HasIndexFiles: rec.HasIndexFiles,
		Module:        rec.Module,
		Version:       rec.Version,
		Parent:        rec.ParentDirectory,
		Children:      rec.ChildDirectories,
	}

	for _, t := range rec.PrimaryFileTypes {
		dir.PrimaryTypes = append(dir.PrimaryTypes, string(t))
	}

	if len(rec.FileTypeDistribution) > 0 {
		dir.FileTypes = make(map[string]int, len(rec.FileTypeDistribution))
		for cat, n := range rec.FileTypeDistribution {
			dir.FileTypes[string(cat)] = n
		}
	}

	return dir
}
