package exporter

import (
	"fmt"
	"sort"
	"strings"

	"dirsight/internal/config"
	"dirsight/internal/exporter/common"
	"dirsight/internal/model"
	"dirsight/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report
func (e *ExcelExporter) Export(summary *model.Summary, records []*model.DirectoryRecord, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Create Overview Sheet
	if err := e.writeOverview(f, styler, summary); err != nil {
		return err
	}

	// 2. Create Directories Sheet
	if err := e.writeDirectories(f, styler, records); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	// Save
	if err := f.SaveAs(outputFile); err != nil {
		return err
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := "Overview"
	f.NewSheet(sheet)

	// Section A: Project Summary
	headers := []string{"Metric", "Value"}

	row := 1
	e.writeRow(f, sheet, row, headers, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Analysis Date", summary.AnalysisDate},
		{"Total Directories", summary.TotalDirectories},
		{"Total Files", summary.TotalFiles},
		{"Architecture", string(summary.Architecture.Type)},
		{"Architecture Confidence", string(summary.Architecture.Confidence)},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	if len(summary.Architecture.Indicators) > 0 {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Architecture Indicators")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), strings.Join(summary.Architecture.Indicators, "; "))
		row++
	}

	row += 2 // Spacer

	// Section B: Directory Categories
	headersB := []string{"Category", "Directories"}
	e.writeRow(f, sheet, row, headersB, s.HeaderStyle)
	row++

	for _, name := range summary.SortedCategories() {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.CategoryCounts[name])
		row++
	}

	row += 2 // Spacer

	// Section C: File Types
	headersC := []string{"File Type", "Files"}
	e.writeRow(f, sheet, row, headersC, s.HeaderStyle)
	row++

	for _, cat := range sortedFileTypes(summary.FileTypeCounts) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(cat))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.FileTypeCounts[cat])
		row++
	}

	// Adjust column widths
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 50)

	return nil
}

// --- Directories Sheet Logic ---

func (e *ExcelExporter) writeDirectories(f *excelize.File, s *Styler, records []*model.DirectoryRecord) error {
	sheet := "Directories"
	f.NewSheet(sheet)

	headers := []string{"Directory", "Purpose", "Category", "Primary Types", "Naming", "Files", "Module", "Version"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, flat := range common.FlattenHierarchy(records) {
		rec := flat.Record

		// Noise check: dependency and tooling directories that slipped past
		// scanning exclusions are not worth a report row
		if utils.IsNoise(rec.Basename()) {
			continue
		}

		e.writeRecordRow(f, sheet, row, flat, s)
		row++
	}

	// Auto width
	f.SetColWidth(sheet, "A", "A", 50) // Directory
	f.SetColWidth(sheet, "B", "B", 45) // Purpose
	f.SetColWidth(sheet, "C", "C", 14) // Category
	f.SetColWidth(sheet, "D", "E", 20) // Types / Naming
	f.SetColWidth(sheet, "G", "H", 16) // Module / Version

	return nil
}

func (e *ExcelExporter) writeRecordRow(f *excelize.File, sheet string, row int, flat *common.FlattenedRecord, s *Styler) {
	rec := flat.Record

	// Column A: indented basename keeps the tree readable in a flat sheet
	name := strings.Repeat("  ", flat.Indent) + rec.Basename() + "/"
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)

	// Column B: Purpose (blank for suppressed containers)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Purpose)

	// Column C: Category
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.Category)

	// Column D: Primary file types
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), joinFileTypes(rec.PrimaryFileTypes))

	// Column E: Naming pattern
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), rec.NamingPattern)

	// Column F: File count
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), rec.FileCount)

	// Column G: Owning module
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), rec.Module)

	// Column H: Version tag
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), rec.Version)

	style := s.StyleFor(rec.Category)
	if rec.Purpose == "" {
		style = s.ContainerStyle
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), style)
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func joinFileTypes(types []model.FileCategory) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// sortedFileTypes orders file type counts descending, alphabetical on ties
func sortedFileTypes(counts map[model.FileCategory]int) []model.FileCategory {
	cats := make([]model.FileCategory, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}
