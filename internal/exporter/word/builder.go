package word

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"dirsight/internal/config"
	"dirsight/internal/hierarchy"
	"dirsight/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(summary *model.Summary, records []*model.DirectoryRecord, cfg *config.Config) error {
	// 1. Extract embedded template to temp file
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	// Create temp file
	tmpFile, err := os.CreateTemp("", "dirsight-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Open docx from temp path
	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Replace Summary Placeholders
	doc.Replace("{{Date}}", summary.AnalysisDate, -1)
	doc.Replace("{{TotalDirectories}}", fmt.Sprintf("%d", summary.TotalDirectories), -1)
	doc.Replace("{{TotalFiles}}", fmt.Sprintf("%d", summary.TotalFiles), -1)
	doc.Replace("{{Architecture}}", string(summary.Architecture.Type), -1)

	// 3. Generate report content as plain text
	// The docx library handles the XML encoding
	var contentBuilder strings.Builder

	contentBuilder.WriteString("DIRECTORY STRUCTURE REPORT\n\n")
	contentBuilder.WriteString("Summary Overview:\n")
	contentBuilder.WriteString(fmt.Sprintf("  • Total Directories: %d\n", summary.TotalDirectories))
	contentBuilder.WriteString(fmt.Sprintf("  • Total Files: %d\n", summary.TotalFiles))
	contentBuilder.WriteString(fmt.Sprintf("  • Architecture: %s (%s confidence)\n\n",
		summary.Architecture.Type, summary.Architecture.Confidence))
	contentBuilder.WriteString(strings.Repeat("=", 80) + "\n\n")

	contentBuilder.WriteString("STRUCTURE\n\n")
	contentBuilder.WriteString(hierarchy.RenderTree(records))
	contentBuilder.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")

	buildCategorySections(&contentBuilder, summary, records)

	// Inject content (the library handles XML encoding)
	doc.Replace("{{Content}}", contentBuilder.String(), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildCategorySections lists the directories of each category with their
// resolved purposes, largest category first
func buildCategorySections(sb *strings.Builder, summary *model.Summary, records []*model.DirectoryRecord) {
	byCategory := make(map[string][]*model.DirectoryRecord)
	for _, rec := range records {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	categories := summary.SortedCategories()
	for i, category := range categories {
		recs := byCategory[category]
		if len(recs) == 0 {
			continue
		}
		sort.Slice(recs, func(a, b int) bool { return recs[a].Path < recs[b].Path })

		sb.WriteString(fmt.Sprintf("[%s] %d directories\n", strings.ToUpper(category), len(recs)))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-45s %-8s %s\n", "Directory", "Files", "Purpose"))

		for _, rec := range recs {
			sb.WriteString(fmt.Sprintf("%-45s %-8d %s\n",
				truncate(rec.Path, 45),
				rec.FileCount,
				rec.Purpose))
		}

		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
