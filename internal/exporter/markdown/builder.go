package markdown

import (
	"fmt"
	"os"
	"strings"

	"dirsight/internal/config"
	"dirsight/internal/exporter/common"
	"dirsight/internal/hierarchy"
	"dirsight/internal/model"
	"dirsight/internal/utils"
)

type MarkdownExporter struct{}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

func (e *MarkdownExporter) Export(summary *model.Summary, records []*model.DirectoryRecord, cfg *config.Config) error {
	var sb strings.Builder

	sb.WriteString("# Directory Structure Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", summary.AnalysisDate))

	// Summary section
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Directories | %d |\n", summary.TotalDirectories))
	sb.WriteString(fmt.Sprintf("| Total Files | %d |\n", summary.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Architecture | %s (%s confidence) |\n",
		summary.Architecture.Type, summary.Architecture.Confidence))
	sb.WriteString("\n")

	if len(summary.Architecture.Indicators) > 0 {
		sb.WriteString("Architecture indicators:\n\n")
		for _, ind := range summary.Architecture.Indicators {
			sb.WriteString(fmt.Sprintf("- %s\n", ind))
		}
		sb.WriteString("\n")
	}

	// Category breakdown
	sb.WriteString("## Categories\n\n")
	sb.WriteString("| Category | Directories |\n")
	sb.WriteString("|----------|-------------|\n")
	for _, name := range summary.SortedCategories() {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", name, summary.CategoryCounts[name]))
	}
	sb.WriteString("\n")

	// Tree view
	sb.WriteString("## Structure\n\n")
	sb.WriteString("```\n")
	sb.WriteString(hierarchy.RenderTree(records))
	sb.WriteString("```\n\n")

	// Per-directory detail
	sb.WriteString("## Directories\n\n")
	sb.WriteString("| Directory | Purpose | Category | Primary Types | Files |\n")
	sb.WriteString("|-----------|---------|----------|---------------|-------|\n")
	for _, flat := range common.FlattenHierarchy(records) {
		rec := flat.Record
		if utils.IsNoise(rec.Basename()) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
			escapePipes(rec.Path),
			escapePipes(rec.Purpose),
			rec.Category,
			joinFileTypes(rec.PrimaryFileTypes),
			rec.FileCount))
	}
	sb.WriteString("\n")

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".md"
	if err := os.WriteFile(outFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write Markdown report: %w", err)
	}

	return nil
}

func joinFileTypes(types []model.FileCategory) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// escapePipes keeps user-derived text from breaking the table layout
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
