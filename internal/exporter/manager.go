package exporter

import (
	"strings"

	"dirsight/internal/exporter/markdown"
	"dirsight/internal/exporter/structure"
	"dirsight/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
		case "markdown", "md":
			exporters = append(exporters, markdown.NewMarkdownExporter())
		case "word", "docx":
			exporters = append(exporters, word.NewWordExporter())
		case "json", "structure":
			exporters = append(exporters, structure.NewStructureExporter())
		}
	}

	// Unknown formats are silently dropped; the caller decides whether an
	// empty list is an error.

	return exporters
}
