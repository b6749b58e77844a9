package exporter

import (
	"dirsight/internal/config"
	"dirsight/internal/model"
)

// Exporter is the unified interface for all reporting strategies
type Exporter interface {
	Export(summary *model.Summary, records []*model.DirectoryRecord, cfg *config.Config) error
}
