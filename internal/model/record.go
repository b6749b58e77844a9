package model

import (
	"fmt"
	"sort"
	"strings"
)

// FileCategory is the coarse classification assigned to a single file
type FileCategory string

const (
	FileComponent  FileCategory = "component"
	FileHook       FileCategory = "hook"
	FilePage       FileCategory = "page"
	FileService    FileCategory = "service"
	FileModel      FileCategory = "model"
	FileUtility    FileCategory = "utility"
	FileType       FileCategory = "type"
	FileConfig     FileCategory = "config"
	FileTest       FileCategory = "test"
	FileStyle      FileCategory = "style"
	FileRoute      FileCategory = "route"
	FileMiddleware FileCategory = "middleware"
	FileController FileCategory = "controller"
	FileRepository FileCategory = "repository"
	FileLayout     FileCategory = "layout"
	FileOther      FileCategory = "other"
)

// Confidence expresses how strongly a classification is supported
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank maps confidence to a comparable weight
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// AtLeast reports whether c is at least as strong as other
func (c Confidence) AtLeast(other Confidence) bool {
	return c.rank() >= other.rank()
}

// FileClassification is the result of classifying one file.
// It is aggregated per directory and not persisted beyond that.
type FileClassification struct {
	Category   FileCategory
	Confidence Confidence
	Indicators []string
}

// Dependency is one declared external dependency from a manifest
type Dependency struct {
	Name    string
	Version string
}

// ModuleBoundary names an owning module for a subtree (e.g. a workspace package)
type ModuleBoundary struct {
	Name string
	Path string // relative, slash-normalized
}

// CoLocationPattern records which auxiliary file kinds sit next to source
// files inside one directory
type CoLocationPattern struct {
	Styles bool
	Tests  bool
	Types  bool
}

// DirectoryRecord is the resolved description of one non-empty directory
type DirectoryRecord struct {
	// Identity
	Path     string // relative to project root, slash-normalized
	Purpose  string // free-form label; empty for container directories
	Category string

	// Aggregates over direct child files
	FileTypeDistribution map[FileCategory]int
	PrimaryFileTypes     []FileCategory // share of direct children >= 20%
	NamingPattern        string         // PascalCase / camelCase / kebab-case / snake_case / mixed
	CoLocation           CoLocationPattern
	HasIndexFiles        bool
	FileCount            int

	// Context
	Depth               int
	Module              string // owning module name, if boundaries were supplied
	Version             string // era tag like "v2" or "legacy" found in the path
	ArchitecturePattern string // set when this directory alone signals a pattern

	// Hierarchy back-references, assigned by the hierarchy builder
	ParentDirectory  string
	ChildDirectories []string
}

// Basename returns the last path segment of the record's path
func (r *DirectoryRecord) Basename() string {
	if r.Path == "" {
		return ""
	}
	parts := strings.Split(r.Path, "/")
	return parts[len(parts)-1]
}

// DominantFileType returns the primary file type with the highest count.
// Ties break on a fixed preference ordering so output stays deterministic:
// component > page > service > utility > hook > model, then the rest
// alphabetically.
func (r *DirectoryRecord) DominantFileType() FileCategory {
	if len(r.FileTypeDistribution) == 0 {
		return FileOther
	}

	preference := map[FileCategory]int{
		FileComponent: 0,
		FilePage:      1,
		FileService:   2,
		FileUtility:   3,
		FileHook:      4,
		FileModel:     5,
	}

	cats := make([]FileCategory, 0, len(r.FileTypeDistribution))
	for cat := range r.FileTypeDistribution {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		ci, cj := cats[i], cats[j]
		ni, nj := r.FileTypeDistribution[ci], r.FileTypeDistribution[cj]
		if ni != nj {
			return ni > nj
		}
		pi, iok := preference[ci]
		pj, jok := preference[cj]
		if iok && jok {
			return pi < pj
		}
		if iok != jok {
			return iok
		}
		return ci < cj
	})
	return cats[0]
}

// String returns a human-readable representation of the record
func (r *DirectoryRecord) String() string {
	return fmt.Sprintf("[%s] %s (%d files)", r.Category, r.Path, r.FileCount)
}
