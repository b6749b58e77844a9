package analyzer

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"dirsight/internal/architecture"
	"dirsight/internal/content"
	"dirsight/internal/depkeys"
	"dirsight/internal/filetype"
	"dirsight/internal/hierarchy"
	"dirsight/internal/logger"
	"dirsight/internal/model"
	"dirsight/internal/resolver"
)

// Engine runs the full inference pipeline: per-file classification,
// per-directory aggregation, the purpose cascade, hierarchy assembly, and
// architecture detection. Single-threaded; the only shared state is the
// read-only dependency index built at the start of the run.
type Engine struct {
	cfg *Config
}

// NewEngine creates an Engine with the given configuration
func NewEngine(cfg *Config) *Engine {
	if cfg.ContentSampleSize <= 0 {
		cfg.ContentSampleSize = content.DefaultSampleSize
	}
	return &Engine{cfg: cfg}
}

// directoryFiles groups the direct children of one directory
type directoryFiles struct {
	relPath  string
	absFiles []string // readable paths of direct child files
	relFiles []string // project-relative paths of direct child files
}

// Analyze resolves every non-empty directory in the file list. A failure
// inside one directory's analysis is logged and that directory skipped;
// the run continues for all others.
func (e *Engine) Analyze(files []string, deps []model.Dependency, modules []model.ModuleBoundary) ([]*model.DirectoryRecord, model.ArchitectureClassification, error) {
	if len(files) == 0 {
		return nil, model.ArchitectureClassification{Type: model.ArchUnknown, Confidence: model.ConfidenceLow}, nil
	}

	index := depkeys.Build(deps)
	contentAnalyzer := content.New(ReadFileSample)
	contentAnalyzer.SampleSize = e.cfg.ContentSampleSize
	res := resolver.New(index, contentAnalyzer, ReadFileSample)

	dirs, relFiles := e.groupByDirectory(files)
	siblings := siblingIndex(dirs)

	var records []*model.DirectoryRecord
	for _, dir := range dirs {
		rec, err := e.resolveDirectory(res, dir, siblings, modules)
		if err != nil {
			logger.Warn("Skipping directory %s: %v", dir.relPath, err)
			continue
		}
		records = append(records, rec)
		if e.cfg.OnDirectory != nil {
			e.cfg.OnDirectory(dir.relPath)
		}
	}

	hierarchy.Build(records)
	arch := architecture.Detect(records, relFiles)

	return records, arch, nil
}

// resolveDirectory builds one record, isolating panics from heuristic code
// so a single bad directory cannot abort the run
func (e *Engine) resolveDirectory(res *resolver.Resolver, dir directoryFiles, siblings map[string][]string, modules []model.ModuleBoundary) (rec *model.DirectoryRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()

	rec = e.buildRecord(dir, modules)

	out := res.Resolve(&resolver.Input{
		Record:   rec,
		Files:    dir.absFiles,
		Siblings: siblings[parentOf(dir.relPath)],
	})

	rec.Purpose = out.Purpose
	rec.Category = out.Category
	if out.Stage == "special-path" {
		logger.Debug("Directory %s resolved by special-path override", dir.relPath)
	}

	return rec, nil
}

// buildRecord fills every aggregate derivable from filenames alone
func (e *Engine) buildRecord(dir directoryFiles, modules []model.ModuleBoundary) *model.DirectoryRecord {
	distribution := make(map[model.FileCategory]int)
	for _, rel := range dir.relFiles {
		cls := filetype.Classify(rel)
		distribution[cls.Category]++
	}

	rec := &model.DirectoryRecord{
		Path:                 dir.relPath,
		FileTypeDistribution: distribution,
		PrimaryFileTypes:     primaryFileTypes(distribution, len(dir.relFiles)),
		NamingPattern:        detectNamingPattern(dir.relFiles),
		CoLocation:           detectCoLocation(dir.relFiles),
		HasIndexFiles:        hasIndexFile(dir.relFiles),
		FileCount:            len(dir.relFiles),
		Depth:                strings.Count(dir.relPath, "/") + 1,
		Version:              detectVersionTag(dir.relPath),
		Module:               assignModule(dir.relPath, modules),
	}
	return rec
}

// groupByDirectory maps the flat file list into one entry per directory
// that has at least one direct or descendant file. Directories are emitted
// in sorted path order for deterministic output.
func (e *Engine) groupByDirectory(files []string) ([]directoryFiles, []string) {
	root := filepath.ToSlash(e.cfg.ProjectRoot)
	byDir := make(map[string]*directoryFiles)
	var relFiles []string

	ensure := func(rel string) *directoryFiles {
		if d, ok := byDir[rel]; ok {
			return d
		}
		d := &directoryFiles{relPath: rel}
		byDir[rel] = d
		return d
	}

	for _, abs := range files {
		rel := filepath.ToSlash(abs)
		if root != "" && strings.HasPrefix(rel, root+"/") {
			rel = strings.TrimPrefix(rel, root+"/")
		}
		relFiles = append(relFiles, rel)

		dirPath := path.Dir(rel)
		if dirPath == "." || dirPath == "/" {
			continue // root-level files belong to no directory record
		}

		d := ensure(dirPath)
		d.absFiles = append(d.absFiles, abs)
		d.relFiles = append(d.relFiles, rel)

		// Ancestors participate even without direct files; they hold
		// descendants by construction
		for parent := parentOf(dirPath); parent != ""; parent = parentOf(parent) {
			ensure(parent)
		}
	}

	dirs := make([]directoryFiles, 0, len(byDir))
	for _, d := range byDir {
		sort.Strings(d.absFiles)
		sort.Strings(d.relFiles)
		dirs = append(dirs, *d)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].relPath < dirs[j].relPath })

	return dirs, relFiles
}

// siblingIndex maps each parent path to the basenames of its child
// directories
func siblingIndex(dirs []directoryFiles) map[string][]string {
	index := make(map[string][]string)
	for _, d := range dirs {
		parent := parentOf(d.relPath)
		index[parent] = append(index[parent], path.Base(d.relPath))
	}
	for parent := range index {
		sort.Strings(index[parent])
	}
	return index
}

func parentOf(dirPath string) string {
	parent := path.Dir(dirPath)
	if parent == "." || parent == "/" || parent == dirPath {
		return ""
	}
	return parent
}
