package architecture

import (
	"path"
	"sort"
	"strings"

	"dirsight/internal/model"
)

// Whole-project classification from the resolved directory set plus the raw
// file list. Detectors run in a fixed priority order; the first positive one
// names the architecture, but every positive indicator is reported.

type detector struct {
	arch model.ArchitectureType
	fn   func(*evidence) (bool, []string)
}

// evidence is the pre-digested view of the project the detectors share
type evidence struct {
	records     []*model.DirectoryRecord
	baseNames   map[string][]string // lowercased basename -> record paths
	fileNames   map[string]bool     // lowercased file basenames
	topDirs     map[string]bool     // lowercased first path segments
	dockerfiles int                 // distinct Dockerfile paths, not deduped names
}

var detectors = []detector{
	{model.ArchMonorepo, detectMonorepo},
	{model.ArchClean, detectCleanArchitecture},
	{model.ArchFeatureBased, detectFeatureBased},
	{model.ArchMVC, detectMVC},
	{model.ArchDomainDriven, detectDomainDriven},
	{model.ArchMicroservices, detectMicroservices},
}

// Detect classifies the whole project. Unknown with low confidence when no
// detector fires.
func Detect(records []*model.DirectoryRecord, files []string) model.ArchitectureClassification {
	ev := digest(records, files)

	result := model.ArchitectureClassification{
		Type:       model.ArchUnknown,
		Confidence: model.ConfidenceLow,
	}

	for _, det := range detectors {
		positive, indicators := det.fn(ev)
		if !positive {
			continue
		}
		result.Indicators = append(result.Indicators, indicators...)
		if result.Type == model.ArchUnknown {
			result.Type = det.arch
			result.Confidence = model.ConfidenceHigh
		}
	}

	if result.Type == model.ArchClean || result.Type == model.ArchDomainDriven {
		result.LayerStructure = layerStructure(ev)
	}
	if result.Type == model.ArchFeatureBased {
		result.FeatureStructure = featureStructure(ev)
	}

	return result
}

func digest(records []*model.DirectoryRecord, files []string) *evidence {
	ev := &evidence{
		records:   records,
		baseNames: make(map[string][]string),
		fileNames: make(map[string]bool),
		topDirs:   make(map[string]bool),
	}

	for _, rec := range records {
		base := strings.ToLower(rec.Basename())
		ev.baseNames[base] = append(ev.baseNames[base], rec.Path)
		top := strings.ToLower(strings.SplitN(rec.Path, "/", 2)[0])
		ev.topDirs[top] = true
	}
	for _, file := range files {
		base := strings.ToLower(path.Base(file))
		ev.fileNames[base] = true
		if base == "dockerfile" || strings.HasPrefix(base, "dockerfile.") {
			ev.dockerfiles++
		}
	}
	for base := range ev.baseNames {
		sort.Strings(ev.baseNames[base])
	}

	return ev
}

// Monorepo: workspace configuration files or packages/apps style top-level
// directories
func detectMonorepo(ev *evidence) (bool, []string) {
	var indicators []string

	workspaceFiles := []string{"pnpm-workspace.yaml", "lerna.json", "turbo.json", "nx.json", "go.work", "rush.json"}
	for _, name := range workspaceFiles {
		if ev.fileNames[name] {
			indicators = append(indicators, "workspace config "+name)
		}
	}

	for _, top := range []string{"packages", "apps", "libs"} {
		if ev.topDirs[top] {
			indicators = append(indicators, "top-level "+top+"/ directory")
		}
	}

	return len(indicators) > 0, indicators
}

// Clean architecture: the canonical layer directory names present among
// resolved directories
func detectCleanArchitecture(ev *evidence) (bool, []string) {
	layers := []string{"presentation", "application", "domain", "infrastructure"}
	var indicators []string
	found := 0
	for _, layer := range layers {
		if len(ev.baseNames[layer]) > 0 {
			found++
			indicators = append(indicators, "layer directory "+layer)
		}
	}
	return found >= 3, indicators
}

// Feature-based: feature/module oriented directory names
func detectFeatureBased(ev *evidence) (bool, []string) {
	var indicators []string
	for _, name := range []string{"features", "feature", "modules"} {
		if len(ev.baseNames[name]) > 0 {
			indicators = append(indicators, "feature directory "+name)
		}
	}
	return len(indicators) > 0, indicators
}

// MVC: models and controllers directories co-occurring
func detectMVC(ev *evidence) (bool, []string) {
	hasModels := len(ev.baseNames["models"]) > 0 || len(ev.baseNames["model"]) > 0
	hasControllers := len(ev.baseNames["controllers"]) > 0 || len(ev.baseNames["controller"]) > 0
	if !hasModels || !hasControllers {
		return false, nil
	}
	indicators := []string{"models directory", "controllers directory"}
	if len(ev.baseNames["views"]) > 0 {
		indicators = append(indicators, "views directory")
	}
	return true, indicators
}

// Domain-driven: domain/entity/aggregate directory names
func detectDomainDriven(ev *evidence) (bool, []string) {
	var indicators []string
	for _, name := range []string{"domain", "domains", "entities", "aggregates", "valueobjects"} {
		if len(ev.baseNames[name]) > 0 {
			indicators = append(indicators, "DDD directory "+name)
		}
	}
	return len(indicators) >= 2, indicators
}

// Microservices: a multi-service compose file plus per-service container
// build files
func detectMicroservices(ev *evidence) (bool, []string) {
	hasCompose := ev.fileNames["docker-compose.yml"] || ev.fileNames["docker-compose.yaml"] || ev.fileNames["compose.yaml"]
	if !hasCompose {
		return false, nil
	}

	hasServices := len(ev.baseNames["services"]) > 0 || ev.topDirs["services"]

	// One Dockerfile is just a containerized app; per-service builds need
	// several
	if ev.dockerfiles >= 2 && hasServices {
		return true, []string{"compose file", "per-service container builds"}
	}
	return false, nil
}

// layerStructure maps recognized layer names to the directories realizing
// them
func layerStructure(ev *evidence) map[string][]string {
	layers := map[string][]string{}
	for _, layer := range []string{"presentation", "application", "domain", "infrastructure", "entities"} {
		if paths := ev.baseNames[layer]; len(paths) > 0 {
			layers[layer] = paths
		}
	}
	return layers
}

// featureStructure maps each feature name to its directory, taken from the
// children of feature/module parents
func featureStructure(ev *evidence) map[string][]string {
	features := map[string][]string{}

	parents := map[string]bool{}
	for _, name := range []string{"features", "feature", "modules"} {
		for _, p := range ev.baseNames[name] {
			parents[p] = true
		}
	}

	for _, rec := range ev.records {
		if rec.ParentDirectory != "" && parents[rec.ParentDirectory] {
			name := strings.ToLower(rec.Basename())
			features[name] = append(features[name], rec.Path)
		}
	}
	return features
}
