package manifest

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"dirsight/internal/logger"
	"dirsight/internal/model"
)

// Workspace detection: module boundaries come from explicit workspace
// configuration, not guessed from directory shape. The resolver only uses
// boundaries for record annotation, so missing config degrades quietly.

// ParseModuleBoundaries resolves workspace globs into concrete module
// directories, sorted by path.
func ParseModuleBoundaries(root string) []model.ModuleBoundary {
	var globs []string

	globs = append(globs, pnpmWorkspaceGlobs(filepath.Join(root, "pnpm-workspace.yaml"))...)
	globs = append(globs, packageJSONWorkspaceGlobs(filepath.Join(root, "package.json"))...)
	globs = append(globs, lernaGlobs(filepath.Join(root, "lerna.json"))...)
	globs = append(globs, goWorkDirs(filepath.Join(root, "go.work"))...)

	boundaries := expandGlobs(root, globs)
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i].Path < boundaries[j].Path })
	return boundaries
}

func pnpmWorkspaceGlobs(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var ws struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &ws); err != nil {
		logger.LogAnalysisError(path, err, "pnpm-workspace.yaml parse")
		return nil
	}
	return ws.Packages
}

func packageJSONWorkspaceGlobs(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// "workspaces" is either an array or an object with a "packages" key
	var asArray struct {
		Workspaces []string `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &asArray); err == nil && len(asArray.Workspaces) > 0 {
		return asArray.Workspaces
	}

	var asObject struct {
		Workspaces struct {
			Packages []string `json:"packages"`
		} `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &asObject); err == nil {
		return asObject.Workspaces.Packages
	}
	return nil
}

func lernaGlobs(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.LogAnalysisError(path, err, "lerna.json parse")
		return nil
	}
	return cfg.Packages
}

func goWorkDirs(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var dirs []string
	inBlock := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "use ("):
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock:
			dirs = append(dirs, strings.Trim(line, "./"))
		case strings.HasPrefix(line, "use "):
			dirs = append(dirs, strings.Trim(strings.TrimPrefix(line, "use "), "./"))
		}
	}
	return dirs
}

// expandGlobs turns workspace globs like "packages/*" into one boundary per
// matching directory. Non-glob entries name the directory itself.
func expandGlobs(root string, globs []string) []model.ModuleBoundary {
	seen := make(map[string]bool)
	var boundaries []model.ModuleBoundary

	add := func(rel string) {
		rel = filepath.ToSlash(rel)
		if rel == "" || rel == "." || seen[rel] {
			return
		}
		seen[rel] = true
		boundaries = append(boundaries, model.ModuleBoundary{
			Name: filepath.Base(rel),
			Path: rel,
		})
	}

	for _, glob := range globs {
		glob = strings.TrimSpace(glob)
		if glob == "" || strings.HasPrefix(glob, "!") {
			continue
		}

		if !strings.ContainsAny(glob, "*?[") {
			add(glob)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(glob)))
		if err != nil {
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			if rel, err := filepath.Rel(root, match); err == nil {
				add(rel)
			}
		}
	}

	return boundaries
}
