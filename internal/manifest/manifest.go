package manifest

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"dirsight/internal/logger"
	"dirsight/internal/model"
)

// Dependency extraction across the manifest formats the classifier is
// likely to meet. Unreadable or malformed manifests are logged and skipped;
// an empty dependency list only disables the dependency stage of the
// cascade.

// ParseDependencies reads every recognized manifest directly under root and
// returns the declared dependencies, deduplicated by name, sorted.
func ParseDependencies(root string) []model.Dependency {
	var deps []model.Dependency

	deps = append(deps, parsePackageJSON(filepath.Join(root, "package.json"))...)
	deps = append(deps, parseGoMod(filepath.Join(root, "go.mod"))...)
	deps = append(deps, parseRequirements(filepath.Join(root, "requirements.txt"))...)
	deps = append(deps, parseCargoTOML(filepath.Join(root, "Cargo.toml"))...)
	deps = append(deps, parsePyprojectTOML(filepath.Join(root, "pyproject.toml"))...)
	deps = append(deps, parseComposerJSON(filepath.Join(root, "composer.json"))...)

	seen := make(map[string]bool)
	var unique []model.Dependency
	for _, dep := range deps {
		if dep.Name == "" || seen[dep.Name] {
			continue
		}
		seen[dep.Name] = true
		unique = append(unique, dep)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Name < unique[j].Name })

	return unique
}

func parsePackageJSON(path string) []model.Dependency {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.LogAnalysisError(path, err, "package.json parse")
		return nil
	}

	var deps []model.Dependency
	for name, version := range manifest.Dependencies {
		deps = append(deps, model.Dependency{Name: name, Version: version})
	}
	for name, version := range manifest.DevDependencies {
		deps = append(deps, model.Dependency{Name: name, Version: version})
	}
	return deps
}

var goModRequireRe = regexp.MustCompile(`^\s*([\w./\-]+)\s+(v[\w.\-+]+)`)

func parseGoMod(path string) []model.Dependency {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []model.Dependency
	inBlock := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "require ("):
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock || strings.HasPrefix(line, "require "):
			candidate := strings.TrimPrefix(line, "require ")
			if m := goModRequireRe.FindStringSubmatch(candidate); m != nil {
				deps = append(deps, model.Dependency{Name: m[1], Version: m[2]})
			}
		}
	}
	return deps
}

var requirementRe = regexp.MustCompile(`^([A-Za-z0-9._\-\[\]]+)\s*(?:[=<>!~]=?\s*([\w.*]+))?`)

func parseRequirements(path string) []model.Dependency {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []model.Dependency
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if m := requirementRe.FindStringSubmatch(line); m != nil {
			name := strings.Split(m[1], "[")[0]
			deps = append(deps, model.Dependency{Name: strings.ToLower(name), Version: m[2]})
		}
	}
	return deps
}

func parseCargoTOML(path string) []model.Dependency {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Dependencies    map[string]toml.Primitive `toml:"dependencies"`
		DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		logger.LogAnalysisError(path, err, "Cargo.toml parse")
		return nil
	}

	var deps []model.Dependency
	for name := range manifest.Dependencies {
		deps = append(deps, model.Dependency{Name: name})
	}
	for name := range manifest.DevDependencies {
		deps = append(deps, model.Dependency{Name: name})
	}
	return deps
}

func parsePyprojectTOML(path string) []model.Dependency {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies map[string]toml.Primitive `toml:"dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		logger.LogAnalysisError(path, err, "pyproject.toml parse")
		return nil
	}

	var deps []model.Dependency
	for _, spec := range manifest.Project.Dependencies {
		if m := requirementRe.FindStringSubmatch(strings.TrimSpace(spec)); m != nil {
			deps = append(deps, model.Dependency{Name: strings.ToLower(m[1]), Version: m[2]})
		}
	}
	for name := range manifest.Tool.Poetry.Dependencies {
		if !strings.EqualFold(name, "python") {
			deps = append(deps, model.Dependency{Name: strings.ToLower(name)})
		}
	}
	return deps
}

func parseComposerJSON(path string) []model.Dependency {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Require map[string]string `json:"require"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.LogAnalysisError(path, err, "composer.json parse")
		return nil
	}

	var deps []model.Dependency
	for name, version := range manifest.Require {
		if name == "php" {
			continue
		}
		deps = append(deps, model.Dependency{Name: name, Version: version})
	}
	return deps
}
