package filetype

import (
	"path"
	"regexp"
	"strings"

	"dirsight/internal/model"
)

// Classification is purely convention-driven: filename shape, extension,
// and the directory segments the file sits under. No file content is read
// here; content-level signals belong to the content analyzer.

var hookNameRe = regexp.MustCompile(`^use[A-Z]\w*`)

var styleExtensions = map[string]bool{
	".css":  true,
	".scss": true,
	".sass": true,
	".less": true,
	".styl": true,
	".pcss": true,
}

var testSuffixes = []string{
	".test.", ".spec.", "_test.", "-test.",
}

var testDirs = map[string]bool{
	"__tests__": true,
	"tests":     true,
	"test":      true,
	"spec":      true,
	"e2e":       true,
}

// segmentBias maps recognized directory names to the category they imply
// for files underneath them. Checked from the innermost segment outward so
// the closest convention wins.
var segmentBias = map[string]model.FileCategory{
	"components":   model.FileComponent,
	"component":    model.FileComponent,
	"pages":        model.FilePage,
	"page":         model.FilePage,
	"views":        model.FilePage,
	"screens":      model.FilePage,
	"hooks":        model.FileHook,
	"api":          model.FileService,
	"apis":         model.FileService,
	"services":     model.FileService,
	"service":      model.FileService,
	"models":       model.FileModel,
	"model":        model.FileModel,
	"entities":     model.FileModel,
	"schemas":      model.FileModel,
	"routes":       model.FileRoute,
	"routing":      model.FileRoute,
	"router":       model.FileRoute,
	"controllers":  model.FileController,
	"controller":   model.FileController,
	"middleware":   model.FileMiddleware,
	"middlewares":  model.FileMiddleware,
	"repositories": model.FileRepository,
	"repository":   model.FileRepository,
	"layouts":      model.FileLayout,
	"layout":       model.FileLayout,
	"utils":        model.FileUtility,
	"util":         model.FileUtility,
	"helpers":      model.FileUtility,
	"lib":          model.FileUtility,
	"types":        model.FileType,
	"typings":      model.FileType,
	"interfaces":   model.FileType,
	"config":       model.FileConfig,
	"configs":      model.FileConfig,
	"styles":       model.FileStyle,
	"css":          model.FileStyle,
}

var configNames = map[string]bool{
	"package.json":       true,
	"tsconfig.json":      true,
	"jsconfig.json":      true,
	".babelrc":           true,
	".eslintrc":          true,
	".prettierrc":        true,
	"vite.config.ts":     true,
	"vite.config.js":     true,
	"next.config.js":     true,
	"next.config.mjs":    true,
	"webpack.config.js":  true,
	"jest.config.js":     true,
	"jest.config.ts":     true,
	"vitest.config.ts":   true,
	"tailwind.config.js": true,
	"tailwind.config.ts": true,
	"babel.config.js":    true,
	"rollup.config.js":   true,
	"dockerfile":         true,
	"docker-compose.yml": true,
	"makefile":           true,
}

// Classify assigns a file-type category to one file from its path and name
// conventions alone. There is no cross-file state; callers aggregate the
// results per directory.
func Classify(filePath string) model.FileClassification {
	normalized := strings.ToLower(strings.ReplaceAll(filePath, "\\", "/"))
	base := path.Base(normalized)
	originalBase := path.Base(strings.ReplaceAll(filePath, "\\", "/"))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(originalBase, path.Ext(originalBase))

	// Exact config filenames trump everything
	if configNames[base] || strings.HasSuffix(base, ".config.js") || strings.HasSuffix(base, ".config.ts") {
		return classification(model.FileConfig, model.ConfidenceHigh, "config filename")
	}

	// Test files: recognized suffix or a recognized test directory anywhere
	// in the path
	for _, suffix := range testSuffixes {
		if strings.Contains(base, suffix) {
			return classification(model.FileTest, model.ConfidenceHigh, "test suffix "+suffix)
		}
	}
	for _, seg := range strings.Split(path.Dir(normalized), "/") {
		if testDirs[seg] {
			return classification(model.FileTest, model.ConfidenceMedium, "test directory "+seg)
		}
	}

	// Styles by extension, including CSS modules
	if styleExtensions[ext] || strings.Contains(base, ".module.") {
		return classification(model.FileStyle, model.ConfidenceHigh, "style extension "+ext)
	}

	// Type declaration files
	if strings.HasSuffix(base, ".d.ts") || strings.HasSuffix(base, ".types.ts") {
		return classification(model.FileType, model.ConfidenceHigh, "type declaration file")
	}

	// Hook naming convention: use + capitalized word
	if hookNameRe.MatchString(stem) {
		return classification(model.FileHook, model.ConfidenceHigh, "hook naming convention")
	}

	// Directory segment bias, innermost segment first
	segments := strings.Split(path.Dir(normalized), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if cat, ok := segmentBias[segments[i]]; ok {
			return classification(cat, model.ConfidenceMedium, "parent directory "+segments[i])
		}
	}

	// PascalCase source files in a UI codebase lean component
	if isSourceExt(ext) && isPascalCase(stem) {
		return classification(model.FileComponent, model.ConfidenceLow, "PascalCase source filename")
	}

	return classification(model.FileOther, model.ConfidenceLow, "no naming convention matched")
}

func classification(cat model.FileCategory, conf model.Confidence, indicator string) model.FileClassification {
	return model.FileClassification{
		Category:   cat,
		Confidence: conf,
		Indicators: []string{indicator},
	}
}

func isSourceExt(ext string) bool {
	switch ext {
	case ".js", ".jsx", ".ts", ".tsx", ".vue", ".svelte":
		return true
	}
	return false
}

func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if first < 'A' || first > 'Z' {
		return false
	}
	return !strings.ContainsAny(name, "-_")
}
