package content

import (
	"path"
	"regexp"
	"strings"

	"dirsight/internal/model"
)

// ReadFunc reads one file's text. Unreadable files contribute no signal.
type ReadFunc func(path string) (string, error)

// Analyzer performs shallow, regex-level signal detection over a bounded
// sample of a directory's files. It never parses source into an AST.
type Analyzer struct {
	// SampleSize bounds how many files are read per directory. A
	// performance ceiling only: more files could add confidence but never
	// change which resolver stage fires.
	SampleSize int

	read ReadFunc
}

// Result is the directory-level outcome of content analysis
type Result struct {
	Purpose          string
	Role             string // winning role signal ("pages", "components", ...)
	Confidence       model.Confidence
	Indicators       []string
	BusinessKeywords []string
}

// DefaultSampleSize is the per-directory file read limit
const DefaultSampleSize = 5

// New creates an Analyzer reading files through read
func New(read ReadFunc) *Analyzer {
	return &Analyzer{SampleSize: DefaultSampleSize, read: read}
}

// Per-file role signals. All shallow patterns over raw text.
var (
	pageExportRe = regexp.MustCompile(`export\s+default\s+(?:async\s+)?function\s+\w*(?:Page|Screen|View)\b`)
	staticGenRe  = regexp.MustCompile(`\b(?:getStaticProps|getServerSideProps|getStaticPaths|generateStaticParams|generateMetadata)\b`)

	componentReturnRe = regexp.MustCompile(`(?:return\s*\(?\s*<[A-Za-z]|=>\s*\(?\s*<[A-Za-z])`)
	classComponentRe  = regexp.MustCompile(`class\s+\w+\s+extends\s+(?:React\.)?(?:Pure)?Component\b`)
	exportedFuncRe    = regexp.MustCompile(`export\s+(?:async\s+)?function\s+\w+|export\s+const\s+\w+\s*=\s*(?:async\s*)?\(`)
	stateHookRe       = regexp.MustCompile(`\buse(?:State|Effect|Reducer|Context|Ref)\s*\(`)
	hookExportRe      = regexp.MustCompile(`export\s+(?:default\s+)?(?:async\s+)?(?:function\s+|const\s+)use[A-Z]\w*`)

	fetchCallRe  = regexp.MustCompile(`\bfetch\s*\(`)
	httpVerbRe   = regexp.MustCompile("\\.(?:get|post|put|delete|patch)\\s*\\(\\s*[`'\"]")
	axiosRe      = regexp.MustCompile(`\baxios\b`)
	apiLiteralRe = regexp.MustCompile("[`'\"][^`'\"]*/api/")

	modelNameRe    = regexp.MustCompile(`(?:interface|type|class)\s+\w+Model\b`)
	schemaMarkerRe = regexp.MustCompile(`mongoose\.Schema|sequelize\.define|@Entity\b|@Table\b|new\s+Schema\s*\(|prisma\.`)
)

// uiLibraries are import tokens for a small set of known UI libraries.
// Recorded as indicators but never required for a component signal.
var uiLibraries = []string{
	"@mui/", "antd", "@chakra-ui", "@mantine", "react-bootstrap",
	"@headlessui", "vuetify", "element-plus",
}

// directorySignals are the OR-combined per-file detections for a directory
type directorySignals struct {
	page      bool
	component bool
	api       bool
	utility   bool
	model     bool
	hook      bool
	uiLibs    []string
}

// Analyze reads a bounded sample of files and derives a purpose from the
// strongest role signal plus the most salient business keyword.
func (a *Analyzer) Analyze(dirPath string, files []string) Result {
	sig := directorySignals{}
	keywordCounts := make(map[string]int)
	keywordOrder := []string{}

	sampled := 0
	for _, file := range files {
		if sampled >= a.SampleSize {
			break
		}
		if !isAnalyzableFile(file) {
			continue
		}

		text, err := a.read(file)
		if err != nil || text == "" {
			continue
		}
		sampled++

		a.detectRoles(text, &sig)

		for _, kw := range matchBusinessKeywords(text) {
			if keywordCounts[kw] == 0 {
				keywordOrder = append(keywordOrder, kw)
			}
			keywordCounts[kw]++
		}
	}

	return a.derive(sig, keywordOrder, keywordCounts)
}

// detectRoles runs every per-file signal detector and ORs the outcome into
// the directory's signals
func (a *Analyzer) detectRoles(text string, sig *directorySignals) {
	if pageExportRe.MatchString(text) || staticGenRe.MatchString(text) {
		sig.page = true
	}
	if componentReturnRe.MatchString(text) || classComponentRe.MatchString(text) {
		sig.component = true
	}
	for _, lib := range uiLibraries {
		if strings.Contains(text, lib) && !containsString(sig.uiLibs, lib) {
			sig.uiLibs = append(sig.uiLibs, lib)
		}
	}
	if fetchCallRe.MatchString(text) || axiosRe.MatchString(text) ||
		httpVerbRe.MatchString(text) || apiLiteralRe.MatchString(text) {
		sig.api = true
	}
	if hookExportRe.MatchString(text) {
		sig.hook = true
	}
	if modelNameRe.MatchString(text) || schemaMarkerRe.MatchString(text) {
		sig.model = true
	}

	// Pure function bundle: three or more exported functions with no UI,
	// network, or state-hook usage in the same file
	if len(exportedFuncRe.FindAllString(text, 4)) >= 3 &&
		!componentReturnRe.MatchString(text) &&
		!fetchCallRe.MatchString(text) &&
		!stateHookRe.MatchString(text) {
		sig.utility = true
	}
}

// derive combines role signals and keywords into a short purpose phrase.
// Confidence is high only when a structural role signal fired, not when
// only a keyword matched.
func (a *Analyzer) derive(sig directorySignals, keywordOrder []string, counts map[string]int) Result {
	res := Result{BusinessKeywords: keywordOrder}

	keyword := mostSalientKeyword(keywordOrder, counts)
	display := ""
	if keyword != "" {
		display = keywordDisplay(keyword)
	}

	role, roleIndicator := strongestRole(sig)
	res.Role = role
	if roleIndicator != "" {
		res.Indicators = append(res.Indicators, roleIndicator)
	}
	for _, lib := range sig.uiLibs {
		res.Indicators = append(res.Indicators, "uses "+strings.Trim(lib, "/"))
	}
	if keyword != "" {
		res.Indicators = append(res.Indicators, "business keyword: "+keyword)
	}

	switch {
	case role != "" && display != "":
		res.Purpose = display + " " + role
		res.Confidence = model.ConfidenceHigh
	case role != "":
		res.Purpose = genericRolePurpose(role)
		res.Confidence = model.ConfidenceHigh
	case display != "":
		res.Purpose = display
		res.Confidence = model.ConfidenceMedium
	default:
		res.Confidence = model.ConfidenceLow
	}

	return res
}

// strongestRole picks one role with a fixed priority so ties resolve
// deterministically
func strongestRole(sig directorySignals) (string, string) {
	switch {
	case sig.page:
		return "pages", "page signal"
	case sig.component:
		return "components", "component signal"
	case sig.api:
		return "API services", "network call signal"
	case sig.model:
		return "data models", "model signal"
	case sig.hook:
		return "hooks", "hook export signal"
	case sig.utility:
		return "utilities", "pure function bundle"
	}
	return "", ""
}

func genericRolePurpose(role string) string {
	switch role {
	case "pages":
		return "pages"
	case "components":
		return "UI components"
	case "API services":
		return "API service"
	case "data models":
		return "data models"
	case "hooks":
		return "custom hooks"
	case "utilities":
		return "utility functions"
	}
	return role
}

// mostSalientKeyword returns the highest-count keyword; first-seen order
// (which follows the curated table order per file) breaks ties
func mostSalientKeyword(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, kw := range order {
		if counts[kw] > bestCount {
			best = kw
			bestCount = counts[kw]
		}
	}
	return best
}

func keywordDisplay(term string) string {
	for _, kw := range businessKeywords {
		if kw.Term == term {
			return kw.Display
		}
	}
	return term
}

// Structural keyword patterns. A bare substring hit is not enough: the term
// must appear as a declaration name, property access, string-literal path
// segment, or import path segment.
func matchBusinessKeywords(text string) []string {
	lower := strings.ToLower(text)

	var matched []string
	for _, kw := range businessKeywords {
		if !strings.Contains(lower, kw.Term) {
			continue
		}

		cleaned := lower
		for _, sup := range kw.Suppressors {
			cleaned = strings.ReplaceAll(cleaned, sup, "")
		}
		if !strings.Contains(cleaned, kw.Term) {
			continue
		}

		if matchesStructurally(cleaned, kw.Term) {
			matched = append(matched, kw.Term)
		}
	}
	return matched
}

var structuralTemplates = []string{
	// declaration, property access, string-literal path segment, import path
	`(?:const|let|var|function|class|interface|type|enum)\s+[a-z_$]*%s`,
	`\.%s`,
	`['"` + "`" + `][^'"` + "`" + `]*/%ss?\b`,
	`from\s+['"][^'"]*%s`,
}

func matchesStructurally(lowerText, term string) bool {
	for _, tpl := range structuralTemplates {
		re := regexp.MustCompile(strings.ReplaceAll(tpl, "%s", regexp.QuoteMeta(term)))
		if re.MatchString(lowerText) {
			return true
		}
	}
	return false
}

func isAnalyzableFile(file string) bool {
	switch strings.ToLower(path.Ext(file)) {
	case ".js", ".jsx", ".ts", ".tsx", ".vue", ".svelte", ".mjs", ".cjs":
		return true
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
