package resolver

import (
	"strings"

	"dirsight/internal/content"
	"dirsight/internal/depkeys"
	"dirsight/internal/model"
	"dirsight/internal/sibling"
)

// Resolver runs the six-stage purpose cascade for one directory at a time.
// The stages are an explicit ordered list; the first stage returning a
// non-nil outcome wins and later stages are skipped.
type Resolver struct {
	deps    *depkeys.Index
	content *content.Analyzer
	read    depkeys.ReadSampleFunc
}

// Input carries everything one resolution needs. The record's aggregate
// fields (file type distribution, depth) must already be filled in.
type Input struct {
	Record   *model.DirectoryRecord
	Files    []string // direct child files, readable paths
	Siblings []string // sibling basenames at the same level
}

// Outcome is a resolved purpose and category. An empty purpose is a
// valid result (container suppression).
type Outcome struct {
	Purpose    string
	Category   string
	Stage      string
	Confidence model.Confidence
}

type stage struct {
	name string
	fn   func(*Resolver, *Input) *Outcome
}

// stages is the cascade order. Order is a first-class artifact: tests pin
// it, and reordering entries changes resolution semantics.
var stages = []stage{
	{"special-path", (*Resolver).stageSpecialPath},
	{"container", (*Resolver).stageContainer},
	{"dependency", (*Resolver).stageDependency},
	{"category-name", (*Resolver).stageCategoryName},
	{"business-content", (*Resolver).stageBusinessContent},
	{"ancestor", (*Resolver).stageAncestor},
	{"fallback", (*Resolver).stageFallback},
}

// New creates a Resolver. The dependency index is passed in explicitly and
// never mutated, so repeated runs cannot observe stale state.
func New(deps *depkeys.Index, analyzer *content.Analyzer, read depkeys.ReadSampleFunc) *Resolver {
	return &Resolver{deps: deps, content: analyzer, read: read}
}

// Resolve walks the cascade and always returns a terminal outcome; the
// final fallback stage cannot return nil.
func (r *Resolver) Resolve(in *Input) Outcome {
	for _, st := range stages {
		if out := st.fn(r, in); out != nil {
			out.Stage = st.name
			if out.Confidence == "" {
				out.Confidence = model.ConfidenceMedium
			}
			return *out
		}
	}
	// Unreachable: stageFallback always resolves
	return Outcome{Purpose: "other", Category: "other", Stage: "fallback", Confidence: model.ConfidenceLow}
}

// Stage 0: fixed special-path overrides. Unambiguous conventions
// regardless of content.
func (r *Resolver) stageSpecialPath(in *Input) *Outcome {
	sp, ok := matchSpecialPath(in.Record.Path, in.Record.Basename())
	if !ok {
		return nil
	}
	return &Outcome{Purpose: sp.Purpose, Category: sp.Category, Confidence: model.ConfidenceHigh}
}

// Stage 1: container suppression. The directory keeps its place in the
// hierarchy but carries no purpose of its own.
func (r *Resolver) stageContainer(in *Input) *Outcome {
	if !IsContainer(in.Record.Basename()) {
		return nil
	}
	return &Outcome{Purpose: "", Category: "other", Confidence: model.ConfidenceHigh}
}

// Stage 2: dependency relation via the keyword index
func (r *Resolver) stageDependency(in *Input) *Outcome {
	if r.deps == nil || r.deps.Empty() {
		return nil
	}
	rel := r.deps.CheckRelation(in.Record.Path, in.Files, r.read)
	if !rel.IsRelated {
		return nil
	}
	conf := model.ConfidenceMedium
	if rel.Confirmed {
		conf = model.ConfidenceHigh
	}
	return &Outcome{Purpose: rel.Purpose, Category: "other", Confidence: conf}
}

// Stage 3: category dictionary lookup on the current basename, or on the
// nearest non-generic ancestor when the basename itself is generic.
func (r *Resolver) stageCategoryName(in *Input) *Outcome {
	base := in.Record.Basename()

	if entry, ok := lookupCategory(base); ok {
		return &Outcome{Purpose: entry.Purpose, Category: entry.Category, Confidence: model.ConfidenceHigh}
	}

	if !isGeneric(base) {
		return nil
	}

	entry, ok := nearestCategoryAncestor(in.Record.Path)
	if !ok {
		return nil
	}
	return &Outcome{
		Purpose:  compoundPurpose(base, entry, in.Record),
		Category: entry.Category,
	}
}

// Stage 4: sibling project patterns, then the directory's own name, then
// content analysis. Name-first precedence is deliberate: a specific name
// always beats contradicting content.
func (r *Resolver) stageBusinessContent(in *Input) *Outcome {
	base := in.Record.Basename()

	if pat := sibling.Analyze(in.Siblings); pat.IsProjectPattern {
		return &Outcome{
			Purpose:  humanizeName(base) + " project",
			Category: "feature",
		}
	}

	if !isGeneric(base) {
		if entry, ok := nearestCategoryAncestor(in.Record.Path); ok {
			return &Outcome{
				Purpose:  compoundPurpose(base, entry, in.Record),
				Category: entry.Category,
			}
		}
		return &Outcome{Purpose: humanizeName(base), Category: "feature"}
	}

	if r.content != nil {
		res := r.content.Analyze(in.Record.Path, in.Files)
		if res.Purpose != "" && res.Confidence.AtLeast(model.ConfidenceMedium) {
			return &Outcome{
				Purpose:    res.Purpose,
				Category:   roleCategory(res.Role),
				Confidence: res.Confidence,
			}
		}
	}

	return nil
}

// Stage 5: ancestor inheritance for directories nothing else could place
func (r *Resolver) stageAncestor(in *Input) *Outcome {
	entry, ok := nearestCategoryAncestor(in.Record.Path)
	if !ok {
		return nil
	}
	return &Outcome{
		Purpose:  compoundPurpose(in.Record.Basename(), entry, in.Record),
		Category: entry.Category,
	}
}

// Stage 6: terminal fallback chain. Content result at any confidence, then
// the dominant primary file type, then the raw basename, then "other".
func (r *Resolver) stageFallback(in *Input) *Outcome {
	if r.content != nil {
		res := r.content.Analyze(in.Record.Path, in.Files)
		if res.Purpose != "" {
			return &Outcome{
				Purpose:    res.Purpose,
				Category:   roleCategory(res.Role),
				Confidence: model.ConfidenceLow,
			}
		}
	}

	if len(in.Record.PrimaryFileTypes) > 0 {
		dominant := in.Record.DominantFileType()
		if word := functionWord(dominant); word != "" {
			return &Outcome{
				Purpose:    word,
				Category:   string(dominant),
				Confidence: model.ConfidenceLow,
			}
		}
	}

	base := in.Record.Basename()
	if base != "" {
		return &Outcome{Purpose: base, Category: "other", Confidence: model.ConfidenceLow}
	}

	return &Outcome{Purpose: "other", Category: "other", Confidence: model.ConfidenceLow}
}

// nearestCategoryAncestor walks the path upward, skipping generic and
// container names, and returns the first segment found in the category
// dictionary. Plain iteration over segments; paths are acyclic.
func nearestCategoryAncestor(dirPath string) (categoryEntry, bool) {
	segments := strings.Split(dirPath, "/")
	// Start at the parent of the current directory
	for i := len(segments) - 2; i >= 0; i-- {
		seg := segments[i]
		if isGeneric(seg) {
			continue
		}
		if entry, ok := lookupCategory(seg); ok {
			return entry, true
		}
	}
	return categoryEntry{}, false
}

// compoundPurpose combines an ancestor category with the directory's own
// name. The dominant file type supplies the function word when available,
// otherwise the ancestor's noun stands in.
func compoundPurpose(base string, ancestor categoryEntry, rec *model.DirectoryRecord) string {
	word := ""
	if len(rec.FileTypeDistribution) > 0 {
		word = functionWord(rec.DominantFileType())
	}
	if word == "" {
		word = ancestor.Noun
	}
	return humanizeName(base) + " " + word
}

// humanizeName turns a directory basename into a readable label
func humanizeName(base string) string {
	name := strings.ReplaceAll(base, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}

// roleCategory maps a content-analysis role to a directory category tag
func roleCategory(role string) string {
	switch role {
	case "pages":
		return "page"
	case "components":
		return "component"
	case "API services":
		return "service"
	case "data models":
		return "model"
	case "hooks":
		return "hook"
	case "utilities":
		return "utility"
	}
	return "other"
}

// StageNames exposes the cascade order for tests and diagnostics
func StageNames() []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.name
	}
	return names
}
