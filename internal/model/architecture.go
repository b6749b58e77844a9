package model

// ArchitectureType is the whole-project architectural classification
type ArchitectureType string

const (
	ArchMonorepo      ArchitectureType = "monorepo"
	ArchClean         ArchitectureType = "clean-architecture"
	ArchFeatureBased  ArchitectureType = "feature-based"
	ArchMVC           ArchitectureType = "mvc"
	ArchDomainDriven  ArchitectureType = "domain-driven"
	ArchMicroservices ArchitectureType = "microservices"
	ArchUnknown       ArchitectureType = "unknown"
)

// ArchitectureClassification aggregates all resolved directories into one
// project-level label. Indicators keeps every positive signal, not only the
// winning one.
type ArchitectureClassification struct {
	Type       ArchitectureType
	Confidence Confidence
	Indicators []string

	// Optional structural summaries: layer or feature name to the
	// directories that realize it
	LayerStructure   map[string][]string
	FeatureStructure map[string][]string
}
