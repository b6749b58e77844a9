package analyzer

// Config holds configuration for the analysis engine
type Config struct {
	// ProjectRoot is the absolute root the file paths are relative to
	ProjectRoot string

	// ContentSampleSize bounds per-directory file reads during content
	// analysis
	ContentSampleSize int

	// OnDirectory, when set, is invoked once per resolved directory.
	// Used for progress reporting.
	OnDirectory func(path string)
}

// DefaultConfig returns the default engine configuration
func DefaultConfig(projectRoot string) *Config {
	return &Config{
		ProjectRoot:       projectRoot,
		ContentSampleSize: 5,
	}
}
