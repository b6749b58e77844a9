package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	RootDir string `mapstructure:"root_dir"` // Root directory to analyze
}

// AnalysisConfig holds analysis behavior settings
type AnalysisConfig struct {
	ExcludeDirs       []string `mapstructure:"exclude_dirs"`        // Directories to exclude from scanning
	ContentSampleSize int      `mapstructure:"content_sample_size"` // Files read per directory during content analysis
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir"`       // Output directory
	FileName string   `mapstructure:"file_name"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats"`   // Report formats to generate
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Project: .")
			fmt.Println("  Output:  ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Analyze the current directory by default so the tool works when
	// dropped into a project root
	v.SetDefault("project.root_dir", ".")

	v.SetDefault("analysis.exclude_dirs", []string{
		"**/node_modules/**",
		"**/dist/**",
		"**/build/**",
		"**/out/**",
		"**/.next/**",
		"**/.nuxt/**",
		"**/coverage/**",
		"**/.git/**",
		"**/.svn/**",
		"**/vendor/**",
		"**/target/**",
	})
	v.SetDefault("analysis.content_sample_size", 5)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "dirsight-report")
	v.SetDefault("output.formats", []string{"excel", "markdown", "word", "json"})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absRoot, err := filepath.Abs(c.Project.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = absRoot

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// ShouldExclude checks if a file path should be excluded based on exclude_dirs
func (c *Config) ShouldExclude(filePath string) bool {
	normalizedPath := filepath.ToSlash(filePath)

	for _, pattern := range c.Analysis.ExcludeDirs {
		if matchPathPattern(normalizedPath, pattern) {
			return true
		}
	}
	return false
}

// GetOutputPath returns the full path for the output Excel file
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Project.RootDir); os.IsNotExist(err) {
		return fmt.Errorf("root_dir does not exist: %s", c.Project.RootDir)
	}

	if c.Analysis.ContentSampleSize <= 0 {
		return fmt.Errorf("analysis.content_sample_size must be positive")
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	return nil
}

// matchPathPattern checks if a path matches a glob pattern
// Supports ** for recursive directory matching
func matchPathPattern(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")

		// **/dir/** form - the directory may sit anywhere in the path
		if len(parts) == 3 && parts[0] == "" && parts[2] == "" {
			mid := strings.Trim(parts[1], "/")
			if mid == "" {
				return true
			}
			return path == mid ||
				strings.HasPrefix(path, mid+"/") ||
				strings.Contains(path, "/"+mid+"/") ||
				strings.HasSuffix(path, "/"+mid)
		}

		// **/ pattern - match anywhere in path
		if len(parts) == 2 {
			prefix := strings.Trim(parts[0], "/")
			suffix := strings.Trim(parts[1], "/")

			hasPrefix := true
			if prefix != "" {
				hasPrefix = strings.HasPrefix(path, prefix+"/") || strings.Contains(path, "/"+prefix+"/")
			}

			hasSuffix := true
			if suffix != "" {
				hasSuffix = strings.Contains(path, "/"+suffix+"/") ||
					strings.HasSuffix(path, "/"+suffix) ||
					strings.HasPrefix(path, suffix+"/")
			}

			return hasPrefix && hasSuffix
		}
	}

	cleanPattern := strings.Trim(pattern, "*")
	return strings.Contains(path, cleanPattern)
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Dirsight Configuration ===")
	fmt.Printf("Project Root:     %s\n", c.Project.RootDir)
	fmt.Printf("Exclude Dirs:     %v\n", c.Analysis.ExcludeDirs)
	fmt.Printf("Content Sample:   %d files/dir\n", c.Analysis.ContentSampleSize)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output Formats:   %v\n", c.Output.Formats)
	fmt.Println("==============================")
}
