package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	// Verify defaults
	if cfg.Project.RootDir == "" {
		t.Error("Expected RootDir to be set")
	}

	if cfg.Output.Dir == "" {
		t.Error("Expected Output.Dir to be set")
	}

	if cfg.Output.FileName == "" {
		t.Error("Expected Output.FileName to be set")
	}

	if len(cfg.Analysis.ExcludeDirs) == 0 {
		t.Error("Expected at least one exclude pattern")
	}

	if cfg.Analysis.ContentSampleSize <= 0 {
		t.Error("Expected a positive content sample size")
	}

	if len(cfg.Output.Formats) == 0 {
		t.Error("Expected at least one output format")
	}

	t.Logf("Config loaded successfully with defaults")
	cfg.Print()
}

func TestShouldExclude(t *testing.T) {
	cfg := &Config{
		Analysis: AnalysisConfig{
			ExcludeDirs: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/.git/**",
			},
		},
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"src/node_modules/react/index.js", true},
		{"src/components/Button.tsx", false},
		{"web/dist/bundle.js", true},
		{"project/.git/config", true},
		{"src/features/checkout/index.ts", false},
		{"apps/admin/node_modules/lodash/fp.js", true},
	}

	for _, tt := range tests {
		result := cfg.ShouldExclude(tt.path)
		if result != tt.expected {
			t.Errorf("ShouldExclude(%s) = %v, expected %v", tt.path, result, tt.expected)
		}
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{
			Dir:      "/tmp/output",
			FileName: "test-report",
		},
	}

	expected := filepath.Join("/tmp/output", "test-report.xlsx")
	result := cfg.GetOutputPath()

	if result != expected {
		t.Errorf("GetOutputPath() = %s, expected %s", result, expected)
	}
}

func TestValidate(t *testing.T) {
	// Create a temporary directory for testing
	tmpDir, err := os.MkdirTemp("", "dirsight-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid config",
			cfg: &Config{
				Project: ProjectConfig{
					RootDir: tmpDir,
				},
				Analysis: AnalysisConfig{
					ContentSampleSize: 5,
				},
				Output: OutputConfig{
					FileName: "report",
				},
			},
			shouldErr: false,
		},
		{
			name: "Nonexistent root directory",
			cfg: &Config{
				Project: ProjectConfig{
					RootDir: "/nonexistent/directory",
				},
				Analysis: AnalysisConfig{
					ContentSampleSize: 5,
				},
				Output: OutputConfig{
					FileName: "report",
				},
			},
			shouldErr: true,
		},
		{
			name: "Non-positive sample size",
			cfg: &Config{
				Project: ProjectConfig{
					RootDir: tmpDir,
				},
				Analysis: AnalysisConfig{
					ContentSampleSize: 0,
				},
				Output: OutputConfig{
					FileName: "report",
				},
			},
			shouldErr: true,
		},
		{
			name: "Empty output filename",
			cfg: &Config{
				Project: ProjectConfig{
					RootDir: tmpDir,
				},
				Analysis: AnalysisConfig{
					ContentSampleSize: 5,
				},
				Output: OutputConfig{
					FileName: "",
				},
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestMatchPathPattern(t *testing.T) {
	tests := []struct {
		path     string
		pattern  string
		expected bool
	}{
		{"src/node_modules/react/index.js", "**/node_modules/**", true},
		{"node_modules/react/index.js", "**/node_modules/**", true},
		{"src/components/Button.tsx", "**/node_modules/**", false},
		{"web/dist/app.js", "**/dist/**", true},
		{"src/distill/notes.md", "**/dist/**", false},
		{"coverage/lcov.info", "**/coverage/**", true},
	}

	for _, tt := range tests {
		result := matchPathPattern(tt.path, tt.pattern)
		if result != tt.expected {
			t.Errorf("matchPathPattern(%s, %s) = %v, expected %v", tt.path, tt.pattern, result, tt.expected)
		}
	}
}
