package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"node_modules", "**/node_modules/**", true},
		{"src/node_modules", "**/node_modules/**", true},
		{"a/node_modules/b", "**/node_modules/**", true},
		{"dist", "**/dist/**", true},
		{"src/dist", "**/dist/**", true},
		{"out", "**/out/**", true},
		{"src/out", "**/out/**", true},

		// Segment boundaries: a name that merely ends or starts with an
		// excluded name is a different directory
		{"predist", "**/dist/**", false},
		{"src/predist", "**/dist/**", false},
		{"src/checkout", "**/out/**", false},
		{"src/layouts", "**/out/**", false},
		{"src/logout", "**/out/**", false},
		{"outreach", "**/out/**", false},

		// Plain patterns go through filepath.Match
		{"build", "build", true},
		{"rebuild", "build", false},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, expected %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestScanDirectoryKeepsSimilarlyNamedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/checkout/pay.ts")
	writeFile(t, root, "src/layouts/main.ts")
	writeFile(t, root, "src/components/Button.tsx")
	writeFile(t, root, "src/dist/bundle.js")
	writeFile(t, root, "out/generated.js")

	files, err := ScanDirectory(root, []string{"**/out/**", "**/dist/**"})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	scanned := make(map[string]bool)
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		scanned[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{"src/checkout/pay.ts", "src/layouts/main.ts", "src/components/Button.tsx"} {
		if !scanned[want] {
			t.Errorf("%s was wrongly excluded from the scan; scanned: %v", want, scanned)
		}
	}
	for f := range scanned {
		if strings.Contains(f, "dist/") || strings.HasPrefix(f, "out/") {
			t.Errorf("excluded path leaked into scan: %s", f)
		}
	}
}
