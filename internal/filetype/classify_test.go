package filetype

import (
	"testing"

	"dirsight/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path     string
		expected model.FileCategory
	}{
		// Config filenames
		{"web/package.json", model.FileConfig},
		{"web/vite.config.ts", model.FileConfig},
		{"web/tailwind.config.js", model.FileConfig},

		// Test conventions
		{"src/components/Button.test.tsx", model.FileTest},
		{"src/utils/format.spec.ts", model.FileTest},
		{"src/__tests__/app.tsx", model.FileTest},
		{"e2e/login.ts", model.FileTest},

		// Styles
		{"src/components/Button.module.css", model.FileStyle},
		{"src/styles/global.scss", model.FileStyle},

		// Type declarations
		{"src/global.d.ts", model.FileType},
		{"src/api/user.types.ts", model.FileType},

		// Hook naming convention
		{"src/hooks/useCart.ts", model.FileHook},
		{"src/features/auth/useAuth.tsx", model.FileHook},

		// Directory segment bias
		{"src/components/button/index.tsx", model.FileComponent},
		{"src/pages/home.tsx", model.FilePage},
		{"src/services/payment.ts", model.FileService},
		{"src/models/user.ts", model.FileModel},
		{"server/controllers/order.js", model.FileController},
		{"server/middleware/auth.js", model.FileMiddleware},

		// PascalCase source fallback
		{"src/Button.tsx", model.FileComponent},

		// Nothing matched
		{"README.md", model.FileOther},
		{"src/index.ts", model.FileOther},
	}

	for _, tt := range tests {
		result := Classify(tt.path)
		if result.Category != tt.expected {
			t.Errorf("Classify(%s) = %s, expected %s (indicators: %v)",
				tt.path, result.Category, tt.expected, result.Indicators)
		}
	}
}

func TestClassifyInnermostSegmentWins(t *testing.T) {
	// A hooks directory nested under pages should classify as hook, not page
	result := Classify("src/pages/hooks/data.ts")
	if result.Category != model.FileHook {
		t.Errorf("expected innermost segment to win, got %s", result.Category)
	}
}

func TestClassifyTestSuffixBeatsSegment(t *testing.T) {
	// Test suffix outranks the components segment
	result := Classify("src/components/Button.test.tsx")
	if result.Category != model.FileTest {
		t.Errorf("expected test suffix to win, got %s", result.Category)
	}
}

func TestIsPascalCase(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"Button", true},
		{"UserProfile", true},
		{"button", false},
		{"user-profile", false},
		{"User_Profile", false},
		{"", false},
	}

	for _, tt := range tests {
		if isPascalCase(tt.name) != tt.expected {
			t.Errorf("isPascalCase(%s) = %v, expected %v", tt.name, !tt.expected, tt.expected)
		}
	}
}
