package analyzer

import (
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// sampleByteLimit caps how much of a file the content analyzer sees.
// Signals live near the top of source files; reading more only costs time.
const sampleByteLimit = 64 * 1024

// ReadFileSample reads up to sampleByteLimit bytes of a file with encoding
// fallback: UTF-8 first, then EUC-KR/CP949 for legacy codebases. A file
// that decodes under neither is returned as-is; shallow pattern matching
// tolerates mojibake.
func ReadFileSample(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, sampleByteLimit)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	raw := buf[:n]

	if utf8.Valid(raw) {
		return stripComments(string(raw)), nil
	}

	decoder := korean.EUCKR.NewDecoder()
	decoded, _, derr := transform.Bytes(decoder, raw)
	if derr != nil {
		return stripComments(string(raw)), nil
	}
	return stripComments(string(decoded)), nil
}

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
)

// stripComments removes block and line comments so commented-out code does
// not produce false signals. Line comments inside string literals are an
// accepted inaccuracy for a shallow analyzer.
func stripComments(content string) string {
	content = blockCommentRe.ReplaceAllString(content, "")
	return lineCommentRe.ReplaceAllString(content, "")
}
