package sibling

import (
	"sort"
	"strings"
)

// Pattern detection over a directory's siblings. Recognizes repeated naming
// templates, e.g. one folder per market ("gateway-web-hk", "gateway-web-id")
// or a shared hyphenated prefix, so deployment-unit folders are not
// misclassified by content heuristics later in the cascade.

// Result is the outcome of analyzing one directory level
type Result struct {
	IsProjectPattern bool
	Pattern          string // "market-suffix", "shared-prefix", or "hyphenated"
}

// marketCodes is the curated set of two-letter market/region codes accepted
// as a per-market suffix
var marketCodes = map[string]bool{
	"hk": true, "id": true, "my": true, "sg": true, "th": true,
	"vn": true, "tw": true, "jp": true, "kr": true, "cn": true,
	"in": true, "ph": true, "au": true, "nz": true, "us": true,
	"uk": true, "gb": true, "de": true, "fr": true, "es": true,
	"it": true, "nl": true, "pl": true, "br": true, "mx": true,
	"ca": true, "ae": true, "sa": true, "za": true, "tr": true,
}

// Analyze inspects sibling basenames for a repeated naming template. Fewer
// than two siblings can never form a pattern. The three sub-tests run in a
// fixed order and the first satisfied one wins.
func Analyze(siblings []string) Result {
	if len(siblings) < 2 {
		return Result{}
	}

	if ok := marketSuffixPattern(siblings); ok {
		return Result{IsProjectPattern: true, Pattern: "market-suffix"}
	}
	if prefix, ok := sharedPrefixPattern(siblings); ok {
		return Result{IsProjectPattern: true, Pattern: "shared-prefix:" + prefix}
	}
	if ok := hyphenatedPattern(siblings); ok {
		return Result{IsProjectPattern: true, Pattern: "hyphenated"}
	}

	return Result{}
}

// marketSuffixPattern: at least half of the siblings end in a recognized
// two-letter market code
func marketSuffixPattern(siblings []string) bool {
	count := 0
	for _, name := range siblings {
		idx := strings.LastIndex(name, "-")
		if idx < 0 || idx == len(name)-1 {
			continue
		}
		suffix := strings.ToLower(name[idx+1:])
		if marketCodes[suffix] {
			count++
		}
	}
	return count*2 >= len(siblings) && count >= 2
}

// sharedPrefixPattern: a multi-segment hyphenated prefix (two or more
// hyphen-joined words) shared by at least half of the siblings
func sharedPrefixPattern(siblings []string) (string, bool) {
	prefixCounts := make(map[string]int)

	for _, name := range siblings {
		parts := strings.Split(name, "-")
		// Collect every prefix with at least two segments
		for n := 2; n < len(parts); n++ {
			prefix := strings.Join(parts[:n], "-")
			prefixCounts[prefix]++
		}
	}

	// Prefer the longest qualifying prefix; alphabetical on ties for
	// deterministic output
	candidates := make([]string, 0, len(prefixCounts))
	for prefix, count := range prefixCounts {
		if count*2 >= len(siblings) && count >= 2 {
			candidates = append(candidates, prefix)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true
}

// hyphenatedPattern: loose fallback, at least two siblings contain a hyphen
// and hyphenated names cover at least half of the level
func hyphenatedPattern(siblings []string) bool {
	count := 0
	for _, name := range siblings {
		if strings.Contains(name, "-") {
			count++
		}
	}
	return count >= 2 && count*2 >= len(siblings)
}
