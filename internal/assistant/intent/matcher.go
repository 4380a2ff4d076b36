// Package intent implements the rule-based intent matcher: a fixed,
// ordered keyword table scanned first-match-wins.
package intent

import (
	"strings"

	"community-support-platform/internal/assistant"
)

// Classify returns the first category whose keyword set has a substring
// match in the lowercased question, or CategoryUnmatched.
//
// Matching is substring, not whole-word: "donated" hits the donate rule.
// That imprecision is intentional and kept for answer stability.
// Empty or whitespace-only input is valid and classifies as unmatched.
func Classify(question string) assistant.Category {
	normalized := strings.ToLower(strings.TrimSpace(question))
	if normalized == "" {
		return assistant.CategoryUnmatched
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return r.category
			}
		}
	}

	return assistant.CategoryUnmatched
}
