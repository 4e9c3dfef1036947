package triage

import (
	"regexp"
	"strings"
)

var (
	// Fenced suggestion blocks: ```suggestion ... ```
	fencedSuggestionRegex = regexp.MustCompile("(?s)```suggestion\\s*\n(.*?)\n```")
	// Inline replacements: "should be `x`", "change to `x`", etc.
	inlineSuggestionRegex = regexp.MustCompile("(?i)(?:should be|change to|replace with|use)\\s+`([^`]+)`")
)

// ExtractCodeSuggestions collects every code suggestion embedded in a
// comment body. Two sequential scans run over the text: all fenced
// ```suggestion blocks in document order, then all inline backticked
// replacements in document order. Snippets are trimmed of surrounding
// whitespace. An empty body yields no suggestions.
func ExtractCodeSuggestions(body string) []CodeSuggestion {
	var suggestions []CodeSuggestion

	for _, m := range fencedSuggestionRegex.FindAllStringSubmatch(body, -1) {
		suggestions = append(suggestions, CodeSuggestion{
			Type:    SuggestionTypeCode,
			Content: strings.TrimSpace(m[1]),
		})
	}

	for _, m := range inlineSuggestionRegex.FindAllStringSubmatch(body, -1) {
		suggestions = append(suggestions, CodeSuggestion{
			Type:    SuggestionTypeInline,
			Content: strings.TrimSpace(m[1]),
		})
	}

	return suggestions
}

// Categorize assigns a category and numeric priority (1 highest, 3
// lowest) to a comment body. The category rule table is consulted in
// order and the first keyword hit wins, so a comment mentioning both
// "security" and "bug" lands in critical. Matching is plain
// case-insensitive substring containment; comments matching no rule
// default to (improvement, 2).
func Categorize(body string) (string, int) {
	lower := strings.ToLower(body)

	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name, rule.Priority
			}
		}
	}

	return "improvement", 2
}

// IsActionable reports whether a comment body contains at least one of
// the configured keywords, case-insensitively. An empty keyword list
// never matches.
func IsActionable(body string, keywords []string) bool {
	lower := strings.ToLower(body)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
