// Package triage turns raw pull request review feedback into
// categorized, prioritized actionable items.
package triage

import "time"

// Suggestion types emitted by ExtractCodeSuggestions.
const (
	SuggestionTypeCode   = "code_suggestion"
	SuggestionTypeInline = "inline_suggestion"
)

// CodeSuggestion is a proposed replacement extracted from a comment body,
// either a fenced ```suggestion block or an inline backticked span.
type CodeSuggestion struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ActionableItem is one piece of reviewer feedback that passed the
// actionability filter. Items are immutable once built.
type ActionableItem struct {
	ID              int64            `json:"id"`
	Author          string           `json:"author"`
	Body            string           `json:"body"`
	Category        string           `json:"category"`
	Priority        int              `json:"priority"`
	File            string           `json:"file,omitempty"`
	Line            int              `json:"line,omitempty"`
	CodeSuggestions []CodeSuggestion `json:"code_suggestions"`
	URL             string           `json:"url"`
	CreatedAt       time.Time        `json:"created_at"`
}

// HasLocation reports whether the item carries a usable file:line reference.
func (a ActionableItem) HasLocation() bool {
	return a.File != "" && a.Line > 0
}

// CategoryRule binds a category name and priority to its trigger keywords.
type CategoryRule struct {
	Name     string
	Priority int
	Keywords []string
}

// categoryRules is consulted top to bottom; the first rule with a keyword
// hit wins. The order is deliberate: severity checks come before the
// catch-all improvement bucket.
var categoryRules = []CategoryRule{
	{Name: "critical", Priority: 1, Keywords: []string{"security", "vulnerability", "exploit", "critical", "breaking"}},
	{Name: "bug", Priority: 1, Keywords: []string{"bug", "error", "fails", "broken", "incorrect", "wrong"}},
	{Name: "question", Priority: 3, Keywords: []string{"why", "what", "how", "?", "clarify", "explain"}},
	{Name: "style", Priority: 3, Keywords: []string{"style", "format", "lint", "naming", "convention"}},
	{Name: "improvement", Priority: 2, Keywords: []string{"refactor", "improve", "optimize", "enhance", "consider"}},
}

// CategoryOrder is the fixed presentation order used by report rendering.
var CategoryOrder = []string{"critical", "bug", "improvement", "style", "question"}

// Categories returns a copy of the ordered category rule table.
func Categories() []CategoryRule {
	rules := make([]CategoryRule, len(categoryRules))
	copy(rules, categoryRules)
	return rules
}
