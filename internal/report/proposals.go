// Package report renders Markdown reports from triaged review feedback
// and delivers them to the configured output destinations.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prcopilot/internal/triage"
)

// NoActionableItemsMessage is returned when the pipeline found nothing
// worth tracking.
const NoActionableItemsMessage = "✅ No actionable items found in review comments."

const bodyExcerptLimit = 200

var priorityBadges = map[int]string{
	1: "🔴 High",
	2: "🟡 Medium",
	3: "🟢 Low",
}

var categoryEmoji = map[string]string{
	"critical":    "🚨",
	"bug":         "🐛",
	"improvement": "💡",
	"style":       "🎨",
	"question":    "❓",
}

var titleCaser = cases.Title(language.English)

// Proposals renders the fix-proposals report. Items are grouped by
// category and the sections appear in severity order; categories with no
// items are omitted. The sorted input order is preserved within each
// section.
func Proposals(items []triage.ActionableItem) string {
	if len(items) == 0 {
		return NoActionableItemsMessage
	}

	categorized := make(map[string][]triage.ActionableItem)
	for _, item := range items {
		categorized[item.Category] = append(categorized[item.Category], item)
	}

	var report strings.Builder
	report.WriteString("🔧 **Fix Proposals from Review Comments**\n\n")

	for _, category := range triage.CategoryOrder {
		group := categorized[category]
		if len(group) == 0 {
			continue
		}

		emoji := categoryEmoji[category]
		if emoji == "" {
			emoji = "📝"
		}
		fmt.Fprintf(&report, "\n### %s %s (%d)\n\n", emoji, titleCaser.String(category), len(group))

		for i, item := range group {
			report.WriteString(formatItem(i+1, item))
		}
	}

	report.WriteString(summarize(items))
	return report.String()
}

func formatItem(index int, item triage.ActionableItem) string {
	var out strings.Builder

	fmt.Fprintf(&out, "**%d. Comment by @%s**\n", index, item.Author)
	if item.HasLocation() {
		fmt.Fprintf(&out, "   - **Location:** `%s:%d`\n", item.File, item.Line)
	}

	badge, ok := priorityBadges[item.Priority]
	if !ok {
		badge = "Medium"
	}
	fmt.Fprintf(&out, "   - **Priority:** %s\n", badge)
	fmt.Fprintf(&out, "   - **Feedback:** %s\n", excerpt(item.Body))

	if len(item.CodeSuggestions) > 0 {
		out.WriteString(formatSuggestions(item.CodeSuggestions))
	}

	fmt.Fprintf(&out, "   - [View Comment](%s)\n\n", item.URL)
	return out.String()
}

func formatSuggestions(suggestions []triage.CodeSuggestion) string {
	var out strings.Builder
	out.WriteString("   - **Suggested Code:**\n")
	for _, s := range suggestions {
		if s.Type == triage.SuggestionTypeCode {
			fmt.Fprintf(&out, "     ```\n     %s\n     ```\n", s.Content)
		} else {
			fmt.Fprintf(&out, "     `%s`\n", s.Content)
		}
	}
	return out.String()
}

// excerpt truncates a body to the excerpt limit, counted in runes so
// multi-byte text is never split mid-character.
func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= bodyExcerptLimit {
		return body
	}
	return string(runes[:bodyExcerptLimit]) + "..."
}

func summarize(items []triage.ActionableItem) string {
	counts := triage.CountByCategory(items)

	var out strings.Builder
	out.WriteString("\n---\n\n**Summary:**\n")
	fmt.Fprintf(&out, "- **Total Actionable Items:** %d\n", len(items))

	if counts["critical"] > 0 {
		fmt.Fprintf(&out, "- 🚨 **Critical Issues:** %d\n", counts["critical"])
	}
	if counts["bug"] > 0 {
		fmt.Fprintf(&out, "- 🐛 **Bugs:** %d\n", counts["bug"])
	}

	fmt.Fprintf(&out, "- 💡 **Improvements:** %d\n", counts["improvement"])
	fmt.Fprintf(&out, "- 🎨 **Style:** %d\n", counts["style"])
	fmt.Fprintf(&out, "- ❓ **Questions:** %d\n", counts["question"])

	if counts["critical"] > 0 || counts["bug"] > 0 {
		out.WriteString("\n⚠️ **Priority:** Address critical issues and bugs first.\n")
	}

	out.WriteString("\n*Generated by PR Copilot Fix Suggestion Tool*\n")
	return out.String()
}
