package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prcopilot/internal/github"
	"prcopilot/internal/triage"
)

func item(category string, priority int) triage.ActionableItem {
	return triage.ActionableItem{
		ID:        1,
		Author:    "reviewer",
		Body:      "some feedback",
		Category:  category,
		Priority:  priority,
		URL:       "https://example.com/comment/1",
		CreatedAt: time.Now(),
	}
}

func TestProposals_EmptyItems(t *testing.T) {
	out := Proposals(nil)

	assert.Equal(t, NoActionableItemsMessage, out)
	assert.NotContains(t, out, "###")
	assert.NotContains(t, out, "Summary")
}

func TestProposals_SectionOrderAndOmission(t *testing.T) {
	items := []triage.ActionableItem{
		item("question", 3),
		item("critical", 1),
		item("improvement", 2),
	}

	out := Proposals(items)

	critical := strings.Index(out, "### 🚨 Critical (1)")
	improvement := strings.Index(out, "### 💡 Improvement (1)")
	question := strings.Index(out, "### ❓ Question (1)")

	require.GreaterOrEqual(t, critical, 0)
	require.GreaterOrEqual(t, improvement, 0)
	require.GreaterOrEqual(t, question, 0)
	assert.Less(t, critical, improvement)
	assert.Less(t, improvement, question)

	// Categories with no items are omitted entirely
	assert.NotContains(t, out, "### 🐛 Bug")
	assert.NotContains(t, out, "### 🎨 Style")
}

func TestProposals_TruncationBoundary(t *testing.T) {
	exactly200 := strings.Repeat("a", 200)
	over200 := strings.Repeat("b", 201)

	full := item("improvement", 2)
	full.Body = exactly200
	long := item("improvement", 2)
	long.Body = over200

	out := Proposals([]triage.ActionableItem{full})
	assert.Contains(t, out, exactly200)
	assert.NotContains(t, out, exactly200+"...")

	out = Proposals([]triage.ActionableItem{long})
	assert.Contains(t, out, strings.Repeat("b", 200)+"...")
	assert.NotContains(t, out, over200)
}

func TestProposals_PriorityBadges(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		badge    string
	}{
		{name: "high", priority: 1, badge: "🔴 High"},
		{name: "medium", priority: 2, badge: "🟡 Medium"},
		{name: "low", priority: 3, badge: "🟢 Low"},
		{name: "unknown defaults to medium", priority: 9, badge: "**Priority:** Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := item("improvement", tt.priority)
			out := Proposals([]triage.ActionableItem{it})
			assert.Contains(t, out, tt.badge)
		})
	}
}

func TestProposals_LocationOnlyWhenComplete(t *testing.T) {
	located := item("bug", 1)
	located.File = "pkg/server.go"
	located.Line = 42

	out := Proposals([]triage.ActionableItem{located})
	assert.Contains(t, out, "**Location:** `pkg/server.go:42`")

	fileOnly := item("bug", 1)
	fileOnly.File = "pkg/server.go"

	out = Proposals([]triage.ActionableItem{fileOnly})
	assert.NotContains(t, out, "**Location:**")
}

func TestProposals_CodeSuggestionRendering(t *testing.T) {
	it := item("improvement", 2)
	it.CodeSuggestions = []triage.CodeSuggestion{
		{Type: triage.SuggestionTypeCode, Content: "x := compute()"},
		{Type: triage.SuggestionTypeInline, Content: "useThis()"},
	}

	out := Proposals([]triage.ActionableItem{it})

	assert.Contains(t, out, "**Suggested Code:**")
	assert.Contains(t, out, "```\n     x := compute()\n     ```")
	assert.Contains(t, out, "`useThis()`")
}

func TestProposals_Summary(t *testing.T) {
	items := []triage.ActionableItem{
		item("critical", 1),
		item("bug", 1),
		item("bug", 1),
		item("improvement", 2),
	}

	out := Proposals(items)

	assert.Contains(t, out, "**Total Actionable Items:** 4")
	assert.Contains(t, out, "🚨 **Critical Issues:** 1")
	assert.Contains(t, out, "🐛 **Bugs:** 2")
	assert.Contains(t, out, "💡 **Improvements:** 1")
	// Style and question counts always appear, even at zero
	assert.Contains(t, out, "🎨 **Style:** 0")
	assert.Contains(t, out, "❓ **Questions:** 0")
	assert.Contains(t, out, "⚠️ **Priority:** Address critical issues and bugs first.")
}

func TestProposals_SummaryWithoutSevereItems(t *testing.T) {
	out := Proposals([]triage.ActionableItem{item("style", 3)})

	assert.NotContains(t, out, "Critical Issues")
	assert.NotContains(t, out, "**Bugs:**")
	assert.NotContains(t, out, "Address critical issues and bugs first")
}

func TestProposals_EndToEnd(t *testing.T) {
	src := github.NewMockPullRequestSource()
	src.SetReviewComments([]github.ReviewComment{
		{
			ID:        1,
			Author:    "reviewer",
			Body:      "Please fix this security vulnerability in auth.py",
			File:      "auth.py",
			Line:      10,
			URL:       "https://example.com/comment/1",
			CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		},
	})

	items, err := triage.Collect(context.Background(), src, []string{"please", "fix"})
	require.NoError(t, err)

	out := Proposals(items)

	assert.Contains(t, out, "### 🚨 Critical (1)")
	assert.Contains(t, out, "`auth.py:10`")
	assert.Contains(t, out, "🔴 High")
	assert.Contains(t, out, "**Total Actionable Items:** 1")
	assert.Contains(t, out, "🚨 **Critical Issues:** 1")
}
