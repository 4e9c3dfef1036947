package report

import (
	"fmt"
	"strings"
	"time"

	"prcopilot/internal/github"
)

// Injectable clock for deterministic tests
var nowFn = time.Now

// Status renders the PR status report: metadata, review summary, check
// rollup, merge state, and a readiness checklist.
func Status(st *github.PRStatus) string {
	labels := "None"
	if len(st.Labels) > 0 {
		quoted := make([]string, len(st.Labels))
		for i, l := range st.Labels {
			quoted[i] = fmt.Sprintf("`%s`", l)
		}
		labels = strings.Join(quoted, ", ")
	}

	draft := "✅ No"
	if st.Draft {
		draft = "📝 Yes"
	}

	merge := "❌ No"
	switch {
	case st.Mergeable == nil:
		merge = "⏳ Checking..."
	case *st.Mergeable:
		merge = "✅ Yes"
	}

	revs := st.ReviewStats
	reviewSection := fmt.Sprintf(
		"- ✅ **Approved:** %d\n"+
			"- 🔄 **Changes Requested:** %d\n"+
			"- 💬 **Commented:** %d\n"+
			"- 📋 **Total Reviews:** %d",
		revs.Approved, revs.ChangesRequested, revs.Commented, revs.Total)

	return fmt.Sprintf(`📊 **PR Status Report**

**PR Information**
- **Title:** %s (#%d)
- **Author:** @%s
- **Branch:** `+"`%s`"+` ← `+"`%s`"+`
- **Size:** %d files (%d commits)
- **Diff:** +%d / -%d
- **Labels:** %s
- **Draft:** %s

**Review Status**
%s
- **Comments/Threads:** %d

**CI/Check Status**
%s

**Merge Status**
- **Mergeable:** %s
- **State:** `+"`%s`"+`

**Task Checklist**
%s

---
*Last updated: %s UTC*
*Generated by PR Copilot*
`,
		st.Title, st.Number,
		st.Author,
		st.BaseRef, st.HeadRef,
		st.ChangedFiles, st.Commits,
		st.Additions, st.Deletions,
		labels,
		draft,
		reviewSection,
		st.CommentCount,
		formatChecks(st.CheckRuns),
		merge,
		st.MergeableState,
		formatChecklist(st),
		nowFn().UTC().Format("2006-01-02 15:04:05"))
}

func formatChecks(checks []github.CheckRun) string {
	if len(checks) == 0 {
		return "- ℹ️ No checks configured or pending"
	}

	var passed, failed, pending int
	for _, c := range checks {
		switch {
		case c.Conclusion == "success":
			passed++
		case c.Conclusion == "failure":
			failed++
		case c.Status != "completed":
			pending++
		}
	}
	skipped := len(checks) - passed - failed - pending

	lines := []string{
		fmt.Sprintf("- ✅ **Passed:** %d", passed),
		fmt.Sprintf("- ❌ **Failed:** %d", failed),
		fmt.Sprintf("- ⏳ **Pending:** %d", pending),
		fmt.Sprintf("- ⏭️ **Skipped:** %d", skipped),
		fmt.Sprintf("- 📊 **Total:** %d", len(checks)),
	}

	if failed > 0 {
		lines = append(lines, "\n**Failed Checks:**")
		for _, c := range checks {
			if c.Conclusion == "failure" {
				lines = append(lines, fmt.Sprintf("  - ❌ %s", c.Name))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// formatChecklist builds the Markdown task list summarizing PR readiness.
func formatChecklist(st *github.PRStatus) string {
	var tasks []string

	check := func(done bool, label string) {
		mark := " "
		if done {
			mark = "x"
		}
		tasks = append(tasks, fmt.Sprintf("- [%s] %s", mark, label))
	}

	check(!st.Draft, "Mark PR as ready for review")
	check(st.ReviewStats.Approved > 0, "Get approval from reviewer")

	total := len(st.CheckRuns)
	passed := 0
	for _, c := range st.CheckRuns {
		if c.Conclusion == "success" {
			passed++
		}
	}
	switch {
	case total == 0:
		tasks = append(tasks, "- [ ] CI checks pending/not configured")
	case passed == total:
		tasks = append(tasks, "- [x] All CI checks passing")
	default:
		tasks = append(tasks, fmt.Sprintf("- [ ] All CI checks passing (%d/%d passed)", passed, total))
	}

	switch {
	case st.MergeableState == "dirty":
		tasks = append(tasks, "- [ ] Resolve merge conflicts")
	case st.Mergeable != nil && *st.Mergeable:
		tasks = append(tasks, "- [x] No merge conflicts")
	default:
		tasks = append(tasks, "- [ ] Check for merge conflicts")
	}

	check(st.ReviewStats.ChangesRequested == 0, "No pending change requests")

	return strings.Join(tasks, "\n")
}
