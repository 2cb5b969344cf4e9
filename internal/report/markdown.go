package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/domain/run"
)

// todoPlaceholder marks checklist items with no recorded outcome.
// Presentation only, never persisted.
const todoPlaceholder = "TODO"

// Options carries optional rendering inputs.
type Options struct {
	// GeneratedBy, when non-empty, is appended as a footer line. It is the
	// only non-deterministic-looking content and is entirely caller-supplied.
	GeneratedBy string
}

// Markdown renders the report. Byte-identical output for identical inputs.
// Items appear in checklist order; optional detail lines are omitted when
// their value is empty.
func Markdown(proj *project.Project, rn *run.Run, items []checklist.Item, progress map[string]run.Result, opts Options) string {
	summary := Summarize(items, progress)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("# Collaudo Report - %s", proj.Name)
	line("")
	line("- Client: %s", orDash(proj.Client))
	line("- Site: %s", orDash(proj.Site))
	line("- Run: %s", rn.Name)
	line("- Operator: %s", orDash(rn.Operator))
	line("- Started: %s", rn.StartedAt.UTC().Format(run.TimeLayout))
	if rn.ClosedAt != nil {
		line("- Closed: %s", rn.ClosedAt.UTC().Format(run.TimeLayout))
	}
	line("")
	line("## Summary")
	line("")
	line("- Total checks: **%d**", summary.Total)
	line("- Executed: **%d**", summary.Done)
	line("- Fail: **%d**", summary.Fail)
	line("")
	line("## Details")
	line("")

	for _, item := range items {
		outcome := todoPlaceholder
		var note string
		var ts time.Time
		if res, ok := progress[item.ID]; ok {
			outcome = string(res.Outcome)
			note = res.Note
			ts = res.Timestamp
		}

		category := ""
		if item.Category != "" {
			category = fmt.Sprintf("[%s] ", item.Category)
		}

		line("- **%s** - %s%s", outcome, category, item.Title)
		if item.Expected != "" {
			line("  - Expected: %s", item.Expected)
		}
		if !ts.IsZero() {
			line("  - Timestamp: %s", ts.UTC().Format(run.TimeLayout))
		}
		if note != "" {
			line("  - Note: %s", note)
		}
	}

	line("")
	if opts.GeneratedBy != "" {
		line("_Generated by %s_", opts.GeneratedBy)
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
