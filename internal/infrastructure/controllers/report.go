package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

//nolint:gochecknoglobals // color palette shared by the reports
var (
	successColor = color.New(color.FgGreen)
	skippedColor = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed)
	labelColor   = color.New(color.Bold)
)

// printBatch writes one line per file followed by a summary of the counts.
func printBatch(out io.Writer, result *entities.BatchResult) {
	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case entities.OutcomeReverted, entities.OutcomeStashed:
			successColor.Fprintf(out, "%-8s", outcome.Status)
			fmt.Fprintf(out, " %s\n", outcome.Path)
		case entities.OutcomeSkipped:
			skippedColor.Fprintf(out, "%-8s", outcome.Status)
			fmt.Fprintf(out, " %s\n", outcome.Path)
		case entities.OutcomeFailed:
			failureColor.Fprintf(out, "%-8s", outcome.Status)
			fmt.Fprintf(out, " %s: %v\n", outcome.Path, outcome.Err)
		}
	}

	fmt.Fprintln(out, summarize(result))
}

// summarize lists the non-zero counts, e.g. "2 reverted, 1 failed".
func summarize(result *entities.BatchResult) string {
	var parts []string
	for _, status := range []entities.OutcomeStatus{
		entities.OutcomeReverted,
		entities.OutcomeStashed,
		entities.OutcomeSkipped,
		entities.OutcomeFailed,
	} {
		if count := result.Count(status); count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, status))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// printDoctor writes the environment report.
func printDoctor(out io.Writer, report entities.DoctorReport) {
	labelColor.Fprint(out, "git version:    ")
	fmt.Fprintln(out, report.GitVersion)

	labelColor.Fprint(out, "scoped stash:   ")
	if report.ScopedStashSupported {
		successColor.Fprintln(out, "supported")
	} else {
		failureColor.Fprintf(out, "unsupported (needs %s or newer)\n", entities.MinimumScopedStashVersion)
	}

	labelColor.Fprint(out, "repository:     ")
	if report.RepositoryRoot != "" {
		fmt.Fprintln(out, report.RepositoryRoot)
	} else {
		skippedColor.Fprintln(out, "not inside a git repository")
	}
}
