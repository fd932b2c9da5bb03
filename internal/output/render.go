package output

import (
	"fmt"
	"strings"

	"astrosort/internal/orchestrator"
)

// Render turns a run report into the line-oriented summary shown to the
// operator. It is a pure function of the report, which is what makes the
// preview and live summaries identical for the same starting tree.
func Render(report *orchestrator.RunReport) string {
	var b strings.Builder

	if len(report.Skipped) > 0 {
		b.WriteString("Skipped (no catalog designation):\n")
		for _, name := range report.Skipped {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}

	for _, group := range report.Groups {
		fmt.Fprintf(&b, "%s => %q\n", group.Designation, group.CanonicalName)
		if group.Created {
			fmt.Fprintf(&b, "  created  %s\n", group.CanonicalName)
		}
		for _, outcome := range group.Outcomes {
			switch outcome.Action {
			case orchestrator.ActionAlreadyCorrect:
				fmt.Fprintf(&b, "  ok       %s\n", outcome.Name)
			case orchestrator.ActionRenamed:
				fmt.Fprintf(&b, "  renamed  %s -> %s\n", outcome.Name, outcome.NewName)
			case orchestrator.ActionMerged:
				fmt.Fprintf(&b, "  merged   %s -> %s\n", outcome.Name, outcome.NewName)
			}
		}
	}

	if len(report.Conflicts) > 0 {
		b.WriteString("Conflicts (source file kept in place):\n")
		for _, conflict := range report.Conflicts {
			fmt.Fprintf(&b, "  %s blocked by %s\n", conflict.SourcePath, conflict.DestinationPath)
		}
	}

	fmt.Fprintf(&b, "Summary: %d renamed, %d merged, %d already correct, %d skipped, %d conflicts\n",
		report.Renamed, report.Merged, report.Untouched, len(report.Skipped), len(report.Conflicts))
	return b.String()
}
