package output

import (
	"strings"
	"testing"

	"astrosort/internal/merger"
	"astrosort/internal/orchestrator"
)

func sampleReport() *orchestrator.RunReport {
	return &orchestrator.RunReport{
		Root:    "/collections",
		Skipped: []string{"Psi Eridani"},
		Groups: []orchestrator.GroupReport{
			{
				Designation:   "M 42",
				CanonicalName: "M 42 - Orion Nebula",
				Created:       true,
				Outcomes: []orchestrator.FolderOutcome{
					{Name: "M42", Action: orchestrator.ActionMerged, NewName: "M42 - deleteable"},
					{Name: "M 42 - old", Action: orchestrator.ActionMerged, NewName: "M 42 - old - deleteable"},
				},
			},
			{
				Designation:   "NGC 7000",
				CanonicalName: "NGC 7000",
				Outcomes: []orchestrator.FolderOutcome{
					{Name: "ngc7000", Action: orchestrator.ActionRenamed, NewName: "NGC 7000"},
				},
			},
		},
		Conflicts: []merger.Conflict{
			{SourcePath: "M42 - deleteable/frame001.fit", DestinationPath: "M 42 - Orion Nebula/frame001.fit"},
		},
		Renamed:   1,
		Merged:    2,
		Untouched: 0,
	}
}

func TestRenderListsEveryDecision(t *testing.T) {
	text := Render(sampleReport())

	for _, want := range []string{
		"Psi Eridani",
		`M 42 => "M 42 - Orion Nebula"`,
		"created  M 42 - Orion Nebula",
		"merged   M42 -> M42 - deleteable",
		"renamed  ngc7000 -> NGC 7000",
		"M42 - deleteable/frame001.fit blocked by M 42 - Orion Nebula/frame001.fit",
		"Summary: 1 renamed, 2 merged, 0 already correct, 1 skipped, 1 conflicts",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first := Render(sampleReport())
	for i := 0; i < 5; i++ {
		if got := Render(sampleReport()); got != first {
			t.Fatal("Render is not deterministic for equal reports")
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	text := Render(&orchestrator.RunReport{Root: "/collections"})
	if !strings.Contains(text, "Summary: 0 renamed, 0 merged, 0 already correct, 0 skipped, 0 conflicts") {
		t.Errorf("unexpected empty render:\n%s", text)
	}
}
