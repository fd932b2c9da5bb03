// Package orchestrator coordinates the folder normalization workflow for astrosort.
package orchestrator

import (
	"astrosort/internal/catalog"
	"astrosort/internal/merger"
)

// Action describes what the run did, or in preview would do, to one folder.
type Action string

const (
	// ActionAlreadyCorrect means the folder already bears the canonical name.
	ActionAlreadyCorrect Action = "ALREADY_CORRECT"
	// ActionRenamed means the folder was renamed in place to the canonical name.
	ActionRenamed Action = "RENAMED"
	// ActionMerged means the folder's contents were merged into the canonical
	// folder and the emptied original was marked removable.
	ActionMerged Action = "MERGED"
)

// FolderOutcome ties one scanned folder to what happened to it.
type FolderOutcome struct {
	Name    string
	Action  Action
	NewName string // canonical name for renames, removable name for merges
}

// GroupReport summarizes the handling of one catalog group.
type GroupReport struct {
	Designation   catalog.ID
	CanonicalName string
	Created       bool // the canonical folder had to be created
	Outcomes      []FolderOutcome
}

// RunReport is the complete account of one run, built by the decision
// phase and rendered separately. A preview run over a given tree produces
// the same report a live run would.
type RunReport struct {
	Root      string
	Skipped   []string // folder names with no catalog designation, scan order
	Groups    []GroupReport
	Conflicts []merger.Conflict
	Errors    []error // recoverable per-folder failures, run continued

	Renamed   int // folders renamed in place
	Merged    int // folders merged away and marked removable
	Untouched int // classified folders already bearing the canonical name
}

// HasErrors reports whether any folder operation failed during the run.
// Skips and merge conflicts are expected outcomes, not errors.
func (r *RunReport) HasErrors() bool {
	return len(r.Errors) > 0
}
