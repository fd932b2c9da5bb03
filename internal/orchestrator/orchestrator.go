// Package orchestrator coordinates the folder normalization workflow for astrosort.
package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"astrosort/internal/catalog"
	"astrosort/internal/config"
	"astrosort/internal/merger"
	"astrosort/internal/namer"
	"astrosort/internal/renamer"
	"astrosort/internal/scanner"
)

// RunOptions selects run behavior.
type RunOptions struct {
	// DryRun computes and reports every decision without issuing a single
	// filesystem write.
	DryRun bool
}

// Run executes one normalization pass over cfg.RootDirectory.
//
// The root's immediate subdirectories are snapshotted once, classified by
// catalog designation, grouped, and each group is driven to exactly one
// canonical folder. Folders that match no catalog pattern are reported and
// never touched. A missing root aborts before any mutation; everything
// else is absorbed into the report.
func Run(cfg *config.Configuration, opts RunOptions) (*RunReport, error) {
	root := cfg.RootDirectory

	folders, err := scanner.Scan(root, renamer.Marker)
	if err != nil {
		return nil, err
	}

	report := &RunReport{Root: root}

	// Partition into catalog groups, preserving scan order inside each
	// group for deterministic tie-breaks.
	groups := make(map[catalog.ID][]scanner.FolderEntry)
	var order []catalog.ID
	for _, folder := range folders {
		m := catalog.Classify(folder.Name)
		if !m.OK {
			report.Skipped = append(report.Skipped, folder.Name)
			continue
		}
		if _, seen := groups[m.Designation]; !seen {
			order = append(order, m.Designation)
		}
		groups[m.Designation] = append(groups[m.Designation], folder)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	chooser := namer.New(cfg.LookupTable())
	for _, id := range order {
		processGroup(report, root, id, groups[id], chooser, opts)
	}
	return report, nil
}

// processGroup drives one catalog group to a single canonical folder.
// Failures are recorded on the report and leave the failing folder in a
// state a later run can pick up again.
func processGroup(report *RunReport, root string, id catalog.ID, members []scanner.FolderEntry, chooser *namer.Namer, opts RunOptions) {
	names := make([]string, len(members))
	for i, member := range members {
		names[i] = member.Name
	}
	canonical := chooser.Choose(id, names)

	group := GroupReport{Designation: id, CanonicalName: canonical}

	if len(members) == 1 {
		if outcome, ok := renameInPlace(report, root, members[0], canonical, opts); ok {
			group.Outcomes = append(group.Outcomes, outcome)
		}
		report.Groups = append(report.Groups, group)
		return
	}

	canonicalPath := filepath.Join(root, canonical)
	m := merger.New(!opts.DryRun)

	hasCanonical := false
	for _, member := range members {
		if member.Name == canonical {
			hasCanonical = true
			break
		}
	}
	if !hasCanonical {
		if !opts.DryRun {
			if err := os.Mkdir(canonicalPath, 0o755); err != nil {
				report.Errors = append(report.Errors, fmt.Errorf("create %s: %w", canonicalPath, err))
				report.Groups = append(report.Groups, group)
				return
			}
		}
		m.PlanDir(canonicalPath)
		group.Created = true
	}

	var result merger.Result
	for _, member := range members {
		if member.Name == canonical {
			report.Untouched++
			group.Outcomes = append(group.Outcomes, FolderOutcome{
				Name:   member.Name,
				Action: ActionAlreadyCorrect,
			})
			continue
		}

		if err := m.Merge(member.Path, canonicalPath, &result); err != nil {
			// Leave the folder unmarked so a re-run retries the merge.
			report.Errors = append(report.Errors, err)
			continue
		}

		marked, err := markRemovable(member.Path, opts)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("mark %s: %w", member.Path, err))
			continue
		}
		repointConflictSources(result.Conflicts, member.Path, marked)
		report.Merged++
		group.Outcomes = append(group.Outcomes, FolderOutcome{
			Name:    member.Name,
			Action:  ActionMerged,
			NewName: filepath.Base(marked),
		})
	}
	report.Conflicts = append(report.Conflicts, result.Conflicts...)
	report.Groups = append(report.Groups, group)
}

// renameInPlace handles a single-member group: either the name is already
// canonical or the folder is renamed, with no merge involved. A failed
// rename is recorded as an error and yields no outcome.
func renameInPlace(report *RunReport, root string, member scanner.FolderEntry, canonical string, opts RunOptions) (FolderOutcome, bool) {
	if member.Name == canonical {
		report.Untouched++
		return FolderOutcome{Name: member.Name, Action: ActionAlreadyCorrect}, true
	}
	if !opts.DryRun {
		if err := os.Rename(member.Path, filepath.Join(root, canonical)); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("rename %s: %w", member.Path, err))
			return FolderOutcome{}, false
		}
	}
	report.Renamed++
	return FolderOutcome{Name: member.Name, Action: ActionRenamed, NewName: canonical}, true
}

// repointConflictSources rewrites conflict sources from a folder's
// pre-mark path to its removable-marked path. The retained files live
// under the marked name by the time the operator reads the report, so the
// cited paths must too.
func repointConflictSources(conflicts []merger.Conflict, oldDir, newDir string) {
	prefix := oldDir + string(filepath.Separator)
	for i := range conflicts {
		if strings.HasPrefix(conflicts[i].SourcePath, prefix) {
			conflicts[i].SourcePath = newDir + conflicts[i].SourcePath[len(oldDir):]
		}
	}
}

// markRemovable applies the removable marker, or in preview computes the
// name the live run would pick.
func markRemovable(dir string, opts RunOptions) (string, error) {
	if opts.DryRun {
		return renamer.RemovableName(dir, func(candidate string) bool {
			_, err := os.Lstat(candidate)
			return err == nil
		}), nil
	}
	return renamer.MarkRemovable(dir)
}
