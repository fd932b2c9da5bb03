// Package merger relocates the contents of duplicate collection folders
// into their canonical folder.
package merger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MergeErrorType represents the type of merge error.
type MergeErrorType string

const (
	// SourceUnreadable indicates a source directory could not be listed.
	SourceUnreadable MergeErrorType = "SOURCE_UNREADABLE"
	// DestinationBlocked indicates a destination subdirectory is shadowed
	// by a non-directory entry of the same name.
	DestinationBlocked MergeErrorType = "DESTINATION_BLOCKED"
	// MoveFailed indicates a file could not be relocated.
	MoveFailed MergeErrorType = "MOVE_FAILED"
)

// MergeError represents an error that occurred during a merge.
type MergeError struct {
	Type MergeErrorType
	Path string
	Err  error
}

func (e *MergeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// Conflict records a file that could not be moved because the destination
// already holds an entry of the same name. The source file stays in place
// under its original folder.
type Conflict struct {
	SourcePath      string
	DestinationPath string
}

// Result accumulates the outcome of merging one or more source folders
// into a destination.
type Result struct {
	FilesMoved  int
	DirsCreated int
	Conflicts   []Conflict
}

// Merger unions source trees into a destination tree. Files move only when
// the destination has no entry of the same name; nothing is ever
// overwritten, and a re-run over a partially merged tree simply skips the
// files that already moved and re-reports the standing conflicts.
//
// With Apply false the merger records every decision without touching the
// filesystem. An overlay of planned moves and planned directories stands
// in for the mutations, so a preview reports exactly what a live run would
// do, including conflicts between two sources merged into the same
// not-yet-existing destination.
type Merger struct {
	Apply bool

	plannedFiles map[string]struct{} // destination paths claimed by planned moves
	plannedDirs  map[string]struct{} // destination dirs planned for creation
}

// New returns a Merger. apply=false yields preview behavior.
func New(apply bool) *Merger {
	return &Merger{
		Apply:        apply,
		plannedFiles: make(map[string]struct{}),
		plannedDirs:  make(map[string]struct{}),
	}
}

// PlanDir registers dst as a directory the caller has created, or will
// create before applying, so merges into it resolve against the overlay.
func (m *Merger) PlanDir(dst string) {
	m.plannedDirs[dst] = struct{}{}
}

// pair is one pending (source dir, destination dir) unit of work.
type pair struct {
	src string
	dst string
}

// Merge relocates the contents of src into dst, accumulating into result.
// dst must exist or have been registered with PlanDir. The walk uses an
// explicit work list, so arbitrarily deep trees cannot exhaust the call
// stack.
func (m *Merger) Merge(src, dst string, result *Result) error {
	work := []pair{{src: src, dst: dst}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		entries, err := os.ReadDir(p.src)
		if err != nil {
			return &MergeError{Type: SourceUnreadable, Path: p.src, Err: err}
		}
		for _, entry := range entries {
			srcPath := filepath.Join(p.src, entry.Name())
			dstPath := filepath.Join(p.dst, entry.Name())

			if entry.IsDir() {
				if err := m.ensureDir(dstPath, result); err != nil {
					return err
				}
				work = append(work, pair{src: srcPath, dst: dstPath})
				continue
			}

			if m.exists(dstPath) {
				result.Conflicts = append(result.Conflicts, Conflict{
					SourcePath:      srcPath,
					DestinationPath: dstPath,
				})
				continue
			}
			if err := m.move(srcPath, dstPath); err != nil {
				return err
			}
			result.FilesMoved++
		}
	}
	return nil
}

// ensureDir guarantees dst exists as a directory, creating it when absent.
func (m *Merger) ensureDir(dst string, result *Result) error {
	if info, err := os.Lstat(dst); err == nil {
		if info.IsDir() {
			return nil
		}
		return &MergeError{
			Type: DestinationBlocked,
			Path: dst,
			Err:  errors.New("existing entry is not a directory"),
		}
	}
	if _, ok := m.plannedDirs[dst]; ok {
		return nil
	}
	if m.Apply {
		if err := os.Mkdir(dst, 0o755); err != nil {
			return &MergeError{Type: MoveFailed, Path: dst, Err: err}
		}
	}
	m.plannedDirs[dst] = struct{}{}
	result.DirsCreated++
	return nil
}

// exists reports whether dstPath is occupied, on disk or in the overlay.
func (m *Merger) exists(dstPath string) bool {
	if _, err := os.Lstat(dstPath); err == nil {
		return true
	}
	if _, ok := m.plannedFiles[dstPath]; ok {
		return true
	}
	_, ok := m.plannedDirs[dstPath]
	return ok
}

// move relocates one file and claims its destination in the overlay.
func (m *Merger) move(src, dst string) error {
	if m.Apply {
		if err := os.Rename(src, dst); err != nil {
			// Rename can fail across devices; fall back to copy+delete.
			if err := copyAndDelete(src, dst); err != nil {
				return err
			}
		}
	}
	m.plannedFiles[dst] = struct{}{}
	return nil
}

// copyAndDelete copies a file to dst and removes the original.
func copyAndDelete(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return &MergeError{Type: MoveFailed, Path: src, Err: err}
	}
	info, err := os.Stat(src)
	if err != nil {
		return &MergeError{Type: MoveFailed, Path: src, Err: err}
	}
	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return &MergeError{Type: MoveFailed, Path: dst, Err: err}
	}
	if err := os.Remove(src); err != nil {
		// Keep exactly one copy: drop the one just written.
		os.Remove(dst)
		return &MergeError{Type: MoveFailed, Path: src, Err: err}
	}
	return nil
}
