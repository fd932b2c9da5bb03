// Package scanner snapshots the collection root for astrosort.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// RootNotFound indicates the collection root does not exist.
	RootNotFound ScanErrorType = "ROOT_NOT_FOUND"
	// NotADirectory indicates the configured root is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
	// PermissionDenied indicates insufficient permissions to read the root.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred while scanning the root.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FolderEntry is an immutable snapshot of one collection folder taken at
// scan time.
type FolderEntry struct {
	Name string // directory name only
	Path string // full path under the root
}

// Scan lists the root's immediate subdirectories in directory order.
// Folders whose name carries the removable marker are excluded, which is
// what keeps repeated runs from reprocessing merged-away duplicates.
// Plain files directly under the root are ignored. Scan never descends
// below the root's children and never follows symlinks.
func Scan(root, marker string) ([]FolderEntry, error) {
	info, err := os.Lstat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ScanError{Type: RootNotFound, Path: root, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: root, Err: err}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ScanError{Type: NotADirectory, Path: root, Err: errors.New("path is not a directory")}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: root, Err: err}
		}
		return nil, err
	}

	folders := make([]FolderEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if marker != "" && strings.Contains(entry.Name(), marker) {
			continue
		}
		folders = append(folders, FolderEntry{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		})
	}
	return folders, nil
}
