// Package renamer marks merged-away folders as safe to delete.
package renamer

import (
	"fmt"
	"os"
	"time"
)

// Marker is the suffix appended to a folder's name once its contents have
// been merged into the canonical folder. Folders bearing it are excluded
// from later scans; actually deleting them is a manual, human decision
// outside this engine.
const Marker = " - deleteable"

// now is replaced in tests.
var now = time.Now

// RemovableName computes the marker-suffixed path for dir. taken reports
// whether a candidate path is already occupied; when the plain marker name
// collides with a leftover from an earlier run, a timestamp is appended so
// the rename can never overwrite it.
func RemovableName(dir string, taken func(string) bool) string {
	target := dir + Marker
	if !taken(target) {
		return target
	}
	return fmt.Sprintf("%s-%s", target, now().Format("20060102-150405"))
}

// MarkRemovable renames dir in place to its removable name and returns the
// new path. The rename stays within the same parent directory; nothing is
// deleted or overwritten.
func MarkRemovable(dir string) (string, error) {
	target := RemovableName(dir, func(candidate string) bool {
		_, err := os.Lstat(candidate)
		return err == nil
	})
	if err := os.Rename(dir, target); err != nil {
		return "", err
	}
	return target, nil
}
