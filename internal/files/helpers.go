package files

import (
	"fmt"
	"strings"

	"filetable/internal/domain"
)

// Index maps a file path to its record
type Index map[string]domain.FileRecord

// IsAvailable reports whether a file with the given status can be selected
func IsAvailable(status domain.FileStatus) bool {
	return status == domain.StatusAvailable
}

// AvailablePaths returns the paths of all available files, keeping input order
func AvailablePaths(records []domain.FileRecord) []string {
	paths := make([]string, 0, len(records))
	for _, rec := range records {
		if IsAvailable(rec.Status) {
			paths = append(paths, rec.Path)
		}
	}
	return paths
}

// CountAvailable returns how many records are available
func CountAvailable(records []domain.FileRecord) int {
	count := 0
	for _, rec := range records {
		if IsAvailable(rec.Status) {
			count++
		}
	}
	return count
}

// NewIndex builds a path lookup for the given records
func NewIndex(records []domain.FileRecord) Index {
	idx := make(Index, len(records))
	for _, rec := range records {
		idx[rec.Path] = rec
	}
	return idx
}

// FormatPathAndDevice formats the path and device of the record stored under
// path. An unknown path yields an empty string.
func FormatPathAndDevice(byPath Index, path string) string {
	rec, ok := byPath[path]
	if !ok {
		return ""
	}
	return fmt.Sprintf("Path: %s, Device: %s", rec.Path, rec.Device)
}

// BuildReport formats every path and joins the results with newlines
func BuildReport(byPath Index, paths []string) string {
	lines := make([]string, len(paths))
	for i, path := range paths {
		lines[i] = FormatPathAndDevice(byPath, path)
	}
	return strings.Join(lines, "\n")
}
