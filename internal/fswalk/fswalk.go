package fswalk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsTimesheetCSV reports whether the file name has one of the two report
// extensions. Matching is deliberately limited to these exact casings.
func IsTimesheetCSV(name string) bool {
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".CSV")
}

// CSVFiles expands the given paths into the timesheet CSV files they contain,
// descending into directories with an explicit worklist rather than
// recursion. Non-CSV files are reported through skip and omitted from the
// result. A path that cannot be stat'd or a directory that cannot be read is
// a fatal error.
func CSVFiles(paths []string, skip func(path string)) ([]string, error) {
	files := make([]string, 0, len(paths))

	// LIFO worklist; directory entries are pushed in reverse so they are
	// visited in lexical order.
	stack := make([]string, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		stack = append(stack, paths[i])
	}

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if IsTimesheetCSV(path) {
				files = append(files, path)
			} else if skip != nil {
				skip(path)
			}
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", path, err)
		}
		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, filepath.Join(path, entries[i].Name()))
		}
	}

	return files, nil
}
