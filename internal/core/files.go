package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SelectSourceFile returns the lexicographically smallest file in dir whose
// name starts with prefix. Subdirectories are never selected.
func SelectSourceFile(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("listing log directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: prefix %q in %s", ErrNoSourceFile, prefix, dir)
	}

	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}
