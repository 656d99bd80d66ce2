package inpfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is inserted before the extension when no output path
// is given for an edit of an existing file.
const DefaultSuffix = "_mod"

// WithSuffix inserts suffix before the path's extension:
// "job.inp" becomes "job_mod.inp".
func WithSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// FreshDatabaseName returns "materials.inp", or "materials-<n>.inp"
// for the smallest positive n that does not collide with an existing
// entry in dir.
func FreshDatabaseName(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		taken[e.Name()] = true
	}
	name := "materials.inp"
	for i := 1; taken[name]; i++ {
		name = fmt.Sprintf("materials-%d.inp", i)
	}
	return name, nil
}
