package inpfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Caller tags accepted by Validate.
const (
	CallerRead   = "read"
	CallerWrite  = "write"
	CallerCreate = "create"
)

var (
	ErrEmptyPath     = errors.New("file path is empty")
	ErrNotFound      = errors.New("file does not exist")
	ErrEmptyFile     = errors.New("input file is empty")
	ErrUnknownCaller = errors.New(`caller must be "read", "write" or "create"`)
)

// Validate checks a path on behalf of a read, write or create
// operation. Hard failures come back as the error; non-fatal notices
// (unconventional extension, impending overwrite) come back as
// warnings and never abort the operation.
func Validate(path, caller string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	var warnings []string
	if ext := filepath.Ext(path); ext != ".inp" {
		warnings = append(warnings, fmt.Sprintf("file extension %q is not the conventional .inp used by Abaqus", ext))
	}
	info, statErr := os.Stat(path)
	exists := statErr == nil && !info.IsDir()
	switch caller {
	case CallerRead:
		if !exists {
			return warnings, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if info.Size() == 0 {
			return warnings, fmt.Errorf("%w: %s", ErrEmptyFile, path)
		}
	case CallerWrite, CallerCreate:
		if exists {
			warnings = append(warnings, fmt.Sprintf("file %s already exists and will be overwritten", path))
		}
	default:
		return warnings, fmt.Errorf("%w: got %q", ErrUnknownCaller, caller)
	}
	return warnings, nil
}
