// Package platform provides an OS abstraction layer for the file system
// diagnostics bin2h attaches to failed reads and writes.
// Each supported OS implements the Platform interface.
package platform

import (
	"errors"
	"io/fs"

	"github.com/shirou/gopsutil/v3/disk"
)

// Platform provides OS-specific error classification.
type Platform interface {
	// Cause returns a short, human-readable classification of an I/O error
	// such as "not found" or "disk full". Returns "" for a nil error.
	Cause(err error) string

	// Name returns the platform name (unix, windows, generic).
	Name() string
}

// FreeBytes returns the free space of the filesystem that holds dir.
func FreeBytes(dir string) (uint64, error) {
	if dir == "" {
		dir = "."
	}
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// genericCause classifies errors using only the portable io/fs sentinels.
func genericCause(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, fs.ErrExist):
		return "already exists"
	case errors.Is(err, fs.ErrClosed):
		return "file closed"
	default:
		return "i/o error"
	}
}
