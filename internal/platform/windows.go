//go:build windows

package platform

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// WindowsPlatform implements Platform for Windows systems.
type WindowsPlatform struct{}

// New creates a new Windows platform instance.
func New() Platform {
	return &WindowsPlatform{}
}

// Name returns the platform identifier.
func (p *WindowsPlatform) Name() string { return "windows" }

// Cause maps the Win32 error code carried by err to a short description.
func (p *WindowsPlatform) Cause(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return genericCause(err)
	}
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return "not found"
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_SHARING_VIOLATION:
		return "permission denied"
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return "disk full"
	case windows.ERROR_WRITE_PROTECT:
		return "read-only filesystem"
	case windows.ERROR_INVALID_NAME:
		return "invalid name"
	case windows.ERROR_FILENAME_EXCED_RANGE:
		return "name too long"
	default:
		return genericCause(err)
	}
}
