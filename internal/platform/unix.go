//go:build linux || darwin

package platform

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// UnixPlatform implements Platform for Linux and macOS.
type UnixPlatform struct{}

// New creates a new Unix platform instance.
func New() Platform {
	return &UnixPlatform{}
}

// Name returns the platform identifier.
func (p *UnixPlatform) Name() string { return "unix" }

// Cause maps the errno carried by err to a short description.
func (p *UnixPlatform) Cause(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return genericCause(err)
	}
	switch errno {
	case unix.ENOENT:
		return "not found"
	case unix.EACCES, unix.EPERM:
		return "permission denied"
	case unix.ENOSPC, unix.EDQUOT:
		return "disk full"
	case unix.EROFS:
		return "read-only filesystem"
	case unix.EISDIR:
		return "is a directory"
	case unix.ENOTDIR:
		return "not a directory"
	case unix.ENAMETOOLONG:
		return "name too long"
	case unix.EIO:
		return "device error"
	default:
		return genericCause(err)
	}
}
