//go:build !linux && !darwin && !windows

package platform

// GenericPlatform classifies errors with the portable io/fs sentinels only.
type GenericPlatform struct{}

// New creates a generic platform instance.
func New() Platform {
	return &GenericPlatform{}
}

// Name returns the platform identifier.
func (p *GenericPlatform) Name() string { return "generic" }

// Cause classifies err without inspecting OS error codes.
func (p *GenericPlatform) Cause(err error) string { return genericCause(err) }
