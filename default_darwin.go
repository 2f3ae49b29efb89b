//go:build darwin

package macperms

import (
	"github.com/tmc/macperms/internal/native"
)

// NewDefault returns a Native checker wired to the macOS frameworks.
// Options are applied after the platform adapters, so tests and hosts can
// replace any of them.
func NewDefault(opts ...Option) Checker {
	base := []Option{
		WithMedia(avCaptureDevice{}),
		WithHID(ioHID{}),
		WithScreenCapture(coreGraphicsCapture{}),
		WithAccessibility(axTrust{}),
	}
	return New(append(base, opts...)...)
}

type avCaptureDevice struct{}

func (avCaptureDevice) AuthorizationStatus(media MediaType) (AuthorizationStatus, error) {
	status, err := native.AuthorizationStatus(string(media))
	if err != nil {
		return NotDetermined, err
	}
	return AuthorizationStatus(status), nil
}

func (avCaptureDevice) RequestAccess(media MediaType) error {
	return native.RequestAccess(string(media))
}

type ioHID struct{}

func (ioHID) CheckAccess(request uint32) (uint32, error) {
	return native.HIDCheckAccess(request)
}

type coreGraphicsCapture struct{}

func (coreGraphicsCapture) Preflight() (bool, error) { return native.PreflightScreenCaptureAccess() }
func (coreGraphicsCapture) Request() (bool, error)   { return native.RequestScreenCaptureAccess() }

type axTrust struct{}

func (axTrust) IsTrusted() (bool, error) { return native.IsProcessTrusted() }
func (axTrust) Prompt() (bool, error)    { return native.PromptProcessTrusted() }
