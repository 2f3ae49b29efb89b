package macperms

import (
	"context"
	"os"
	"os/user"
)

// MediaType selects the capture device class for MediaAuthorizer.
type MediaType string

// AVMediaType four character codes.
const (
	MediaVideo MediaType = "vide"
	MediaAudio MediaType = "soun"
)

// MediaAuthorizer queries and requests capture device authorization
// (AVCaptureDevice).
type MediaAuthorizer interface {
	AuthorizationStatus(media MediaType) (AuthorizationStatus, error)
	// RequestAccess dispatches the system prompt and returns immediately.
	RequestAccess(media MediaType) error
}

// HID request and access codes used with HIDAccessChecker.
const (
	HIDRequestListenEvent uint32 = 1 // kIOHIDRequestTypeListenEvent
	HIDAccessGranted      uint32 = 0 // kIOHIDAccessTypeGranted
)

// HIDAccessChecker checks low level input access (IOHIDCheckAccess).
type HIDAccessChecker interface {
	CheckAccess(request uint32) (uint32, error)
}

// ScreenCaptureAccess preflights and requests screen capture access
// (CGPreflightScreenCaptureAccess, CGRequestScreenCaptureAccess).
type ScreenCaptureAccess interface {
	Preflight() (bool, error)
	Request() (bool, error)
}

// AccessibilityTruster reports and prompts for accessibility trust
// (AXIsProcessTrusted, AXIsProcessTrustedWithOptions).
type AccessibilityTruster interface {
	IsTrusted() (bool, error)
	// Prompt shows the system prompt if the process is not trusted and
	// returns without waiting for the user.
	Prompt() (bool, error)
}

// PaneOpener opens a System Settings URL.
type PaneOpener interface {
	Open(ctx context.Context, url string) error
}

// HostEnv is the host environment handle used to resolve the user's home
// directory for the Full Disk Access check.
type HostEnv interface {
	HomeDir() (string, error)
}

// HomeDirFunc adapts a function to HostEnv.
type HomeDirFunc func() (string, error)

// HomeDir calls f.
func (f HomeDirFunc) HomeDir() (string, error) { return f() }

// OSEnv resolves the home directory from the user database, falling back to
// os.UserHomeDir.
type OSEnv struct{}

// HomeDir returns the current user's home directory.
func (OSEnv) HomeDir() (string, error) {
	if u, err := user.Current(); err == nil && u.HomeDir != "" {
		return u.HomeDir, nil
	}
	return os.UserHomeDir()
}
