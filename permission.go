package macperms

import (
	"fmt"
	"strings"

	"github.com/tmc/macperms/sysprefpane"
)

// Permission identifies one of the TCC privacy gates this package can check
// and request.
type Permission string

// Supported permissions.
const (
	Accessibility   Permission = "accessibility"
	Camera          Permission = "camera"
	Microphone      Permission = "microphone"
	ScreenRecording Permission = "screen-recording"
	InputMonitoring Permission = "input-monitoring"
	FullDiskAccess  Permission = "full-disk-access"
)

var allPermissions = []Permission{
	Accessibility,
	Camera,
	Microphone,
	ScreenRecording,
	InputMonitoring,
	FullDiskAccess,
}

// All returns every supported permission in a stable order.
func All() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}

func (p Permission) String() string {
	return string(p)
}

// Valid reports whether p is one of the supported permissions.
func (p Permission) Valid() bool {
	for _, known := range allPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePermission converts a user supplied name to a Permission.
// Underscores and spaces are accepted in place of dashes, and a few common
// aliases are recognised ("mic", "screen", "fda").
func ParsePermission(s string) (Permission, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	switch name {
	case "mic":
		name = string(Microphone)
	case "screen", "screen-capture", "screencapture":
		name = string(ScreenRecording)
	case "fda", "full-disk", "disk":
		name = string(FullDiskAccess)
	case "input", "listen-event":
		name = string(InputMonitoring)
	}
	p := Permission(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPermission, s)
	}
	return p, nil
}

// Description returns a short human readable description.
func (p Permission) Description() string {
	switch p {
	case Accessibility:
		return "Control other applications through the accessibility API"
	case Camera:
		return "Capture video from the camera"
	case Microphone:
		return "Capture audio from the microphone"
	case ScreenRecording:
		return "Record the contents of the screen"
	case InputMonitoring:
		return "Listen to keyboard and mouse events"
	case FullDiskAccess:
		return "Read protected locations such as Mail, Safari and other app data"
	default:
		return "Unknown permission"
	}
}

// Pane returns the Privacy & Security pane that manages p.
func (p Permission) Pane() sysprefpane.Pane {
	switch p {
	case Accessibility:
		return sysprefpane.Accessibility
	case Camera:
		return sysprefpane.Camera
	case Microphone:
		return sysprefpane.Microphone
	case ScreenRecording:
		return sysprefpane.ScreenRecording
	case InputMonitoring:
		return sysprefpane.InputMonitoring
	case FullDiskAccess:
		return sysprefpane.FullDiskAccess
	default:
		return sysprefpane.Security
	}
}

// Command returns the host command names for the check and request
// operations of p.
func (p Permission) Command() (check, request string) {
	base := strings.ReplaceAll(string(p), "-", "_") + "_permission"
	return "check_" + base, "request_" + base
}

// Title returns the name of p as shown in Privacy & Security.
func (p Permission) Title() string {
	switch p {
	case Accessibility:
		return "Accessibility"
	case Camera:
		return "Camera"
	case Microphone:
		return "Microphone"
	case ScreenRecording:
		return "Screen Recording"
	case InputMonitoring:
		return "Input Monitoring"
	case FullDiskAccess:
		return "Full Disk Access"
	default:
		return string(p)
	}
}
