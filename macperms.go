package macperms

import (
	"context"
	"fmt"
	"sync"
)

var (
	defaultOnce    sync.Once
	defaultChecker Checker
)

// Default returns the process wide Checker for the running platform.
func Default() Checker {
	defaultOnce.Do(func() {
		defaultChecker = NewDefault()
	})
	return defaultChecker
}

// CheckAccessibilityPermission reports whether the process is trusted for
// accessibility.
func CheckAccessibilityPermission() bool { return Default().CheckAccessibility() }

// RequestAccessibilityPermission shows the accessibility prompt if needed.
func RequestAccessibilityPermission() { Default().RequestAccessibility() }

// CheckCameraPermission reports whether camera access is authorized.
func CheckCameraPermission() bool { return Default().CheckCamera() }

// RequestCameraPermission dispatches the camera prompt.
func RequestCameraPermission() error { return Default().RequestCamera() }

// CheckMicrophonePermission reports whether microphone access is authorized.
func CheckMicrophonePermission() bool { return Default().CheckMicrophone() }

// RequestMicrophonePermission dispatches the microphone prompt.
func RequestMicrophonePermission() error { return Default().RequestMicrophone() }

// CheckScreenRecordingPermission reports whether screen capture is allowed.
func CheckScreenRecordingPermission() bool { return Default().CheckScreenRecording() }

// RequestScreenRecordingPermission dispatches the screen recording prompt.
func RequestScreenRecordingPermission() { Default().RequestScreenRecording() }

// CheckInputMonitoringPermission reports whether input events may be
// monitored.
func CheckInputMonitoringPermission() bool { return Default().CheckInputMonitoring() }

// RequestInputMonitoringPermission opens the Input Monitoring pane.
func RequestInputMonitoringPermission(ctx context.Context) error {
	return Default().RequestInputMonitoring(ctx)
}

// CheckFullDiskAccessPermission infers Full Disk Access for the user whose
// home directory env resolves.
func CheckFullDiskAccessPermission(env HostEnv) bool {
	return Default().CheckFullDiskAccess(env)
}

// RequestFullDiskAccessPermission opens the Full Disk Access pane.
func RequestFullDiskAccessPermission(ctx context.Context) error {
	return Default().RequestFullDiskAccess(ctx)
}

// Check runs the check operation for p.
func Check(c Checker, p Permission, env HostEnv) (bool, error) {
	switch p {
	case Accessibility:
		return c.CheckAccessibility(), nil
	case Camera:
		return c.CheckCamera(), nil
	case Microphone:
		return c.CheckMicrophone(), nil
	case ScreenRecording:
		return c.CheckScreenRecording(), nil
	case InputMonitoring:
		return c.CheckInputMonitoring(), nil
	case FullDiskAccess:
		return c.CheckFullDiskAccess(env), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownPermission, string(p))
	}
}

// Request runs the request operation for p.
func Request(ctx context.Context, c Checker, p Permission) error {
	switch p {
	case Accessibility:
		c.RequestAccessibility()
		return nil
	case Camera:
		return c.RequestCamera()
	case Microphone:
		return c.RequestMicrophone()
	case ScreenRecording:
		c.RequestScreenRecording()
		return nil
	case InputMonitoring:
		return c.RequestInputMonitoring(ctx)
	case FullDiskAccess:
		return c.RequestFullDiskAccess(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPermission, string(p))
	}
}
