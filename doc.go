// Package macperms checks and requests macOS privacy (TCC) permissions.
//
// Six permissions are covered: accessibility, camera, microphone, screen
// recording, input monitoring and full disk access. Each has a check, which
// reports a boolean and never fails, and a request, which either dispatches
// the system prompt or opens the matching System Settings pane.
//
// # Basic Usage
//
//	if !macperms.CheckScreenRecordingPermission() {
//	    macperms.RequestScreenRecordingPermission()
//	}
//
// Requests return before the user answers. Call the check again later, or
// use Wait, to see the outcome:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Minute)
//	defer cancel()
//	err := macperms.Wait(ctx, macperms.Default(), macperms.Camera, nil, 0)
//
// # Platforms
//
// On macOS, Default returns a Native checker bound to AVFoundation, IOKit,
// CoreGraphics and ApplicationServices. Everywhere else it returns
// AlwaysGranted, so hosts can call every operation unconditionally.
//
// # Full Disk Access
//
// There is no API for Full Disk Access. CheckFullDiskAccess lists a few
// directories only readable with it; see package fulldisk for the probe list
// and its limits.
//
// # Hosts
//
// Package plugin exposes the operations by command name for an embedding
// application shell, and cmd/macperms is a command line front end.
package macperms
