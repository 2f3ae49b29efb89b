// Package native binds the macOS framework entry points used for permission
// checks: AVFoundation, IOKit, CoreGraphics and ApplicationServices.
//
// The bindings use purego, so no cgo toolchain is needed. Frameworks are
// loaded lazily on first use. A framework or symbol that cannot be loaded is
// reported as an error and never panics; callers decide how to degrade.
package native
