package macperms

import "context"

// AlwaysGranted is the Checker used where TCC does not exist. Every check
// reports granted and every request succeeds without side effects, so hosts
// can call the same operations on every platform.
type AlwaysGranted struct{}

var (
	_ Checker        = AlwaysGranted{}
	_ StatusReporter = AlwaysGranted{}
)

func (AlwaysGranted) CheckAccessibility() bool                     { return true }
func (AlwaysGranted) RequestAccessibility()                        {}
func (AlwaysGranted) CheckCamera() bool                            { return true }
func (AlwaysGranted) RequestCamera() error                         { return nil }
func (AlwaysGranted) CheckMicrophone() bool                        { return true }
func (AlwaysGranted) RequestMicrophone() error                     { return nil }
func (AlwaysGranted) CheckScreenRecording() bool                   { return true }
func (AlwaysGranted) RequestScreenRecording()                      {}
func (AlwaysGranted) CheckInputMonitoring() bool                   { return true }
func (AlwaysGranted) RequestInputMonitoring(context.Context) error { return nil }
func (AlwaysGranted) CheckFullDiskAccess(HostEnv) bool             { return true }
func (AlwaysGranted) RequestFullDiskAccess(context.Context) error  { return nil }
func (AlwaysGranted) CameraStatus() AuthorizationStatus            { return Authorized }
func (AlwaysGranted) MicrophoneStatus() AuthorizationStatus        { return Authorized }
