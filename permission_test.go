package macperms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmc/macperms/sysprefpane"
)

func TestParsePermission(t *testing.T) {
	tests := []struct {
		in   string
		want Permission
	}{
		{"accessibility", Accessibility},
		{"Camera", Camera},
		{" microphone ", Microphone},
		{"mic", Microphone},
		{"screen_recording", ScreenRecording},
		{"screen recording", ScreenRecording},
		{"screen", ScreenRecording},
		{"input-monitoring", InputMonitoring},
		{"listen_event", InputMonitoring},
		{"full-disk-access", FullDiskAccess},
		{"FDA", FullDiskAccess},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePermission(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePermission_Unknown(t *testing.T) {
	for _, in := range []string{"", "contacts", "bluetooth"} {
		_, err := ParsePermission(in)
		assert.ErrorIs(t, err, ErrUnknownPermission, in)
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	all[0] = "mutated"
	assert.Equal(t, Accessibility, All()[0])
}

func TestPermissionCommands(t *testing.T) {
	tests := []struct {
		p             Permission
		check, request string
	}{
		{Accessibility, "check_accessibility_permission", "request_accessibility_permission"},
		{Camera, "check_camera_permission", "request_camera_permission"},
		{Microphone, "check_microphone_permission", "request_microphone_permission"},
		{ScreenRecording, "check_screen_recording_permission", "request_screen_recording_permission"},
		{InputMonitoring, "check_input_monitoring_permission", "request_input_monitoring_permission"},
		{FullDiskAccess, "check_full_disk_access_permission", "request_full_disk_access_permission"},
	}
	for _, tt := range tests {
		check, request := tt.p.Command()
		assert.Equal(t, tt.check, check)
		assert.Equal(t, tt.request, request)
	}
}

func TestPermissionMetadata(t *testing.T) {
	for _, p := range All() {
		assert.True(t, p.Valid())
		assert.NotEqual(t, "Unknown permission", p.Description(), p)
		assert.NotEqual(t, sysprefpane.Security, p.Pane(), p)
		assert.NotEqual(t, string(p), p.Title(), p)
	}
	assert.Equal(t, sysprefpane.InputMonitoring, InputMonitoring.Pane())
	assert.Equal(t, sysprefpane.FullDiskAccess, FullDiskAccess.Pane())
	assert.False(t, Permission("contacts").Valid())
	assert.Equal(t, sysprefpane.Security, Permission("contacts").Pane())
}

func TestAuthorizationStatus(t *testing.T) {
	assert.Equal(t, "not-determined", NotDetermined.String())
	assert.Equal(t, "restricted", Restricted.String())
	assert.Equal(t, "denied", Denied.String())
	assert.Equal(t, "authorized", Authorized.String())
	assert.Equal(t, "unknown", AuthorizationStatus(9).String())

	assert.True(t, Authorized.Granted())
	assert.False(t, Denied.Granted())

	text, err := Restricted.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "restricted", string(text))
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{
		Op:         "open settings pane for",
		Permission: FullDiskAccess,
		Err:        errUnavailable,
		Help:       "open System Settings manually",
	}
	assert.Equal(t,
		"macperms: open settings pane for full-disk-access: framework unavailable\n  hint: open System Settings manually",
		err.Error())
	assert.ErrorIs(t, err, errUnavailable)

	err.Help = ""
	assert.NotContains(t, err.Error(), "hint")
}
