package sysprefpane

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaneURL(t *testing.T) {
	tests := []struct {
		pane Pane
		want string
	}{
		{Security, "x-apple.systempreferences:com.apple.preference.security"},
		{FullDiskAccess, "x-apple.systempreferences:com.apple.preference.security?Privacy_AllFiles"},
		{InputMonitoring, "x-apple.systempreferences:com.apple.preference.security?Privacy_ListenEvent"},
		{ScreenRecording, "x-apple.systempreferences:com.apple.preference.security?Privacy_ScreenCapture"},
		{Accessibility, "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pane), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pane.URL())
			assert.Equal(t, tt.want, URL(tt.pane))
		})
	}
}

func TestCommandOpener_LaunchFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-opener")
	err := CommandOpener{Command: missing}.Open(context.Background(), FullDiskAccess.URL())
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.Contains(t, err.Error(), "no-such-opener")
}

func TestCommandOpener_Success(t *testing.T) {
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true(1) not available")
	}
	err = CommandOpener{Command: truePath}.Open(context.Background(), InputMonitoring.URL())
	assert.NoError(t, err)
}

func TestCommandOpener_NonZeroExitIsNotAnError(t *testing.T) {
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false(1) not available")
	}
	err = CommandOpener{Command: falsePath}.Open(context.Background(), InputMonitoring.URL())
	assert.NoError(t, err)
}

func TestCommandOpener_PassesURLLast(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "args")
	opener := CommandOpener{
		Command: sh,
		Args:    []string{"-c", `printf '%s' "$1" > "$0"`, out},
	}
	require.NoError(t, opener.Open(context.Background(), Camera.URL()))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, Camera.URL(), string(got))
}
