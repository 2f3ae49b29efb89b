package plugin

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmc/macperms"
)

// denied reports every permission as not granted and fails pane requests.
type denied struct {
	macperms.AlwaysGranted
	paneErr error
}

func (denied) CheckAccessibility() bool                  { return false }
func (denied) CheckCamera() bool                         { return false }
func (denied) CheckMicrophone() bool                     { return false }
func (denied) CheckScreenRecording() bool                { return false }
func (denied) CheckInputMonitoring() bool                { return false }
func (denied) CheckFullDiskAccess(macperms.HostEnv) bool { return false }

func (d denied) RequestInputMonitoring(context.Context) error { return d.paneErr }
func (d denied) RequestFullDiskAccess(context.Context) error  { return d.paneErr }

func TestNew_RegistersAllCommands(t *testing.T) {
	reg, err := New(macperms.AlwaysGranted{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"check_accessibility_permission",
		"check_camera_permission",
		"check_full_disk_access_permission",
		"check_input_monitoring_permission",
		"check_microphone_permission",
		"check_screen_recording_permission",
		"request_accessibility_permission",
		"request_camera_permission",
		"request_full_disk_access_permission",
		"request_input_monitoring_permission",
		"request_microphone_permission",
		"request_screen_recording_permission",
	}, reg.Commands())
	assert.True(t, reg.Has("check_camera_permission"))
	assert.False(t, reg.Has("check_contacts_permission"))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	noop := func(context.Context, []byte) ([]byte, error) { return nil, nil }
	_, err = New(macperms.AlwaysGranted{}, nil, WithHandler("check_camera_permission", noop))
	assert.ErrorContains(t, err, "duplicate")

	_, err = New(macperms.AlwaysGranted{}, nil, WithHandler("", noop))
	assert.Error(t, err)

	_, err = New(macperms.AlwaysGranted{}, nil, WithHandler("x", nil))
	assert.Error(t, err)
}

func TestInvoke_Checks(t *testing.T) {
	ctx := context.Background()

	granted, err := New(macperms.AlwaysGranted{}, nil)
	require.NoError(t, err)
	notGranted, err := New(denied{}, nil)
	require.NoError(t, err)

	for _, p := range macperms.All() {
		check, _ := p.Command()

		out, err := granted.Invoke(ctx, check, nil)
		require.NoError(t, err)
		assert.Equal(t, "true", string(out), check)

		out, err = notGranted.Invoke(ctx, check, []byte(`{"ignored":1}`))
		require.NoError(t, err)
		assert.Equal(t, "false", string(out), check)
	}
}

func TestInvoke_Requests(t *testing.T) {
	ctx := context.Background()
	reg, err := New(denied{paneErr: errors.New("exec: \"open\": not found")}, nil)
	require.NoError(t, err)

	for _, p := range macperms.All() {
		_, request := p.Command()
		out, err := reg.Invoke(ctx, request, nil)
		require.NoError(t, err)

		e, isErr := AsError(out)
		switch p {
		case macperms.InputMonitoring, macperms.FullDiskAccess:
			require.True(t, isErr, request)
			assert.Equal(t, ErrRequest, e.Error)
			assert.Contains(t, e.Message, "not found")
		default:
			assert.False(t, isErr, request)
			assert.Equal(t, "null", string(out))
		}
	}
}

func TestInvoke_Unknown(t *testing.T) {
	reg, err := New(macperms.AlwaysGranted{}, nil)
	require.NoError(t, err)

	out, err := reg.Invoke(context.Background(), "check_contacts_permission", nil)
	require.NoError(t, err)
	e, ok := AsError(out)
	require.True(t, ok)
	assert.Equal(t, ErrNotFound, e.Error)
	assert.Equal(t, 404, e.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	reg, err := New(macperms.AlwaysGranted{}, nil, WithHandler("boom", func(context.Context, []byte) ([]byte, error) {
		panic("kaboom")
	}))
	require.NoError(t, err)

	out, err := reg.Invoke(context.Background(), "boom", nil)
	require.NoError(t, err)
	e, ok := AsError(out)
	require.True(t, ok)
	assert.Equal(t, ErrInternal, e.Error)
	assert.Equal(t, "panic: kaboom", e.Message)
}

func TestMiddlewareOrderAndCommandName(t *testing.T) {
	var trace []string
	mw := func(tag string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, payload []byte) ([]byte, error) {
				trace = append(trace, tag+":"+CommandName(ctx))
				return next(ctx, payload)
			}
		}
	}
	reg, err := New(macperms.AlwaysGranted{}, nil, WithMiddleware(mw("outer"), mw("inner")))
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), "check_camera_permission", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:check_camera_permission", "inner:check_camera_permission"}, trace)
	assert.Empty(t, CommandName(context.Background()))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg, err := New(denied{paneErr: errors.New("launch failed")}, nil, WithMiddleware(LoggingMiddleware(logger)))
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), "check_camera_permission", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "command completed")
	assert.Contains(t, buf.String(), "command=check_camera_permission")

	buf.Reset()
	_, err = reg.Invoke(context.Background(), "request_full_disk_access_permission", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), ErrRequest)
}

func TestAsError(t *testing.T) {
	for _, in := range []string{"true", "false", "null", "", "{}", `{"x":1}`, "{"} {
		_, ok := AsError([]byte(in))
		assert.False(t, ok, in)
	}
	e, ok := AsError(NewValidationError("bad").ToJSON())
	require.True(t, ok)
	assert.Equal(t, ErrorResponse{Error: ErrValidation, Message: "bad", Code: 400}, e)
}

func TestNewPanicError(t *testing.T) {
	assert.Equal(t, "panic: boom", NewPanicError(errors.New("boom")).Message)
	assert.Equal(t, "panic: 42", NewPanicError(42).Message)
}
