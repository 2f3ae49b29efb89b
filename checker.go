package macperms

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tmc/macperms/fulldisk"
	"github.com/tmc/macperms/internal/system"
	"github.com/tmc/macperms/sysprefpane"
)

// Checker is the permission capability surface: one status check and one
// request per permission.
//
// Checks never fail; anything that prevents a check from running reports
// not granted. Requests never wait for the user. A request only dispatches a
// prompt or opens System Settings; call the matching check again later to
// observe the user's decision.
type Checker interface {
	CheckAccessibility() bool
	RequestAccessibility()

	CheckCamera() bool
	RequestCamera() error

	CheckMicrophone() bool
	RequestMicrophone() error

	CheckScreenRecording() bool
	RequestScreenRecording()

	CheckInputMonitoring() bool
	RequestInputMonitoring(ctx context.Context) error

	CheckFullDiskAccess(env HostEnv) bool
	RequestFullDiskAccess(ctx context.Context) error
}

// StatusReporter is implemented by checkers that can report the detailed
// media authorization state behind CheckCamera and CheckMicrophone.
type StatusReporter interface {
	CameraStatus() AuthorizationStatus
	MicrophoneStatus() AuthorizationStatus
}

// Native is the Checker backed by platform adapters. Use Default for the
// adapters of the running platform, or New to supply them.
type Native struct {
	media         MediaAuthorizer
	hid           HIDAccessChecker
	screen        ScreenCaptureAccess
	accessibility AccessibilityTruster
	opener        PaneOpener
	prober        *fulldisk.Prober
	logger        *slog.Logger
}

var (
	_ Checker        = (*Native)(nil)
	_ StatusReporter = (*Native)(nil)
)

// Option configures a Native checker.
type Option func(*Native)

// WithMedia sets the camera and microphone adapter.
func WithMedia(m MediaAuthorizer) Option { return func(n *Native) { n.media = m } }

// WithHID sets the input monitoring adapter.
func WithHID(h HIDAccessChecker) Option { return func(n *Native) { n.hid = h } }

// WithScreenCapture sets the screen recording adapter.
func WithScreenCapture(s ScreenCaptureAccess) Option { return func(n *Native) { n.screen = s } }

// WithAccessibility sets the accessibility adapter.
func WithAccessibility(a AccessibilityTruster) Option {
	return func(n *Native) { n.accessibility = a }
}

// WithPaneOpener sets how System Settings panes are opened.
func WithPaneOpener(o PaneOpener) Option { return func(n *Native) { n.opener = o } }

// WithProber sets the Full Disk Access probe strategy.
func WithProber(p *fulldisk.Prober) Option { return func(n *Native) { n.prober = p } }

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option { return func(n *Native) { n.logger = l } }

// New returns a Native checker. Adapters not supplied leave the
// corresponding checks reporting not granted and requests doing nothing,
// except the pane opener and prober which default to
// sysprefpane.CommandOpener and fulldisk.New.
func New(opts ...Option) *Native {
	n := &Native{}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if n.opener == nil {
		n.opener = sysprefpane.CommandOpener{Logger: n.logger}
	}
	if n.prober == nil {
		n.prober = fulldisk.New()
	}
	return n
}

func (n *Native) CheckAccessibility() bool {
	if n.accessibility == nil {
		return false
	}
	trusted, err := n.accessibility.IsTrusted()
	if err != nil {
		n.logger.Debug("accessibility check unavailable", "err", err)
		return false
	}
	return trusted
}

func (n *Native) RequestAccessibility() {
	if n.accessibility == nil {
		return
	}
	n.logger.Debug("requesting permission", "permission", Accessibility)
	if _, err := n.accessibility.Prompt(); err != nil {
		n.logger.Debug("accessibility prompt unavailable", "err", err)
	}
}

func (n *Native) CheckCamera() bool { return n.CameraStatus().Granted() }

func (n *Native) RequestCamera() error { return n.requestMedia(Camera, MediaVideo) }

func (n *Native) CheckMicrophone() bool { return n.MicrophoneStatus().Granted() }

func (n *Native) RequestMicrophone() error { return n.requestMedia(Microphone, MediaAudio) }

// CameraStatus returns the detailed camera authorization state.
func (n *Native) CameraStatus() AuthorizationStatus { return n.mediaStatus(MediaVideo) }

// MicrophoneStatus returns the detailed microphone authorization state.
func (n *Native) MicrophoneStatus() AuthorizationStatus { return n.mediaStatus(MediaAudio) }

func (n *Native) mediaStatus(media MediaType) AuthorizationStatus {
	if n.media == nil {
		return NotDetermined
	}
	status, err := n.media.AuthorizationStatus(media)
	if err != nil {
		n.logger.Debug("media authorization unavailable", "media", media, "err", err)
		return NotDetermined
	}
	return status
}

// requestMedia always succeeds: dispatching the prompt has no failure the
// caller could act on, so adapter errors are only logged.
func (n *Native) requestMedia(p Permission, media MediaType) error {
	if n.media == nil {
		return nil
	}
	n.logger.Debug("requesting permission", "permission", p)
	if err := n.media.RequestAccess(media); err != nil {
		n.logger.Debug("media request unavailable", "permission", p, "err", err)
	}
	return nil
}

func (n *Native) CheckScreenRecording() bool {
	if n.screen == nil {
		return false
	}
	ok, err := n.screen.Preflight()
	if err != nil {
		n.logger.Debug("screen capture preflight unavailable", "err", err)
		return false
	}
	return ok
}

func (n *Native) RequestScreenRecording() {
	if n.screen == nil {
		return
	}
	n.logger.Debug("requesting permission", "permission", ScreenRecording)
	if _, err := n.screen.Request(); err != nil {
		n.logger.Debug("screen capture request unavailable", "err", err)
	}
}

func (n *Native) CheckInputMonitoring() bool {
	if n.hid == nil {
		return false
	}
	access, err := n.hid.CheckAccess(HIDRequestListenEvent)
	if err != nil {
		n.logger.Debug("HID access check unavailable", "err", err)
		return false
	}
	return access == HIDAccessGranted
}

// RequestInputMonitoring opens the Input Monitoring pane. There is no
// programmatic prompt for this permission.
func (n *Native) RequestInputMonitoring(ctx context.Context) error {
	return n.openPane(ctx, InputMonitoring)
}

// CheckFullDiskAccess infers Full Disk Access with the configured prober.
// A nil env or an unresolvable home directory reports not granted.
func (n *Native) CheckFullDiskAccess(env HostEnv) bool {
	if env == nil {
		return false
	}
	home, err := env.HomeDir()
	if err != nil || home == "" {
		n.logger.Debug("home directory unavailable", "err", err)
		return false
	}
	return n.prober.Probe(home)
}

// RequestFullDiskAccess opens the Full Disk Access pane.
func (n *Native) RequestFullDiskAccess(ctx context.Context) error {
	return n.openPane(ctx, FullDiskAccess)
}

func (n *Native) openPane(ctx context.Context, p Permission) error {
	url := p.Pane().URL()
	n.logger.Debug("opening settings pane", "permission", p, "url", url)
	if err := n.opener.Open(ctx, url); err != nil {
		n.logger.Warn("failed to open settings pane", "permission", p, "err", err)
		return &Error{
			Op:         "open settings pane for",
			Permission: p,
			Err:        err,
			Help:       fmt.Sprintf("open %s > Privacy & Security > %s manually", system.SettingsAppName(), p.Title()),
		}
	}
	return nil
}
