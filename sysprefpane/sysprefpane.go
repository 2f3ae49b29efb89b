// Package sysprefpane opens macOS System Settings privacy panes.
//
// Panes are addressed with x-apple.systempreferences URLs and opened by
// running an external command (open(1) by default). Opening a pane only
// launches System Settings; it never waits for the user to change anything.
package sysprefpane

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Pane represents a System Settings pane identifier.
type Pane string

// Privacy panes accessible via the Security preference pane.
const (
	Accessibility   Pane = "Privacy_Accessibility"
	Automation      Pane = "Privacy_Automation"
	ScreenRecording Pane = "Privacy_ScreenCapture"
	Camera          Pane = "Privacy_Camera"
	Microphone      Pane = "Privacy_Microphone"
	FullDiskAccess  Pane = "Privacy_AllFiles"
	FilesAndFolders Pane = "Privacy_FilesAndFolders"
	InputMonitoring Pane = "Privacy_ListenEvent"
)

// Security opens the Privacy & Security main pane.
const Security Pane = ""

const baseURL = "x-apple.systempreferences:com.apple.preference.security"

// URL returns the x-apple.systempreferences URL for the pane.
func (p Pane) URL() string {
	if p == "" {
		return baseURL
	}
	return baseURL + "?" + string(p)
}

// Opener opens a settings URL.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// DefaultCommand is the program used to open settings URLs.
const DefaultCommand = "open"

// CommandOpener opens URLs by running Command with the URL as its last
// argument and waiting for the command to exit.
//
// Only a failure to run the command is an error. A command that starts and
// exits non-zero is logged and treated as opened, since the pane may still
// have been shown and the user's interaction is not observable anyway.
type CommandOpener struct {
	// Command is the program to run. Empty means DefaultCommand.
	Command string
	// Args are passed before the URL.
	Args []string
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Open runs the command for url.
func (o CommandOpener) Open(ctx context.Context, url string) error {
	name := o.Command
	if name == "" {
		name = DefaultCommand
	}
	args := append(append([]string(nil), o.Args...), url)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		o.logger().Warn("settings opener exited with non-zero status",
			"command", name,
			"url", url,
			"exit_code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(string(exitErr.Stderr)),
			"stdout", strings.TrimSpace(string(out)),
		)
		return nil
	}
	return fmt.Errorf("run %s: %w", name, err)
}

func (o CommandOpener) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Open opens the pane in System Settings using the default opener.
func (p Pane) Open(ctx context.Context) error {
	return Open(ctx, p)
}

// Open opens a System Settings pane using the default opener.
func Open(ctx context.Context, pane Pane) error {
	return CommandOpener{}.Open(ctx, pane.URL())
}

// URL returns the URL for a pane.
func URL(pane Pane) string {
	return pane.URL()
}
