package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmc/macperms"
	"github.com/tmc/macperms/fulldisk"
	"github.com/tmc/macperms/internal/config"
	"github.com/tmc/macperms/internal/logging"
)

// app holds the dependencies shared by every subcommand. Fields left nil are
// filled in by setup from the config file and environment.
type app struct {
	checker macperms.Checker
	env     macperms.HostEnv
	prober  *fulldisk.Prober
	logger  *slog.Logger
	cfg     *config.Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath string

	newChecker func(opts ...macperms.Option) macperms.Checker
	// interactive reports whether prompts can be shown on stdin.
	interactive func() bool
	// choose asks the user which of the offered permissions to request.
	choose func(offered []macperms.Permission) ([]macperms.Permission, error)

	closeLog func() error
}

func newApp() *app {
	return &app{
		env:        macperms.OSEnv{},
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		getenv:     os.Getenv,
		newChecker: macperms.NewDefault,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		choose: choosePermissions,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "macperms",
		Short: "Check and request macOS privacy permissions",
		Long: `macperms reports and requests the macOS privacy (TCC) permissions held by
the current process: accessibility, camera, microphone, screen recording,
input monitoring and full disk access.

Requests never wait for the user. Camera, microphone, screen recording and
accessibility show a system prompt; input monitoring and full disk access
open the matching pane in System Settings.`,
		Example: `  # Show every permission
  macperms check

  # Ask for camera and microphone, then wait up to a minute
  macperms request camera microphone --wait 1m

  # Pick missing permissions from a list
  macperms request --interactive`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/macperms/config.yml)")

	root.AddCommand(
		newCheckCmd(a),
		newRequestCmd(a),
		newListCmd(a),
		newServeCmd(a),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup() error {
	if a.cfg == nil {
		var (
			cfg *config.Config
			err error
		)
		if a.configPath != "" {
			cfg, err = config.Load(a.configPath)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if a.logger == nil {
		opts, err := a.cfg.LogOptions(logging.FromEnv(a.getenv))
		if err != nil {
			return err
		}
		opts.Stderr = a.stderr
		a.logger, a.closeLog = logging.New(opts)
	}

	if a.prober == nil {
		a.prober = fulldisk.New(a.cfg.ProberOptions()...)
	}
	if a.checker == nil {
		a.checker = a.newChecker(
			macperms.WithLogger(a.logger),
			macperms.WithPaneOpener(a.cfg.Opener(a.logger)),
			macperms.WithProber(a.prober),
		)
	}
	a.logger.Debug("macperms ready", "checker", fmt.Sprintf("%T", a.checker))
	return nil
}

func parsePermissions(args []string) ([]macperms.Permission, error) {
	if len(args) == 0 {
		return macperms.All(), nil
	}
	perms := make([]macperms.Permission, 0, len(args))
	seen := make(map[macperms.Permission]bool)
	for _, arg := range args {
		p, err := macperms.ParsePermission(arg)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			perms = append(perms, p)
		}
	}
	return perms, nil
}

func permissionNames() []string {
	var names []string
	for _, p := range macperms.All() {
		names = append(names, p.String())
	}
	return names
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "macperms %s\n", version)
		},
	}
}
