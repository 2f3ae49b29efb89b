package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmc/macperms"
	"github.com/tmc/macperms/internal/system"
)

func newRequestCmd(a *app) *cobra.Command {
	var (
		interactive bool
		wait        time.Duration
		interval    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "request [permission...]",
		Short: "Request permissions",
		Long: `Request permissions without waiting for the user.

Camera, microphone, screen recording and accessibility show a system prompt.
Input monitoring and full disk access have no prompt, so the matching
System Settings pane is opened instead. Use --wait to poll until the
permissions are granted.`,
		ValidArgs: permissionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var perms []macperms.Permission
			switch {
			case interactive:
				if !a.interactive() {
					return errors.New("--interactive needs a terminal")
				}
				offered, err := a.missing(cmd.Context(), args)
				if err != nil {
					return err
				}
				if len(offered) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "All permissions are already granted.")
					return nil
				}
				perms, err = a.choose(offered)
				if err != nil {
					return err
				}
			case len(args) == 0:
				return errors.New("name at least one permission, or use --interactive")
			default:
				var err error
				perms, err = parsePermissions(args)
				if err != nil {
					return err
				}
			}

			if err := a.request(cmd, perms); err != nil {
				return err
			}
			if wait > 0 {
				return a.wait(cmd, perms, wait, interval)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose from the permissions not yet granted")
	cmd.Flags().DurationVar(&wait, "wait", 0, "poll until granted or this long has passed")
	cmd.Flags().DurationVar(&interval, "interval", macperms.DefaultWaitInterval, "polling interval for --wait")
	return cmd
}

// missing returns the permissions among args (all when empty) that are not
// granted.
func (a *app) missing(ctx context.Context, args []string) ([]macperms.Permission, error) {
	perms, err := parsePermissions(args)
	if err != nil {
		return nil, err
	}
	report, err := macperms.CheckAll(ctx, a.checker, a.env)
	if err != nil {
		return nil, err
	}
	var out []macperms.Permission
	for _, p := range perms {
		if !report.Get(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (a *app) request(cmd *cobra.Command, perms []macperms.Permission) error {
	out := cmd.OutOrStdout()
	s := newStyles(out)
	var errs []error
	for _, p := range perms {
		a.logger.Debug("requesting", "permission", p)
		if err := macperms.Request(cmd.Context(), a.checker, p); err != nil {
			fmt.Fprintf(out, "  %s %s\n", s.bad.Render("✗"), p)
			errs = append(errs, err)
			continue
		}
		switch p {
		case macperms.InputMonitoring, macperms.FullDiskAccess:
			fmt.Fprintf(out, "  %s %s %s\n", s.ok.Render("→"), p,
				s.muted.Render(fmt.Sprintf("enable it in %s > Privacy & Security > %s", system.SettingsAppName(), p.Title())))
		default:
			fmt.Fprintf(out, "  %s %s %s\n", s.ok.Render("→"), p, s.muted.Render("prompt requested"))
		}
	}
	return errors.Join(errs...)
}

func (a *app) wait(cmd *cobra.Command, perms []macperms.Permission, timeout, interval time.Duration) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	out := cmd.OutOrStdout()
	s := newStyles(out)
	for _, p := range perms {
		if err := macperms.Wait(ctx, a.checker, p, a.env, interval); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%s not granted after %s", p, timeout)
			}
			return err
		}
		fmt.Fprintf(out, "  %s %s granted\n", s.mark(true), p)
	}
	return nil
}
