package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tmc/macperms/fulldisk"
	"github.com/tmc/macperms/internal/system"
)

type doctorReport struct {
	Platform       string            `json:"platform"`
	MacOS          string            `json:"macos,omitempty"`
	Release        string            `json:"release,omitempty"`
	SettingsApp    string            `json:"settings_app"`
	Home           string            `json:"home,omitempty"`
	HomeError      string            `json:"home_error,omitempty"`
	FullDiskAccess []fulldisk.Result `json:"full_disk_access_probes"`
}

func newDoctorCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Show the environment permission checks depend on",
		Long: `Show the macOS version, the name of the settings app and the result of
every Full Disk Access probe path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.doctor()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}

			s := newStyles(out)
			s.header(out, "macperms doctor")
			fmt.Fprintf(out, "  %s %s\n", s.name.Render("platform"), r.Platform)
			if r.MacOS != "" {
				fmt.Fprintf(out, "  %s %s %s\n", s.name.Render("macOS"), r.MacOS, s.muted.Render(r.Release))
			}
			fmt.Fprintf(out, "  %s %s\n", s.name.Render("settings app"), r.SettingsApp)
			if r.HomeError != "" {
				fmt.Fprintf(out, "  %s %s %s\n", s.mark(false), s.name.Render("home"), r.HomeError)
			} else {
				fmt.Fprintf(out, "  %s %s\n", s.name.Render("home"), r.Home)
			}
			fmt.Fprintln(out)
			s.header(out, "Full Disk Access probes")
			for _, res := range r.FullDiskAccess {
				line := fmt.Sprintf("  %s %s", s.mark(res.OK), res.Path)
				if res.Err != "" {
					line += " " + s.muted.Render(res.Err)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (a *app) doctor() doctorReport {
	r := doctorReport{
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		SettingsApp: system.SettingsAppName(),
	}
	v, err := system.ProductVersion()
	switch {
	case err == nil:
		r.MacOS = v.String()
		r.Release = v.ReleaseName()
	case !errors.Is(err, system.ErrNotDarwin):
		a.logger.Debug("product version unavailable", "err", err)
	}

	var home string
	if a.env != nil {
		home, err = a.env.HomeDir()
	} else {
		err = errors.New("no host environment")
	}
	if err != nil {
		r.HomeError = err.Error()
		home = ""
	}
	r.Home = home
	r.FullDiskAccess = a.prober.Results(home)
	return r
}
