package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmc/macperms"
)

type checkResult struct {
	Permission macperms.Permission           `json:"permission"`
	Granted    bool                          `json:"granted"`
	Status     *macperms.AuthorizationStatus `json:"status,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:       "check [permission...]",
		Short:     "Report whether permissions are granted",
		Long:      "Report whether permissions are granted. With no arguments every permission is checked.",
		ValidArgs: permissionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := parsePermissions(args)
			if err != nil {
				return err
			}
			results, err := a.check(cmd, perms)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				s := newStyles(out)
				for _, r := range results {
					line := fmt.Sprintf("  %s %s", s.mark(r.Granted), s.name.Render(r.Permission.String()))
					if r.Status != nil {
						line += " " + s.muted.Render(r.Status.String())
					}
					fmt.Fprintln(out, strings.TrimRight(line, " "))
				}
			}

			if strict {
				var missing []string
				for _, r := range results {
					if !r.Granted {
						missing = append(missing, r.Permission.String())
					}
				}
				if len(missing) > 0 {
					return fmt.Errorf("not granted: %s", strings.Join(missing, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any checked permission is not granted")
	return cmd
}

func (a *app) check(cmd *cobra.Command, perms []macperms.Permission) ([]checkResult, error) {
	granted := make(map[macperms.Permission]bool, len(perms))
	if len(perms) == len(macperms.All()) {
		report, err := macperms.CheckAll(cmd.Context(), a.checker, a.env)
		if err != nil {
			return nil, err
		}
		for _, p := range perms {
			granted[p] = report.Get(p)
		}
	} else {
		for _, p := range perms {
			ok, err := macperms.Check(a.checker, p, a.env)
			if err != nil {
				return nil, err
			}
			granted[p] = ok
		}
	}

	reporter, _ := a.checker.(macperms.StatusReporter)
	results := make([]checkResult, 0, len(perms))
	for _, p := range perms {
		r := checkResult{Permission: p, Granted: granted[p]}
		if reporter != nil {
			var status macperms.AuthorizationStatus
			switch p {
			case macperms.Camera:
				status = reporter.CameraStatus()
				r.Status = &status
			case macperms.Microphone:
				status = reporter.MicrophoneStatus()
				r.Status = &status
			}
		}
		results = append(results, r)
	}
	return results, nil
}
