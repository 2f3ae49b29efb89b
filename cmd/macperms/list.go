package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmc/macperms"
)

type permissionInfo struct {
	Name        macperms.Permission `json:"name"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Check       string              `json:"check_command"`
	Request     string              `json:"request_command"`
	SettingsURL string              `json:"settings_url"`
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []permissionInfo
			for _, p := range macperms.All() {
				check, request := p.Command()
				infos = append(infos, permissionInfo{
					Name:        p,
					Title:       p.Title(),
					Description: p.Description(),
					Check:       check,
					Request:     request,
					SettingsURL: p.Pane().URL(),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			s := newStyles(out)
			for _, info := range infos {
				fmt.Fprintf(out, "%s %s\n", s.name.Render(info.Name.String()), info.Description)
				fmt.Fprintf(out, "  %s\n", s.muted.Render(info.SettingsURL))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
