package main

import (
	"github.com/spf13/cobra"

	"github.com/tmc/macperms/plugin"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer permission commands over stdin and stdout",
		Long: `Read one JSON request per line from stdin and write one JSON response per
line to stdout:

  {"id":1,"cmd":"check_camera_permission"}
  {"id":1,"result":true}

Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := plugin.New(a.checker, a.env,
				plugin.WithMiddleware(plugin.LoggingMiddleware(a.logger)),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("serving", "commands", len(reg.Commands()))
			return plugin.Serve(cmd.Context(), reg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
