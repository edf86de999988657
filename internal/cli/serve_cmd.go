package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const fallbackAddr = ":8000"

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return errors.New("HTTP server is not configured")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return app.Serve(cmd.Context(), addr)
		},
	}

	def := app.DefaultAddr
	if def == "" {
		def = fallbackAddr
	}
	cmd.Flags().StringVar(&addr, "addr", def, "listen address")

	return cmd
}
