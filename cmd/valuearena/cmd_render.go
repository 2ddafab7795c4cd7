package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"value-arena/internal/server"
)

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <path>",
		Short: "Write the HTML served at a path to stdout",
		Example: `  valuearena render / > index.html
  valuearena render /battle > battle.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{}, c, a.logger)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			status, err := srv.Render(&buf, args[0])
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if status != http.StatusOK {
				return fmt.Errorf("render %s: no page at this path", args[0])
			}

			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
