package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"value-arena/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web views and the SSH terminal view",
		Long: `Serve the leaderboard at / and the battle workspace at /battle.

Read-only JSON is available at /api/leaderboard and /api/battle. Unless
--ssh-port is empty, the same views are available to terminals over SSH:

  ssh -p 2222 localhost`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{
				Host:         a.cfg.Host,
				WebPort:      a.cfg.WebPort,
				SSHPort:      a.cfg.SSHPort,
				HostKeyPath:  a.cfg.HostKeyPath,
				GlamourStyle: a.cfg.GlamourStyle,
			}, c, a.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting value arena",
				zap.String("version", version),
				zap.Int("categories", len(c.Leaderboard)),
			)
			return srv.Run(ctx)
		},
	}
	a.cfg.bindFlags(cmd)
	return cmd
}
