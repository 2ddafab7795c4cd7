package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"value-arena/internal/catalog"
)

var version = "dev"

type app struct {
	cfg    Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	cmd, _ := newApp()
	return cmd
}

// newApp builds the command tree and returns the app it configures, so the
// caller can flush the logger once the command has finished.
func newApp() (*cobra.Command, *app) {
	a := &app{cfg: loadConfig()}

	cmd := &cobra.Command{
		Use:   "valuearena",
		Short: "ValueArena - EigenBench leaderboard and battle viewer",
		Long: `ValueArena serves a static EigenBench leaderboard and a side-by-side
battle workspace comparing two model responses.

All data comes from a catalog compiled into the binary. Use --catalog to
serve a different YAML catalog with the same shape.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.cfg.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfg.CatalogPath, "catalog", a.cfg.CatalogPath, "YAML catalog to serve instead of the embedded one (VALUEARENA_CATALOG)")
	cmd.PersistentFlags().BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "enable debug logging (VALUEARENA_VERBOSE)")

	cmd.AddCommand(newServeCommand(a))
	cmd.AddCommand(newRenderCommand(a))

	return cmd, a
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.CatalogPath == "" {
		return catalog.Default()
	}
	a.logger.Debug("loading catalog", zap.String("path", a.cfg.CatalogPath))
	return catalog.LoadFile(a.cfg.CatalogPath)
}

func execute() error {
	cmd, a := newApp()
	defer a.sync()
	return cmd.Execute()
}

// sync flushes buffered log entries. It runs whether or not the command
// failed; cobra skips post-run hooks after an error.
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
