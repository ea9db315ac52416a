package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/parthbanwari/Mediately/internal/app"
	"github.com/parthbanwari/Mediately/internal/config"
	"github.com/parthbanwari/Mediately/internal/log"
)

func main() {
	var (
		configPath string
		addr       string
		dbPath     string
		logLevel   string
		staticDir  string
	)

	rootCmd := &cobra.Command{
		Use:   "mediately-relay",
		Short: "Real-time chat relay for Mediately case rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(logLevel)

			cfg, cfgPath, err := config.Load(logger, configPath)
			if err != nil {
				return err
			}
			logger.Info().Str("config", cfgPath).Msg("configuration loaded")

			// Flags win over file and env values.
			if addr != "" {
				cfg.Addr = addr
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}
			if staticDir != "" {
				cfg.StaticDir = staticDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				logger = log.New(cfg.LogLevel)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(&cfg, logger)
			if err != nil {
				return err
			}

			logger.Info().Str("addr", cfg.Addr).Msg("starting relay server")
			if err := application.Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&staticDir, "static-dir", "", "directory with the built web client")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
