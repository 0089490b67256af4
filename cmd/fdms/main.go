package main

import (
	"flight-dashboard/internal/config"
	"flight-dashboard/internal/console"
	"flight-dashboard/internal/platform/logging"
	"flight-dashboard/internal/platform/obs"
	"flight-dashboard/internal/services"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()

	// Populated by setup before any command runs.
	cfg       config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "fdms",
	Short: "Flight dashboard management system",
	Long: `fdms keeps flight plans in time-window buckets and lets an operator
insert, cancel and query them from an interactive menu. The dashboard is
loaded from the configured store at start and saved back on exit.`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runSession,
}

func main() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.String("store", "", "store backend: file, sqlite, postgres, redis")
	flags.String("data-file", "", "flat-file snapshot path")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", `log file path, "-" for stderr`)

	_ = v.BindPFlag(config.KeyStoreBackend, flags.Lookup("store"))
	_ = v.BindPFlag(config.KeyDataFile, flags.Lookup("data-file"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
}

// setup resolves configuration and installs the process logger.
func setup(cmd *cobra.Command, _ []string) error {
	dotenvErr := config.LoadDotEnv()

	if cfgFile != "" {
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	logCloser = closer
	slog.SetDefault(logger)

	if dotenvErr != nil {
		slog.Debug("No .env file found (using environment variables)")
	}

	ctx := obs.WithSessionID(cmd.Context(), uuid.NewString())
	cmd.SetContext(ctx)

	slog.InfoContext(ctx, "fdms starting",
		slog.String("session_id", obs.SessionID(ctx)),
		slog.String("command", cmd.Name()),
		slog.String("store", cfg.StoreBackend))
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// runSession is the interactive menu. It always exits successfully unless
// standard input itself fails.
func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, closeStore := openSessionStore(ctx, cfg)
	defer closeStore()

	pub := newPublisher(cfg, slog.Default())
	defer func() {
		if err := pub.Close(); err != nil {
			slog.WarnContext(ctx, "close event publisher", slog.Any("err", err))
		}
	}()

	svc := services.NewDashboardService(store, pub)
	if err := console.NewSession(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
