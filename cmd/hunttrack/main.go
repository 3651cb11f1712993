package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hunttrack/internal/bootstrap"
	"hunttrack/internal/platform/config"
	"hunttrack/internal/platform/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hunttrack",
		Short:         "Job application and study log tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data>/hunttrack.yaml)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newAppCmd(opts))
	root.AddCommand(newStudyCmd(opts))
	root.AddCommand(newDashboardCmd(opts))
	root.AddCommand(newAchievementsCmd(opts))
	root.AddCommand(newAttachCmd(opts))
	root.AddCommand(newExportCmd(opts))
	return root
}

func defaultDataDir() string {
	if dir, ok := os.LookupEnv("HUNTTRACK_DATA"); ok && dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hunttrack"
	}
	return filepath.Join(home, ".hunttrack")
}

func (o *rootOptions) config() (config.Config, error) {
	return config.Load(config.Options{DataDir: o.dataDir, ConfigPath: o.configPath})
}

// load builds the app with a stderr logger. Callers must Close the result.
func (o *rootOptions) load(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, log)
}

// run opens the app, hands it to fn and closes it afterwards.
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	app, err := o.load(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			log, err := logger.NewFile(cfg.LogLevel, cfg.LogPath())
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			log.Info("tui started", zap.String("data_dir", cfg.DataDir))
			return bootstrap.RunTUI(app)
		},
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)
			return opts.run(cmd, func(ctx context.Context, app *bootstrap.App) error {
				return app.Server.Run(ctx)
			})
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
