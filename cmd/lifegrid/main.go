package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/logging"
	"lifegrid/internal/term"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifegrid",
		Short: "Interactive Conway's Game of Life editor",
		Long: `lifegrid opens a board of cells you can edit with the mouse.

Click cells to toggle them, press the toggle key (space by default) to start
or pause the simulation, and close the window or press Escape to quit.`,
		SilenceUsage: true,
		RunE:         runWindow,
	}
	addWindowFlags(rootCmd)

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")

	rootCmd.AddCommand(
		newRunCmd(),
		newTermCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("mute", false, "Do not play background music")
	cmd.Flags().Int("fps", 0, "Override the target frame rate")
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the board in a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	addWindowFlags(cmd)
	return cmd
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mute, _ := cmd.Flags().GetBool("mute")
	logger := newLogger(cfg)
	logger.Debug("starting window host", "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "fps", cfg.FPS)
	return app.Run(cmd.Context(), app.Options{Config: cfg, Logger: logger, Mute: mute})
}

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the board in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			logger.Debug("starting terminal host", "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "fps", cfg.FPS)
			return term.Run(cmd.Context(), term.Options{Config: cfg, Logger: logger})
		},
	}
	cmd.Flags().Int("fps", 0, "Override the target frame rate")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifegrid version %s\n", version)
		},
	}
}

// loadConfig resolves defaults, file, environment and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		fps, _ := cmd.Flags().GetInt("fps")
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, os.Stderr).With("session", uuid.NewString())
}
