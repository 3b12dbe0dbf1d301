package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/app"
	"github.com/dshills/shortcuts/internal/host/terminal"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		configPath string
		watch      bool
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run bindings against keys typed in the terminal",
		Long: `Opens the terminal in full-screen mode and dispatches every key stroke to
the configured bindings. Logs go to a file because the terminal is in use.

Use a binding with the quit action to leave, or send SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBindings(cmd.Context(), flags, configPath, watch, logFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Binding file (.toml, .yaml, .yml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the binding file when it changes")
	cmd.Flags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "shortcuts.log"), "File that receives logs while running")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runBindings(ctx context.Context, flags *globalFlags, configPath string, watch bool, logFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer out.Close()

	logger, level := flags.newLogger(out)
	application := app.New(app.Options{
		ConfigPath: configPath,
		Watch:      watch,
		Logger:     logger,
		LogLevel:   level,
	})
	defer application.Close()

	if err := application.Load(); err != nil {
		return err
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, screen); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
