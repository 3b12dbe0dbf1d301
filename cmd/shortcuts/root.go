package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/app"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	format    app.LogFormat // parsed from logFormat before any command runs
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "shortcuts",
		Short: "Bind keyboard shortcuts to actions",
		Long: `shortcuts binds key combinations such as "ctrl+shift+k" to actions and
runs them as keys are pressed in the terminal.

Bindings are read from a TOML or YAML file. Each binding names the keys,
the key event (down, press or up), an optional target element and the
action to run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			format, err := app.ParseLogFormat(flags.logFormat)
			if err != nil {
				return err
			}
			flags.format = format
			return nil
		},
	}
	root.SetVersionTemplate(versionTemplate())

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(app.LogFormatText), "Log format (text, json)")

	root.AddCommand(
		newRunCmd(&flags),
		newCheckCmd(),
		newResolveCmd(),
		newMatchCmd(),
		newKeysCmd(),
		newVersionCmd(),
	)
	return root
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("shortcuts %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("shortcuts %s\n", version)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionTemplate())
		},
	}
}

// newLogger builds the logger described by flags, writing to w. The
// returned LevelVar lets a binding file adjust the level later.
func (f *globalFlags) newLogger(w io.Writer) (*slog.Logger, *slog.LevelVar) {
	level := new(slog.LevelVar)
	level.Set(app.ParseLogLevel(f.logLevel))
	logger := app.NewLogger(app.LoggerConfig{
		Level:  level,
		Output: w,
		Format: f.format,
	})
	return logger, level
}
