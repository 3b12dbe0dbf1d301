package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/shortcut"
)

// eventFlags describe a raw key event on the command line.
type eventFlags struct {
	kind string
	code int
	mods string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "down", "Event kind (down, press, up)")
	cmd.Flags().IntVar(&f.code, "code", 0, "Key code (down/up) or character code (press)")
	cmd.Flags().StringVarP(&f.mods, "mods", "m", "", `Held modifiers, e.g. "ctrl+shift"`)
	_ = cmd.MarkFlagRequired("code")
}

func (f *eventFlags) event() (key.Event, error) {
	kind, err := key.ParseKind(f.kind)
	if err != nil {
		return key.Event{}, err
	}
	return key.NewEvent(kind, f.code, key.ParseModifiers(f.mods)), nil
}

func newResolveCmd() *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the key identity of a raw key event",
		Example: `  shortcuts resolve --code 75          # k
  shortcuts resolve --code 27          # esc
  shortcuts resolve -k press --code 65 -m shift   # A`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := flags.event()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.Resolve(ev))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newMatchCmd() *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "match COMBINATION",
		Short: "Report whether a combination matches a raw key event",
		Example: `  shortcuts match ctrl+k --code 75 -m ctrl   # true
  shortcuts match esc --code 69              # false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := flags.event()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), shortcut.Parse(args[0]).Matches(ev))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}
