package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/config"
)

func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a binding file and list its bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := config.Validate(f); err != nil {
				return err
			}
			return printBindings(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Binding file (.toml, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func printBindings(w io.Writer, f *config.File) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYS\tEVENT\tTARGET\tACTION\tDESCRIPTION")
	for _, b := range f.Bindings {
		kind, _ := b.Kind()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Keys, kind, b.TargetName(), b.Action, b.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d binding(s) OK\n", len(f.Bindings))
	return err
}
