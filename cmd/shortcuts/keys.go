package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/input/key"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the named keys usable as combination fragments",
		Long: `Lists every key code with a name. Names longer than one character
(such as "esc" or "f5") match on the raw key code; single-character names
such as "[" match like any other character.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME")
			for _, code := range key.SpecialCodes() {
				name, _ := key.KeycodeName(code)
				fmt.Fprintf(tw, "%d\t%s\n", code, name)
			}
			return tw.Flush()
		},
	}
}
