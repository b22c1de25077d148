package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	deck    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "raycard",
		Short:         "Pointer-reactive glow cards for the terminal, the desktop and the web",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.deck, "deck", "d", "", "Path to a deck file (defaults to the built-in preset deck)")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newWindowCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
