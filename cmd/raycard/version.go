package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildInfo fills the commit from the embedded VCS stamp when the binary was
// built without ldflags.
func buildInfo() (ver, rev, built string) {
	ver, rev, built = version, commit, date
	if rev != "none" {
		return ver, rev, built
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, rev, built
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			built = s.Value
		}
	}
	return ver, rev, built
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the raycard release and the commit it was built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ver, rev, built := buildInfo()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), ver)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "raycard %s (commit %s, built %s)\n", ver, rev, built)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the release")

	return cmd
}
