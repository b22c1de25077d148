package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/raycard/internal/logger"
)

type checkOptions struct {
	Strict bool
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a deck and list settings the engine will not use as written",
		Long: `Check parses and validates a deck. Structural problems fail the check.
Invalid style values are replaced by their defaults, and out-of-range numbers
are clamped to the nearest bound. They are listed here and fail the check
only with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// issues go to stdout as part of the report
			return runCheck(cmd.OutOrStdout(), root, opts, logger.Nop())
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat replaced or clamped style values as errors")

	return cmd
}

func runCheck(w io.Writer, root *rootFlags, opts checkOptions, log *logger.Logger) error {
	deck, issues, err := loadDeck(root, log)
	if err != nil {
		return err
	}

	name := root.deck
	if name == "" {
		name = "built-in presets"
	}
	fmt.Fprintf(w, "%s: %d cards\n", name, len(deck.Cards))
	for _, issue := range issues {
		fmt.Fprintf(w, "  fallback %s\n", issue)
	}

	if len(issues) == 0 {
		fmt.Fprintln(w, "ok")
		return nil
	}
	if !opts.Strict {
		fmt.Fprintf(w, "ok with %d fallbacks\n", len(issues))
		return nil
	}

	errs := make([]error, len(issues))
	for i, issue := range issues {
		errs[i] = issue.Err()
	}
	return fmt.Errorf("deck has %d invalid settings: %w", len(issues), errors.Join(errs...))
}
