package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/tui"
)

type playOptions struct {
	LogFile        string
	NonInteractive bool
}

var playCmdRunner = runPlay

func newPlayCmd(root *rootFlags) *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Hover the deck's cards with the mouse in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))
			return playCmdRunner(root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file (the terminal belongs to the UI)")

	return cmd
}

func runPlay(root *rootFlags, opts playOptions) error {
	if opts.NonInteractive {
		return fmt.Errorf("play needs an interactive terminal")
	}

	var sink io.Writer = io.Discard
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}

	log, err := newLogger(sink, root.verbose, "play")
	if err != nil {
		return err
	}

	deck, _, err := loadDeck(root, log)
	if err != nil {
		return err
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 0
	}

	b, err := board.New(deck, board.Options{Width: width, FPS: motion.DefaultFPS, Logger: log})
	if err != nil {
		return err
	}
	defer b.Close()

	program := tea.NewProgram(tui.NewModel(b, deck.Name), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		log.Error(err, "playground failed")
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
