package main

import (
	"fmt"
	"os"

	"github.com/bettergovph/lastverified/cli"
	"github.com/bettergovph/lastverified/internal/tui"
	"github.com/bettergovph/lastverified/internal/ui"
	"github.com/bettergovph/lastverified/lastverified"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app, err := lastverified.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Modes that write to the terminal directly and should not run the TUI.
	if cfg.DryRun || cfg.NoAnimation || cfg.Verbose {
		summary, err := app.Execute()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ui.PrintRunSummary(summary)
		return
	}

	p := tea.NewProgram(tui.New(app))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		os.Exit(1)
	}
}
