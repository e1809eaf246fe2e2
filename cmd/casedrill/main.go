// Package main provides the CLI entrypoint for casedrill.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/casedrill/internal/casing"
	"github.com/verte-zerg/casedrill/internal/game"
	"github.com/verte-zerg/casedrill/internal/generator"
	"github.com/verte-zerg/casedrill/internal/stats"
	"github.com/verte-zerg/casedrill/internal/store"
	"github.com/verte-zerg/casedrill/internal/tui"
	"github.com/verte-zerg/casedrill/internal/wordlist"
)

const examplePhrase = "user name"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "casedrill",
		Short:         "Practice naming conventions in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}
	rootCmd.AddCommand(newStylesCmd())
	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("casedrill needs an interactive terminal")
	}

	words, err := wordlist.Load()
	if err != nil {
		return fmt.Errorf("failed to load word bank: %w", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open round journal: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close round journal: %v\n", cerr)
		}
	}()

	gen := generator.New(words, casing.Styles())
	model := tui.NewModel(game.New(gen), st)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := model.Err(); err != nil {
		logErrf("failed to journal rounds: %v\n", err)
	}

	return printSummary(cmd.Context(), cmd.OutOrStdout(), st)
}

func printSummary(ctx context.Context, w io.Writer, st *store.Store) error {
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := stats.BuildReport(ctx, st)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	if err := stats.RenderSummary(w, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the practiced naming styles",
		Args:  cobra.NoArgs,
		RunE:  runStylesCmd,
	}
}

func runStylesCmd(cmd *cobra.Command, _ []string) error {
	for _, s := range casing.Styles() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s.Name, s.Apply(examplePhrase)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	// Best-effort: a failed write to stderr has nowhere to be reported.
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
