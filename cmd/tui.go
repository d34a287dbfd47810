/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/roadmapper/internal/ui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui [topic]",
	Short: "Open the interactive roadmap viewer",
	Long: `Open the interactive roadmap viewer. With a topic, generation starts
immediately; otherwise type a topic and press enter.

Logs are written to log.file (default $TMPDIR/roadmapper.log).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return fmt.Errorf("the interactive viewer needs a terminal")
		}
		return runTUI(cmd.Context(), strings.TrimSpace(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(ctx context.Context, topic string) error {
	deps, err := loadDeps(ctx, "tui", true)
	if err != nil {
		return err
	}
	defer deps.Close()

	model := ui.NewRoadmapModel(ctx, deps.generator, topic, deps.log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run interactive viewer: %w", err)
	}
	return nil
}
