package cmd

import "github.com/spf13/cobra"

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Controls:
  ctrl+t     Show/hide today's word
  ctrl+o     Show/hide future words
  ctrl+r     Validate the typed word
  enter      Check the typed word against the word of the day
  ctrl+y     Copy the result as emoji
  esc        Menu (press again to quit)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
