package cmd

import (
	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse group schedules, search teachers and export calendars interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
