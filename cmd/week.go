package cmd

import (
	"fmt"

	"github.com/okhsunrog/sch-parse/pkg/schedule"
	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a group's full week",
	Long: `Print every lesson of the current week parity, grouped by weekday.
Use --week to pick another parity (0-3) or --all to list the whole four-week cycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupFlag, _ := cmd.Flags().GetString("group")
		all, _ := cmd.Flags().GetBool("all")

		var week *int
		if all {
			w := tui.AllWeeks
			week = &w
		} else if cmd.Flags().Changed("week") {
			w, _ := cmd.Flags().GetInt("week")
			if w < 0 || w >= schedule.ParityCycle {
				return fmt.Errorf("--week must be between 0 and %d, got %d", schedule.ParityCycle-1, w)
			}
			week = &w
		}

		client, cfg, err := setup()
		if err != nil {
			return err
		}

		group, err := tui.ResolveGroup(client, cfg, groupFlag)
		if err != nil {
			return err
		}

		return tui.ShowWeek(client, cfg, group, week)
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringP("group", "g", "", "Group name (e.g. ИВТ-13), defaults to the saved default group")
	weekCmd.Flags().IntP("week", "w", 0, "Week parity to show: 0=1st numerator, 1=1st denominator, 2=2nd numerator, 3=2nd denominator")
	weekCmd.Flags().BoolP("all", "a", false, "Show all four weeks")
	weekCmd.MarkFlagsMutuallyExclusive("week", "all")
}
