package cmd

import (
	"fmt"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a group's lessons for today (or another date)",
	Long: `Resolve the weekday and the week parity of a date and print the lessons
the group has on it. Defaults to today and to the configured default group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupFlag, _ := cmd.Flags().GetString("group")
		dateFlag, _ := cmd.Flags().GetString("date")
		tomorrow, _ := cmd.Flags().GetBool("tomorrow")

		date := time.Now()
		if dateFlag != "" {
			parsed, err := time.ParseInLocation(config.DateLayout, dateFlag, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date '%s', expected YYYY-MM-DD", dateFlag)
			}
			date = parsed
		}
		if tomorrow {
			date = date.AddDate(0, 0, 1)
		}

		client, cfg, err := setup()
		if err != nil {
			return err
		}

		group, err := tui.ResolveGroup(client, cfg, groupFlag)
		if err != nil {
			return err
		}

		return tui.ShowDay(client, cfg, group, date)
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringP("group", "g", "", "Group name (e.g. ИВТ-13), defaults to the saved default group")
	todayCmd.Flags().StringP("date", "d", "", "Date to show (format: YYYY-MM-DD), defaults to today")
	todayCmd.Flags().BoolP("tomorrow", "t", false, "Show the day after the selected date")
}
