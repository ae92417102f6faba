package cmd

import (
	"strings"

	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var teacherCmd = &cobra.Command{
	Use:   "teacher NAME",
	Short: "Find where and when a teacher gives lessons",
	Long: `Scan the schedule of every group for lessons taught by NAME (any part of the
short or full name) and print them sorted by day, week and period.
Groups that fail to load are skipped with a warning. Use --groups to
limit the scan to a few groups.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		allWeeks, _ := cmd.Flags().GetBool("all-weeks")
		groups, _ := cmd.Flags().GetStringSlice("groups")

		client, cfg, err := setup()
		if err != nil {
			return err
		}

		return tui.ShowTeacher(client, cfg, strings.Join(args, " "), allWeeks, groups)
	},
}

func init() {
	rootCmd.AddCommand(teacherCmd)
	teacherCmd.Flags().BoolP("all-weeks", "a", false, "Show lessons of every week instead of only the current one")
	teacherCmd.Flags().StringSliceP("groups", "g", nil, "Only scan these groups (comma separated, e.g. ИВТ-13,ИВТ-14)")
}
