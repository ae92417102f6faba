package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a group's upcoming lessons to an ICS file",
	Long:  `Resolve the week parity of each of the next days and write the group's lessons as calendar events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupFlag, _ := cmd.Flags().GetString("group")
		output, _ := cmd.Flags().GetString("output")
		days, _ := cmd.Flags().GetInt("days")
		fromFlag, _ := cmd.Flags().GetString("from")

		if days <= 0 || days > 365 {
			return fmt.Errorf("--days must be between 1 and 365, got %d", days)
		}
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		from := time.Now()
		if fromFlag != "" {
			parsed, err := time.ParseInLocation(config.DateLayout, fromFlag, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --from '%s', expected YYYY-MM-DD", fromFlag)
			}
			from = parsed
		}

		client, cfg, err := setup()
		if err != nil {
			return err
		}

		group, err := tui.ResolveGroup(client, cfg, groupFlag)
		if err != nil {
			return err
		}

		return tui.ExportSchedule(client, cfg, group, from, days, output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("group", "g", "", "Group name (e.g. ИВТ-13), defaults to the saved default group")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().IntP("days", "n", 14, "Number of days to export")
	exportCmd.Flags().StringP("from", "f", "", "First day to export (format: YYYY-MM-DD), defaults to today")
}
