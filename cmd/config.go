package cmd

import (
	"fmt"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sch-parse configuration",
	Long:  "View or edit your local configuration settings (default group, semester start, timezone, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := setup()
		if err != nil {
			return err
		}

		setGroup, _ := cmd.Flags().GetString("set-group")
		setStart, _ := cmd.Flags().GetString("set-start")
		setTimezone, _ := cmd.Flags().GetString("timezone")
		setAccent, _ := cmd.Flags().GetString("accent")

		if setGroup == "" && setStart == "" && setTimezone == "" && setAccent == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI(client)
		}

		if setGroup != "" {
			group, err := tui.ResolveGroup(client, cfg, setGroup)
			if err != nil {
				return err
			}
			cfg.DefaultGroup = group
			fmt.Printf("✅ Default group set to %s\n", group)
		}

		if setStart != "" {
			if _, err := config.ValidateAnchor(setStart); err != nil {
				return err
			}
			cfg.ScheduleStart = setStart
			fmt.Printf("✅ Semester start set to %s\n", setStart)
		}

		if setTimezone != "" {
			if _, err := (&config.AppConfig{Timezone: setTimezone}).Location(); err != nil {
				return err
			}
			cfg.Timezone = setTimezone
			fmt.Printf("✅ Timezone set to %s\n", setTimezone)
		}

		if setAccent != "" {
			cfg.AccentColor = setAccent
			fmt.Printf("✅ Accent color set to %s\n", setAccent)
		}

		return config.Save(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-group", "g", "", "Set the default group used when --group is omitted")
	configCmd.Flags().StringP("set-start", "s", "", "Set the Monday the semester's week numbering starts from (YYYY-MM-DD)")
	configCmd.Flags().StringP("timezone", "z", "", "Set the timezone of lesson times for calendar export (e.g. Europe/Moscow)")
	configCmd.Flags().StringP("accent", "c", "", "Set the accent color of the interface (ANSI code or #RRGGBB)")
}
