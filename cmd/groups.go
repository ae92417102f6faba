package cmd

import (
	"fmt"

	"github.com/okhsunrog/sch-parse/pkg/miet"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List all study groups",
	Long:  `Fetch the list of study groups known to the MIET timetable, optionally filtered by a substring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")

		client, _, err := setup()
		if err != nil {
			return err
		}

		var groups []string
		_ = spinner.New().
			Title("Fetching available study groups from MIET...").
			Action(func() {
				groups, err = client.FetchGroups()
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not fetch groups: %w", err)
		}

		matches := miet.FilterGroups(groups, filter)
		if len(matches) == 0 {
			return fmt.Errorf("no groups matching '%s'", filter)
		}

		for _, g := range matches {
			fmt.Println(g)
		}
		fmt.Printf("\n%d of %d groups\n", len(matches), len(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().StringP("filter", "f", "", "Only show groups containing this text (e.g. ИВТ)")
}
