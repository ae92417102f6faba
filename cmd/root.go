package cmd

import (
	"fmt"
	"os"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/miet"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sch-parse",
	Short: "A CLI and TUI for the MIET timetable",
	Long: `sch-parse fetches group schedules from the MIET timetable API, works out
which of the four rotating weeks (numerator/denominator) a date falls into
and prints or exports the lessons that take place.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup loads the user config and creates an API client, the two things every command needs
func setup() (*miet.Client, *config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := miet.NewClient()
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
