package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/miet"

	"github.com/charmbracelet/huh"
)

// runGroupViewTUI asks for a group and prints the requested view of its timetable
func runGroupViewTUI(client *miet.Client, action string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	group, err := pickGroup(client, cfg, "Which group's schedule do you want to see?")
	if err != nil {
		return err
	}

	switch action {
	case "today":
		return ShowDay(client, cfg, group, time.Now())
	case "tomorrow":
		return ShowDay(client, cfg, group, time.Now().AddDate(0, 0, 1))
	case "all":
		all := AllWeeks
		return ShowWeek(client, cfg, group, &all)
	}
	return ShowWeek(client, cfg, group, nil)
}

// pickGroup shows a filterable list of all groups, with saved groups on top
func pickGroup(client *miet.Client, cfg *config.AppConfig, title string) (string, error) {
	groups, err := fetchGroups(client)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("the API returned no study groups")
	}

	saved := make(map[string]bool)
	var options []huh.Option[string]
	for _, name := range cfg.SavedGroups {
		if g, ok := miet.FindGroup(groups, name); ok && !saved[g] {
			saved[g] = true
			options = append(options, huh.NewOption("★ "+g, g))
		}
	}
	for _, g := range groups {
		if !saved[g] {
			options = append(options, huh.NewOption(g, g))
		}
	}

	// Pre-select the default group if it still exists
	var group string
	if g, ok := miet.FindGroup(groups, cfg.DefaultGroup); ok {
		group = g
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Enter = confirm. Type / to filter.").
				Options(options...).
				Value(&group).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return group, nil
}

func runTeacherTUI(client *miet.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var query string
	var allWeeks bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Teacher's name").
				Description("Any part of the short or full name, e.g. Иванов").
				Value(&query).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Include every week?").
				Description("No = only the current week").
				Affirmative("All weeks").
				Negative("Current week").
				Value(&allWeeks),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return ShowTeacher(client, cfg, strings.TrimSpace(query), allWeeks, nil)
}

func runExportTUI(client *miet.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	group, err := pickGroup(client, cfg, "Which group do you want to export?")
	if err != nil {
		return err
	}

	daysStr := "14"
	outputFile := "schedule.ics"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many days should be exported?").
				Value(&daysStr).
				Validate(func(v string) error {
					val, err := strconv.Atoi(v)
					if err != nil || val <= 0 || val > 365 {
						return fmt.Errorf("please enter a valid number between 1 and 365")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}
	days, _ := strconv.Atoi(daysStr)

	return ExportSchedule(client, cfg, group, time.Now(), days, outputFile)
}
