package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/miet"
	"github.com/okhsunrog/sch-parse/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(client *miet.Client) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Default Group", "group"),
						huh.NewOption("Set Saved Groups", "saved"),
						huh.NewOption("Set Semester Start (Week Numbering)", "start"),
						huh.NewOption("Set Timezone (Calendar Export)", "timezone"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "group":
			err = runSetDefaultGroupTUI(client, cfg)
		case "saved":
			err = runSetSavedGroupsTUI(client, cfg)
		case "start":
			err = runSetStartTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.sch-parse.json) ---"))

	fmt.Printf("Default Group: %s\n", orNotSet(cfg.DefaultGroup))
	fmt.Printf("Saved Groups: %s\n", orNotSet(strings.Join(cfg.SavedGroups, ", ")))

	if anchor, err := cfg.Anchor(); err != nil {
		fmt.Printf("Semester Start: %s\n", errorStyle.Render(err.Error()))
	} else {
		week := schedule.ResolveWeekParity(time.Now(), anchor)
		fmt.Printf("Semester Start: %s (this week: %s)\n", anchor.Format(config.DateLayout), schedule.WeekParityText(week))
	}

	fmt.Printf("Timezone: %s\n", orNotSet(cfg.Timezone))
	fmt.Printf("Accent Color: %s\n", orNotSet(cfg.AccentColor))
	fmt.Println()
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func runSetDefaultGroupTUI(client *miet.Client, cfg *config.AppConfig) error {
	group, err := pickGroup(client, cfg, "Select your default study group")
	if err != nil {
		return err
	}

	cfg.DefaultGroup = group
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default group changed to: %s\n", group)))
	return nil
}

func runSetSavedGroupsTUI(client *miet.Client, cfg *config.AppConfig) error {
	groups, err := fetchGroups(client)
	if err != nil {
		return err
	}

	existing := make(map[string]bool)
	for _, g := range cfg.SavedGroups {
		existing[g] = true
	}

	var options []huh.Option[string]
	for _, g := range groups {
		opt := huh.NewOption(g, g)
		if existing[g] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select the groups you check often").
				Description("They are listed first when picking a group.\nSpace = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedGroups = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d groups.\n", len(selected))))
	return nil
}

func runSetStartTUI(cfg *config.AppConfig) error {
	input := cfg.ScheduleStart
	if input == "" {
		input = schedule.DefaultAnchor.Format(config.DateLayout)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monday of the semester's first week").
				Description("Format YYYY-MM-DD. Week numbering (numerator/denominator) counts from here.").
				Value(&input).
				Validate(func(s string) error {
					_, err := config.ValidateAnchor(strings.TrimSpace(s))
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.ScheduleStart = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Semester start saved as %s\n", cfg.ScheduleStart)))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	input := cfg.Timezone
	if input == "" {
		input = config.DefaultTimezone
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone of the lesson times").
				Description("IANA name, e.g. Europe/Moscow").
				Value(&input).
				Validate(func(s string) error {
					_, err := (&config.AppConfig{Timezone: strings.TrimSpace(s)}).Location()
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timezone saved as %s\n", cfg.Timezone)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Violet", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		input = hexInput
	}

	cfg.AccentColor = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(input)).Render("\n✅ The theme color is now saved.\n"))
	return nil
}

// validateHexColor accepts #RRGGBB codes
func validateHexColor(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("'%c' is not a hex digit", r)
		}
	}
	return nil
}
