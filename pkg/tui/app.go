package tui

import (
	"errors"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/miet"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks initially, GetTheme() swaps in the configured accent
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := "99"

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain CLI output also receives the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu and keeps offering queries until the user quits.
// One client is shared by all queries so repeated lookups hit its cache.
func RunTUI() error {
	client, err := miet.NewClient()
	if err != nil {
		return err
	}

	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📅 Today's Lessons", "today"),
						huh.NewOption("🌅 Tomorrow's Lessons", "tomorrow"),
						huh.NewOption("🗓️ This Week", "week"),
						huh.NewOption("📚 All Weeks", "all"),
						huh.NewOption("🧑‍🏫 Find a Teacher", "teacher"),
						huh.NewOption("📤 Export to Calendar", "export"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🚪 Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case "quit":
			return nil
		case "config":
			err = RunConfigTUI(client)
		case "teacher":
			err = runTeacherTUI(client)
		case "export":
			err = runExportTUI(client)
		default:
			err = runGroupViewTUI(client, action)
		}

		// A failed query should not end the session
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			PrintError(err)
		}
	}
}
