package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/exporter"
	"github.com/okhsunrog/sch-parse/pkg/miet"
	"github.com/okhsunrog/sch-parse/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
)

// AllWeeks selects every week-parity in ShowWeek
const AllWeeks = -1

// out receives everything the views print
var out io.Writer = os.Stdout

// withSpinner runs a blocking action behind a spinner titled title
var withSpinner = func(title string, action func()) {
	_ = spinner.New().Title(title).Action(action).Run()
}

// PrintLines prints rendered schedule lines, highlighting the section headers
func PrintLines(lines []string) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"):
			fmt.Fprintln(out, accentStyle.Bold(true).Render(line))
		case line == schedule.NoLessonsMessage:
			fmt.Fprintln(out, warnStyle.Render(line))
		default:
			fmt.Fprintln(out, line)
		}
	}
}

// PrintError prints an error in the UI's error style
func PrintError(err error) {
	fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ %v", err)))
}

// ResolveGroup checks a user supplied group name against the API's group list.
// An empty name falls back to the configured default group.
func ResolveGroup(src miet.ScheduleSource, cfg *config.AppConfig, name string) (string, error) {
	if strings.TrimSpace(name) == "" && cfg != nil {
		name = cfg.DefaultGroup
	}
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("no group given: pass --group or set a default with 'sch-parse config --set-group'")
	}

	groups, err := fetchGroups(src)
	if err != nil {
		return "", err
	}

	group, ok := miet.FindGroup(groups, name)
	if !ok {
		return "", fmt.Errorf("group '%s' was not found in the list of available groups", miet.NormalizeGroupName(name))
	}
	return group, nil
}

// ShowDay prints the lessons a group has on the given date
func ShowDay(src miet.ScheduleSource, cfg *config.AppConfig, group string, date time.Time) error {
	anchor, err := cfg.Anchor()
	if err != nil {
		return err
	}

	resp, lessons, err := fetchLessons(src, group)
	if err != nil {
		return err
	}

	week := schedule.ResolveWeekParity(date, anchor)
	day := schedule.WeekdayCode(date)
	weekText := schedule.WeekParityText(week)

	fmt.Fprintln(out, accentStyle.Render(fmt.Sprintf("\nSchedule for group %s on %s, %s", group, date.Format(config.DateLayout), schedule.DayName(day))))

	todays := schedule.FilterByDayAndWeek(lessons, day, week)
	if len(todays) == 0 {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("%s (%s, group %s)", schedule.NoLessonsMessage, weekText, group)))
		return nil
	}

	PrintLines(schedule.RenderGroupedSchedule(todays, resp.Semester, weekText))
	return nil
}

// ShowWeek prints a group's full week for one parity index, the current one
// when week is nil, or every parity when *week is AllWeeks
func ShowWeek(src miet.ScheduleSource, cfg *config.AppConfig, group string, week *int) error {
	anchor, err := cfg.Anchor()
	if err != nil {
		return err
	}

	resp, lessons, err := fetchLessons(src, group)
	if err != nil {
		return err
	}

	current := schedule.ResolveWeekParity(time.Now(), anchor)
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Current week: %s", schedule.WeekParityText(current))))

	if week != nil && *week == AllWeeks {
		PrintLines(schedule.RenderGroupedSchedule(schedule.All(lessons), resp.Semester, ""))
		return nil
	}

	selected := current
	if week != nil {
		selected = *week
	}
	PrintLines(schedule.RenderGroupedSchedule(schedule.FilterByWeek(lessons, selected), resp.Semester, schedule.WeekParityText(selected)))
	return nil
}

// ShowTeacher scans every group, or only the given ones, for a teacher and
// prints the combined timetable. Only the current week is shown unless allWeeks is set.
func ShowTeacher(src miet.ScheduleSource, cfg *config.AppConfig, query string, allWeeks bool, groups []string) error {
	opts := miet.TeacherSearchOptions{}
	if len(groups) > 0 {
		known, err := fetchGroups(src)
		if err != nil {
			return err
		}
		for _, name := range groups {
			g, ok := miet.FindGroup(known, name)
			if !ok {
				return fmt.Errorf("group '%s' was not found in the list of available groups", miet.NormalizeGroupName(name))
			}
			opts.Groups = append(opts.Groups, g)
		}
	}
	header := ""
	if !allWeeks {
		anchor, err := cfg.Anchor()
		if err != nil {
			return err
		}
		week := schedule.ResolveWeekParity(time.Now(), anchor)
		opts.Week = &week
		header = schedule.WeekParityText(week)
	}

	var res *miet.TeacherSearchResult
	var err error

	withSpinner(fmt.Sprintf("Scanning every group for teacher '%s'...", query), func() {
		res, err = miet.SearchTeacher(src, query, opts)
	})

	if err != nil {
		return fmt.Errorf("teacher search failed: %w", err)
	}

	for _, s := range res.Skipped {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("⚠️ Skipped group %s: %v", s.Group, s.Err)))
	}
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Scanned %d groups, skipped %d.", res.Scanned, len(res.Skipped))))

	PrintLines(schedule.RenderAggregatedSchedule(res.Lessons, fmt.Sprintf("Lessons of '%s' (%s)", query, res.Semester), header))
	return nil
}

// ExportSchedule writes a group's lessons for the next days to an ICS file
func ExportSchedule(src miet.ScheduleSource, cfg *config.AppConfig, group string, from time.Time, days int, output string) error {
	anchor, err := cfg.Anchor()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	_, lessons, err := fetchLessons(src, group)
	if err != nil {
		return err
	}

	tagged := make([]schedule.Lesson, 0, len(lessons))
	for _, l := range lessons {
		tagged = append(tagged, l.WithGroup(group))
	}

	var n int
	err = writeFile(output, func(w io.Writer) error {
		var genErr error
		n, genErr = exporter.GenerateICS(tagged, exporter.Options{
			From:     from.In(loc),
			Days:     days,
			Anchor:   anchor,
			Location: loc,
		}, w)
		if genErr != nil {
			return fmt.Errorf("failed to generate ICS: %w", genErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(out, warnStyle.Render(schedule.NoLessonsMessage))
	}
	fmt.Fprintln(out, accentStyle.Render(fmt.Sprintf("Success! Exported %d lesson events for %s to %s", n, group, output)))
	return nil
}

// writeFile creates path and fills it with write. A file that could not be
// fully written is removed again.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	err = write(file)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write output file: %w", closeErr)
	}
	if err != nil {
		return errors.Join(err, os.Remove(path))
	}
	return nil
}

func fetchGroups(src miet.ScheduleSource) ([]string, error) {
	var groups []string
	var err error

	withSpinner("Fetching available study groups from MIET...", func() {
		groups, err = src.FetchGroups()
	})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	return groups, nil
}

func fetchLessons(src miet.ScheduleSource, group string) (*miet.ScheduleResponse, []schedule.Lesson, error) {
	var resp *miet.ScheduleResponse
	var err error

	withSpinner(fmt.Sprintf("Fetching schedule for %s...", group), func() {
		resp, err = src.FetchSchedule(group)
	})

	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch schedule for %s: %w", group, err)
	}
	return resp, schedule.FillSlotTimes(schedule.ParseLessons(resp.Lessons)), nil
}
