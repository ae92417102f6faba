package schedule

import (
	"fmt"
	"strings"
)

// RemotePrefix marks remote lessons in formatted output
const RemotePrefix = "[REMOTE] "

// NoLessonsMessage is rendered when a filter leaves nothing to show
const NoLessonsMessage = "No lessons found for this filter."

// FormatLesson renders a lesson as a single display line, e.g.
//
//	1 пара (09:00-10:20): Calculus [LEC] - Room: 301, Teacher: Ivanov (1st numerator)
func FormatLesson(l Lesson, weekText string) string {
	var b strings.Builder

	b.WriteString(formatSlot(l.Slot))
	b.WriteString(": ")
	if l.Remote {
		b.WriteString(RemotePrefix)
	}
	b.WriteString(orNA(l.Subject))
	if l.ClassType != "" {
		fmt.Fprintf(&b, " [%s]", l.ClassType)
	}
	fmt.Fprintf(&b, " - Room: %s, Teacher: %s (%s)", orNA(l.Room), orNA(l.TeacherShort), weekText)
	if l.Group != "" {
		fmt.Fprintf(&b, " [Group: %s]", l.Group)
	}

	return b.String()
}

// RenderGroupedSchedule lays out lessons day by day under a semester title.
// weekHeader is optional and shown under the title when set.
func RenderGroupedSchedule(lessons []Lesson, semester, weekHeader string) []string {
	days := GroupByWeekday(lessons)
	if len(days) == 0 {
		return []string{NoLessonsMessage}
	}

	lines := []string{fmt.Sprintf("--- Schedule for %s ---", orNA(semester))}
	if weekHeader != "" {
		lines = append(lines, fmt.Sprintf("--- (Week: %s) ---", weekHeader))
	}

	for _, day := range days {
		lines = append(lines, "", fmt.Sprintf("--- %s ---", DayName(day.Weekday)))
		for _, l := range day.Lessons {
			lines = append(lines, "  "+FormatLesson(l, WeekParityText(l.WeekParity)))
		}
	}

	return lines
}

func formatSlot(s TimeSlot) string {
	label := orNA(s.Label)
	switch {
	case s.Start != "" && s.End != "":
		return fmt.Sprintf("%s (%s-%s)", label, s.Start, s.End)
	case s.Start != "":
		return fmt.Sprintf("%s (from %s)", label, s.Start)
	case s.End != "":
		return fmt.Sprintf("%s (until %s)", label, s.End)
	}
	return label
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// RenderAggregatedSchedule lays out lessons collected from several groups.
// Lessons keep the (weekday, week-parity, slot) order of SortForAggregation,
// with a header each time the weekday changes.
func RenderAggregatedSchedule(lessons []Lesson, title, weekHeader string) []string {
	var sorted []Lesson
	for _, l := range SortForAggregation(lessons) {
		if l.HasWeekday() {
			sorted = append(sorted, l)
		}
	}
	if len(sorted) == 0 {
		return []string{NoLessonsMessage}
	}

	lines := []string{fmt.Sprintf("--- %s ---", orNA(title))}
	if weekHeader != "" {
		lines = append(lines, fmt.Sprintf("--- (Week: %s) ---", weekHeader))
	}

	day := 0
	for _, l := range sorted {
		if l.Weekday != day {
			day = l.Weekday
			lines = append(lines, "", fmt.Sprintf("--- %s ---", DayName(day)))
		}
		lines = append(lines, "  "+FormatLesson(l, WeekParityText(l.WeekParity)))
	}

	return lines
}
