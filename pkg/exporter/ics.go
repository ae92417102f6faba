package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// Options selects the calendar days to export
type Options struct {
	From     time.Time      // first day, only the date part is used
	Days     int            // number of consecutive days
	Anchor   time.Time      // Monday the week numbering starts from
	Location *time.Location // timezone of the lesson clock times
}

// GenerateICS resolves the week parity of every day in the range, picks the
// lessons held on it and writes them as calendar events.
// Lessons without both start and end times are skipped.
func GenerateICS(lessons []schedule.Lesson, opts Options, w io.Writer) (int, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	y, m, d := opts.From.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, loc)
	count := 0

	for i := 0; i < opts.Days; i++ {
		day := first.AddDate(0, 0, i)
		week := schedule.ResolveWeekParity(day, opts.Anchor)
		todays := schedule.FilterByDayAndWeek(lessons, schedule.WeekdayCode(day), week)

		for _, l := range todays {
			start, err := clockOn(day, l.Slot.Start)
			if err != nil {
				continue
			}
			end, err := clockOn(day, l.Slot.End)
			if err != nil || !end.After(start) {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%s", start.Format("20060102T150405"), l.Slot.Code, eventKey(l)))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(summary(l))
			event.SetLocation(l.Room)
			event.SetDescription(description(l, week))
			count++
		}
	}

	return count, cal.SerializeTo(w)
}

// clockOn places an HH:MM clock time on the given day
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func summary(l schedule.Lesson) string {
	s := l.Subject
	if l.ClassType != "" {
		s += " [" + l.ClassType + "]"
	}
	if l.Remote {
		s = schedule.RemotePrefix + s
	}
	return s
}

func description(l schedule.Lesson, week int) string {
	lines := []string{"Teacher: " + l.TeacherShort}
	if l.TeacherFull != "" {
		lines = append(lines, "Full name: "+l.TeacherFull)
	}
	lines = append(lines, "Week: "+schedule.WeekParityText(week))
	if l.Group != "" {
		lines = append(lines, "Group: "+l.Group)
	}
	return strings.Join(lines, "\n")
}

// eventKey keeps UIDs stable across exports of the same lesson. Room and
// teacher are part of it so parallel subgroup lessons in one slot stay distinct.
func eventKey(l schedule.Lesson) string {
	parts := []string{l.Subject, l.ClassType, l.Room, l.TeacherShort, l.Group}
	key := strings.NewReplacer(" ", "", "[", "", "]", "").Replace(strings.Join(parts, "-"))
	if strings.Trim(key, "-") == "" {
		key = "lesson"
	}
	return key
}
