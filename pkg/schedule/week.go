package schedule

import (
	"fmt"
	"time"
)

// ParityCycle is the number of rotating weeks in the timetable
const ParityCycle = 4

// DefaultAnchor is the Monday the semester's week numbering starts from
var DefaultAnchor = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)

var parityNames = [ParityCycle]string{
	"1st numerator",
	"1st denominator",
	"2nd numerator",
	"2nd denominator",
}

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// ResolveWeekParity returns which of the four rotating weeks (0..3) the given
// date falls into, counting from the week containing anchor.
// Dates before the anchor wrap around instead of going negative.
func ResolveWeekParity(date, anchor time.Time) int {
	days := civilDays(weekStart(date)) - civilDays(weekStart(anchor))
	weeks := floorDiv(days, 7)
	return floorMod(weeks, ParityCycle)
}

// WeekParityText returns the human readable name of a parity index
func WeekParityText(index int) string {
	if index >= 0 && index < ParityCycle {
		return parityNames[index]
	}
	return fmt.Sprintf("unknown week (%d)", index)
}

// WeekdayCode maps a date onto the API's 1 (Monday) .. 7 (Sunday) convention
func WeekdayCode(date time.Time) int {
	if date.Weekday() == time.Sunday {
		return 7
	}
	return int(date.Weekday())
}

// DayName returns the English weekday name for an API day code
func DayName(code int) string {
	if name, ok := dayNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Day %d", code)
}

// weekStart returns the Monday of the week containing t
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -(WeekdayCode(t) - 1))
}

// civilDays counts calendar days since the Unix epoch, ignoring the clock and DST
func civilDays(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
