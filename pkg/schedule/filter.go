package schedule

import "strings"

// FilterByDayAndWeek keeps the lessons held on the given weekday code during
// the given week-parity. Lessons missing either field never match.
func FilterByDayAndWeek(lessons []Lesson, day, week int) []Lesson {
	result := []Lesson{}
	for _, l := range lessons {
		if l.HasWeekday() && l.HasWeekParity() && l.Weekday == day && l.WeekParity == week {
			result = append(result, l)
		}
	}
	return result
}

// FilterByWeek keeps the lessons of a single week-parity, across all days
func FilterByWeek(lessons []Lesson, week int) []Lesson {
	result := []Lesson{}
	for _, l := range lessons {
		if l.HasWeekParity() && l.WeekParity == week {
			result = append(result, l)
		}
	}
	return result
}

// All returns a copy of the lessons, for views spanning every week
func All(lessons []Lesson) []Lesson {
	result := make([]Lesson, len(lessons))
	copy(result, lessons)
	return result
}

// FilterByTeacher keeps lessons whose short or full teacher name contains the
// query, ignoring case
func FilterByTeacher(lessons []Lesson, query string) []Lesson {
	result := []Lesson{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return result
	}
	for _, l := range lessons {
		if l.TeacherShort != NotAvailable && strings.Contains(strings.ToLower(l.TeacherShort), q) {
			result = append(result, l)
			continue
		}
		if strings.Contains(strings.ToLower(l.TeacherFull), q) {
			result = append(result, l)
		}
	}
	return result
}
