package schedule

import (
	"sort"
)

// DaySchedule holds the lessons of one weekday, ordered by time slot
type DaySchedule struct {
	Weekday int
	Lessons []Lesson
}

// GroupByWeekday buckets lessons by weekday. Days come out in ascending order
// (Monday first) and each day's lessons are stably sorted by slot code.
// Lessons without a valid weekday are dropped.
func GroupByWeekday(lessons []Lesson) []DaySchedule {
	byDay := make(map[int][]Lesson)
	var days []int

	for _, l := range lessons {
		if !l.HasWeekday() {
			continue
		}
		if _, exists := byDay[l.Weekday]; !exists {
			days = append(days, l.Weekday)
		}
		byDay[l.Weekday] = append(byDay[l.Weekday], l)
	}

	sort.Ints(days)

	result := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		dayLessons := byDay[day]
		sort.SliceStable(dayLessons, func(i, j int) bool {
			return dayLessons[i].Slot.Code < dayLessons[j].Slot.Code
		})
		result = append(result, DaySchedule{Weekday: day, Lessons: dayLessons})
	}

	return result
}

// SortForAggregation orders lessons gathered from several groups by
// (weekday, week-parity, slot code). The input slice is left untouched.
func SortForAggregation(lessons []Lesson) []Lesson {
	sorted := All(lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		if a.WeekParity != b.WeekParity {
			return a.WeekParity < b.WeekParity
		}
		return a.Slot.Code < b.Slot.Code
	})
	return sorted
}

// LookupSlotByCode returns the first slot with the given code that has both clock times
func LookupSlotByCode(lessons []Lesson, code int) (TimeSlot, bool) {
	return lookupSlot(lessons, func(s TimeSlot) bool { return s.Code == code })
}

// LookupSlotByLabel returns the first slot with the given label (e.g. "1 пара")
// that has both clock times
func LookupSlotByLabel(lessons []Lesson, label string) (TimeSlot, bool) {
	return lookupSlot(lessons, func(s TimeSlot) bool { return s.Label == label })
}

func lookupSlot(lessons []Lesson, match func(TimeSlot) bool) (TimeSlot, bool) {
	for _, l := range lessons {
		if match(l.Slot) && l.Slot.Start != "" && l.Slot.End != "" {
			return l.Slot, true
		}
	}
	return TimeSlot{}, false
}

// FillSlotTimes completes lessons whose slot lacks a start or end time with the
// times of another lesson in the same slot, matched by code or, when the code
// is unknown, by label. The input slice is left untouched.
func FillSlotTimes(lessons []Lesson) []Lesson {
	filled := All(lessons)
	for i, l := range filled {
		if l.Slot.Start != "" && l.Slot.End != "" {
			continue
		}

		var known TimeSlot
		var ok bool
		if l.Slot.Code != 0 {
			known, ok = LookupSlotByCode(lessons, l.Slot.Code)
		}
		if !ok && l.Slot.Label != NotAvailable {
			known, ok = LookupSlotByLabel(lessons, l.Slot.Label)
		}
		if !ok {
			continue
		}

		if filled[i].Slot.Start == "" {
			filled[i].Slot.Start = known.Start
		}
		if filled[i].Slot.End == "" {
			filled[i].Slot.End = known.End
		}
	}
	return filled
}
