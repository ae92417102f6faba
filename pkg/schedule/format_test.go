package schedule

import (
	"strings"
	"testing"
)

func TestFormatLesson_EndToEnd(t *testing.T) {
	raw := RawEntry{
		Day:       intPtr(1),
		DayNumber: intPtr(0),
		Time:      &RawTime{Code: intPtr(1), Time: "1 пара", TimeFrom: "09:00", TimeTo: "10:20"},
		Class:     &RawClass{Name: "Calculus [LEC]", Teacher: "Ivanov", Form: boolPtr(false)},
		Room:      &RawRoom{Name: "301"},
	}

	l := ParseLesson(raw)
	out := FormatLesson(l, WeekParityText(l.WeekParity))

	for _, want := range []string{"09:00-10:20", "Calculus", "LEC", "301", "Ivanov", "1st numerator"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	want := "1 пара (09:00-10:20): Calculus [LEC] - Room: 301, Teacher: Ivanov (1st numerator)"
	if out != want {
		t.Errorf("unexpected line:\n got: %s\nwant: %s", out, want)
	}
}

func TestFormatLesson_FieldOrder(t *testing.T) {
	l := Lesson{
		Slot:         TimeSlot{Label: "3 пара", Start: "12:00", End: "13:20"},
		Subject:      "Physics",
		ClassType:    "Lab",
		Room:         "4120",
		TeacherShort: "Petrov",
		Remote:       true,
		Group:        "ИВТ-13",
	}
	out := FormatLesson(l, "2nd denominator")

	order := []string{"12:00", RemotePrefix, "Physics", "[Lab]", "4120", "Petrov", "2nd denominator", "[Group: ИВТ-13]"}
	last := -1
	for _, part := range order {
		idx := strings.Index(out, part)
		if idx <= last {
			t.Fatalf("expected %q after position %d in %q", part, last, out)
		}
		last = idx
	}
}

func TestFormatLesson_Absent(t *testing.T) {
	out := FormatLesson(ParseLesson(RawEntry{}), WeekParityText(UnknownParity))

	if !strings.Contains(out, "Room: N/A") || !strings.Contains(out, "Teacher: N/A") {
		t.Errorf("absent room/teacher must render N/A, got %q", out)
	}
	if strings.Contains(out, RemotePrefix) || strings.Contains(out, "Group:") {
		t.Errorf("absent remote flag/group must be omitted, got %q", out)
	}
	if strings.Contains(out, "[]") {
		t.Errorf("absent class type must be omitted, got %q", out)
	}
}

func TestFormatLesson_PartialTimes(t *testing.T) {
	from := FormatLesson(Lesson{Slot: TimeSlot{Label: "1 пара", Start: "09:00"}}, "x")
	if !strings.HasPrefix(from, "1 пара (from 09:00):") {
		t.Errorf("unexpected start-only rendering: %q", from)
	}
	until := FormatLesson(Lesson{Slot: TimeSlot{Label: "1 пара", End: "10:20"}}, "x")
	if !strings.HasPrefix(until, "1 пара (until 10:20):") {
		t.Errorf("unexpected end-only rendering: %q", until)
	}
	bare := FormatLesson(Lesson{Slot: TimeSlot{Label: "1 пара"}}, "x")
	if !strings.HasPrefix(bare, "1 пара: ") {
		t.Errorf("unexpected rendering without times: %q", bare)
	}
}

func TestRenderGroupedSchedule(t *testing.T) {
	lessons := []Lesson{
		lessonAt(3, 1, 1, "Wednesday lesson"),
		lessonAt(1, 0, 2, "Monday second"),
		lessonAt(1, 0, 1, "Monday first"),
	}

	lines := RenderGroupedSchedule(lessons, "Spring 2025", "1st numerator")

	if lines[0] != "--- Schedule for Spring 2025 ---" {
		t.Errorf("unexpected title: %q", lines[0])
	}
	if lines[1] != "--- (Week: 1st numerator) ---" {
		t.Errorf("unexpected week header: %q", lines[1])
	}

	joined := strings.Join(lines, "\n")
	mon := strings.Index(joined, "--- Monday ---")
	wed := strings.Index(joined, "--- Wednesday ---")
	first := strings.Index(joined, "Monday first")
	second := strings.Index(joined, "Monday second")
	if mon == -1 || wed == -1 || !(mon < first && first < second && second < wed) {
		t.Errorf("days or lessons out of order:\n%s", joined)
	}
	if !strings.Contains(joined, "(1st denominator)") {
		t.Errorf("each lesson should carry its own week text:\n%s", joined)
	}
}

func TestRenderGroupedSchedule_NoHeader(t *testing.T) {
	lines := RenderGroupedSchedule([]Lesson{lessonAt(2, 0, 1, "x")}, "Fall", "")
	for _, line := range lines {
		if strings.Contains(line, "(Week:") {
			t.Errorf("week header should be omitted, got %q", line)
		}
	}
}

func TestRenderGroupedSchedule_Empty(t *testing.T) {
	lines := RenderGroupedSchedule(nil, "Fall", "")
	if len(lines) != 1 || lines[0] != NoLessonsMessage {
		t.Errorf("expected no-lessons message, got %v", lines)
	}

	lines = RenderGroupedSchedule([]Lesson{lessonAt(0, 0, 1, "dayless")}, "Fall", "")
	if len(lines) != 1 || lines[0] != NoLessonsMessage {
		t.Errorf("expected no-lessons message for dayless records, got %v", lines)
	}
}

func TestRenderAggregatedSchedule(t *testing.T) {
	lessons := []Lesson{
		lessonAt(2, 0, 1, "tue").WithGroup("ЭКТ-11"),
		lessonAt(1, 3, 1, "mon-w3").WithGroup("ИВТ-13"),
		lessonAt(1, 0, 2, "mon-w0").WithGroup("ЭКТ-11"),
		lessonAt(0, 0, 1, "dayless"),
	}

	lines := RenderAggregatedSchedule(lessons, "Teacher Ivanov", "")
	joined := strings.Join(lines, "\n")

	if lines[0] != "--- Teacher Ivanov ---" {
		t.Errorf("unexpected title: %q", lines[0])
	}
	w0 := strings.Index(joined, "mon-w0")
	w3 := strings.Index(joined, "mon-w3")
	tue := strings.Index(joined, "tue")
	if !(w0 < w3 && w3 < tue) {
		t.Errorf("expected week-major order within a day:\n%s", joined)
	}
	if strings.Count(joined, "--- Monday ---") != 1 {
		t.Errorf("expected a single Monday header:\n%s", joined)
	}
	if strings.Contains(joined, "dayless") {
		t.Errorf("lessons without a weekday must be dropped")
	}
	if !strings.Contains(joined, "[Group: ИВТ-13]") {
		t.Errorf("expected group tag in output")
	}

	if got := RenderAggregatedSchedule(nil, "x", ""); len(got) != 1 || got[0] != NoLessonsMessage {
		t.Errorf("expected no-lessons message, got %v", got)
	}
}
