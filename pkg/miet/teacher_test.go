package miet

import (
	"errors"
	"testing"

	"github.com/okhsunrog/sch-parse/pkg/schedule"
)

type fakeSource struct {
	groups    []string
	groupsErr error
	schedules map[string]*ScheduleResponse
	calls     []string
}

func (f *fakeSource) FetchGroups() ([]string, error) {
	return f.groups, f.groupsErr
}

func (f *fakeSource) FetchSchedule(group string) (*ScheduleResponse, error) {
	f.calls = append(f.calls, group)
	resp, ok := f.schedules[group]
	if !ok {
		return nil, errors.New("connection reset")
	}
	return resp, nil
}

func rawLesson(day, week, code int, name, teacher string) schedule.RawEntry {
	return schedule.RawEntry{
		Day:       &day,
		DayNumber: &week,
		Time:      &schedule.RawTime{Code: &code, Time: "pair"},
		Class:     &schedule.RawClass{Name: name, Teacher: teacher},
	}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		groups: []string{"ИВТ-13", "БРОКЕН-1", "ЭКТ-11"},
		schedules: map[string]*ScheduleResponse{
			"ИВТ-13": {
				Semester: "Весенний семестр 2025",
				Lessons: []schedule.RawEntry{
					rawLesson(3, 0, 2, "Physics [Lab]", "Иванов И.И."),
					rawLesson(1, 1, 1, "Calculus [LEC]", "Петров П.П."),
				},
			},
			"ЭКТ-11": {
				Semester: "Весенний семестр 2025",
				Lessons: []schedule.RawEntry{
					rawLesson(1, 2, 3, "Physics [Lec]", "Иванов И.И."),
					rawLesson(1, 0, 4, "Optics [Lec]", "Иванов И.И."),
				},
			},
		},
	}
}

func TestSearchTeacher_SkipsFailedGroups(t *testing.T) {
	src := newFakeSource()

	res, err := SearchTeacher(src, "иванов", TeacherSearchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.calls) != 3 {
		t.Errorf("expected every group to be fetched, got %v", src.calls)
	}
	if res.Scanned != 2 {
		t.Errorf("expected 2 scanned groups, got %d", res.Scanned)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Group != "БРОКЕН-1" {
		t.Errorf("expected the failing group to be skipped, got %+v", res.Skipped)
	}
	if res.Semester != "Весенний семестр 2025" {
		t.Errorf("unexpected semester %q", res.Semester)
	}

	if len(res.Lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(res.Lessons))
	}

	// sorted by (weekday, week, slot) regardless of fetch order
	want := []struct {
		subject, group string
	}{
		{"Optics", "ЭКТ-11"},
		{"Physics", "ЭКТ-11"},
		{"Physics", "ИВТ-13"},
	}
	for i, w := range want {
		if res.Lessons[i].Subject != w.subject || res.Lessons[i].Group != w.group {
			t.Errorf("position %d: expected %s/%s, got %s/%s", i, w.subject, w.group, res.Lessons[i].Subject, res.Lessons[i].Group)
		}
	}
}

func TestSearchTeacher_WeekFilter(t *testing.T) {
	week := 2
	res, err := SearchTeacher(newFakeSource(), "Иванов", TeacherSearchOptions{Week: &week})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lessons) != 1 || res.Lessons[0].WeekParity != 2 {
		t.Errorf("expected only week 2 lessons, got %+v", res.Lessons)
	}
}

func TestSearchTeacher_NoMatches(t *testing.T) {
	res, err := SearchTeacher(newFakeSource(), "Сидоров", TeacherSearchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lessons) != 0 {
		t.Errorf("expected no lessons, got %d", len(res.Lessons))
	}
}

func TestSearchTeacher_GroupListFailure(t *testing.T) {
	src := newFakeSource()
	src.groupsErr = ErrTransport

	_, err := SearchTeacher(src, "Иванов", TeacherSearchOptions{})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected group listing failure to be reported, got %v", err)
	}
	if len(src.calls) != 0 {
		t.Errorf("no schedules should be fetched without a group list")
	}
}

func TestSearchTeacher_ExplicitGroups(t *testing.T) {
	src := newFakeSource()
	src.groupsErr = ErrTransport // must not be consulted

	res, err := SearchTeacher(src, "Петров", TeacherSearchOptions{Groups: []string{"ИВТ-13"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lessons) != 1 || res.Lessons[0].Group != "ИВТ-13" {
		t.Errorf("unexpected lessons: %+v", res.Lessons)
	}
}
