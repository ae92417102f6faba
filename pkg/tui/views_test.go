package tui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/config"
	"github.com/okhsunrog/sch-parse/pkg/miet"
	"github.com/okhsunrog/sch-parse/pkg/schedule"
)

type stubSource struct {
	groups    []string
	schedules map[string]*miet.ScheduleResponse
}

func (s *stubSource) FetchGroups() ([]string, error) {
	return s.groups, nil
}

func (s *stubSource) FetchSchedule(group string) (*miet.ScheduleResponse, error) {
	resp, ok := s.schedules[group]
	if !ok {
		return nil, errors.New("connection reset")
	}
	return resp, nil
}

func intPtr(i int) *int { return &i }

func newStubSource() *stubSource {
	return &stubSource{
		groups: []string{"ИВТ-13", "ЭКТ-11"},
		schedules: map[string]*miet.ScheduleResponse{
			"ИВТ-13": {
				Semester: "Весенний семестр 2025",
				Lessons: []schedule.RawEntry{
					{
						Day:       intPtr(1),
						DayNumber: intPtr(0),
						Time:      &schedule.RawTime{Code: intPtr(1), Time: "1 пара", TimeFrom: "09:00", TimeTo: "10:20"},
						Class:     &schedule.RawClass{Name: "Calculus [LEC]", Teacher: "Ivanov"},
						Room:      &schedule.RawRoom{Name: "301"},
					},
					{
						// Same slot without clock times, they are taken from the lesson above
						Day:       intPtr(1),
						DayNumber: intPtr(0),
						Time:      &schedule.RawTime{Code: intPtr(1), Time: "1 пара"},
						Class:     &schedule.RawClass{Name: "Physics", Teacher: "Petrov"},
					},
				},
			},
		},
	}
}

// captureOutput redirects view output into a buffer and runs actions without a spinner
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	originalOut, originalSpinner := out, withSpinner
	out = &buf
	withSpinner = func(_ string, action func()) { action() }
	t.Cleanup(func() {
		out = originalOut
		withSpinner = originalSpinner
	})
	return &buf
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{ScheduleStart: "2025-01-06", Timezone: "UTC"}
}

func TestShowDay(t *testing.T) {
	buf := captureOutput(t)

	monday := time.Date(2025, time.January, 6, 12, 0, 0, 0, time.Local)
	if err := ShowDay(newStubSource(), testConfig(), "ИВТ-13", monday); err != nil {
		t.Fatalf("ShowDay failed: %v", err)
	}

	output := buf.String()
	want := "1 пара (09:00-10:20): Calculus [LEC] - Room: 301, Teacher: Ivanov (1st numerator)"
	if !strings.Contains(output, want) {
		t.Errorf("expected lesson line %q, got:\n%s", want, output)
	}
	if !strings.Contains(output, "1 пара (09:00-10:20): Physics") {
		t.Errorf("expected missing times to be filled from the same slot, got:\n%s", output)
	}
}

func TestShowDay_NoLessons(t *testing.T) {
	buf := captureOutput(t)

	tuesday := time.Date(2025, time.January, 7, 12, 0, 0, 0, time.Local)
	if err := ShowDay(newStubSource(), testConfig(), "ИВТ-13", tuesday); err != nil {
		t.Fatalf("ShowDay failed: %v", err)
	}

	want := schedule.NoLessonsMessage + " (1st numerator, group ИВТ-13)"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected %q, got:\n%s", want, buf.String())
	}
}

func TestShowWeek(t *testing.T) {
	buf := captureOutput(t)
	src := newStubSource()

	week := 0
	if err := ShowWeek(src, testConfig(), "ИВТ-13", &week); err != nil {
		t.Fatalf("ShowWeek failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "--- (Week: 1st numerator) ---") || !strings.Contains(output, "--- Monday ---") {
		t.Errorf("unexpected week output:\n%s", output)
	}

	buf.Reset()
	week = 1
	if err := ShowWeek(src, testConfig(), "ИВТ-13", &week); err != nil {
		t.Fatalf("ShowWeek failed: %v", err)
	}
	if !strings.Contains(buf.String(), schedule.NoLessonsMessage) {
		t.Errorf("expected no-lessons message for an empty week, got:\n%s", buf.String())
	}
}

func TestShowWeek_FetchError(t *testing.T) {
	captureOutput(t)

	err := ShowWeek(newStubSource(), testConfig(), "ЭКТ-11", nil)
	if err == nil || !strings.Contains(err.Error(), "ЭКТ-11") {
		t.Errorf("expected fetch error naming the group, got %v", err)
	}
}

func TestResolveGroup(t *testing.T) {
	captureOutput(t)
	src := newStubSource()

	group, err := ResolveGroup(src, nil, "ивт-13")
	if err != nil || group != "ИВТ-13" {
		t.Errorf("expected ИВТ-13, got %q (%v)", group, err)
	}

	group, err = ResolveGroup(src, &config.AppConfig{DefaultGroup: "ЭКТ-11"}, "")
	if err != nil || group != "ЭКТ-11" {
		t.Errorf("expected default group, got %q (%v)", group, err)
	}

	if _, err := ResolveGroup(src, nil, "НЕТ-99"); err == nil {
		t.Errorf("expected an error for an unknown group")
	}
	if _, err := ResolveGroup(src, nil, " "); err == nil {
		t.Errorf("expected an error when no group is given")
	}
}

func TestShowTeacher_SelectedGroups(t *testing.T) {
	buf := captureOutput(t)

	if err := ShowTeacher(newStubSource(), testConfig(), "ivanov", true, []string{"ивт-13"}); err != nil {
		t.Fatalf("ShowTeacher failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Calculus [LEC]") || !strings.Contains(output, "[Group: ИВТ-13]") {
		t.Errorf("expected tagged lesson, got:\n%s", output)
	}
	if strings.Contains(output, "Physics") {
		t.Errorf("lessons of other teachers must not be listed:\n%s", output)
	}
	if !strings.Contains(output, "Scanned 1 groups, skipped 0.") {
		t.Errorf("expected only the selected group to be scanned:\n%s", output)
	}

	if err := ShowTeacher(newStubSource(), testConfig(), "ivanov", true, []string{"НЕТ-99"}); err == nil {
		t.Errorf("expected an error for an unknown group")
	}
}

func TestExportSchedule(t *testing.T) {
	captureOutput(t)
	output := filepath.Join(t.TempDir(), "schedule.ics")

	from := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	if err := ExportSchedule(newStubSource(), testConfig(), "ИВТ-13", from, 7, output); err != nil {
		t.Fatalf("ExportSchedule failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if !strings.Contains(string(data), "SUMMARY:Calculus [LEC]") || !strings.Contains(string(data), "DTSTART:20250106T090000Z") {
		t.Errorf("unexpected calendar:\n%s", data)
	}
}

func TestExportSchedule_FetchErrorLeavesNoFile(t *testing.T) {
	captureOutput(t)
	output := filepath.Join(t.TempDir(), "schedule.ics")

	if err := ExportSchedule(newStubSource(), testConfig(), "ЭКТ-11", time.Now(), 7, output); err == nil {
		t.Fatalf("expected an error for a group that fails to load")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("no file should be created when the export fails, stat: %v", err)
	}
}

func TestWriteFile_RemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.ics")

	err := writeFile(path, func(w io.Writer) error {
		io.WriteString(w, "BEGIN:VCALENDAR\r\n")
		return errors.New("disk full")
	})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected the write error to be returned, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file should have been removed, stat: %v", err)
	}
}

func TestWriteFile_CreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "schedule.ics")

	called := false
	err := writeFile(path, func(io.Writer) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
	if called {
		t.Errorf("write must not run when the file cannot be created")
	}
}
