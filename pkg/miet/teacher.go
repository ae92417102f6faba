package miet

import (
	"fmt"

	"github.com/okhsunrog/sch-parse/pkg/schedule"
)

// ScheduleSource is anything that can list groups and fetch their schedules.
// *Client satisfies it.
type ScheduleSource interface {
	FetchGroups() ([]string, error)
	FetchSchedule(group string) (*ScheduleResponse, error)
}

// SkippedGroup is a group whose schedule could not be fetched during a scan
type SkippedGroup struct {
	Group string
	Err   error
}

// TeacherSearchResult holds every lesson a teacher gives across all groups
type TeacherSearchResult struct {
	Semester string
	Lessons  []schedule.Lesson // tagged with their group, sorted by day, week and slot
	Scanned  int
	Skipped  []SkippedGroup
}

// TeacherSearchOptions narrows down a teacher search
type TeacherSearchOptions struct {
	// Week restricts the results to one parity index when set
	Week *int
	// Groups limits the scan to these names instead of every group
	Groups []string
}

// SearchTeacher scans every group's schedule for lessons taught by someone
// matching query. Groups are fetched one after another; a group that fails
// to load is recorded in Skipped and the scan moves on.
func SearchTeacher(src ScheduleSource, query string, opts TeacherSearchOptions) (*TeacherSearchResult, error) {
	groups := opts.Groups
	if len(groups) == 0 {
		var err error
		groups, err = src.FetchGroups()
		if err != nil {
			return nil, fmt.Errorf("could not list groups: %w", err)
		}
	}

	result := &TeacherSearchResult{}
	var found []schedule.Lesson

	for _, group := range groups {
		resp, err := src.FetchSchedule(group)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedGroup{Group: group, Err: err})
			continue
		}
		result.Scanned++
		if result.Semester == "" {
			result.Semester = resp.Semester
		}

		lessons := schedule.FilterByTeacher(schedule.ParseLessons(resp.Lessons), query)
		if opts.Week != nil {
			lessons = schedule.FilterByWeek(lessons, *opts.Week)
		}
		for _, l := range lessons {
			found = append(found, l.WithGroup(group))
		}
	}

	result.Lessons = schedule.SortForAggregation(found)
	return result, nil
}
