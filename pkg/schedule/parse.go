package schedule

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// RemoteMarker is the tag the API prepends to remote lesson names
const RemoteMarker = "[ДСТ]"

// maxClassTypeLen is the longest bracket suffix still treated as a class type
const maxClassTypeLen = 5

// clockLayouts are the formats TimeFrom/TimeTo have been seen in
var clockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"15:04:05",
	"15:04",
}

// ParseLesson normalizes a raw API entry. It never fails: missing fields
// fall back to "N/A", false or the unknown markers.
func ParseLesson(raw RawEntry) Lesson {
	l := Lesson{
		WeekParity:   UnknownParity,
		Slot:         TimeSlot{Label: NotAvailable},
		SubjectRaw:   NotAvailable,
		Subject:      NotAvailable,
		Room:         NotAvailable,
		TeacherShort: NotAvailable,
	}

	if raw.Day != nil && *raw.Day >= 1 && *raw.Day <= 7 {
		l.Weekday = *raw.Day
	}
	if raw.DayNumber != nil && *raw.DayNumber >= 0 && *raw.DayNumber < ParityCycle {
		l.WeekParity = *raw.DayNumber
	}

	if t := raw.Time; t != nil {
		if t.Code != nil {
			l.Slot.Code = *t.Code
		}
		if s := strings.TrimSpace(t.Time); s != "" {
			l.Slot.Label = s
		}
		l.Slot.Start = normalizeClock(t.TimeFrom)
		l.Slot.End = normalizeClock(t.TimeTo)
	}

	if c := raw.Class; c != nil {
		l.Remote = c.Form != nil && *c.Form
		if name := strings.TrimSpace(c.Name); name != "" {
			l.SubjectRaw = name
		}
		if s := strings.TrimSpace(c.Teacher); s != "" {
			l.TeacherShort = s
		}
		l.TeacherFull = strings.TrimSpace(c.TeacherFull)
	}

	name := l.SubjectRaw
	if l.Remote {
		name = StripRemoteMarker(name)
	}
	l.Subject, l.ClassType = SplitClassType(name)

	if r := raw.Room; r != nil {
		if s := strings.TrimSpace(r.Name); s != "" {
			l.Room = s
		}
	}
	if g := raw.Group; g != nil {
		l.Group = strings.TrimSpace(g.Name)
	}

	return l
}

// ParseLessons normalizes every entry of a schedule response
func ParseLessons(raw []RawEntry) []Lesson {
	lessons := make([]Lesson, 0, len(raw))
	for _, r := range raw {
		lessons = append(lessons, ParseLesson(r))
	}
	return lessons
}

// StripRemoteMarker removes a leading RemoteMarker and the whitespace after it
func StripRemoteMarker(name string) string {
	if !strings.HasPrefix(name, RemoteMarker) {
		return name
	}
	return strings.TrimLeftFunc(name[len(RemoteMarker):], unicode.IsSpace)
}

// SplitClassType extracts a short class type tag such as "LEC" from the last
// bracket pair of a subject name. If the bracket contents do not look like a
// tag, the name is returned unchanged with an empty type.
func SplitClassType(name string) (subject, classType string) {
	open := strings.LastIndex(name, "[")
	closing := strings.LastIndex(name, "]")
	if open == -1 || closing == -1 || open >= closing {
		return name, ""
	}

	tag := name[open+1 : closing]
	if !isClassTypeTag(tag) {
		return name, ""
	}
	return strings.TrimSpace(name[:open]), tag
}

func isClassTypeTag(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 || n > maxClassTypeLen {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// normalizeClock reduces the API's clock values to HH:MM, keeping unknown
// formats verbatim
func normalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return s
}
