package schedule

// NotAvailable is rendered in place of any absent text field
const NotAvailable = "N/A"

// UnknownParity marks a lesson whose week-parity is absent or out of range
const UnknownParity = -1

// RawEntry is a single lesson as returned by the /data endpoint.
// Pointers distinguish an absent field from its zero value.
type RawEntry struct {
	Day       *int      `json:"Day"`
	DayNumber *int      `json:"DayNumber"`
	Time      *RawTime  `json:"Time"`
	Class     *RawClass `json:"Class"`
	Room      *RawRoom  `json:"Room"`
	Group     *RawGroup `json:"Group,omitempty"`
}

// RawTime describes the class period
type RawTime struct {
	Code     *int   `json:"Code"`
	Time     string `json:"Time"`     // e.g. "1 пара"
	TimeFrom string `json:"TimeFrom"` // "09:00" or "0001-01-01T09:00:00"
	TimeTo   string `json:"TimeTo"`
}

// RawClass holds the subject and teacher info
type RawClass struct {
	Code        string `json:"Code"`
	Name        string `json:"Name"` // e.g. "Дифференциальные уравнения [Лек]"
	Teacher     string `json:"Teacher"`
	TeacherFull string `json:"TeacherFull"`
	Form        *bool  `json:"Form"` // true if the lesson is remote
}

// RawRoom is the lecture hall
type RawRoom struct {
	Code int    `json:"Code"`
	Name string `json:"Name"`
}

// RawGroup is only present on records augmented after the fetch
type RawGroup struct {
	Code int    `json:"Code"`
	Name string `json:"Name"`
}

// TimeSlot is a fixed class period, independent of the calendar date
type TimeSlot struct {
	Code  int    // ordering key
	Label string // "1 пара"
	Start string // "09:00", empty if unknown
	End   string // "10:20", empty if unknown
}

// Lesson is one normalized lesson record. It is a value type: derived views
// copy it, and WithGroup returns a new record.
type Lesson struct {
	Weekday      int // 1 (Monday) .. 7 (Sunday), 0 if unknown
	WeekParity   int // 0..3, UnknownParity if unknown
	Slot         TimeSlot
	SubjectRaw   string
	Subject      string
	ClassType    string
	Room         string
	TeacherShort string
	TeacherFull  string
	Remote       bool
	Group        string
}

// HasWeekday reports whether the lesson carries a valid weekday code
func (l Lesson) HasWeekday() bool {
	return l.Weekday >= 1 && l.Weekday <= 7
}

// HasWeekParity reports whether the lesson carries a valid week-parity index
func (l Lesson) HasWeekParity() bool {
	return l.WeekParity >= 0 && l.WeekParity < ParityCycle
}

// WithGroup returns a copy of the lesson tagged with the given group name.
func (l Lesson) WithGroup(name string) Lesson {
	l.Group = name
	return l
}
