package model

// Event is a user calendar entry. Date is Gregorian YYYY-MM-DD; StartTime and
// EndTime are HH:MM strings and empty for all-day events.
type Event struct {
	ID          string
	UserID      string
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Description string
	AllDay      bool
	HasReminder bool
}

// Task is a to-do item with an optional due date.
type Task struct {
	ID          string
	UserID      string
	Title       string
	DueDate     string // YYYY-MM-DD; empty when undated.
	Completed   bool
	Description string
}

// HolidayKind classifies fixed Jalali-calendar occasions.
type HolidayKind string

const (
	HolidayNational  HolidayKind = "national"
	HolidayCultural  HolidayKind = "cultural"
	HolidayReligious HolidayKind = "religious"
)

// Holiday is a fixed occasion on the Jalali calendar.
type Holiday struct {
	Month int // Jalali month 1-12.
	Day   int
	Title string
	Kind  HolidayKind
}
