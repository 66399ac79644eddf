package model

// PrayerTimes holds the timetable for one day. Times are HH:MM strings as
// returned by the timings API. IsFallback marks a static default timetable
// served because the live lookup failed.
type PrayerTimes struct {
	Date       string // YYYY-MM-DD
	Fajr       string
	Sunrise    string
	Dhuhr      string
	Asr        string
	Maghrib    string
	Isha       string
	Midnight   string
	IsFallback bool
}

// Location is the city/country pair prayer times are computed for.
type Location struct {
	City    string
	Country string
}

// DefaultLocation is used until the user stores a location of their own.
var DefaultLocation = Location{City: "Tehran", Country: "Iran"}
