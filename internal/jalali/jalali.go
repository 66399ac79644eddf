// Package jalali wraps the go-persian-calendar library with the small set of
// conversions and derived helpers the rest of the application needs. All
// functions are pure; malformed input yields an explicit error, never a panic.
package jalali

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Date is a calendar day on the Jalali (Persian) calendar.
type Date struct {
	Year  int
	Month int // 1-12 (Farvardin-Esfand).
	Day   int
}

// String renders the date as YYYY/MM/DD, the conventional Persian format.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// monthNames holds the Jalali month names indexed by month-1.
var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

// Parse parses a YYYY/MM/DD Jalali date string.
func Parse(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%d/%d/%d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, fmt.Errorf("parse jalali date %q: %w", s, err)
	}
	if err := validate(d); err != nil {
		return Date{}, err
	}
	return d, nil
}

// FromTime converts a Gregorian instant to the Jalali day it falls on in the
// Iran time zone.
func FromTime(t time.Time) Date {
	pt := ptime.New(t.In(ptime.Iran()))
	return Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// Today returns the current Jalali date in the Iran time zone.
func Today() Date {
	return FromTime(time.Now())
}

// ToTime converts a Jalali date to the corresponding Gregorian day,
// represented as midnight in the Iran time zone.
func ToTime(d Date) (time.Time, error) {
	if err := validate(d); err != nil {
		return time.Time{}, err
	}
	pt := ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, ptime.Iran())
	return pt.Time(), nil
}

// MonthDays returns the number of days in the given Jalali month.
// Months 1-6 have 31 days, 7-11 have 30, and Esfand has 29 or 30 depending on
// the library's leap-year rule.
func MonthDays(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("jalali month out of range: %d", month)
	}
	switch {
	case month <= 6:
		return 31, nil
	case month <= 11:
		return 30, nil
	}
	if IsLeap(year) {
		return 30, nil
	}
	return 29, nil
}

// IsLeap reports whether the given Jalali year is a leap year.
func IsLeap(year int) bool {
	return ptime.Date(year, ptime.Farvardin, 1, 0, 0, 0, 0, ptime.Iran()).IsLeap()
}

// MonthName returns the Persian name of a Jalali month.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("jalali month out of range: %d", month)
	}
	return monthNames[month-1], nil
}

// WeekdayName returns the Persian weekday name for the given date.
func WeekdayName(d Date) (string, error) {
	if err := validate(d); err != nil {
		return "", err
	}
	pt := ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, ptime.Iran())
	return pt.Weekday().String(), nil
}

// MonthRange returns the first and last Gregorian days of a Jalali month.
func MonthRange(year, month int) (start, end time.Time, err error) {
	days, err := MonthDays(year, month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err = ToTime(Date{Year: year, Month: month, Day: 1})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ToTime(Date{Year: year, Month: month, Day: days})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// validate rejects dates outside the calendar's valid ranges before they reach
// the underlying library, which normalizes rather than rejects.
func validate(d Date) error {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("invalid jalali date %04d/%02d/%02d", d.Year, d.Month, d.Day)
	}
	days, err := MonthDays(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > days {
		return fmt.Errorf("invalid jalali date %04d/%02d/%02d", d.Year, d.Month, d.Day)
	}
	return nil
}
