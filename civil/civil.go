// Package civil provides calendar date and clock time values in the
// proleptic Gregorian calendar, without any notion of time zone or
// UTC offset.
package civil

import "fmt"

// Time represents a calendar date combined with a wall clock reading.
// The sub-second fraction is stored once at nanosecond resolution;
// the millisecond, microsecond and nanosecond groups are derived from
// it and cannot be set independently of each other.
type Time struct {
	Year   int
	Month  int // 1 - 12
	Day    int // 1 - DaysInMonth(Month, Year)
	Hour   int // 0 - 23
	Minute int // 0 - 59
	Second int // 0 - 60, 60 denotes a leap second

	// Nanoseconds is the sub-second fraction, 0 - 999999999.
	Nanoseconds int
}

// New validates the given fields and returns the corresponding Time.
// The second value 60 is accepted to allow leap seconds; callers that
// need to restrict it further must do so themselves. milli, micro and
// nano are the three 3-digit groups of the sub-second fraction, each
// 0 - 999.
func New(year, month, day, hour, minute, second, milli, micro, nano int) (Time, error) {
	if month < 1 || month > 12 {
		return Time{}, fmt.Errorf("invalid month: %d", month)
	}
	if day < 1 || day > DaysInMonth(month, year) {
		return Time{}, fmt.Errorf("invalid day: %d", day)
	}
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("invalid hour: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("invalid minute: %d", minute)
	}
	if second < 0 || second > 60 {
		return Time{}, fmt.Errorf("invalid second: %d", second)
	}
	if milli < 0 || milli > 999 {
		return Time{}, fmt.Errorf("invalid millisecond: %d", milli)
	}
	if micro < 0 || micro > 999 {
		return Time{}, fmt.Errorf("invalid microsecond: %d", micro)
	}
	if nano < 0 || nano > 999 {
		return Time{}, fmt.Errorf("invalid nanosecond: %d", nano)
	}
	return Time{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Nanoseconds: milli*1e6 + micro*1e3 + nano,
	}, nil
}

// Millisecond returns the millisecond group of the sub-second fraction, 0 - 999.
func (t Time) Millisecond() int {
	return t.Nanoseconds / 1e6
}

// Microsecond returns the microsecond group of the sub-second fraction, 0 - 999.
func (t Time) Microsecond() int {
	return t.Nanoseconds / 1e3 % 1000
}

// Nanosecond returns the nanosecond group of the sub-second fraction, 0 - 999.
func (t Time) Nanosecond() int {
	return t.Nanoseconds % 1000
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month. The year
// is needed to account for leap years.
func DaysInMonth(month, year int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}
