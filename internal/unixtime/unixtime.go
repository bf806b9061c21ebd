// Package unixtime converts calendar fields to seconds since the Unix
// epoch, 1970-01-01 00:00:00 UTC.
package unixtime

// FromCalendar returns the Unix timestamp of the given date and time.
// It ignores leap seconds but respects leap years and assumes the
// proleptic Gregorian calendar. The calendar arithmetic follows the Go
// standard library's time package but works on plain integer fields
// instead of time.Time, which keeps this package usable below any
// layer that produces time.Location values.
func FromCalendar(year, month, day, hour, minute, second int) int64 {
	d := daysSinceEpoch(year) + daysBeforeMonth[month-1] + uint64(day) - 1
	if month > 2 && (year%4 == 0 && (year%100 != 0 || year%400 == 0)) {
		d++ // leap day
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(minute)*secondsPerMinute + uint64(second)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

// daysBeforeMonth[m-1] is the number of days in a non-leap year before month m.
var daysBeforeMonth = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// The constants mirror time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch returns the number of days from the absolute epoch to
// the start of the given year, accounting for leap days via the
// 400/100/4 year Gregorian cycles.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y
	return d
}
