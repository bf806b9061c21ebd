package rfc3339

import "fmt"

// Kind identifies the reason a timestamp or offset was rejected.
type Kind int

const (
	// Empty means the input had zero length.
	Empty Kind = iota + 1
	// InvalidFormat is a generic grammar mismatch: a wrong literal
	// separator, an input below the minimum length, or trailing bytes
	// after a syntactically valid timestamp.
	InvalidFormat
	InvalidYear
	InvalidMonth
	InvalidDay
	InvalidHour
	InvalidMinute
	InvalidSecond
	InvalidFraction
	InvalidOffset
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty input"
	case InvalidFormat:
		return "invalid format"
	case InvalidYear:
		return "invalid year"
	case InvalidMonth:
		return "invalid month"
	case InvalidDay:
		return "invalid day"
	case InvalidHour:
		return "invalid hour"
	case InvalidMinute:
		return "invalid minute"
	case InvalidSecond:
		return "invalid second"
	case InvalidFraction:
		return "invalid fractional seconds"
	case InvalidOffset:
		return "invalid offset"
	default:
		return fmt.Sprintf("<undefined error kind (%d)>", int(k))
	}
}

// ParseError reports which field of the input was rejected.
// Value holds the offending part of the input; it is empty only for
// kind Empty.
type ParseError struct {
	Kind  Kind
	Value string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Value)
}

// LeapSecondError reports a second value of 60 on a date that never
// had a leap second inserted.
type LeapSecondError struct {
	Month int
	Day   int
}

func (e *LeapSecondError) Error() string {
	return fmt.Sprintf("invalid leap second: no leap second on month %d, day %d", e.Month, e.Day)
}

// OffsetRangeError reports an offset whose magnitude exceeds 23:59
// hours from UTC.
type OffsetRangeError struct {
	Seconds int
}

func (e *OffsetRangeError) Error() string {
	return fmt.Sprintf("offset out of range: %d seconds", e.Seconds)
}
