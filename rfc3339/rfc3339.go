// Package rfc3339 implements parsing and formatting of internet
// timestamps according to RFC3339.
// https://datatracker.ietf.org/doc/html/rfc3339
//
// The package covers the extended-format date-time profile only:
// mandatory separators, an explicit UTC offset, optional fractional
// seconds and the historical leap-second allowance. ISO 8601's wider
// grammar (basic format without separators, week dates, ordinal dates,
// durations) is out of scope.
//
// All operations are pure functions over immutable values and are safe
// for concurrent use.
package rfc3339

import (
	"bytes"
	"encoding/json"

	"github.com/ngrash/go-rfc3339/civil"
	"github.com/ngrash/go-rfc3339/internal/unixtime"
)

// Precision fixes the number of fractional-second digits emitted when
// formatting. The zero value leaves the precision undefined, in which
// case formatting trims trailing zero digits and omits a zero-valued
// fraction entirely.
type Precision struct {
	// Defined is true if the precision is fixed.
	Defined bool
	// Digits is the number of fractional digits, 0 - 9.
	// Zero means no fraction is emitted at all.
	Digits int
}

// FixedPrecision returns a defined precision with the given number of
// digits, clamped to 0 - 9.
func FixedPrecision(digits int) Precision {
	if digits < 0 {
		digits = 0
	}
	if digits > 9 {
		digits = 9
	}
	return Precision{Defined: true, Digits: digits}
}

// DateTime pairs a calendar time with its UTC offset.
// Values are immutable after construction: they are built either by
// Parse, which never defines a precision, or directly by the caller.
type DateTime struct {
	Time   civil.Time
	Offset Offset
	// Precision controls fractional-second formatting, see Precision.
	Precision Precision
}

// WithPrecision returns a copy of d that formats with a fixed number
// of fractional digits, clamped to 0 - 9.
func (d DateTime) WithPrecision(digits int) DateTime {
	d.Precision = FixedPrecision(digits)
	return d
}

// String returns the canonical encoding of d. It implements
// fmt.Stringer.
func (d DateTime) String() string {
	return Format(d)
}

// IsValid reports whether s parses as an RFC3339 date-time.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Unix returns the number of seconds between the Unix epoch and the
// instant d denotes, ignoring leap seconds. The conversion subtracts
// the offset from the epoch-seconds projection of the calendar fields
// and is one-directional; the sub-second fraction is discarded.
func (d DateTime) Unix() int64 {
	t := d.Time
	secs := unixtime.FromCalendar(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	return secs - int64(d.Offset.SecondsFromUTC())
}

// MarshalText implements encoding.TextMarshaler using the canonical
// encoding.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, encoding d as a JSON string
// in canonical form.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(d))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves d
// unchanged.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
