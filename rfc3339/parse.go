package rfc3339

import "github.com/ngrash/go-rfc3339/civil"

// The grammar, from RFC3339 section 5.6 restricted to the full
// date-time production:
//
//	date-time = 4DIGIT "-" 2DIGIT "-" 2DIGIT ("T"/"t")
//	            2DIGIT ":" 2DIGIT ":" 2DIGIT ["." 1*DIGIT] offset
//	offset    = ("Z"/"z") / ("+"/"-") 2DIGIT ":" 2DIGIT
//
// Parsing is a single left-to-right pass over fixed-width tokens with
// no backtracking. Each field parser takes the current position and
// returns the value and the position after the field, so no state is
// shared between them. The first failing field aborts the parse.

// minLength is the length of the shortest valid input,
// "YYYY-MM-DDTHH:MM:SSZ". The length check up front lets the
// fixed-position field parsers index the string without bounds checks.
const minLength = len("0000-00-00T00:00:00Z")

// Parse decodes an RFC3339 date-time string. The returned DateTime
// never carries a fixed precision; formatting it trims trailing zero
// fraction digits.
func Parse(s string) (DateTime, error) {
	if len(s) == 0 {
		return DateTime{}, &ParseError{Kind: Empty}
	}
	if len(s) < minLength {
		return DateTime{}, &ParseError{Kind: InvalidFormat, Value: s}
	}

	year, pos, err := parseYear(s, 0)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expect(s, pos, '-')
	if err != nil {
		return DateTime{}, err
	}
	month, pos, err := parseMonth(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expect(s, pos, '-')
	if err != nil {
		return DateTime{}, err
	}
	day, pos, err := parseDay(s, pos, year, month)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expectDateTimeSep(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	hour, pos, err := parseHour(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expect(s, pos, ':')
	if err != nil {
		return DateTime{}, err
	}
	minute, pos, err := parseMinute(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expect(s, pos, ':')
	if err != nil {
		return DateTime{}, err
	}
	second, pos, err := parseSecond(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	if second == 60 {
		if err := validLeapSecond(month, day); err != nil {
			return DateTime{}, err
		}
	}

	var nanos int
	if pos < len(s) && s[pos] == '.' {
		nanos, pos, err = parseFraction(s, pos+1)
		if err != nil {
			return DateTime{}, err
		}
	}

	offset, pos, err := parseOffsetAt(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	if pos != len(s) {
		return DateTime{}, &ParseError{Kind: InvalidFormat, Value: s[pos:]}
	}

	t, err := civil.New(year, month, day, hour, minute, second, nanos/1e6, nanos/1e3%1000, nanos%1000)
	if err != nil {
		// The fields were validated above, so the calendar primitive
		// should never reject them. Treat a rejection as a generic
		// parse failure rather than panicking.
		return DateTime{}, &ParseError{Kind: InvalidFormat, Value: s}
	}
	return DateTime{Time: t, Offset: offset}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// twoDigits reads exactly two ASCII digits at pos.
// The caller guarantees pos+2 <= len(s).
func twoDigits(s string, pos int) (int, bool) {
	if !isDigit(s[pos]) || !isDigit(s[pos+1]) {
		return 0, false
	}
	return int(s[pos]-'0')*10 + int(s[pos+1]-'0'), true
}

func parseYear(s string, pos int) (int, int, error) {
	v := 0
	for i := pos; i < pos+4; i++ {
		if !isDigit(s[i]) {
			return 0, 0, &ParseError{Kind: InvalidYear, Value: s[pos : pos+4]}
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, pos + 4, nil
}

func parseMonth(s string, pos int) (int, int, error) {
	v, ok := twoDigits(s, pos)
	if !ok || v < 1 || v > 12 {
		return 0, 0, &ParseError{Kind: InvalidMonth, Value: s[pos : pos+2]}
	}
	return v, pos + 2, nil
}

// parseDay validates the day against the month and year, so leap years
// are handled by the calendar primitive rather than the grammar.
func parseDay(s string, pos, year, month int) (int, int, error) {
	v, ok := twoDigits(s, pos)
	if !ok || v < 1 || v > civil.DaysInMonth(month, year) {
		return 0, 0, &ParseError{Kind: InvalidDay, Value: s[pos : pos+2]}
	}
	return v, pos + 2, nil
}

func parseHour(s string, pos int) (int, int, error) {
	v, ok := twoDigits(s, pos)
	if !ok || v > 23 {
		return 0, 0, &ParseError{Kind: InvalidHour, Value: s[pos : pos+2]}
	}
	return v, pos + 2, nil
}

func parseMinute(s string, pos int) (int, int, error) {
	v, ok := twoDigits(s, pos)
	if !ok || v > 59 {
		return 0, 0, &ParseError{Kind: InvalidMinute, Value: s[pos : pos+2]}
	}
	return v, pos + 2, nil
}

// parseSecond permits 60 for leap seconds; the caller gates it against
// the date.
func parseSecond(s string, pos int) (int, int, error) {
	v, ok := twoDigits(s, pos)
	if !ok || v > 60 {
		return 0, 0, &ParseError{Kind: InvalidSecond, Value: s[pos : pos+2]}
	}
	return v, pos + 2, nil
}

// parseFraction reads one or more digits after the ".". Digits beyond
// nanosecond resolution are truncated, not rounded; shorter runs are
// right-padded with zeros to nanoseconds.
func parseFraction(s string, pos int) (int, int, error) {
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	if pos == start {
		return 0, 0, &ParseError{Kind: InvalidFraction, Value: s[start-1:]}
	}
	digits := s[start:pos]
	if len(digits) > 9 {
		digits = digits[:9]
	}
	v := 0
	for i := 0; i < len(digits); i++ {
		v = v*10 + int(digits[i]-'0')
	}
	for i := len(digits); i < 9; i++ {
		v *= 10
	}
	return v, pos, nil
}

func expect(s string, pos int, c byte) (int, error) {
	if s[pos] != c {
		return 0, &ParseError{Kind: InvalidFormat, Value: s[pos : pos+1]}
	}
	return pos + 1, nil
}

// expectDateTimeSep accepts "T" or "t" between date and time.
func expectDateTimeSep(s string, pos int) (int, error) {
	if s[pos] != 'T' && s[pos] != 't' {
		return 0, &ParseError{Kind: InvalidFormat, Value: s[pos : pos+1]}
	}
	return pos + 1, nil
}
