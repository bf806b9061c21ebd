package rfc3339

import "strconv"

// Format encodes the DateTime in canonical form: uppercase "T" and
// "Z", the UTC form spelled "Z" rather than "+00:00", and the
// UnknownLocalOffset form spelled "-00:00". With a defined precision
// the fraction has exactly that many digits (none for zero); without
// one the fraction is trimmed of trailing zeros and omitted entirely
// when the sub-second value is zero.
//
// Formatting cannot fail: every field of a constructed DateTime is in
// range. Years outside 0000-9999 are an extension over the strict RFC
// profile; negative years emit a leading "-" before the four padded
// digits.
func Format(d DateTime) string {
	b := make([]byte, 0, 40)
	b = appendYear(b, d.Time.Year)
	b = append(b, '-')
	b = appendPadded(b, d.Time.Month, 2)
	b = append(b, '-')
	b = appendPadded(b, d.Time.Day, 2)
	b = append(b, 'T')
	b = appendPadded(b, d.Time.Hour, 2)
	b = append(b, ':')
	b = appendPadded(b, d.Time.Minute, 2)
	b = append(b, ':')
	b = appendPadded(b, d.Time.Second, 2)
	b = appendFraction(b, d.Time.Nanoseconds, d.Precision)
	b = appendOffset(b, d.Offset)
	return string(b)
}

func appendYear(b []byte, year int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	return appendPadded(b, year, 4)
}

// appendPadded appends v zero-padded to at least width digits.
func appendPadded(b []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

var pow10 = [10]int{1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

func appendFraction(b []byte, nanos int, p Precision) []byte {
	if p.Defined {
		digits := p.Digits
		if digits <= 0 {
			return b
		}
		if digits > 9 {
			digits = 9
		}
		b = append(b, '.')
		return appendPadded(b, nanos/pow10[9-digits], digits)
	}
	if nanos == 0 {
		return b
	}
	b = append(b, '.')
	b = appendPadded(b, nanos, 9)
	for b[len(b)-1] == '0' {
		b = b[:len(b)-1]
	}
	return b
}
