package rfc3339

// OffsetForm identifies the variant of an Offset.
//
// RFC3339 distinguishes a zero offset that is known to be UTC ("Z" or
// "+00:00") from a zero offset where the instant is UTC but the local
// offset that produced it is unknown ("-00:00"):
//
//	If the time in UTC is known, but the offset to local time is
//	unknown, this can be represented with an offset of "-00:00".
//	This differs semantically from an offset of "Z" or "+00:00",
//	which imply that UTC is the preferred reference point for the
//	specified time.
//
// A flat seconds value would destroy that distinction, so the variant
// is kept alongside the numeric payload.
type OffsetForm int

const (
	// UTC is a zero offset with UTC known to be the reference point.
	UTC OffsetForm = iota
	// UnknownLocalOffset is a zero offset where the local offset that
	// produced the instant is unknown.
	UnknownLocalOffset
	// NumericOffset is a nonzero signed offset from UTC.
	NumericOffset
)

func (f OffsetForm) String() string {
	switch f {
	case UTC:
		return "UTC"
	case UnknownLocalOffset:
		return "UnknownLocalOffset"
	case NumericOffset:
		return "NumericOffset"
	default:
		return "<UNDEFINED>"
	}
}

// maxOffsetSeconds is the largest representable offset magnitude,
// 23 hours and 59 minutes east or west of UTC.
const maxOffsetSeconds = 23*3600 + 59*60

// Offset represents the UTC offset of a timestamp.
// Seconds carries the payload of a NumericOffset and is zero for the
// other two forms. Offsets compare structurally: UTC and
// UnknownLocalOffset both project to zero seconds but are not equal.
type Offset struct {
	Form    OffsetForm
	Seconds int
}

// OffsetFromSeconds returns the Offset for the given number of seconds
// east of UTC. A zero value collapses to the UTC form. It returns an
// OffsetRangeError if the magnitude exceeds 23:59 hours.
//
// Offsets that are not a whole number of minutes cannot result from
// parsing but are accepted here; encoding floors them to the enclosing
// minute.
func OffsetFromSeconds(seconds int) (Offset, error) {
	if seconds > maxOffsetSeconds || seconds < -maxOffsetSeconds {
		return Offset{}, &OffsetRangeError{Seconds: seconds}
	}
	if seconds == 0 {
		return Offset{Form: UTC}, nil
	}
	return Offset{Form: NumericOffset, Seconds: seconds}, nil
}

// SecondsFromUTC returns the number of seconds east of UTC.
// It is zero for the UTC and UnknownLocalOffset forms.
func (o Offset) SecondsFromUTC() int {
	if o.Form == NumericOffset {
		return o.Seconds
	}
	return 0
}

// IsUTC reports whether the offset projects to zero seconds from UTC.
// It is true for both the UTC and UnknownLocalOffset forms.
func (o Offset) IsUTC() bool {
	return o.SecondsFromUTC() == 0
}

// ParseOffset decodes the textual offset of a timestamp: "Z" or "z",
// or a sign followed by a two-digit hour (00-23), ":" and a two-digit
// minute (00-59). A "-00:00" input yields the UnknownLocalOffset form
// while "+00:00" yields UTC.
func ParseOffset(s string) (Offset, error) {
	if len(s) == 0 {
		return Offset{}, &ParseError{Kind: Empty}
	}
	o, pos, err := parseOffsetAt(s, 0)
	if err != nil {
		return Offset{}, err
	}
	if pos != len(s) {
		return Offset{}, &ParseError{Kind: InvalidOffset, Value: s}
	}
	return o, nil
}

// parseOffsetAt decodes an offset token starting at pos and returns
// the position of the first byte after it.
func parseOffsetAt(s string, pos int) (Offset, int, error) {
	if pos >= len(s) {
		return Offset{}, pos, &ParseError{Kind: Empty}
	}
	switch s[pos] {
	case 'Z', 'z':
		return Offset{Form: UTC}, pos + 1, nil
	case '+', '-':
		// numeric offset, handled below
	default:
		return Offset{}, pos, &ParseError{Kind: InvalidOffset, Value: s[pos:]}
	}
	if pos+6 > len(s) {
		return Offset{}, pos, &ParseError{Kind: InvalidOffset, Value: s[pos:]}
	}
	tok := s[pos : pos+6]
	hour, ok := twoDigits(tok, 1)
	if !ok || tok[3] != ':' {
		return Offset{}, pos, &ParseError{Kind: InvalidOffset, Value: tok}
	}
	minute, ok := twoDigits(tok, 4)
	if !ok || hour > 23 || minute > 59 {
		return Offset{}, pos, &ParseError{Kind: InvalidOffset, Value: tok}
	}
	seconds := hour*3600 + minute*60
	if tok[0] == '-' {
		if seconds == 0 {
			return Offset{Form: UnknownLocalOffset}, pos + 6, nil
		}
		seconds = -seconds
	}
	// Unreachable with hour and minute already bounded, kept as a
	// defensive gate so a future grammar change cannot widen the range
	// silently.
	o, err := OffsetFromSeconds(seconds)
	if err != nil {
		return Offset{}, pos, err
	}
	return o, pos + 6, nil
}

// String encodes the offset: "Z" for UTC, "-00:00" for
// UnknownLocalOffset, and sign plus zero-padded "hh:mm" otherwise.
func (o Offset) String() string {
	return string(appendOffset(nil, o))
}

func appendOffset(b []byte, o Offset) []byte {
	switch o.Form {
	case UnknownLocalOffset:
		return append(b, "-00:00"...)
	case NumericOffset:
		s := o.Seconds
		sign := byte('+')
		if s < 0 {
			sign = '-'
			s = -s
		}
		b = append(b, sign)
		b = appendPadded(b, s/3600, 2)
		b = append(b, ':')
		return appendPadded(b, s%3600/60, 2)
	default:
		return append(b, 'Z')
	}
}
