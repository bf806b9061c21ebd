package rfc3339

// validLeapSecond reports whether a second value of 60 is permitted on
// the given date. Leap seconds have only ever been inserted at the end
// of June or December (UTC), so any other month/day combination is
// rejected. It returns a LeapSecondError on failure.
//
// RFC3339 also permits a second value of 58 for a hypothetical negative
// leap second; no such second has ever occurred and the parser accepts
// 58 like any ordinary value without consulting this check.
func validLeapSecond(month, day int) error {
	if (month == 6 && day == 30) || (month == 12 && day == 31) {
		return nil
	}
	return &LeapSecondError{Month: month, Day: day}
}
