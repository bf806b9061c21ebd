package rfc3339

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOffsetFromSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		want    Offset
	}{
		{0, Offset{Form: UTC}},
		{3600, Offset{Form: NumericOffset, Seconds: 3600}},
		{-3600, Offset{Form: NumericOffset, Seconds: -3600}},
		{86340, Offset{Form: NumericOffset, Seconds: 86340}},
		{-86340, Offset{Form: NumericOffset, Seconds: -86340}},
	}
	for _, c := range cases {
		got, err := OffsetFromSeconds(c.seconds)
		if err != nil {
			t.Errorf("OffsetFromSeconds(%d) failed: %v", c.seconds, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("OffsetFromSeconds(%d) mismatch (-want +got):\n%s", c.seconds, diff)
		}
	}
}

func TestOffsetFromSeconds_OutOfRange(t *testing.T) {
	for _, seconds := range []int{86341, -86341, 24 * 3600} {
		_, err := OffsetFromSeconds(seconds)
		var rerr *OffsetRangeError
		if !errors.As(err, &rerr) {
			t.Errorf("OffsetFromSeconds(%d) = %v, want *OffsetRangeError", seconds, err)
			continue
		}
		if rerr.Seconds != seconds {
			t.Errorf("OffsetRangeError.Seconds = %d, want %d", rerr.Seconds, seconds)
		}
	}
}

func TestParseOffset(t *testing.T) {
	cases := []struct {
		input string
		want  Offset
	}{
		{"Z", Offset{Form: UTC}},
		{"z", Offset{Form: UTC}},
		{"+00:00", Offset{Form: UTC}},
		{"-00:00", Offset{Form: UnknownLocalOffset}},
		{"+02:00", Offset{Form: NumericOffset, Seconds: 2 * 3600}},
		{"-08:00", Offset{Form: NumericOffset, Seconds: -8 * 3600}},
		{"+05:45", Offset{Form: NumericOffset, Seconds: 5*3600 + 45*60}},
		{"+23:59", Offset{Form: NumericOffset, Seconds: 86340}},
		{"-23:59", Offset{Form: NumericOffset, Seconds: -86340}},
	}
	for _, c := range cases {
		got, err := ParseOffset(c.input)
		if err != nil {
			t.Errorf("ParseOffset(%q) failed: %v", c.input, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseOffset(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseOffset_Errors(t *testing.T) {
	cases := []struct {
		input string
		kind  Kind
	}{
		{"", Empty},
		{"+", InvalidOffset},
		{"+02", InvalidOffset},
		{"+0200", InvalidOffset},
		{"02:00", InvalidOffset},
		{"+24:00", InvalidOffset},
		{"+02:60", InvalidOffset},
		{"+0a:00", InvalidOffset},
		{"ZZ", InvalidOffset},
		{"+02:000", InvalidOffset},
	}
	for _, c := range cases {
		_, err := ParseOffset(c.input)
		if err == nil {
			t.Errorf("ParseOffset(%q) succeeded, want error kind %v", c.input, c.kind)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseOffset(%q) = %v, want *ParseError", c.input, err)
			continue
		}
		if perr.Kind != c.kind {
			t.Errorf("ParseOffset(%q) kind = %v, want %v", c.input, perr.Kind, c.kind)
		}
	}
}

func TestOffset_String(t *testing.T) {
	cases := []struct {
		o    Offset
		want string
	}{
		{Offset{Form: UTC}, "Z"},
		{Offset{Form: UnknownLocalOffset}, "-00:00"},
		{Offset{Form: NumericOffset, Seconds: 2 * 3600}, "+02:00"},
		{Offset{Form: NumericOffset, Seconds: -8 * 3600}, "-08:00"},
		{Offset{Form: NumericOffset, Seconds: 5*3600 + 45*60}, "+05:45"},
		// Not a whole number of minutes: constructible only directly,
		// encodes by flooring to the enclosing minute.
		{Offset{Form: NumericOffset, Seconds: 2*3600 + 30}, "+02:00"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.o, got, c.want)
		}
	}
}

func TestOffset_ZeroVariants(t *testing.T) {
	// All three zero spellings project to zero seconds, but the
	// variants stay distinguishable.
	utc, err := ParseOffset("Z")
	if err != nil {
		t.Fatal(err)
	}
	plus, err := ParseOffset("+00:00")
	if err != nil {
		t.Fatal(err)
	}
	unknown, err := ParseOffset("-00:00")
	if err != nil {
		t.Fatal(err)
	}

	if utc != plus {
		t.Errorf("Z and +00:00 parsed to different offsets: %v != %v", utc, plus)
	}
	if utc == unknown {
		t.Errorf("Z and -00:00 parsed to the same offset: %v", utc)
	}
	for _, o := range []Offset{utc, plus, unknown} {
		if o.SecondsFromUTC() != 0 {
			t.Errorf("%v.SecondsFromUTC() = %d, want 0", o, o.SecondsFromUTC())
		}
		if !o.IsUTC() {
			t.Errorf("%v.IsUTC() = false, want true", o)
		}
	}
}
