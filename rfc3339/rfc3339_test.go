package rfc3339

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-rfc3339/civil"
)

func TestDateTime_Unix(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"1970-01-01T00:00:00Z", 0},
		{"1970-01-01T00:00:00-00:00", 0},
		{"2024-01-01T00:00:00Z", 1704067200},
		{"2024-01-01T00:00:00+02:00", 1704060000},
		{"1996-12-19T16:39:57-08:00", 851042397},
	}
	for _, c := range cases {
		d, err := Parse(c.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.input, err)
		}
		if got := d.Unix(); got != c.want {
			t.Errorf("Parse(%q).Unix() = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestDateTime_String(t *testing.T) {
	d := DateTime{
		Time:   civil.Time{Year: 2024, Month: 11, Day: 22, Hour: 14, Minute: 30},
		Offset: Offset{Form: UTC},
	}
	if got, want := d.String(), "2024-11-22T14:30:00Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateTime_WithPrecision_Clamps(t *testing.T) {
	d := DateTime{
		Time:   civil.Time{Year: 2024, Month: 1, Day: 1, Nanoseconds: 123456789},
		Offset: Offset{Form: UTC},
	}
	if got, want := Format(d.WithPrecision(12)), "2024-01-01T00:00:00.123456789Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got, want := Format(d.WithPrecision(-3)), "2024-01-01T00:00:00Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDateTime_TextMarshalling(t *testing.T) {
	d, err := Parse("1985-04-12T23:20:50.52Z")
	if err != nil {
		t.Fatal(err)
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if got, want := string(text), "1985-04-12T23:20:50.52Z"; got != want {
		t.Errorf("MarshalText() = %q, want %q", got, want)
	}

	var got DateTime
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("text round trip mismatch (-want +got):\n%s", diff)
	}

	if err := got.UnmarshalText([]byte("not a timestamp")); err == nil {
		t.Error("UnmarshalText() accepted garbage")
	}
}

func TestDateTime_JSONMarshalling(t *testing.T) {
	d, err := Parse("1996-12-19T16:39:57-08:00")
	if err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if got, want := string(b), `"1996-12-19T16:39:57-08:00"`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var got DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDateTime_JSONNull(t *testing.T) {
	d, err := Parse("2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("json.Unmarshal(null) failed: %v", err)
	}
	// null leaves the value unchanged.
	if got, want := Format(d), "2024-01-01T00:00:00Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDateTime_JSONRejectsInvalid(t *testing.T) {
	var d DateTime
	for _, input := range []string{`"2024-13-01T00:00:00Z"`, `42`, `"garbage"`} {
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("json.Unmarshal(%s) succeeded, want error", input)
		}
	}
}
