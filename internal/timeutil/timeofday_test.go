package timeutil

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"17:30", 1050},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "-1:00", "ab:cd", "12:00:00", "12-30"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) accepted invalid input", in)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := TimeOfDay(540).Format(); got != "09:00" {
		t.Fatalf("Format(540) = %q, want 09:00", got)
	}
	if got := TimeOfDay(1439).Format(); got != "23:59" {
		t.Fatalf("Format(1439) = %q, want 23:59", got)
	}
}

func TestAdd_NoWrap(t *testing.T) {
	// 23:30 + 60 runs past midnight; the value is not wrapped so callers
	// can detect the overflow against a closing time.
	got := TimeOfDay(1410).Add(60)
	if got != 1470 {
		t.Fatalf("Add past midnight = %d, want 1470", got)
	}
	if !got.After(TimeOfDay(1439)) {
		t.Fatal("expected overflowed value to compare after end of day")
	}
}

func TestOrdering(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("09:01")
	if !a.Before(b) || b.Before(a) {
		t.Fatal("expected 09:00 < 09:01")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tod, _ := Parse("10:30")
	data, err := tod.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"10:30"` {
		t.Fatalf("MarshalJSON = %s, want \"10:30\"", data)
	}

	var back TimeOfDay
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != tod {
		t.Fatalf("round trip = %d, want %d", back, tod)
	}

	if err := back.UnmarshalJSON([]byte(`"25:00"`)); err == nil {
		t.Fatal("UnmarshalJSON accepted out-of-range hour")
	}
}
