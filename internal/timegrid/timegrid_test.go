package timegrid

import "testing"

func TestRoundToHalfHour(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{8.2, 8.0},
		{8.3, 8.5},
		{8.5, 8.5},
		{8.0, 8.0},
		{21.76, 22.0},
		{11.5, 11.5},
		{12.83, 13.0},
		{6.24, 6.0},
		// math.Round rounds halves away from zero: x.25 -> x.5, x.75 -> x+1
		{8.25, 8.5},
		{8.75, 9.0},
	}

	for _, c := range cases {
		if got := RoundToHalfHour(c.in); got != c.want {
			t.Errorf("RoundToHalfHour(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		h    float64
		want bool
	}{
		{6.0, true},
		{5.5, false},
		{29.5, true},
		{30.0, false},
		{23.5, true},
		{24.0, true},
	}

	for _, c := range cases {
		if got := InBounds(c.h); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.h, got, c.want)
		}
	}
}

func TestFormatHour(t *testing.T) {
	cases := []struct {
		h    float64
		want string
	}{
		{6.0, "06:00"},
		{8.5, "08:30"},
		{23.5, "23:30"},
		{24.0, "00:00"},
		{27.0, "03:00"},
		{29.5, "05:30"},
	}

	for _, c := range cases {
		if got := FormatHour(c.h); got != c.want {
			t.Errorf("FormatHour(%v) = %q, want %q", c.h, got, c.want)
		}
	}
}

func TestSlotsCoverExtendedDay(t *testing.T) {
	slots := Slots()

	// 18 day hours at 2 slots each, plus 00:00-05:30 at 2 each and the
	// final 06:00 row.
	want := 18*2 + 6*2 + 1
	if len(slots) != want {
		t.Fatalf("expected %d slots, got %d", want, len(slots))
	}

	if slots[0].Hour != 6.0 || slots[0].Label != "06" {
		t.Errorf("first slot = %+v, want hour 6 label 06", slots[0])
	}

	last := slots[len(slots)-1]
	if last.Hour != 30.0 || last.Label != "06" {
		t.Errorf("last slot = %+v, want hour 30 label 06", last)
	}

	for _, s := range slots {
		if s.IsMidnight && s.Hour != 24.0 {
			t.Errorf("midnight flag on hour %v", s.Hour)
		}
	}
}
