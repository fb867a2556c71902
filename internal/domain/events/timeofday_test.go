package events

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"3:13 PM", 15, 13},
		{"11:00 AM", 11, 0},
		{"11:00am", 11, 0},
		{"12:05 AM", 0, 5},
		{"12:30 PM", 12, 30},
		{" 5:30 pm ", 17, 30},
		{"17:30", 17, 30},
		{"0:00", 0, 0},
	}
	for _, tc := range cases {
		h, m, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", tc.in, err)
		}
		if h != tc.hour || m != tc.minute {
			t.Fatalf("ParseClock(%q) = %d:%02d, want %d:%02d", tc.in, h, m, tc.hour, tc.minute)
		}
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "noon", "3 PM", "3:1 PM", "13:00 PM", "0:10 AM", "24:00", "3:60", "x:10", "123:00", "+3:+5 PM", "3:-0 PM", "+1:30", "-1:30"} {
		if _, _, err := ParseClock(in); !errors.Is(err, ErrMalformedTime) {
			t.Fatalf("ParseClock(%q) expected ErrMalformedTime, got %v", in, err)
		}
	}
}

func TestBucketFor(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"11:00 AM", TimeOfDayMorning},
		{"11:59 AM", TimeOfDayMorning},
		{"12:00 PM", TimeOfDayAfternoon},
		{"3:13 PM", TimeOfDayAfternoon},
		{"4:59 PM", TimeOfDayAfternoon},
		{"5:00 PM", TimeOfDayEvening},
		{"5:30 PM", TimeOfDayEvening},
		{"12:15 AM", TimeOfDayMorning},
	}
	for _, tc := range cases {
		got, err := BucketFor(tc.in)
		if err != nil {
			t.Fatalf("BucketFor(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("BucketFor(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := BucketFor("whenever"); !errors.Is(err, ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}
