package timesheet

import (
	"math"
	"testing"

	"earlyexport/early"
)

func TestCalculateDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		duration *early.EntryDuration
		want     string
	}{
		{
			"regular working day",
			&early.EntryDuration{StartedAt: "2024-01-01T09:00:00Z", StoppedAt: "2024-01-01T17:30:15Z"},
			"08:30:15",
		},
		{
			"zone-less timestamps",
			&early.EntryDuration{StartedAt: "2024-01-01T09:00:00.000", StoppedAt: "2024-01-01T10:15:30.000"},
			"01:15:30",
		},
		{
			"spans more than a day without clamping",
			&early.EntryDuration{StartedAt: "2024-01-01T00:00:00Z", StoppedAt: "2024-01-02T02:00:00Z"},
			"26:00:00",
		},
		{
			"sub-second remainder truncated",
			&early.EntryDuration{StartedAt: "2024-01-01T09:00:00Z", StoppedAt: "2024-01-01T09:00:01.900Z"},
			"00:00:01",
		},
		{"missing duration", nil, "00:00:00"},
		{"still running", &early.EntryDuration{StartedAt: "2024-01-01T09:00:00Z"}, "00:00:00"},
		{"missing start", &early.EntryDuration{StoppedAt: "2024-01-01T09:00:00Z"}, "00:00:00"},
		{
			"malformed timestamps",
			&early.EntryDuration{StartedAt: "yesterday", StoppedAt: "2024-01-01T09:00:00Z"},
			"00:00:00",
		},
		{
			"stop before start",
			&early.EntryDuration{StartedAt: "2024-01-01T17:00:00Z", StoppedAt: "2024-01-01T09:00:00Z"},
			"00:00:00",
		},
	}

	for _, tc := range cases {
		if got := CalculateDuration(tc.duration); got != tc.want {
			t.Fatalf("%s: CalculateDuration = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestHoursFromClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		clock string
		want  float64
	}{
		{"08:30:15", 8.0 + 30.0/60.0 + 15.0/3600.0},
		{"00:00:00", 0.0},
		{"26:00:00", 26.0},
		{"01:30", 0.0},
		{"1:2:3:4", 0.0},
		{"aa:bb:cc", 0.0},
		{"", 0.0},
	}

	for _, tc := range cases {
		if got := HoursFromClock(tc.clock); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("HoursFromClock(%q) = %v, want %v", tc.clock, got, tc.want)
		}
	}
}

func TestEntryHours_RoundTrip(t *testing.T) {
	t.Parallel()

	entry := early.TimeEntry{
		Duration: &early.EntryDuration{
			StartedAt: "2024-01-01T09:00:00Z",
			StoppedAt: "2024-01-01T17:30:15Z",
		},
	}

	got := EntryHours(entry)
	want := 8.5041666
	if math.Abs(got-want) > 1e-4 {
		t.Fatalf("EntryHours = %v, want about %v", got, want)
	}
}

func TestEntryHours_MalformedIsZero(t *testing.T) {
	t.Parallel()

	if got := EntryHours(early.TimeEntry{}); got != 0.0 {
		t.Fatalf("expected zero hours for entry without duration, got %v", got)
	}
}
