package officehours

import (
	"testing"
	"time"
)

// 2026-01-05 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
}

func TestIsOpenEmptyScheduleMeansOpen(t *testing.T) {
	if !IsOpen(nil, monday(3, 0)) {
		t.Fatalf("empty schedule should count as open")
	}
	if !IsOpen(WeeklySchedule{}, monday(3, 0)) {
		t.Fatalf("empty schedule should count as open")
	}
}

func TestIsOpenInsideWindow(t *testing.T) {
	schedule := WeeklySchedule{
		"monday": {Enabled: true, Start: "09:00", End: "18:00"},
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start of window", monday(9, 0), true},
		{"midday", monday(13, 30), true},
		{"end of window", monday(18, 0), true},
		{"before opening", monday(8, 59), false},
		{"after closing", monday(18, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpen(schedule, tt.at); got != tt.want {
				t.Fatalf("IsOpen at %s = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestIsOpenMissingOrDisabledDayIsClosed(t *testing.T) {
	schedule := WeeklySchedule{
		"tuesday": {Enabled: true, Start: "09:00", End: "18:00"},
		"monday":  {Enabled: false, Start: "09:00", End: "18:00"},
	}
	if IsOpen(schedule, monday(12, 0)) {
		t.Fatalf("disabled monday should be closed")
	}

	delete(schedule, "monday")
	if IsOpen(schedule, monday(12, 0)) {
		t.Fatalf("missing monday should be closed")
	}
}

func TestIsOpenDefaultClockValues(t *testing.T) {
	schedule := WeeklySchedule{
		"monday": {Enabled: true},
	}
	if !IsOpen(schedule, monday(10, 0)) {
		t.Fatalf("expected default 09:00-18:00 window to be open at 10:00")
	}
	if IsOpen(schedule, monday(8, 0)) {
		t.Fatalf("expected default 09:00-18:00 window to be closed at 08:00")
	}
}

func TestIsOpenBadClockIsClosed(t *testing.T) {
	schedule := WeeklySchedule{
		"monday": {Enabled: true, Start: "late", End: "18:00"},
	}
	if IsOpen(schedule, monday(12, 0)) {
		t.Fatalf("unparseable start should close the day")
	}
}
