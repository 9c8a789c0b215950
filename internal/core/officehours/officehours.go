package officehours

import (
	"strings"
	"time"
)

// DaySchedule is one weekday's opening window in "HH:MM" local time.
type DaySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// WeeklySchedule maps lowercase weekday names ("monday"…) to their windows.
// Days missing from the map are closed.
type WeeklySchedule map[string]DaySchedule

// IsOpen reports whether now falls inside the schedule. An empty schedule
// means the gate is not configured and the office counts as open.
func IsOpen(schedule WeeklySchedule, now time.Time) bool {
	if len(schedule) == 0 {
		return true
	}

	day, ok := schedule[strings.ToLower(now.Weekday().String())]
	if !ok || !day.Enabled {
		return false
	}

	start, err := parseClock(day.Start, 9, 0)
	if err != nil {
		return false
	}
	end, err := parseClock(day.End, 18, 0)
	if err != nil {
		return false
	}

	current := now.Hour()*60 + now.Minute()
	return start <= current && current <= end
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(value string, defHour, defMin int) (int, error) {
	if value == "" {
		return defHour*60 + defMin, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
