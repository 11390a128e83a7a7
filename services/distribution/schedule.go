package distribution

import (
	"time"

	"agendly/models"
)

// weekdayKeys is the fixed weekday-index mapping used for schedule lookups,
// independent of runtime locale. Indexed by time.Weekday (Sunday == 0).
var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// parseClock converts an "HH:MM" value to minutes since midnight. ok is false
// for malformed values so callers can fail closed.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// weekdayKey resolves the weekday key for a "YYYY-MM-DD" date in the engine's
// business timezone.
func (e *Engine) weekdayKey(date string) (string, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, e.Location)
	if err != nil {
		return "", false
	}
	return weekdayKeys[int(d.Weekday())], true
}

// IsWithinSchedule reports whether the attendant is on duty at the given date
// and time: inside the day's shift window and outside every pause. The shift
// window is half-open, so a time equal to the window end is off duty. Missing
// or malformed schedule data counts as off duty rather than erroring, so an
// attendant is never auto-assigned on uncertain data.
func (e *Engine) IsWithinSchedule(att models.Attendant, date, timeOfDay string) bool {
	if len(att.Schedule) == 0 {
		return false
	}
	key, ok := e.weekdayKey(date)
	if !ok {
		return false
	}
	day := att.Schedule[key]
	if day == nil {
		return false
	}

	t, ok := parseClock(timeOfDay)
	if !ok {
		return false
	}
	start, ok := parseClock(day.Start)
	if !ok {
		return false
	}
	end, ok := parseClock(day.End)
	if !ok {
		return false
	}
	if t < start || t >= end {
		return false
	}

	for _, p := range att.Pauses[key] {
		pStart, okStart := parseClock(p.Start)
		pEnd, okEnd := parseClock(p.End)
		if okStart && okEnd && t >= pStart && t < pEnd {
			return false
		}
	}
	return true
}
