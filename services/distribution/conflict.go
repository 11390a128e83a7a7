package distribution

import "agendly/models"

// HasConflict reports whether a candidate appointment [time, time+duration)
// overlaps any pending appointment of the attendant on the same date. The
// date and status filters are applied here rather than trusted to the caller,
// so a wider snapshot can be passed safely. A malformed candidate time counts
// as a conflict (fail closed).
func (e *Engine) HasConflict(attendantID, date, timeOfDay, apptType string, existing []models.Appointment) bool {
	newStart, ok := parseClock(timeOfDay)
	if !ok {
		return true
	}
	newEnd := newStart + e.Durations.Minutes(apptType)

	for _, a := range existing {
		if a.AttendantID != attendantID || a.Date != date || a.Status != models.StatusPending {
			continue
		}
		exStart, ok := parseClock(a.Time)
		if !ok {
			continue
		}
		exEnd := exStart + e.Durations.Minutes(a.Type)
		// Half-open overlap: touching endpoints do not conflict.
		if newStart < exEnd && newEnd > exStart {
			return true
		}
	}
	return false
}
