package distribution

import (
	"testing"

	"agendly/models"
)

func pendingAppt(attendantID, date, clock, apptType string) models.Appointment {
	return models.Appointment{
		AttendantID: attendantID,
		Date:        date,
		Time:        clock,
		Type:        apptType,
		Status:      models.StatusPending,
	}
}

func TestHasConflict(t *testing.T) {
	e := newTestEngine()
	// Existing closing appointment occupies [10:00, 10:45).
	existing := []models.Appointment{pendingAppt("z", monday, "10:00", models.TypeClosing)}

	tests := []struct {
		name string
		time string
		typ  string
		want bool
	}{
		{"same start", "10:00", models.TypeClosing, true},
		{"starts inside", "10:30", models.TypeConsultation, true},
		{"ends one minute in", "09:45", models.TypeConsultation, true},
		{"touching end does not conflict", "10:45", models.TypeConsultation, false},
		{"touching start does not conflict", "09:30", models.TypeConsultation, false},
		{"long type reaches into slot", "09:30", models.TypeClosing, true},
		{"far away", "16:00", models.TypeConsultation, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.HasConflict("z", monday, tt.time, tt.typ, existing); got != tt.want {
				t.Errorf("HasConflict(%s %s) = %v, want %v", tt.time, tt.typ, got, tt.want)
			}
		})
	}
}

func TestHasConflictFiltersSnapshot(t *testing.T) {
	e := newTestEngine()

	cancelled := pendingAppt("z", monday, "10:00", models.TypeClosing)
	cancelled.Status = models.StatusCancelled

	otherDay := pendingAppt("z", "2026-09-08", "10:00", models.TypeClosing)
	otherAttendant := pendingAppt("y", monday, "10:00", models.TypeClosing)

	snapshot := []models.Appointment{cancelled, otherDay, otherAttendant}
	if e.HasConflict("z", monday, "10:00", models.TypeConsultation, snapshot) {
		t.Error("cancelled rows, other dates and other attendants must not conflict")
	}
}

func TestHasConflictPersonalStillBlocks(t *testing.T) {
	e := newTestEngine()
	// Personal time does not count toward load but fully occupies the slot.
	snapshot := []models.Appointment{pendingAppt("w", monday, "15:00", models.TypePersonal)}
	if !e.HasConflict("w", monday, "15:00", models.TypeConsultation, snapshot) {
		t.Error("personal appointment must block its slot")
	}
	if e.HasConflict("w", monday, "15:30", models.TypeConsultation, snapshot) {
		t.Error("slot right after a personal appointment must be free")
	}
}

func TestHasConflictMalformedTimeFailsClosed(t *testing.T) {
	e := newTestEngine()
	if !e.HasConflict("z", monday, "half past", models.TypeConsultation, nil) {
		t.Error("malformed candidate time must be treated as a conflict")
	}
}

func TestDurationTable(t *testing.T) {
	table := newTestEngine().Durations
	if got := table.Minutes(models.TypeClosing); got != 45 {
		t.Errorf("closing duration = %d, want 45", got)
	}
	if got := table.Minutes(models.TypeUpgrade); got != 45 {
		t.Errorf("upgrade duration = %d, want 45", got)
	}
	if got := table.Minutes(models.TypeConsultation); got != 30 {
		t.Errorf("consultation duration = %d, want 30", got)
	}
	if got := table.Minutes("unknown"); got != 30 {
		t.Errorf("unknown type duration = %d, want default 30", got)
	}
}
