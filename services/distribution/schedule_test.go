package distribution

import (
	"math/rand"
	"testing"
	"time"

	"agendly/models"
)

const (
	monday = "2026-09-07"
	sunday = "2026-09-06"
)

func newTestEngine() *Engine {
	table := DurationTable{
		ByType: map[string]int{
			models.TypeClosing: 45,
			models.TypeUpgrade: 45,
		},
		Default: 30,
	}
	return NewEngine(table, time.UTC, rand.New(rand.NewSource(1)))
}

func mondayAttendant(id string) models.Attendant {
	return models.Attendant{
		ID:     id,
		Sector: "sales",
		Active: true,
		Schedule: map[string]*models.TimeWindow{
			"mon": {Start: "09:00", End: "18:00"},
		},
		Pauses: map[string][]models.TimeWindow{
			"mon": {{Start: "12:00", End: "13:00"}},
		},
	}
}

func TestIsWithinSchedule(t *testing.T) {
	e := newTestEngine()
	att := mondayAttendant("x")

	tests := []struct {
		name string
		date string
		time string
		want bool
	}{
		{"shift start", monday, "09:00", true},
		{"mid shift", monday, "14:00", true},
		{"last slot", monday, "17:45", true},
		{"shift end is off duty", monday, "18:00", false},
		{"before shift", monday, "08:45", false},
		{"after shift", monday, "18:15", false},
		{"pause start", monday, "12:00", false},
		{"inside pause", monday, "12:30", false},
		{"last pause minute", monday, "12:45", false},
		{"pause end is on duty", monday, "13:00", true},
		{"day off", sunday, "10:00", false},
		{"malformed time", monday, "25:99", false},
		{"malformed date", "07/09/2026", "10:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsWithinSchedule(att, tt.date, tt.time); got != tt.want {
				t.Errorf("IsWithinSchedule(%s %s) = %v, want %v", tt.date, tt.time, got, tt.want)
			}
		})
	}
}

func TestIsWithinScheduleNoSchedule(t *testing.T) {
	e := newTestEngine()
	att := models.Attendant{ID: "x", Active: true}
	for _, clock := range []string{"00:00", "09:00", "12:00", "23:45"} {
		if e.IsWithinSchedule(att, monday, clock) {
			t.Errorf("attendant without schedule reported on duty at %s", clock)
		}
	}
}

func TestIsWithinScheduleMalformedWindowFailsClosed(t *testing.T) {
	e := newTestEngine()
	att := models.Attendant{
		ID:     "x",
		Active: true,
		Schedule: map[string]*models.TimeWindow{
			"mon": {Start: "nine", End: "18:00"},
		},
	}
	if e.IsWithinSchedule(att, monday, "10:00") {
		t.Error("malformed shift window must count as off duty")
	}
}

func TestIsWithinScheduleHonorsManyPauses(t *testing.T) {
	e := newTestEngine()
	att := mondayAttendant("x")
	att.Pauses["mon"] = []models.TimeWindow{
		{Start: "10:00", End: "10:15"},
		{Start: "12:00", End: "13:00"},
		{Start: "15:30", End: "16:00"},
	}

	for _, clock := range []string{"10:00", "12:30", "15:45"} {
		if e.IsWithinSchedule(att, monday, clock) {
			t.Errorf("time %s falls in a pause but was reported on duty", clock)
		}
	}
	for _, clock := range []string{"10:15", "13:00", "16:00"} {
		if !e.IsWithinSchedule(att, monday, clock) {
			t.Errorf("time %s is outside every pause but was reported off duty", clock)
		}
	}
}

func TestWeekdayKeyMappingIsFixed(t *testing.T) {
	e := newTestEngine()
	// 2026-09-06 is a Sunday; the following days cover the whole mapping.
	dates := map[string]string{
		"2026-09-06": "sun",
		"2026-09-07": "mon",
		"2026-09-08": "tue",
		"2026-09-09": "wed",
		"2026-09-10": "thu",
		"2026-09-11": "fri",
		"2026-09-12": "sat",
	}
	for date, want := range dates {
		key, ok := e.weekdayKey(date)
		if !ok || key != want {
			t.Errorf("weekdayKey(%s) = %q, %v; want %q", date, key, ok, want)
		}
	}
}
