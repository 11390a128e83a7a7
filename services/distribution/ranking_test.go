package distribution

import (
	"fmt"
	"strings"
	"testing"

	"agendly/models"
)

func TestRankByLoadCounts(t *testing.T) {
	e := newTestEngine()
	attendants := []models.Attendant{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	cancelled := pendingAppt("b", monday, "09:00", models.TypeConsultation)
	cancelled.Status = models.StatusCancelled

	snapshot := []models.Appointment{
		pendingAppt("a", monday, "09:00", models.TypeConsultation),
		pendingAppt("a", monday, "10:00", models.TypeClosing),
		// Personal time occupies a slot but contributes zero load.
		pendingAppt("c", monday, "11:00", models.TypePersonal),
		pendingAppt("c", monday, "14:00", models.TypeConsultation),
		cancelled,
	}

	ranked := e.RankByLoad(attendants, monday, snapshot)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked attendants, got %d", len(ranked))
	}

	loads := map[string]int{}
	for _, r := range ranked {
		loads[r.Attendant.ID] = r.Load
	}
	if loads["a"] != 2 || loads["b"] != 0 || loads["c"] != 1 {
		t.Fatalf("loads = %v, want a:2 b:0 c:1", loads)
	}

	// Ascending by load: b (0) before c (1) before a (2).
	if ranked[0].Attendant.ID != "b" || ranked[1].Attendant.ID != "c" || ranked[2].Attendant.ID != "a" {
		t.Fatalf("unexpected order: %s %s %s",
			ranked[0].Attendant.ID, ranked[1].Attendant.ID, ranked[2].Attendant.ID)
	}
}

func TestRankByLoadLoadOrderIsStable(t *testing.T) {
	e := newTestEngine()
	attendants := []models.Attendant{{ID: "low"}, {ID: "high"}}
	snapshot := []models.Appointment{
		pendingAppt("high", monday, "09:00", models.TypeConsultation),
		pendingAppt("high", monday, "10:00", models.TypeConsultation),
		pendingAppt("high", monday, "11:00", models.TypeConsultation),
		pendingAppt("low", monday, "09:00", models.TypeConsultation),
	}

	for i := 0; i < 50; i++ {
		ranked := e.RankByLoad(attendants, monday, snapshot)
		if ranked[0].Attendant.ID != "low" {
			t.Fatalf("iteration %d: load 1 sorted after load 3", i)
		}
	}
}

func TestRankByLoadTieBreakIsRandomized(t *testing.T) {
	e := newTestEngine()
	var attendants []models.Attendant
	for i := 0; i < 5; i++ {
		attendants = append(attendants, models.Attendant{ID: fmt.Sprintf("att-%d", i)})
	}

	orderings := map[string]bool{}
	firsts := map[string]bool{}
	for i := 0; i < 100; i++ {
		ranked := e.RankByLoad(attendants, monday, nil)
		var ids []string
		for _, r := range ranked {
			ids = append(ids, r.Attendant.ID)
		}
		orderings[strings.Join(ids, ",")] = true
		firsts[ids[0]] = true
	}

	if len(orderings) < 2 {
		t.Error("100 rankings of 5 equal-load attendants produced a single ordering")
	}
	if len(firsts) < 2 {
		t.Error("the same attendant came first in all 100 rankings")
	}
}
