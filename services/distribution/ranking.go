package distribution

import (
	"sort"

	"agendly/models"
)

// loadFor counts the attendant's pending appointments for the date, excluding
// the personal type, which occupies a slot without counting as work.
func loadFor(attendantID, date string, appointments []models.Appointment) int {
	load := 0
	for _, a := range appointments {
		if a.AttendantID != attendantID || a.Date != date {
			continue
		}
		if a.Status != models.StatusPending || a.Type == models.TypePersonal {
			continue
		}
		load++
	}
	return load
}

// RankByLoad orders attendants by ascending load. Attendants with equal load
// come back in random relative order, re-randomized on every call so repeated
// selections spread work evenly across a tie band.
func (e *Engine) RankByLoad(eligible []models.Attendant, date string, appointments []models.Appointment) []models.RankedAttendant {
	ranked := make([]models.RankedAttendant, 0, len(eligible))
	for _, att := range eligible {
		ranked = append(ranked, models.RankedAttendant{
			Attendant: att,
			Load:      loadFor(att.ID, date, appointments),
		})
	}

	// Shuffle first, then stable-sort by load: the shuffle order survives
	// inside each equal-load band.
	e.mu.Lock()
	e.rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	e.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Load < ranked[j].Load
	})
	return ranked
}
