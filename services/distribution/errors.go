package distribution

import "fmt"

// DistributionError is a business failure of the selection pipeline. Callers
// map it to a user-facing "no availability" outcome, not a system error.
type DistributionError struct {
	Code    string
	Message string
}

func (e *DistributionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrNoAttendantOnDuty means no eligible attendant had a matching
	// schedule window at the requested date and time.
	ErrNoAttendantOnDuty = &DistributionError{
		Code:    "noAttendantOnDuty",
		Message: "no attendant is on duty at the requested time",
	}

	// ErrAllAttendantsBusy means at least one attendant was on duty but every
	// candidate already had a conflicting appointment.
	ErrAllAttendantsBusy = &DistributionError{
		Code:    "allAttendantsBusy",
		Message: "every attendant on duty already has a conflicting appointment",
	}
)
