package booking

import "fmt"

// BookingError is a business failure of the booking workflow, surfaced to the
// client as a 4xx outcome.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSlotTaken means the commit-time recheck found a conflicting
	// appointment created after selection (a lost booking race).
	ErrSlotTaken = &BookingError{
		Code:    "slotTaken",
		Message: "the requested slot was taken while the booking was in flight",
	}
)

// NewValidationError reports malformed booking input.
func NewValidationError(msg string) error {
	return &BookingError{Code: "invalidBooking", Message: msg}
}
