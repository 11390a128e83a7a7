package booking

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"agendly/models"
	"agendly/services/distribution"
)

const monday = "2026-09-07"

func testEngine() *distribution.Engine {
	table := distribution.DurationTable{
		ByType:  map[string]int{models.TypeClosing: 45, models.TypeUpgrade: 45},
		Default: 30,
	}
	return distribution.NewEngine(table, time.UTC, rand.New(rand.NewSource(1)))
}

type fakeDistributor struct {
	attendant *models.Attendant
	err       error
}

func (f *fakeDistributor) SelectAttendant(date, timeOfDay, apptType string) (*models.Attendant, error) {
	return f.attendant, f.err
}

type fakeApptRepo struct {
	snapshot []models.Appointment
	created  []models.Appointment
	statuses map[string]string
}

func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) GetActiveByDate(date string) ([]models.Appointment, error) {
	return f.snapshot, nil
}
func (f *fakeApptRepo) ListByDate(date string) ([]models.Appointment, error) {
	return f.snapshot, nil
}
func (f *fakeApptRepo) Create(a *models.Appointment) error {
	f.created = append(f.created, *a)
	return nil
}
func (f *fakeApptRepo) UpdateStatus(id, status string) error {
	if f.statuses == nil {
		f.statuses = map[string]string{}
	}
	f.statuses[id] = status
	return nil
}
func (f *fakeApptRepo) ExpireStalePending(cutoffDate string) (int64, error) { return 0, nil }

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Date:     monday,
		Time:     "10:00",
		Type:     models.TypeConsultation,
		Customer: "Acme Corp",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := &DefaultBookingService{
		Distributor:     &fakeDistributor{attendant: &models.Attendant{ID: "att-1"}},
		Engine:          testEngine(),
		AppointmentRepo: repo,
	}

	appt, err := svc.CreateAppointment(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.ID == "" {
		t.Error("appointment ID was not generated")
	}
	if appt.AttendantID != "att-1" {
		t.Errorf("attendant = %s, want att-1", appt.AttendantID)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted appointment, got %d", len(repo.created))
	}
}

func TestCreateAppointmentRecheckCatchesRace(t *testing.T) {
	// The fresh snapshot already holds a conflicting appointment created
	// after selection: the commit must be refused.
	repo := &fakeApptRepo{snapshot: []models.Appointment{{
		AttendantID: "att-1",
		Date:        monday,
		Time:        "10:00",
		Type:        models.TypeConsultation,
		Status:      models.StatusPending,
	}}}
	svc := &DefaultBookingService{
		Distributor:     &fakeDistributor{attendant: &models.Attendant{ID: "att-1"}},
		Engine:          testEngine(),
		AppointmentRepo: repo,
	}

	_, err := svc.CreateAppointment(validRequest())
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("appointment was persisted despite the lost race")
	}
}

func TestCreateAppointmentPassesThroughDistributionFailure(t *testing.T) {
	svc := &DefaultBookingService{
		Distributor:     &fakeDistributor{err: distribution.ErrNoAttendantOnDuty},
		Engine:          testEngine(),
		AppointmentRepo: &fakeApptRepo{},
	}

	_, err := svc.CreateAppointment(validRequest())
	if !errors.Is(err, distribution.ErrNoAttendantOnDuty) {
		t.Fatalf("expected ErrNoAttendantOnDuty, got %v", err)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := &DefaultBookingService{
		Distributor:     &fakeDistributor{attendant: &models.Attendant{ID: "att-1"}},
		Engine:          testEngine(),
		AppointmentRepo: &fakeApptRepo{},
	}

	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"bad date", func(r *models.BookingRequest) { r.Date = "07/09/2026" }},
		{"bad time", func(r *models.BookingRequest) { r.Time = "10am" }},
		{"off grid", func(r *models.BookingRequest) { r.Time = "10:07" }},
		{"missing type", func(r *models.BookingRequest) { r.Type = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.CreateAppointment(req)
			var bookErr *BookingError
			if !errors.As(err, &bookErr) || bookErr.Code != "invalidBooking" {
				t.Fatalf("expected invalidBooking error, got %v", err)
			}
		})
	}
}

func TestCancelAppointment(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := &DefaultBookingService{AppointmentRepo: repo}

	if err := svc.CancelAppointment("appt-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.statuses["appt-9"] != models.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", repo.statuses["appt-9"])
	}
}
