package attendantRepo

import "agendly/models"

// AttendantRepository defines methods for attendant data access.
type AttendantRepository interface {
	// GetByID retrieves an attendant by its unique ID.
	GetByID(id string) (*models.Attendant, error)
	// GetAll retrieves all attendants.
	GetAll() ([]models.Attendant, error)
	// GetBySectors returns active attendants belonging to any of the given sectors.
	GetBySectors(sectors []string) ([]models.Attendant, error)
	// Create inserts a new attendant record.
	Create(attendant *models.Attendant) error
	// Update modifies an existing attendant record.
	Update(attendant *models.Attendant) error
	// Delete removes an attendant record by its ID.
	Delete(id string) error
}
