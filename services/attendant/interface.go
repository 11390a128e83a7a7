package attendant

import "agendly/models"

// AttendantService defines the interface for attendant management. It backs
// the administrative UI and supplies the distribution pool.
type AttendantService interface {
	GetByID(id string) (*models.Attendant, error)
	List() ([]models.Attendant, error)
	Create(attendant *models.Attendant) (*models.Attendant, error)
	Update(attendant *models.Attendant) (*models.Attendant, error)
	Delete(id string) error
	// PoolBySectors returns the cached active attendants for the sectors.
	PoolBySectors(sectors []string) ([]models.Attendant, error)
}
