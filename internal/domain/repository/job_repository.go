package repository

import "github.com/jhoicas/goodwork-api/internal/domain/entity"

// JobRepository puerto de persistencia para ofertas de empleo.
// Los métodos Get*/Find* devuelven (nil, nil) cuando no hay fila.
type JobRepository interface {
	Create(job *entity.Job) error
	// GetByID devuelve la oferta con la referencia pública de su empleador.
	GetByID(id string) (*entity.JobWithEmployer, error)
	// FindDuplicate busca otra oferta con la misma tripla (title, company, employerID),
	// excluyendo excludeID si no está vacío.
	FindDuplicate(title, company, employerID, excludeID string) (*entity.Job, error)
	// List devuelve todas las ofertas, más recientes primero, con empleador adjunto.
	List() ([]*entity.JobWithEmployer, error)
	Update(job *entity.Job) error
	Delete(id string) error
}
