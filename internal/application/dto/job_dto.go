package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest datos para publicar una oferta. Deadline y link tienen
// reglas de negocio propias que valida el usecase (mensajes específicos).
type CreateJobRequest struct {
	Title                string           `json:"title" validate:"required"`
	Description          string           `json:"description" validate:"required"`
	Company              string           `json:"company" validate:"required"`
	Location             string           `json:"location" validate:"required"`
	Salary               *decimal.Decimal `json:"salary"`
	Type                 string           `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	RegistrationDeadline time.Time        `json:"registrationDeadline"`
	VerificationLink     string           `json:"verificationLink"`
	Requirements         []string         `json:"requirements"`
	Benefits             []string         `json:"benefits"`
}

// UpdateJobRequest patch parcial: solo los campos presentes se aplican.
// La whitelist de punteros impide tocar id, employerId o createdAt.
type UpdateJobRequest struct {
	Title                *string          `json:"title"`
	Description          *string          `json:"description"`
	Company              *string          `json:"company"`
	Location             *string          `json:"location"`
	Salary               *decimal.Decimal `json:"salary"`
	Type                 *string          `json:"type"`
	RegistrationDeadline *time.Time       `json:"registrationDeadline"`
	VerificationLink     *string          `json:"verificationLink"`
	Requirements         []string         `json:"requirements"`
	Benefits             []string         `json:"benefits"`
	Status               *string          `json:"status"`
}

// EmployerResponse referencia pública al empleador dueño de la oferta.
type EmployerResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// JobResponse oferta serializada para el cliente. IsExpired es derivado:
// se calcula al momento de responder, no se persiste.
type JobResponse struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Company              string            `json:"company"`
	Location             string            `json:"location"`
	Salary               *decimal.Decimal  `json:"salary,omitempty"`
	Type                 string            `json:"type"`
	RegistrationDeadline time.Time         `json:"registrationDeadline"`
	VerificationLink     string            `json:"verificationLink"`
	Requirements         []string          `json:"requirements"`
	Benefits             []string          `json:"benefits"`
	EmployerID           string            `json:"employerId"`
	Employer             *EmployerResponse `json:"employer,omitempty"`
	Status               string            `json:"status"`
	CreatedAt            time.Time         `json:"createdAt"`
	IsExpired            bool              `json:"isExpired"`
}
