package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contrato válidos para Job.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Estados válidos para Job. El vencimiento de la fecha límite NO cambia el
// estado: solo el empleador lo cierra explícitamente.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// ValidJobType indica si el tipo de contrato es uno de los soportados.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// ValidJobStatus indica si el estado es uno de los soportados.
func ValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// Job representa una oferta de empleo. La tripla (Title, Company, EmployerID)
// es única en el store; lo garantiza el índice único de la tabla.
type Job struct {
	ID                   string
	Title                string
	Description          string
	Company              string
	Location             string
	Salary               *decimal.Decimal // opcional, no negativo
	Type                 string           // full-time | part-time | contract | internship
	RegistrationDeadline time.Time
	VerificationLink     string
	Requirements         []string
	Benefits             []string
	EmployerID           string
	Status               string // open | closed
	CreatedAt            time.Time
}

// IsExpired es un atributo derivado: la oferta venció si now pasó la fecha
// límite. Se calcula al responder, nunca se persiste.
func (j *Job) IsExpired() bool {
	return time.Now().After(j.RegistrationDeadline)
}

// EmployerRef vista pública mínima del empleador dueño de una oferta.
type EmployerRef struct {
	ID       string
	Fullname string
	Email    string
}

// JobWithEmployer oferta junto con la referencia pública a su empleador.
type JobWithEmployer struct {
	Job
	Employer EmployerRef
}
