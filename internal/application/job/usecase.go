package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/goodwork-api/internal/application/dto"
	"github.com/jhoicas/goodwork-api/internal/domain"
	"github.com/jhoicas/goodwork-api/internal/domain/entity"
	"github.com/jhoicas/goodwork-api/internal/domain/repository"
)

// JobUseCase casos de uso CRUD para ofertas de empleo. Aplica las reglas de
// negocio (rol employer, deadline futura, URL, duplicados) y el chequeo de
// propiedad: solo el empleador dueño puede modificar o borrar su oferta.
type JobUseCase struct {
	repo repository.JobRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(repo repository.JobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

// Create publica una oferta a nombre de la identidad. Solo employers.
// La tripla (title, company, employer) debe ser única; el pre-chequeo da el
// mensaje amable y el índice único de la DB cierra la carrera check-then-insert.
func (uc *JobUseCase) Create(ident domain.Identity, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !ident.IsEmployer() {
		return nil, domain.ErrForbidden
	}
	if in.RegistrationDeadline.IsZero() {
		return nil, domain.ErrDeadlineRequired
	}
	if !domain.FutureDeadline(in.RegistrationDeadline, time.Now()) {
		return nil, domain.ErrDeadlinePast
	}
	if in.VerificationLink == "" {
		return nil, domain.ErrLinkRequired
	}
	if !domain.ValidLink(in.VerificationLink) {
		return nil, domain.ErrInvalidLink
	}
	if in.Salary != nil && in.Salary.IsNegative() {
		return nil, domain.ErrNegativeSalary
	}
	jobType := in.Type
	if jobType == "" {
		jobType = entity.JobTypeFullTime
	}
	if !entity.ValidJobType(jobType) {
		return nil, domain.ErrInvalidInput
	}

	dup, err := uc.repo.FindDuplicate(in.Title, in.Company, ident.ID, "")
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.ErrDuplicate
	}

	j := &entity.Job{
		ID:                   uuid.New().String(),
		Title:                in.Title,
		Description:          in.Description,
		Company:              in.Company,
		Location:             in.Location,
		Salary:               in.Salary,
		Type:                 jobType,
		RegistrationDeadline: in.RegistrationDeadline,
		VerificationLink:     in.VerificationLink,
		Requirements:         in.Requirements,
		Benefits:             in.Benefits,
		EmployerID:           ident.ID,
		Status:               entity.JobStatusOpen,
		CreatedAt:            time.Now(),
	}
	if err := uc.repo.Create(j); err != nil {
		return nil, err
	}
	return toJobResponse(j, nil), nil
}

// List devuelve todas las ofertas, más recientes primero, con la referencia
// pública del empleador adjunta. Sin paginación: dataset asumido pequeño.
func (uc *JobUseCase) List() ([]dto.JobResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, jw := range list {
		items = append(items, *toJobResponse(&jw.Job, &jw.Employer))
	}
	return items, nil
}

// GetByID obtiene una oferta con su empleador. ErrNotFound si no existe.
func (uc *JobUseCase) GetByID(id string) (*dto.JobResponse, error) {
	jw, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if jw == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(&jw.Job, &jw.Employer), nil
}

// Update aplica un patch parcial sobre la oferta: solo los campos presentes se
// re-validan y se mergean. id, employerId y createdAt quedan fuera del alcance
// del patch por construcción del DTO.
func (uc *JobUseCase) Update(ident domain.Identity, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	jw, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if jw == nil {
		return nil, domain.ErrNotFound
	}
	j := jw.Job
	if j.EmployerID != ident.ID {
		return nil, domain.ErrForbidden
	}

	if in.RegistrationDeadline != nil && !domain.FutureDeadline(*in.RegistrationDeadline, time.Now()) {
		return nil, domain.ErrDeadlinePast
	}
	if in.VerificationLink != nil && !domain.ValidLink(*in.VerificationLink) {
		return nil, domain.ErrInvalidLink
	}
	if in.Salary != nil && in.Salary.IsNegative() {
		return nil, domain.ErrNegativeSalary
	}
	if in.Type != nil && !entity.ValidJobType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !entity.ValidJobStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}

	// Re-chequeo de duplicado solo si el patch trae título Y empresa,
	// excluyendo la propia oferta de la colisión.
	if in.Title != nil && in.Company != nil {
		dup, err := uc.repo.FindDuplicate(*in.Title, *in.Company, ident.ID, j.ID)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}

	if in.Title != nil {
		j.Title = *in.Title
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Company != nil {
		j.Company = *in.Company
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.Salary != nil {
		j.Salary = in.Salary
	}
	if in.Type != nil {
		j.Type = *in.Type
	}
	if in.RegistrationDeadline != nil {
		j.RegistrationDeadline = *in.RegistrationDeadline
	}
	if in.VerificationLink != nil {
		j.VerificationLink = *in.VerificationLink
	}
	if in.Requirements != nil {
		j.Requirements = in.Requirements
	}
	if in.Benefits != nil {
		j.Benefits = in.Benefits
	}
	if in.Status != nil {
		j.Status = *in.Status
	}

	if err := uc.repo.Update(&j); err != nil {
		return nil, err
	}
	return toJobResponse(&j, &jw.Employer), nil
}

// Delete elimina la oferta si la identidad es su dueña.
func (uc *JobUseCase) Delete(ident domain.Identity, id string) error {
	jw, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if jw == nil {
		return domain.ErrNotFound
	}
	if jw.EmployerID != ident.ID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toJobResponse(j *entity.Job, emp *entity.EmployerRef) *dto.JobResponse {
	if j == nil {
		return nil
	}
	resp := &dto.JobResponse{
		ID:                   j.ID,
		Title:                j.Title,
		Description:          j.Description,
		Company:              j.Company,
		Location:             j.Location,
		Salary:               j.Salary,
		Type:                 j.Type,
		RegistrationDeadline: j.RegistrationDeadline,
		VerificationLink:     j.VerificationLink,
		Requirements:         j.Requirements,
		Benefits:             j.Benefits,
		EmployerID:           j.EmployerID,
		Status:               j.Status,
		CreatedAt:            j.CreatedAt,
		IsExpired:            j.IsExpired(),
	}
	if emp != nil {
		resp.Employer = &dto.EmployerResponse{ID: emp.ID, Fullname: emp.Fullname, Email: emp.Email}
	}
	return resp
}
