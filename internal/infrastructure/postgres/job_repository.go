package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/goodwork-api/internal/domain"
	"github.com/jhoicas/goodwork-api/internal/domain/entity"
	"github.com/jhoicas/goodwork-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

const jobWithEmployerColumns = `
	j.id, j.title, j.description, j.company, j.location, j.salary, j.type,
	j.registration_deadline, j.verification_link, j.requirements, j.benefits,
	j.employer_id, j.status, j.created_at,
	u.id, u.fullname, u.email`

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	pool *pgxpool.Pool
}

// NewJobRepository construye el adaptador de persistencia para ofertas.
func NewJobRepository(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

// Create persiste una nueva oferta. El índice único (title, company, employer_id)
// traduce la colisión a ErrDuplicate aunque el pre-chequeo del usecase pierda la carrera.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, title, description, company, location, salary, type,
			registration_deadline, verification_link, requirements, benefits,
			employer_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		job.ID, job.Title, job.Description, job.Company, job.Location, job.Salary, job.Type,
		job.RegistrationDeadline, job.VerificationLink, job.Requirements, job.Benefits,
		job.EmployerID, job.Status, job.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta con la referencia pública de su empleador.
func (r *JobRepo) GetByID(id string) (*entity.JobWithEmployer, error) {
	query := `
		SELECT ` + jobWithEmployerColumns + `
		FROM jobs j JOIN users u ON u.id = j.employer_id
		WHERE j.id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	jw, err := scanJobWithEmployer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return jw, nil
}

// FindDuplicate busca otra oferta con la misma tripla (title, company, employerID).
// excludeID vacío aplica en create; en update excluye la propia oferta.
func (r *JobRepo) FindDuplicate(title, company, employerID, excludeID string) (*entity.Job, error) {
	query := `
		SELECT id, title, description, company, location, salary, type,
			registration_deadline, verification_link, requirements, benefits,
			employer_id, status, created_at
		FROM jobs
		WHERE title = $1 AND company = $2 AND employer_id = $3 AND ($4 = '' OR id <> $4)`
	var j entity.Job
	err := r.pool.QueryRow(context.Background(), query, title, company, employerID, excludeID).Scan(
		&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.Salary, &j.Type,
		&j.RegistrationDeadline, &j.VerificationLink, &j.Requirements, &j.Benefits,
		&j.EmployerID, &j.Status, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find duplicate job: %w", err)
	}
	return &j, nil
}

// List devuelve todas las ofertas, más recientes primero, con empleador adjunto.
func (r *JobRepo) List() ([]*entity.JobWithEmployer, error) {
	query := `
		SELECT ` + jobWithEmployerColumns + `
		FROM jobs j JOIN users u ON u.id = j.employer_id
		ORDER BY j.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobWithEmployer
	for rows.Next() {
		jw, err := scanJobWithEmployer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, jw)
	}
	return list, rows.Err()
}

// Update persiste el merge parcial calculado por el usecase. employer_id y
// created_at no se tocan nunca.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET title = $2, description = $3, company = $4, location = $5,
			salary = $6, type = $7, registration_deadline = $8, verification_link = $9,
			requirements = $10, benefits = $11, status = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		job.ID, job.Title, job.Description, job.Company, job.Location,
		job.Salary, job.Type, job.RegistrationDeadline, job.VerificationLink,
		job.Requirements, job.Benefits, job.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina una oferta por ID.
func (r *JobRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func scanJobWithEmployer(row pgx.Row) (*entity.JobWithEmployer, error) {
	var jw entity.JobWithEmployer
	err := row.Scan(
		&jw.ID, &jw.Title, &jw.Description, &jw.Company, &jw.Location, &jw.Salary, &jw.Type,
		&jw.RegistrationDeadline, &jw.VerificationLink, &jw.Requirements, &jw.Benefits,
		&jw.EmployerID, &jw.Status, &jw.CreatedAt,
		&jw.Employer.ID, &jw.Employer.Fullname, &jw.Employer.Email,
	)
	if err != nil {
		return nil, err
	}
	return &jw, nil
}
