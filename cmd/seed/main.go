// Comando de seed para desarrollo: crea un empleador demo y dos ofertas
// abiertas. Idempotente a nivel de DB: si ya existen, los índices únicos
// hacen que el insert repetido termine en duplicado y se omita.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/goodwork-api/internal/domain"
	"github.com/jhoicas/goodwork-api/internal/domain/entity"
	"github.com/jhoicas/goodwork-api/internal/infrastructure/postgres"
	"github.com/jhoicas/goodwork-api/pkg/config"
	"github.com/jhoicas/goodwork-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}

	employer := &entity.User{
		ID:           uuid.New().String(),
		Fullname:     "Acme Recruiting",
		Email:        "jobs@acme.com",
		PasswordHash: string(hash),
		Role:         entity.RoleEmployer,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(employer); err != nil {
		if err != domain.ErrEmailAlreadyExists {
			log.Fatal().Err(err).Msg("seed de empleador")
		}
		existing, err := userRepo.GetByEmail(employer.Email)
		if err != nil || existing == nil {
			log.Fatal().Err(err).Msg("recuperar empleador existente")
		}
		employer = existing
		log.Info().Str("email", employer.Email).Msg("empleador ya existía")
	} else {
		log.Info().Str("email", employer.Email).Msg("empleador creado")
	}

	salary := decimal.NewFromInt(250000)
	seedJobs := []*entity.Job{
		{
			ID:                   uuid.New().String(),
			Title:                "Backend Developer",
			Description:          "API Go + PostgreSQL para el job board.",
			Company:              "Acme",
			Location:             "Lagos",
			Salary:               &salary,
			Type:                 entity.JobTypeFullTime,
			RegistrationDeadline: time.Now().AddDate(0, 1, 0),
			VerificationLink:     "https://acme.com/apply",
			Requirements:         []string{"Go", "PostgreSQL"},
			Benefits:             []string{"Remoto"},
			EmployerID:           employer.ID,
			Status:               entity.JobStatusOpen,
			CreatedAt:            time.Now(),
		},
		{
			ID:                   uuid.New().String(),
			Title:                "Frontend Intern",
			Description:          "Cliente React del job board.",
			Company:              "Acme",
			Location:             "Remote",
			Type:                 entity.JobTypeInternship,
			RegistrationDeadline: time.Now().AddDate(0, 0, 14),
			VerificationLink:     "https://acme.com/apply/intern",
			Requirements:         []string{"React"},
			EmployerID:           employer.ID,
			Status:               entity.JobStatusOpen,
			CreatedAt:            time.Now(),
		},
	}
	for _, j := range seedJobs {
		if err := jobRepo.Create(j); err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("title", j.Title).Msg("oferta ya existía")
				continue
			}
			log.Fatal().Err(err).Str("title", j.Title).Msg("seed de oferta")
		}
		log.Info().Str("title", j.Title).Msg("oferta creada")
	}
}
