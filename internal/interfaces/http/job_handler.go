package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/goodwork-api/internal/application/dto"
	"github.com/jhoicas/goodwork-api/internal/application/job"
	"github.com/jhoicas/goodwork-api/internal/domain"
)

// JobHandler maneja las peticiones HTTP para ofertas de empleo.
// Lectura pública; create/update/delete detrás del AuthMiddleware.
type JobHandler struct {
	uc       *job.JobUseCase
	validate *validator.Validate
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *job.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc, validate: validator.New()}
}

// Create godoc
// @Summary      Publicar oferta (solo employer)
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.JobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, description, company y location son requeridos"})
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return jobError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ofertas (público, más recientes primero)
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  dto.JobResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener oferta por ID (público)
// @Tags         jobs
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar oferta (solo el empleador dueño; patch parcial)
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oferta"
// @Param        body  body  dto.UpdateJobRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.JobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar oferta (solo el empleador dueño)
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return jobError(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "oferta eliminada"})
}

// jobError traduce errores de dominio a códigos HTTP. Los errores inesperados
// se loggean con detalle y responden un mensaje genérico.
func jobError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oferta no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDeadlineRequired),
		errors.Is(err, domain.ErrDeadlinePast),
		errors.Is(err, domain.ErrLinkRequired),
		errors.Is(err, domain.ErrInvalidLink),
		errors.Is(err, domain.ErrNegativeSalary),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("operación de oferta falló")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
