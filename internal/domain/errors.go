package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado; el mensaje viaja tal cual al cliente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("ya publicaste una oferta con este título y empresa")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Reglas de negocio de ofertas: mensajes específicos que el cliente muestra tal cual.
	ErrDeadlineRequired = errors.New("la fecha límite de postulación es requerida")
	ErrDeadlinePast     = errors.New("la fecha límite de postulación debe ser futura")
	ErrLinkRequired     = errors.New("el enlace de postulación es requerido")
	ErrInvalidLink      = errors.New("el enlace de postulación debe ser una URL válida")
	ErrNegativeSalary   = errors.New("el salario no puede ser negativo")
)
