package repository

import "github.com/jhoicas/goodwork-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
