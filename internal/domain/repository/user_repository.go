package repository

import "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	Exists(username string) (bool, error)
}
