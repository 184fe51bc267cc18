package jsonstore

import (
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(u *entity.User) error {
	defer r.store.Lock(CollectionUsers)()

	users := usersDoc{}
	r.store.Load(CollectionUsers, &users)
	users[u.Username] = *u
	return r.store.Save(CollectionUsers, users)
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	defer r.store.Lock(CollectionUsers)()

	users := usersDoc{}
	r.store.Load(CollectionUsers, &users)
	u, ok := users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Username = username
	return &u, nil
}

func (r *UserRepository) Exists(username string) (bool, error) {
	defer r.store.Lock(CollectionUsers)()

	users := usersDoc{}
	r.store.Load(CollectionUsers, &users)
	_, ok := users[username]
	return ok, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
