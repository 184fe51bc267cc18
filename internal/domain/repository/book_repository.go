package repository

import "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"

// BookRepository defines persistence operations over one user's books.
type BookRepository interface {
	Add(username string, b *entity.Book) (string, error)
	List(username string) (map[string]entity.Book, error)
	Update(username, id string, upd entity.BookUpdate) error
	// Delete removes the book and every quote of the same user whose
	// book_id references it.
	Delete(username, id string) error
	// InitUser creates an empty book sub-collection for a new user.
	InitUser(username string) error
}
