package repository

import "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"

// QuoteRepository defines persistence operations over one user's quotes.
type QuoteRepository interface {
	Add(username string, q *entity.Quote) (string, error)
	List(username string) (map[string]entity.Quote, error)
	Delete(username, id string) error
	// InitUser creates an empty quote sub-collection for a new user.
	InitUser(username string) error
}
