package jsonstore

import "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"

// Document shapes as persisted on disk. Each top-level document maps a
// username to that user's sub-collection.

type usersDoc map[string]entity.User

type userBooks struct {
	Books map[string]entity.Book `json:"books"`
}

type booksDoc map[string]userBooks

type userQuotes struct {
	Quotes map[string]entity.Quote `json:"quotes"`
}

type quotesDoc map[string]userQuotes
