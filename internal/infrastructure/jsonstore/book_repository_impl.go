package jsonstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

type BookRepository struct {
	store *Store

	// Now supplies timestamps; tests override it for determinism.
	Now func() time.Time
}

func NewBookRepository(store *Store) *BookRepository {
	return &BookRepository{store: store, Now: time.Now}
}

func (r *BookRepository) InitUser(username string) error {
	defer r.store.Lock(CollectionBooks)()

	books := booksDoc{}
	r.store.Load(CollectionBooks, &books)
	books[username] = userBooks{Books: map[string]entity.Book{}}
	return r.store.Save(CollectionBooks, books)
}

func (r *BookRepository) Add(username string, b *entity.Book) (string, error) {
	defer r.store.Lock(CollectionBooks)()

	books := booksDoc{}
	r.store.Load(CollectionBooks, &books)

	ub, ok := books[username]
	if !ok || ub.Books == nil {
		ub = userBooks{Books: map[string]entity.Book{}}
	}

	id := uuid.NewString()
	now := r.Now().Format(entity.TimeLayout)
	b.ID = id
	b.EntryDate = now
	b.LastUpdated = now

	ub.Books[id] = *b
	books[username] = ub
	if err := r.store.Save(CollectionBooks, books); err != nil {
		return "", err
	}
	return id, nil
}

func (r *BookRepository) List(username string) (map[string]entity.Book, error) {
	defer r.store.Lock(CollectionBooks)()

	books := booksDoc{}
	r.store.Load(CollectionBooks, &books)

	out := map[string]entity.Book{}
	for id, b := range books[username].Books {
		b.ID = id
		out[id] = b
	}
	return out, nil
}

// Update merges the supplied fields into the stored record and refreshes
// last_updated. Fields left nil are untouched.
func (r *BookRepository) Update(username, id string, upd entity.BookUpdate) error {
	defer r.store.Lock(CollectionBooks)()

	books := booksDoc{}
	r.store.Load(CollectionBooks, &books)

	ub, ok := books[username]
	if !ok {
		return repository.ErrBookNotFound
	}
	b, ok := ub.Books[id]
	if !ok {
		return repository.ErrBookNotFound
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Year != nil {
		b.Year = *upd.Year
	}
	if upd.Genres != nil {
		b.Genres = *upd.Genres
	}
	if upd.Status != nil {
		b.Status = *upd.Status
	}
	if upd.Rating != nil {
		b.Rating = *upd.Rating
	}
	if upd.Notes != nil {
		b.Notes = *upd.Notes
	}
	b.LastUpdated = r.Now().Format(entity.TimeLayout)

	ub.Books[id] = b
	books[username] = ub
	return r.store.Save(CollectionBooks, books)
}

// Delete removes the book and cascades into the same user's quotes,
// dropping every quote whose book_id references the deleted book.
func (r *BookRepository) Delete(username, id string) error {
	if err := r.deleteBook(username, id); err != nil {
		return err
	}
	return r.cascadeQuotes(username, id)
}

func (r *BookRepository) deleteBook(username, id string) error {
	defer r.store.Lock(CollectionBooks)()

	books := booksDoc{}
	r.store.Load(CollectionBooks, &books)

	ub, ok := books[username]
	if !ok {
		return repository.ErrBookNotFound
	}
	if _, ok := ub.Books[id]; !ok {
		return repository.ErrBookNotFound
	}
	delete(ub.Books, id)
	books[username] = ub
	return r.store.Save(CollectionBooks, books)
}

func (r *BookRepository) cascadeQuotes(username, bookID string) error {
	defer r.store.Lock(CollectionQuotes)()

	quotes := quotesDoc{}
	r.store.Load(CollectionQuotes, &quotes)

	uq, ok := quotes[username]
	if !ok {
		return nil
	}
	for qid, q := range uq.Quotes {
		if q.BookID == bookID {
			delete(uq.Quotes, qid)
		}
	}
	quotes[username] = uq
	return r.store.Save(CollectionQuotes, quotes)
}

var _ repository.BookRepository = (*BookRepository)(nil)
