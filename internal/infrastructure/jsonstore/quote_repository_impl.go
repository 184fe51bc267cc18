package jsonstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

type QuoteRepository struct {
	store *Store

	Now func() time.Time
}

func NewQuoteRepository(store *Store) *QuoteRepository {
	return &QuoteRepository{store: store, Now: time.Now}
}

func (r *QuoteRepository) InitUser(username string) error {
	defer r.store.Lock(CollectionQuotes)()

	quotes := quotesDoc{}
	r.store.Load(CollectionQuotes, &quotes)
	quotes[username] = userQuotes{Quotes: map[string]entity.Quote{}}
	return r.store.Save(CollectionQuotes, quotes)
}

func (r *QuoteRepository) Add(username string, q *entity.Quote) (string, error) {
	defer r.store.Lock(CollectionQuotes)()

	quotes := quotesDoc{}
	r.store.Load(CollectionQuotes, &quotes)

	uq, ok := quotes[username]
	if !ok || uq.Quotes == nil {
		uq = userQuotes{Quotes: map[string]entity.Quote{}}
	}

	id := uuid.NewString()
	q.ID = id
	q.EntryDate = r.Now().Format(entity.TimeLayout)

	uq.Quotes[id] = *q
	quotes[username] = uq
	if err := r.store.Save(CollectionQuotes, quotes); err != nil {
		return "", err
	}
	return id, nil
}

func (r *QuoteRepository) List(username string) (map[string]entity.Quote, error) {
	defer r.store.Lock(CollectionQuotes)()

	quotes := quotesDoc{}
	r.store.Load(CollectionQuotes, &quotes)

	out := map[string]entity.Quote{}
	for id, q := range quotes[username].Quotes {
		q.ID = id
		out[id] = q
	}
	return out, nil
}

func (r *QuoteRepository) Delete(username, id string) error {
	defer r.store.Lock(CollectionQuotes)()

	quotes := quotesDoc{}
	r.store.Load(CollectionQuotes, &quotes)

	uq, ok := quotes[username]
	if !ok {
		return repository.ErrQuoteNotFound
	}
	if _, ok := uq.Quotes[id]; !ok {
		return repository.ErrQuoteNotFound
	}
	delete(uq.Quotes, id)
	quotes[username] = uq
	return r.store.Save(CollectionQuotes, quotes)
}

var _ repository.QuoteRepository = (*QuoteRepository)(nil)
