package application

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	repo "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

// QuoteService provides CRUD over one user's quotes plus the read-side
// filter/sort projection.
type QuoteService struct {
	Quotes repo.QuoteRepository
	Books  repo.BookRepository
	Logger *logrus.Logger
}

func NewQuoteService(quotes repo.QuoteRepository, books repo.BookRepository, logger *logrus.Logger) *QuoteService {
	return &QuoteService{Quotes: quotes, Books: books, Logger: logger}
}

type QuoteInput struct {
	Text       string
	BookID     string
	PageNumber string
	Tags       []string
}

// QuoteFilter narrows and orders a quote listing; substring matches are
// case-insensitive. SortBy is book, recent, or random.
type QuoteFilter struct {
	Text   string
	Book   string
	Tag    string
	SortBy string
}

// QuoteView is a quote projected for display: the author is resolved
// through the denormalized book title at read time, so it can drift or
// fall back to "Unknown Author" when the title no longer matches a book.
type QuoteView struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	BookTitle  string   `json:"book_title"`
	Author     string   `json:"author"`
	PageNumber string   `json:"page_number"`
	Tags       []string `json:"tags"`
	EntryDate  string   `json:"entry_date"`
}

// Add stores a quote. The book title is copied from the referenced book
// at creation time and never updated afterwards.
func (s *QuoteService) Add(username string, in QuoteInput) (string, error) {
	books, err := s.Books.List(username)
	if err != nil {
		return "", err
	}
	book, ok := books[in.BookID]
	if !ok {
		return "", repo.ErrBookNotFound
	}

	q := &entity.Quote{
		Text:       in.Text,
		BookTitle:  book.Title,
		BookID:     in.BookID,
		PageNumber: in.PageNumber,
		Tags:       in.Tags,
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	id, err := s.Quotes.Add(username, q)
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"username": username, "quote_id": id}).Info("quote added")
	}
	return id, nil
}

// List returns the user's full quote set keyed by id.
func (s *QuoteService) List(username string) (map[string]entity.Quote, error) {
	return s.Quotes.List(username)
}

// Query applies the filter projection and returns an ordered slice.
func (s *QuoteService) Query(username string, f QuoteFilter) ([]QuoteView, error) {
	quotes, err := s.Quotes.List(username)
	if err != nil {
		return nil, err
	}
	books, err := s.Books.List(username)
	if err != nil {
		return nil, err
	}

	out := make([]QuoteView, 0, len(quotes))
	for id, q := range quotes {
		if !matchQuote(q, f) {
			continue
		}
		out = append(out, QuoteView{
			ID:         id,
			Text:       q.Text,
			BookTitle:  q.BookTitle,
			Author:     authorForTitle(books, q.BookTitle),
			PageNumber: q.PageNumber,
			Tags:       q.Tags,
			EntryDate:  q.EntryDate,
		})
	}

	switch f.SortBy {
	case "random":
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	case "recent":
		sort.Slice(out, func(i, j int) bool {
			if out[i].EntryDate != out[j].EntryDate {
				return out[i].EntryDate > out[j].EntryDate
			}
			return out[i].ID < out[j].ID
		})
	default: // book
		sort.Slice(out, func(i, j int) bool {
			if out[i].BookTitle != out[j].BookTitle {
				return out[i].BookTitle < out[j].BookTitle
			}
			if out[i].Author != out[j].Author {
				return out[i].Author < out[j].Author
			}
			return out[i].ID < out[j].ID
		})
	}
	return out, nil
}

func matchQuote(q entity.Quote, f QuoteFilter) bool {
	if f.Text != "" && !strings.Contains(strings.ToLower(q.Text), strings.ToLower(f.Text)) {
		return false
	}
	if f.Book != "" && !strings.Contains(strings.ToLower(q.BookTitle), strings.ToLower(f.Book)) {
		return false
	}
	if f.Tag != "" {
		t := strings.ToLower(f.Tag)
		found := false
		for _, tag := range q.Tags {
			if strings.Contains(strings.ToLower(tag), t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func authorForTitle(books map[string]entity.Book, title string) string {
	for _, b := range books {
		if b.Title == title {
			return b.Author
		}
	}
	return "Unknown Author"
}

func (s *QuoteService) Delete(username, id string) error {
	return s.Quotes.Delete(username, id)
}
