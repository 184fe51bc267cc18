package application

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	repo "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

// BookService provides CRUD over one user's books plus the read-side
// filter/sort projection. Filtering is computed fresh on each query, not
// stored.
type BookService struct {
	Books  repo.BookRepository
	Logger *logrus.Logger
}

func NewBookService(books repo.BookRepository, logger *logrus.Logger) *BookService {
	return &BookService{Books: books, Logger: logger}
}

type BookInput struct {
	Title  string
	Author string
	Year   string
	Genres []string
	Status string
	Rating int
	Notes  string
}

// BookFilter narrows and orders a book listing. Zero values mean "no
// constraint". Search matches title or author, Genre matches any listed
// genre, all case-insensitive substrings; Status is an exact match.
type BookFilter struct {
	Search    string
	Genre     string
	Status    string
	MinRating int
	SortBy    string // title, author, year, rating, entry_date
	Desc      bool
}

func (s *BookService) Add(username string, in BookInput) (string, error) {
	b := &entity.Book{
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
		Genres: in.Genres,
		Status: in.Status,
		Rating: in.Rating,
		Notes:  in.Notes,
	}
	if b.Genres == nil {
		b.Genres = []string{}
	}
	id, err := s.Books.Add(username, b)
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"username": username, "book_id": id}).Info("book added")
	}
	return id, nil
}

// List returns the user's full book set keyed by id, empty when none.
func (s *BookService) List(username string) (map[string]entity.Book, error) {
	return s.Books.List(username)
}

// Query applies the filter projection and returns an ordered slice.
func (s *BookService) Query(username string, f BookFilter) ([]entity.Book, error) {
	books, err := s.Books.List(username)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if !matchBook(b, f) {
			continue
		}
		out = append(out, b)
	}
	sortBooks(out, f.SortBy, f.Desc)
	return out, nil
}

func matchBook(b entity.Book, f BookFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		titleMatch := strings.Contains(strings.ToLower(b.Title), q)
		authorMatch := strings.Contains(strings.ToLower(b.Author), q)
		if !titleMatch && !authorMatch {
			return false
		}
	}
	if f.Genre != "" {
		g := strings.ToLower(f.Genre)
		found := false
		for _, genre := range b.Genres {
			if strings.Contains(strings.ToLower(genre), g) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if b.Rating < f.MinRating {
		return false
	}
	return true
}

func sortBooks(books []entity.Book, sortBy string, desc bool) {
	var less func(a, b entity.Book) bool
	switch sortBy {
	case "author":
		less = func(a, b entity.Book) bool { return strings.ToLower(a.Author) < strings.ToLower(b.Author) }
	case "year":
		less = func(a, b entity.Book) bool { return strings.ToLower(a.Year) < strings.ToLower(b.Year) }
	case "rating":
		less = func(a, b entity.Book) bool { return a.Rating < b.Rating }
	case "entry_date":
		less = func(a, b entity.Book) bool { return a.EntryDate < b.EntryDate }
	default: // title
		less = func(a, b entity.Book) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	}
	sort.SliceStable(books, func(i, j int) bool {
		if desc {
			return less(books[j], books[i])
		}
		return less(books[i], books[j])
	})
}

// Update merges the supplied fields; untouched fields keep their values.
func (s *BookService) Update(username, id string, upd entity.BookUpdate) error {
	return s.Books.Update(username, id, upd)
}

// Delete removes the book and cascades into the user's quotes.
func (s *BookService) Delete(username, id string) error {
	if err := s.Books.Delete(username, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"username": username, "book_id": id}).Info("book deleted")
	}
	return nil
}
