package application

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	repo "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

// AnalyticsService derives aggregate statistics from the two
// repositories. Every function is a pure read over one user's data.
type AnalyticsService struct {
	Books  repo.BookRepository
	Quotes repo.QuoteRepository
	Logger *logrus.Logger
}

func NewAnalyticsService(books repo.BookRepository, quotes repo.QuoteRepository, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{Books: books, Quotes: quotes, Logger: logger}
}

// TopCount is a name with its tally, e.g. the most quoted book title.
type TopCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentBook pairs a book with its id for listing.
type RecentBook struct {
	ID   string      `json:"id"`
	Book entity.Book `json:"book"`
}

// ReadingStats is the aggregate overview for one user.
type ReadingStats struct {
	TotalBooks    int            `json:"total_books"`
	TotalQuotes   int            `json:"total_quotes"`
	BooksByStatus map[string]int `json:"books_by_status"`
	Genres        map[string]int `json:"genres"`
	RecentBooks   []RecentBook   `json:"recent_books"`
}

// BooksCompletedInYear returns books whose status is "Completed"
// (case-insensitive) and whose year field contains the decimal year as a
// substring. The loose containment match is long-standing behavior: a
// book with year "1920" matches a query for 192.
func (s *AnalyticsService) BooksCompletedInYear(username string, year int) (map[string]entity.Book, error) {
	books, err := s.Books.List(username)
	if err != nil {
		return nil, err
	}
	y := strconv.Itoa(year)
	out := map[string]entity.Book{}
	for id, b := range books {
		if strings.EqualFold(b.Status, entity.StatusCompleted) && strings.Contains(b.Year, y) {
			out[id] = b
		}
	}
	return out, nil
}

// BookWithMostQuotes tallies quotes by their stored book_title (not by
// book_id), returning nil when the user has no quotes. Ties go to the
// earliest-added title.
func (s *AnalyticsService) BookWithMostQuotes(username string) (*TopCount, error) {
	quotes, err := s.Quotes.List(username)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, nil
	}

	counts := map[string]int{}
	for _, q := range quotes {
		counts[q.BookTitle]++
	}

	var top *TopCount
	for _, q := range quotesByEntryDate(quotes) {
		if top == nil || counts[q.BookTitle] > top.Count {
			top = &TopCount{Name: q.BookTitle, Count: counts[q.BookTitle]}
		}
	}
	return top, nil
}

// AuthorWithMostBooks tallies books by author string; nil when the user
// has no books. Ties go to the earliest-added author.
func (s *AnalyticsService) AuthorWithMostBooks(username string) (*TopCount, error) {
	books, err := s.Books.List(username)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}

	counts := map[string]int{}
	for _, b := range books {
		counts[b.Author]++
	}

	var top *TopCount
	for _, b := range booksByEntryDate(books) {
		if top == nil || counts[b.Author] > top.Count {
			top = &TopCount{Name: b.Author, Count: counts[b.Author]}
		}
	}
	return top, nil
}

// ReadingStats computes totals, per-status and per-genre counts (a book
// contributes once per genre it lists), and the three most recently added
// books.
func (s *AnalyticsService) ReadingStats(username string) (*ReadingStats, error) {
	books, err := s.Books.List(username)
	if err != nil {
		return nil, err
	}
	quotes, err := s.Quotes.List(username)
	if err != nil {
		return nil, err
	}

	stats := &ReadingStats{
		TotalBooks:    len(books),
		TotalQuotes:   len(quotes),
		BooksByStatus: map[string]int{},
		Genres:        map[string]int{},
		RecentBooks:   []RecentBook{},
	}
	for _, b := range books {
		stats.BooksByStatus[b.Status]++
		for _, g := range b.Genres {
			stats.Genres[g]++
		}
	}

	recent := booksByEntryDate(books)
	// newest first
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	for _, b := range recent {
		if len(stats.RecentBooks) == 3 {
			break
		}
		stats.RecentBooks = append(stats.RecentBooks, RecentBook{ID: b.ID, Book: b})
	}
	return stats, nil
}

// booksByEntryDate orders a book map by entry date then id, a stable
// stand-in for the insertion order the documents were built in.
func booksByEntryDate(m map[string]entity.Book) []entity.Book {
	out := make([]entity.Book, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryDate != out[j].EntryDate {
			return out[i].EntryDate < out[j].EntryDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func quotesByEntryDate(m map[string]entity.Quote) []entity.Quote {
	out := make([]entity.Quote, 0, len(m))
	for _, q := range m {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryDate != out[j].EntryDate {
			return out[i].EntryDate < out[j].EntryDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}
