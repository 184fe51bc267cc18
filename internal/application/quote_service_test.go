package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	repo "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

func TestQuoteService_AddCopiesBookTitle(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	id, err := f.quotes.Add("alice", QuoteInput{Text: "Fear is the mind-killer.", BookID: ids["Dune"], PageNumber: "8", Tags: []string{"litany"}})
	require.NoError(t, err)

	quotes, err := f.quotes.List("alice")
	require.NoError(t, err)
	q := quotes[id]
	assert.Equal(t, "Dune", q.BookTitle)
	assert.Equal(t, ids["Dune"], q.BookID)
	assert.Equal(t, []string{"litany"}, q.Tags)
}

func TestQuoteService_AddUnknownBook(t *testing.T) {
	f := newFixture(t)
	seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "orphan", BookID: "missing-id"})
	assert.ErrorIs(t, err, repo.ErrBookNotFound)
}

func TestQuoteService_AddDefaultsTags(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	id, err := f.quotes.Add("alice", QuoteInput{Text: "untagged", BookID: ids["Dune"]})
	require.NoError(t, err)

	quotes, err := f.quotes.List("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{}, quotes[id].Tags)
}

func TestQuoteService_QueryResolvesAuthor(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "Fear is the mind-killer.", BookID: ids["Dune"]})
	require.NoError(t, err)

	out, err := f.quotes.Query("alice", QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Frank Herbert", out[0].Author)
}

func TestQuoteService_QueryUnknownAuthorAfterTitleDrift(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "drifting", BookID: ids["Dune"]})
	require.NoError(t, err)

	// Renaming the book leaves the quote's stored title pointing at
	// nothing, so the author lookup falls back.
	title := "Dune (Collector's Edition)"
	require.NoError(t, f.books.Update("alice", ids["Dune"], entity.BookUpdate{Title: &title}))

	out, err := f.quotes.Query("alice", QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Dune", out[0].BookTitle)
	assert.Equal(t, "Unknown Author", out[0].Author)
}

func TestQuoteService_QueryFilters(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "Fear is the mind-killer.", BookID: ids["Dune"], Tags: []string{"litany", "fear"}})
	require.NoError(t, err)
	_, err = f.quotes.Add("alice", QuoteInput{Text: "Care about your craft.", BookID: ids["The Pragmatic Programmer"], Tags: []string{"craft"}})
	require.NoError(t, err)

	byText, err := f.quotes.Query("alice", QuoteFilter{Text: "MIND-KILLER"})
	require.NoError(t, err)
	require.Len(t, byText, 1)
	assert.Equal(t, "Fear is the mind-killer.", byText[0].Text)

	byBook, err := f.quotes.Query("alice", QuoteFilter{Book: "pragmatic"})
	require.NoError(t, err)
	require.Len(t, byBook, 1)
	assert.Equal(t, "Care about your craft.", byBook[0].Text)

	byTag, err := f.quotes.Query("alice", QuoteFilter{Tag: "fear"})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Fear is the mind-killer.", byTag[0].Text)
}

func TestQuoteService_QuerySortRecent(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "older", BookID: ids["Dune"]})
	require.NoError(t, err)
	_, err = f.quotes.Add("alice", QuoteInput{Text: "newer", BookID: ids["Dune"]})
	require.NoError(t, err)

	out, err := f.quotes.Query("alice", QuoteFilter{SortBy: "recent"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "newer", out[0].Text)
	assert.Equal(t, "older", out[1].Text)
}

func TestQuoteService_QuerySortByBook(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	_, err := f.quotes.Add("alice", QuoteInput{Text: "from pragprog", BookID: ids["The Pragmatic Programmer"]})
	require.NoError(t, err)
	_, err = f.quotes.Add("alice", QuoteInput{Text: "from dune", BookID: ids["Dune"]})
	require.NoError(t, err)

	out, err := f.quotes.Query("alice", QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Dune", out[0].BookTitle)
	assert.Equal(t, "The Pragmatic Programmer", out[1].BookTitle)
}

func TestQuoteService_QuerySortRandomKeepsSet(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	want := []string{"one", "two", "three"}
	for _, text := range want {
		_, err := f.quotes.Add("alice", QuoteInput{Text: text, BookID: ids["Dune"]})
		require.NoError(t, err)
	}

	out, err := f.quotes.Query("alice", QuoteFilter{SortBy: "random"})
	require.NoError(t, err)

	got := make([]string, 0, len(out))
	for _, q := range out {
		got = append(got, q.Text)
	}
	assert.ElementsMatch(t, want, got)
}

func TestQuoteService_Delete(t *testing.T) {
	f := newFixture(t)
	ids := seedBooks(t, f, "alice")

	id, err := f.quotes.Add("alice", QuoteInput{Text: "bye", BookID: ids["Dune"]})
	require.NoError(t, err)

	require.NoError(t, f.quotes.Delete("alice", id))
	assert.ErrorIs(t, f.quotes.Delete("alice", id), repo.ErrQuoteNotFound)
}
