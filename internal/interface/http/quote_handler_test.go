package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuote(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	bookID := app.addBook(gin.H{"title": "Dune", "author": "Frank Herbert"})

	w := app.do(http.MethodPost, "/api/quotes", gin.H{
		"text":        "Fear is the mind-killer.",
		"book_id":     bookID,
		"page_number": "8",
		"tags":        []string{"litany"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decode(t, w).data()["id"])

	w = app.do(http.MethodGet, "/api/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quotes := decode(t, w).dataList()
	require.Len(t, quotes, 1)
	assert.Equal(t, "Dune", quotes[0]["book_title"])
	assert.Equal(t, "Frank Herbert", quotes[0]["author"])
	assert.Equal(t, "8", quotes[0]["page_number"])
}

func TestCreateQuoteUnknownBook(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	w := app.do(http.MethodPost, "/api/quotes", gin.H{"text": "orphan", "book_id": "missing-id"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateQuoteValidation(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	w := app.do(http.MethodPost, "/api/quotes", gin.H{"text": "no book"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/quotes", gin.H{"book_id": "b1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListQuotesFiltered(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	dune := app.addBook(gin.H{"title": "Dune", "author": "Frank Herbert"})
	prag := app.addBook(gin.H{"title": "The Pragmatic Programmer", "author": "Andrew Hunt"})

	w := app.do(http.MethodPost, "/api/quotes", gin.H{"text": "Fear is the mind-killer.", "book_id": dune, "tags": []string{"fear"}})
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.do(http.MethodPost, "/api/quotes", gin.H{"text": "Care about your craft.", "book_id": prag, "tags": []string{"craft"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodGet, "/api/quotes?q=mind-killer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	require.Len(t, env.dataList(), 1)
	assert.EqualValues(t, 1, env.Meta["shown"])
	assert.EqualValues(t, 2, env.Meta["total"])

	w = app.do(http.MethodGet, "/api/quotes?tag=craft", nil)
	quotes := decode(t, w).dataList()
	require.Len(t, quotes, 1)
	assert.Equal(t, "Care about your craft.", quotes[0]["text"])

	w = app.do(http.MethodGet, "/api/quotes?book=pragmatic", nil)
	quotes = decode(t, w).dataList()
	require.Len(t, quotes, 1)
	assert.Equal(t, "The Pragmatic Programmer", quotes[0]["book_title"])
}

func TestListQuotesSortedByBook(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	prag := app.addBook(gin.H{"title": "The Pragmatic Programmer", "author": "Andrew Hunt"})
	dune := app.addBook(gin.H{"title": "Dune", "author": "Frank Herbert"})

	w := app.do(http.MethodPost, "/api/quotes", gin.H{"text": "second", "book_id": prag})
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.do(http.MethodPost, "/api/quotes", gin.H{"text": "first", "book_id": dune})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodGet, "/api/quotes", nil)
	quotes := decode(t, w).dataList()
	require.Len(t, quotes, 2)
	assert.Equal(t, "Dune", quotes[0]["book_title"])
	assert.Equal(t, "The Pragmatic Programmer", quotes[1]["book_title"])
}

func TestDeleteQuote(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	bookID := app.addBook(gin.H{"title": "Dune", "author": "Frank Herbert"})
	w := app.do(http.MethodPost, "/api/quotes", gin.H{"text": "bye", "book_id": bookID})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w).data()["id"].(string)

	w = app.do(http.MethodDelete, "/api/quotes/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodDelete, "/api/quotes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
