package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/response"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/validation"
)

type BookHandler struct {
	Svc    *application.BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc *application.BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

type createBookRequest struct {
	Title  string   `json:"title" binding:"required"`
	Author string   `json:"author" binding:"required"`
	Year   string   `json:"year"`
	Genres []string `json:"genres"`
	Status string   `json:"status" binding:"omitempty,bookstatus"`
	Rating int      `json:"rating" binding:"omitempty,rating"`
	Notes  string   `json:"notes"`
}

type updateBookRequest struct {
	Title  *string   `json:"title"`
	Author *string   `json:"author"`
	Year   *string   `json:"year"`
	Genres *[]string `json:"genres"`
	Status *string   `json:"status" binding:"omitempty,bookstatus"`
	Rating *int      `json:"rating" binding:"omitempty,rating"`
	Notes  *string   `json:"notes"`
}

// bookView carries the map key alongside the record for API output.
type bookView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Year        string   `json:"year"`
	Genres      []string `json:"genres"`
	Status      string   `json:"status"`
	Rating      int      `json:"rating"`
	Notes       string   `json:"notes"`
	EntryDate   string   `json:"entry_date"`
	LastUpdated string   `json:"last_updated"`
}

func toBookView(b entity.Book) bookView {
	return bookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Genres:      b.Genres,
		Status:      b.Status,
		Rating:      b.Rating,
		Notes:       b.Notes,
		EntryDate:   b.EntryDate,
		LastUpdated: b.LastUpdated,
	}
}

// Create POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	status := req.Status
	if status == "" {
		status = entity.StatusWantToRead
	}
	id, err := h.Svc.Add(username, application.BookInput{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Genres: req.Genres,
		Status: status,
		Rating: req.Rating,
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to add book", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "Book added successfully", nil)
}

// List GET /api/books
// Query params: q (title or author substring), genre, status, min_rating,
// sort (title|author|year|rating|entry_date), desc (bool).
func (h *BookHandler) List(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)

	minRating, _ := strconv.Atoi(c.DefaultQuery("min_rating", "0"))
	desc, _ := strconv.ParseBool(c.DefaultQuery("desc", "false"))
	filter := application.BookFilter{
		Search:    c.Query("q"),
		Genre:     c.Query("genre"),
		Status:    c.Query("status"),
		MinRating: minRating,
		SortBy:    c.DefaultQuery("sort", "title"),
		Desc:      desc,
	}

	all, err := h.Svc.List(username)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list books", nil)
		return
	}
	books, err := h.Svc.Query(username, filter)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list books", nil)
		return
	}

	views := make([]bookView, 0, len(books))
	for _, b := range books {
		views = append(views, toBookView(b))
	}
	response.Success(c, http.StatusOK, views, "books",
		map[string]any{"shown": len(views), "total": len(all)})
}

// Update PUT /api/books/:id. Merge semantics: absent fields stay untouched.
func (h *BookHandler) Update(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	id := c.Param("id")

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.Update(username, id, entity.BookUpdate{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Genres: req.Genres,
		Status: req.Status,
		Rating: req.Rating,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			response.Error[any](c, http.StatusNotFound, "book not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update book", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "Book updated successfully", nil)
}

// Delete DELETE /api/books/:id. Cascades into the user's quotes.
func (h *BookHandler) Delete(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	id := c.Param("id")

	if err := h.Svc.Delete(username, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			response.Error[any](c, http.StatusNotFound, "book not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete book", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "Book deleted successfully", nil)
}
