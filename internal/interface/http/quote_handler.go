package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/response"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/validation"
)

type QuoteHandler struct {
	Svc    *application.QuoteService
	Logger *logrus.Logger
}

func NewQuoteHandler(svc *application.QuoteService, logger *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Logger: logger}
}

type createQuoteRequest struct {
	Text       string   `json:"text" binding:"required"`
	BookID     string   `json:"book_id" binding:"required"`
	PageNumber string   `json:"page_number"`
	Tags       []string `json:"tags"`
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Add(username, application.QuoteInput{
		Text:       req.Text,
		BookID:     req.BookID,
		PageNumber: req.PageNumber,
		Tags:       req.Tags,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			response.Error[any](c, http.StatusNotFound, "book not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to add quote", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "Quote added successfully", nil)
}

// List GET /api/quotes
// Query params: q (text substring), book (title substring), tag,
// sort (book|recent|random).
func (h *QuoteHandler) List(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)

	filter := application.QuoteFilter{
		Text:   c.Query("q"),
		Book:   c.Query("book"),
		Tag:    c.Query("tag"),
		SortBy: c.DefaultQuery("sort", "book"),
	}

	all, err := h.Svc.List(username)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list quotes", nil)
		return
	}
	quotes, err := h.Svc.Query(username, filter)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list quotes", nil)
		return
	}
	response.Success(c, http.StatusOK, quotes, "quotes",
		map[string]any{"shown": len(quotes), "total": len(all)})
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	id := c.Param("id")

	if err := h.Svc.Delete(username, id); err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			response.Error[any](c, http.StatusNotFound, "quote not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete quote", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "Quote deleted successfully", nil)
}
