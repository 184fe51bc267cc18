package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/response"
)

type AnalyticsHandler struct {
	Svc    *application.AnalyticsService
	Logger *logrus.Logger
}

func NewAnalyticsHandler(svc *application.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Svc: svc, Logger: logger}
}

// Stats GET /api/analytics/stats
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	stats, err := h.Svc.ReadingStats(username)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to compute stats", nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "reading stats", nil)
}

// CompletedInYear GET /api/analytics/completed/:year
func (h *AnalyticsHandler) CompletedInYear(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid year", nil)
		return
	}
	books, err := h.Svc.BooksCompletedInYear(username, year)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to compute completed books", nil)
		return
	}
	views := make([]bookView, 0, len(books))
	for id, b := range books {
		b.ID = id
		views = append(views, toBookView(b))
	}
	response.Success(c, http.StatusOK, views, "completed books", map[string]any{"year": year, "count": len(views)})
}

// MostQuoted GET /api/analytics/most-quoted
func (h *AnalyticsHandler) MostQuoted(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	top, err := h.Svc.BookWithMostQuotes(username)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to compute most quoted book", nil)
		return
	}
	if top == nil {
		response.Success[any](c, http.StatusOK, nil, "no quotes added yet", nil)
		return
	}
	response.Success(c, http.StatusOK, top, "most quoted book", nil)
}

// TopAuthor GET /api/analytics/top-author
func (h *AnalyticsHandler) TopAuthor(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	top, err := h.Svc.AuthorWithMostBooks(username)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to compute top author", nil)
		return
	}
	if top == nil {
		response.Success[any](c, http.StatusOK, nil, "no books added yet", nil)
		return
	}
	response.Success(c, http.StatusOK, top, "most read author", nil)
}
