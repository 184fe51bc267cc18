package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/container"
	handlers "github.com/Uzma-Jawed/read-n-quote-app/internal/interface/http"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
)

// BookModule wires the book CRUD routes, all behind the auth middleware.
type BookModule struct {
	Handler *handlers.BookHandler
	JWT     *helpers.JWTManager
}

func NewBookModule(h *handlers.BookHandler, jwt *helpers.JWTManager) *BookModule {
	return &BookModule{Handler: h, JWT: jwt}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.GET("/books", m.Handler.List)
		auth.POST("/books", m.Handler.Create)
		auth.PUT("/books/:id", m.Handler.Update)
		auth.DELETE("/books/:id", m.Handler.Delete)
	}
}
