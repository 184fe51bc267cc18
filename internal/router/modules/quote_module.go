package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/container"
	handlers "github.com/Uzma-Jawed/read-n-quote-app/internal/interface/http"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
)

// QuoteModule wires the quote routes, all behind the auth middleware.
type QuoteModule struct {
	Handler *handlers.QuoteHandler
	JWT     *helpers.JWTManager
}

func NewQuoteModule(h *handlers.QuoteHandler, jwt *helpers.JWTManager) *QuoteModule {
	return &QuoteModule{Handler: h, JWT: jwt}
}

func (m *QuoteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.GET("/quotes", m.Handler.List)
		auth.POST("/quotes", m.Handler.Create)
		auth.DELETE("/quotes/:id", m.Handler.Delete)
	}
}
