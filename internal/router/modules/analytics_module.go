package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/container"
	handlers "github.com/Uzma-Jawed/read-n-quote-app/internal/interface/http"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
)

// AnalyticsModule wires the read-only statistics routes.
type AnalyticsModule struct {
	Handler *handlers.AnalyticsHandler
	JWT     *helpers.JWTManager
}

func NewAnalyticsModule(h *handlers.AnalyticsHandler, jwt *helpers.JWTManager) *AnalyticsModule {
	return &AnalyticsModule{Handler: h, JWT: jwt}
}

func (m *AnalyticsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/analytics")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.GET("/stats", m.Handler.Stats)
		auth.GET("/completed/:year", m.Handler.CompletedInYear)
		auth.GET("/most-quoted", m.Handler.MostQuoted)
		auth.GET("/top-author", m.Handler.TopAuthor)
	}
}
