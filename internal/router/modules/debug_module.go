package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/container"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP when redis is up
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
