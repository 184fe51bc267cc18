package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/response"
)

// CtxUsernameKey is the Gin context key the authenticated username is
// stored under; every repository and analytics call receives it
// explicitly from there.
const CtxUsernameKey = "username"

// Auth reads the access_token cookie, validates it, and injects the
// username into the context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}
