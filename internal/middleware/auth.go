package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"metrics-consolidation-backend/internal/model"
)

// RequireAPIKey guards a route group with a static X-API-Key check. It is
// only attached when a key is configured; see cmd/main.go.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		supplied := ctx.GetHeader("X-API-Key")
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, model.NewResponse("Unauthorized", nil))
			return
		}
		ctx.Next()
	}
}
