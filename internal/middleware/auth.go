package middleware

import (
	"net/http"
	"strings"

	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the Bearer token, verifies it and stores the
// resulting principal in the request context. The token content is
// authoritative; the user table is not consulted here.
func AuthMiddleware(authenticator *auth.TokenAuthenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		principal, err := authenticator.Verify(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		ctx.Set(types.ContextUserKey, principal)
		ctx.Next()
	}
}
