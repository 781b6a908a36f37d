package utils

import (
	"fmt"

	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUser(ctx *gin.Context) (auth.Principal, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return auth.Principal{}, fmt.Errorf("User not authenticated")
	}

	principal, ok := user.(auth.Principal)

	if !ok {
		return auth.Principal{}, fmt.Errorf("Invalid user type in context")
	}

	return principal, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	principal, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return principal.UserID, nil
}
