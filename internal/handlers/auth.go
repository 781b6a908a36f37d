package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/deckforge-dev/deckforge/internal/models"
	"github.com/deckforge-dev/deckforge/internal/services"
	"github.com/deckforge-dev/deckforge/internal/types"
	"github.com/gin-gonic/gin"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var body SignUpRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	token, user, err := h.accounts.SignUp(body.Email, body.Username, body.Password)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignUpFields):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Sign-up failed: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur lors de l'inscription"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Inscription réussie",
		"token":   token,
		"user":    newUserResponse(user),
	})
}

func (h *AuthHandler) SignIn(ctx *gin.Context) {
	var body SignInRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	token, user, err := h.accounts.SignIn(body.Email, body.Password)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignInFields):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("Sign-in failed: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur lors de la connexion"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Connexion réussie",
		"token":   token,
		"user":    newUserResponse(user),
	})
}

func newUserResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
