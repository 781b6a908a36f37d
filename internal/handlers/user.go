package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/deckforge-dev/deckforge/internal/services"
	"github.com/deckforge-dev/deckforge/internal/types"
	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserHandler struct {
	accounts *services.AccountService
}

func NewUserHandler(accounts *services.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	users, err := h.accounts.ListUsers()

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, newUserResponse(user))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UserHandler) GetUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return
	}

	user, err := h.accounts.GetUser(uint(userID))

	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// CreateUser is the token-protected admin-style creation route; unlike
// sign-up it returns no token.
func (h *UserHandler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	user, err := h.accounts.CreateUser(body.Email, body.Username, body.Password)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignUpFields):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Failed to create user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur créé",
		"user":    newUserResponse(user),
	})
}
