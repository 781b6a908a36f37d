package router

import (
	"time"

	"github.com/deckforge-dev/deckforge/db"
	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/handlers"
	"github.com/deckforge-dev/deckforge/internal/middleware"
	"github.com/deckforge-dev/deckforge/internal/services"
	"github.com/deckforge-dev/deckforge/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authenticator *auth.TokenAuthenticator) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	accounts := services.NewAccountService(db.DB, authenticator)
	decks := services.NewDeckService(db.DB)

	authHandler := handlers.NewAuthHandler(accounts)
	deckHandler := handlers.NewDeckHandler(decks)
	cardHandler := handlers.NewCardHandler(db.DB)
	userHandler := handlers.NewUserHandler(accounts)

	requireAuth := middleware.AuthMiddleware(authenticator)

	r.GET("/health", handlers.HealthCheck)

	r.POST("/sign-up", authHandler.SignUp)
	r.POST("/sign-in", authHandler.SignIn)

	r.GET("/cards", cardHandler.ListCards)

	decksGroup := r.Group("/decks", requireAuth)
	{
		decksGroup.POST("", deckHandler.CreateDeck)
		decksGroup.GET("/mine", deckHandler.ListMyDecks)
		decksGroup.GET("/:id", deckHandler.GetDeck)
		decksGroup.PATCH("/:id", deckHandler.UpdateDeck)
		decksGroup.DELETE("/:id", deckHandler.DeleteDeck)
	}

	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("", requireAuth, userHandler.CreateUser)
	}

	return r
}
