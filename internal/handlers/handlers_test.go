package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/middleware"
	"github.com/deckforge-dev/deckforge/internal/models"
	"github.com/deckforge-dev/deckforge/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the real route table over an in-memory database, so
// these tests exercise the same stack the process runs.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Deck{},
		&models.DeckCard{},
	))

	// Pokedex numbers run opposite to the ids so catalog ordering is visible.
	cards := make([]models.Card, 0, 12)
	for i := 1; i <= 12; i++ {
		cards = append(cards, models.Card{
			PokedexNumber: 13 - i,
			Name:          fmt.Sprintf("Carte %d", i),
		})
	}
	require.NoError(t, database.Create(&cards).Error)

	authenticator, err := auth.NewTokenAuthenticator("test-secret")
	require.NoError(t, err)

	accounts := services.NewAccountService(database, authenticator)
	decks := services.NewDeckService(database)

	authHandler := NewAuthHandler(accounts)
	deckHandler := NewDeckHandler(decks)
	cardHandler := NewCardHandler(database)
	userHandler := NewUserHandler(accounts)

	requireAuth := middleware.AuthMiddleware(authenticator)

	r := gin.New()
	r.GET("/health", HealthCheck)
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

	return r, database
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func signUp(t *testing.T, r *gin.Engine, email, username string) string {
	t.Helper()

	recorder := doRequest(t, r, http.MethodPost, "/sign-up", "", gin.H{
		"email":    email,
		"username": username,
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	token, ok := decodeBody(t, recorder)["token"].(string)
	require.True(t, ok)
	return token
}

func deckIDs(deck map[string]interface{}) []int64 {
	cards := deck["cards"].([]interface{})
	ids := make([]int64, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, int64(card.(map[string]interface{})["id"].(float64)))
	}
	return ids
}
