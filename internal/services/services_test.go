package services

import (
	"fmt"
	"testing"

	"github.com/deckforge-dev/deckforge/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Deck{},
		&models.DeckCard{},
	))

	return database
}

func seedCatalog(t *testing.T, database *gorm.DB, count int) {
	t.Helper()

	cards := make([]models.Card, 0, count)
	for i := 1; i <= count; i++ {
		cards = append(cards, models.Card{
			PokedexNumber: i,
			Name:          fmt.Sprintf("Carte %d", i),
		})
	}
	require.NoError(t, database.Create(&cards).Error)
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Username:     "trainer",
		Email:        email,
		PasswordHash: "irrelevant",
	}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func cardRange(first, last int64) []int64 {
	ids := make([]int64, 0, last-first+1)
	for id := first; id <= last; id++ {
		ids = append(ids, id)
	}
	return ids
}
