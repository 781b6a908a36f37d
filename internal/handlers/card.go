package handlers

import (
	"log"
	"net/http"

	"github.com/deckforge-dev/deckforge/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CardResponse struct {
	ID            uint           `json:"id"`
	PokedexNumber int            `json:"pokedexNumber"`
	Name          string         `json:"name"`
	Attributes    datatypes.JSON `json:"attributes"`
}

type CardHandler struct {
	db *gorm.DB
}

func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{db: db}
}

// ListCards returns the whole catalog in pokedex order.
func (h *CardHandler) ListCards(ctx *gin.Context) {
	var cards []models.Card

	if err := h.db.Order("pokedex_number ASC").Find(&cards).Error; err != nil {
		log.Printf("Failed to list cards: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]CardResponse, 0, len(cards))

	for _, card := range cards {
		response = append(response, newCardResponse(card))
	}

	ctx.JSON(http.StatusOK, response)
}

func newCardResponse(card models.Card) CardResponse {
	return CardResponse{
		ID:            card.ID,
		PokedexNumber: card.PokedexNumber,
		Name:          card.Name,
		Attributes:    card.Attributes,
	}
}
