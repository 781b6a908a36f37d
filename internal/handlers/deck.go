package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/deckforge-dev/deckforge/internal/models"
	"github.com/deckforge-dev/deckforge/internal/services"
	"github.com/deckforge-dev/deckforge/internal/utils"
	"github.com/gin-gonic/gin"
)

type CreateDeckRequest struct {
	Name  string  `json:"name"`
	Cards []int64 `json:"cards"`
}

type UpdateDeckRequest struct {
	Name  *string  `json:"name"`
	Cards *[]int64 `json:"cards"`
}

type DeckResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	UserID    uint           `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Cards     []CardResponse `json:"cards"`
}

type DeckHandler struct {
	decks *services.DeckService
}

func NewDeckHandler(decks *services.DeckService) *DeckHandler {
	return &DeckHandler{decks: decks}
}

func (h *DeckHandler) CreateDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var body CreateDeckRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	deck, err := h.decks.Create(userID, body.Name, body.Cards)

	if err != nil {
		respondDeckError(ctx, err, "Erreur serveur lors de la création du deck")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Deck créé avec succès",
		"deck":    newDeckResponse(deck),
	})
}

func (h *DeckHandler) ListMyDecks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	decks, err := h.decks.ListMine(userID)

	if err != nil {
		respondDeckError(ctx, err, "Erreur serveur lors de la récupération des decks")
		return
	}

	response := make([]DeckResponse, 0, len(decks))

	for i := range decks {
		response = append(response, newDeckResponse(&decks[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Decks récupérés avec succès",
		"count":   len(response),
		"decks":   response,
	})
}

func (h *DeckHandler) GetDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	deckID, ok := parseDeckID(ctx)

	if !ok {
		return
	}

	deck, err := h.decks.Get(userID, deckID)

	if err != nil {
		respondDeckError(ctx, err, "Erreur serveur lors de la récupération du deck")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Deck récupéré avec succès",
		"deck":    newDeckResponse(deck),
	})
}

func (h *DeckHandler) UpdateDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	deckID, ok := parseDeckID(ctx)

	if !ok {
		return
	}

	var body UpdateDeckRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	deck, err := h.decks.Update(userID, deckID, services.UpdateDeckInput{
		Name:  body.Name,
		Cards: body.Cards,
	})

	if err != nil {
		respondDeckError(ctx, err, "Erreur serveur lors de la modification du deck")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Deck modifié avec succès",
		"deck":    newDeckResponse(deck),
	})
}

func (h *DeckHandler) DeleteDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	deckID, ok := parseDeckID(ctx)

	if !ok {
		return
	}

	if err := h.decks.Delete(userID, deckID); err != nil {
		respondDeckError(ctx, err, "Erreur serveur lors de la suppression du deck")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Deck supprimé avec succès",
		"deckId":  deckID,
	})
}

func parseDeckID(ctx *gin.Context) (uint, bool) {
	deckID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de deck invalide"})
		return 0, false
	}

	return uint(deckID), true
}

// respondDeckError maps domain errors to their status; anything else is an
// internal failure whose cause is logged, never surfaced.
func respondDeckError(ctx *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, services.ErrDeckNameRequired),
		errors.Is(err, services.ErrDeckSize),
		errors.Is(err, services.ErrCardIDsPositive),
		errors.Is(err, services.ErrUnknownCards):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDeckNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDeckForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("Deck operation failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": internalMessage})
	}
}

func newDeckResponse(deck *models.Deck) DeckResponse {
	cards := make([]CardResponse, 0, len(deck.Cards))

	for _, deckCard := range deck.Cards {
		cards = append(cards, newCardResponse(deckCard.Card))
	}

	return DeckResponse{
		ID:        deck.ID,
		Name:      deck.Name,
		UserID:    deck.UserID,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
		Cards:     cards,
	}
}
