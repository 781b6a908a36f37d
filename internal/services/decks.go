package services

import (
	"errors"
	"strings"

	"github.com/deckforge-dev/deckforge/internal/models"
	"gorm.io/gorm"
)

// DeckSize is the exact number of cards every deck holds.
const DeckSize = 10

// DeckService owns deck validation, ownership enforcement and the card
// association maintenance. Multi-step writes run inside a transaction so a
// deck is never readable with a partial card set.
type DeckService struct {
	db *gorm.DB
}

func NewDeckService(db *gorm.DB) *DeckService {
	return &DeckService{db: db}
}

// UpdateDeckInput carries the optional PATCH fields. A nil field means
// "leave unchanged".
type UpdateDeckInput struct {
	Name  *string
	Cards *[]int64
}

func (s *DeckService) Create(userID uint, name string, cardIDs []int64) (*models.Deck, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, ErrDeckNameRequired
	}

	if err := validateCardIDs(cardIDs); err != nil {
		return nil, err
	}

	if err := s.resolveCards(cardIDs); err != nil {
		return nil, err
	}

	deck := models.Deck{
		Name:   name,
		UserID: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deck).Error; err != nil {
			return err
		}
		rows := deckCardRows(deck.ID, cardIDs)
		return tx.Create(&rows).Error
	})

	if err != nil {
		return nil, err
	}

	return s.loadDeck(deck.ID)
}

// ListMine returns the user's decks, most recently created first. An empty
// slice, not an error, when the user owns none.
func (s *DeckService) ListMine(userID uint) ([]models.Deck, error) {
	var decks []models.Deck

	err := s.withCards(s.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}

// Get loads one deck. A deck that exists but belongs to someone else is
// reported as forbidden, never as absent.
func (s *DeckService) Get(userID, deckID uint) (*models.Deck, error) {
	var deck models.Deck

	if err := s.withCards(s.db).First(&deck, deckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}

	if deck.UserID != userID {
		return nil, ErrDeckForbidden
	}

	return &deck, nil
}

// Update applies the provided fields. When the card set is replaced, the old
// associations are deleted and the new ones inserted in one transaction.
func (s *DeckService) Update(userID, deckID uint, input UpdateDeckInput) (*models.Deck, error) {
	var deck models.Deck

	if err := s.db.First(&deck, deckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}

	if deck.UserID != userID {
		return nil, ErrDeckForbidden
	}

	if input.Name == nil && input.Cards == nil {
		return s.loadDeck(deck.ID)
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, ErrDeckNameRequired
		}
		deck.Name = trimmed
	}

	if input.Cards != nil {
		if err := validateCardIDs(*input.Cards); err != nil {
			return nil, err
		}
		if err := s.resolveCards(*input.Cards); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.Cards != nil {
			if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.DeckCard{}).Error; err != nil {
				return err
			}
			rows := deckCardRows(deck.ID, *input.Cards)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Save(&deck).Error
	})

	if err != nil {
		return nil, err
	}

	return s.loadDeck(deck.ID)
}

// Delete removes the deck and its associations for good; there is no
// tombstone.
func (s *DeckService) Delete(userID, deckID uint) error {
	var deck models.Deck

	if err := s.db.First(&deck, deckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeckNotFound
		}
		return err
	}

	if deck.UserID != userID {
		return ErrDeckForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.DeckCard{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&deck).Error
	})
}

// validateCardIDs checks shape only; existence is resolveCards' job.
func validateCardIDs(cardIDs []int64) error {
	if len(cardIDs) != DeckSize {
		return ErrDeckSize
	}

	for _, id := range cardIDs {
		if id <= 0 {
			return ErrCardIDsPositive
		}
	}

	return nil
}

// resolveCards requires all DeckSize ids to match catalog rows. The IN query
// collapses duplicates, so a repeated id resolves short and is rejected.
func (s *DeckService) resolveCards(cardIDs []int64) error {
	var count int64

	if err := s.db.Model(&models.Card{}).Where("id IN ?", cardIDs).Count(&count).Error; err != nil {
		return err
	}

	if count != DeckSize {
		return ErrUnknownCards
	}

	return nil
}

func deckCardRows(deckID uint, cardIDs []int64) []models.DeckCard {
	rows := make([]models.DeckCard, 0, len(cardIDs))

	for _, cardID := range cardIDs {
		rows = append(rows, models.DeckCard{
			DeckID: deckID,
			CardID: uint(cardID),
		})
	}

	return rows
}

// withCards preloads the association rows in insertion order together with
// their catalog cards.
func (s *DeckService) withCards(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("deck_cards.id ASC")
		}).
		Preload("Cards.Card")
}

func (s *DeckService) loadDeck(deckID uint) (*models.Deck, error) {
	var deck models.Deck

	if err := s.withCards(s.db).First(&deck, deckID).Error; err != nil {
		return nil, err
	}

	return &deck, nil
}
