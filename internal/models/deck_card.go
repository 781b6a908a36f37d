package models

import "time"

// DeckCard links a deck to one card of its set. Rows are hard-deleted when the
// set is replaced or the deck is removed, so there is no DeletedAt here.
type DeckCard struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	DeckID uint `gorm:"not null;index"`
	CardID uint `gorm:"not null;index"`

	// Relationships
	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
