package models

import "gorm.io/gorm"

// Deck belongs to exactly one user for its whole lifetime; UserID is set at
// creation and never updated.
type Deck struct {
	gorm.Model

	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`

	// Relationships
	Owner User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Cards []DeckCard `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
