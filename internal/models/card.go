package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Card is a catalog entry. The catalog is read-only for the deck layer:
// cards are seeded at startup and only ever referenced, never mutated.
type Card struct {
	gorm.Model

	PokedexNumber int    `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	Attributes    datatypes.JSON
}
