package db

import (
	"encoding/json"

	"github.com/deckforge-dev/deckforge/internal/models"
	"gorm.io/datatypes"
)

type cardSeed struct {
	PokedexNumber int
	Name          string
	Type          string
	HP            int
	ImageURL      string
}

// The starter catalog. Seeding only happens on an empty table, so a deployed
// catalog is never touched again.
var starterCards = []cardSeed{
	{1, "Bulbizarre", "Grass", 45, "https://img.pokemondb.net/artwork/bulbasaur.jpg"},
	{4, "Salamèche", "Fire", 39, "https://img.pokemondb.net/artwork/charmander.jpg"},
	{7, "Carapuce", "Water", 44, "https://img.pokemondb.net/artwork/squirtle.jpg"},
	{25, "Pikachu", "Electric", 35, "https://img.pokemondb.net/artwork/pikachu.jpg"},
	{35, "Mélofée", "Fairy", 70, "https://img.pokemondb.net/artwork/clefairy.jpg"},
	{39, "Rondoudou", "Fairy", 115, "https://img.pokemondb.net/artwork/jigglypuff.jpg"},
	{52, "Miaouss", "Normal", 40, "https://img.pokemondb.net/artwork/meowth.jpg"},
	{54, "Psykokwak", "Water", 50, "https://img.pokemondb.net/artwork/psyduck.jpg"},
	{63, "Abra", "Psychic", 25, "https://img.pokemondb.net/artwork/abra.jpg"},
	{66, "Machoc", "Fighting", 70, "https://img.pokemondb.net/artwork/machop.jpg"},
	{92, "Fantominus", "Ghost", 30, "https://img.pokemondb.net/artwork/gastly.jpg"},
	{95, "Onix", "Rock", 35, "https://img.pokemondb.net/artwork/onix.jpg"},
	{129, "Magicarpe", "Water", 20, "https://img.pokemondb.net/artwork/magikarp.jpg"},
	{133, "Évoli", "Normal", 55, "https://img.pokemondb.net/artwork/eevee.jpg"},
	{143, "Ronflex", "Normal", 160, "https://img.pokemondb.net/artwork/snorlax.jpg"},
	{150, "Mewtwo", "Psychic", 106, "https://img.pokemondb.net/artwork/mewtwo.jpg"},
}

// SeedCards populates the card catalog when it is empty.
func SeedCards() error {
	var count int64

	if err := DB.Model(&models.Card{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	cards := make([]models.Card, 0, len(starterCards))

	for _, seed := range starterCards {
		attributes, err := json.Marshal(map[string]interface{}{
			"type":     seed.Type,
			"hp":       seed.HP,
			"imageUrl": seed.ImageURL,
		})
		if err != nil {
			return err
		}

		cards = append(cards, models.Card{
			PokedexNumber: seed.PokedexNumber,
			Name:          seed.Name,
			Attributes:    datatypes.JSON(attributes),
		})
	}

	return DB.Create(&cards).Error
}
