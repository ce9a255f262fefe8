package domain

import "time"

// Character is the durable sheet of a player character.
// Stats are stored as authored strings; the game reads them as integers.
type Character struct {
	ID        string            `json:"characterId" validate:"required"`
	Name      string            `json:"name"`
	Stats     map[string]string `json:"stats"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Item is one entry of a character's inventory.
type Item struct {
	ID   string `json:"itemId" validate:"required"`
	Name string `json:"name"`
}
