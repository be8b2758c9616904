package model

import "github.com/google/uuid"

type Recipe struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"not null"`
	Directions  []string     `gorm:"type:jsonb;serializer:json"`
	Ingredients []Ingredient `gorm:"type:jsonb;serializer:json"`
}

// Ingredient is stored inside the recipe row, so its json tags define the column format.
type Ingredient struct {
	Name        string `json:"name"`
	Measurement string `json:"measurement"`
	Amount      string `json:"amount"`
}

// Normalize replaces nil lists with empty ones so a recipe never round trips as null.
func (r *Recipe) Normalize() {
	if r.Directions == nil {
		r.Directions = []string{}
	}

	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
}
