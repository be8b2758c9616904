package model

import (
	"time"

	"github.com/google/uuid"
)

type Log struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DateOfEvent time.Time `gorm:"type:date;not null"`
	Notes       string
	Rating      int
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index"`

	Recipe *Recipe `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
