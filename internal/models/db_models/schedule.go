package db_models

import "github.com/google/uuid"

// Schedule is one opening-hours entry, times in "HH:mm".
type Schedule struct {
	BaseModel
	EstablishmentID uuid.UUID `gorm:"type:uuid;index"`
	Day             string    `gorm:"not null"`
	Opens           string    `gorm:"not null"`
	Closes          string    `gorm:"not null"`
}
