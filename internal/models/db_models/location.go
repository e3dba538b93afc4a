package db_models

import "github.com/google/uuid"

type Location struct {
	BaseModel
	EstablishmentID uuid.UUID `gorm:"type:uuid;index"`
	Address         string    `gorm:"not null"`
	City            string
	District        string
	PostalCode      string
	Latitude        float64
	Longitude       float64
	Reference       string
}
