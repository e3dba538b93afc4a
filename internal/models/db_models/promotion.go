package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PromotionActive   = "activa"
	PromotionInactive = "inactiva"
	PromotionExpired  = "expirada"
)

type Promotion struct {
	BaseModel
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"not null"`
	Description     string    `gorm:"not null"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null"`
	Conditions      string
	Status          string `gorm:"default:activa"`
	Discount        int    `gorm:"check:discount >= 0 AND discount <= 100"`
	Image           string
}
