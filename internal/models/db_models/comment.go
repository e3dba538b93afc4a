package db_models

import "github.com/google/uuid"

type Comment struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text            string    `gorm:"not null"`
	Rating          int       `gorm:"check:rating >= 1 AND rating <= 5"`

	User User `gorm:"foreignKey:UserID"`
}
