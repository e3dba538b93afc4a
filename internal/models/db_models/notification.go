package db_models

import "github.com/google/uuid"

const (
	NotificationPromotion = "promocion"
	NotificationSystem    = "sistema"
	NotificationComment   = "comentario"
	NotificationLike      = "like"
)

type Notification struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message string    `gorm:"not null"`
	Kind    string    `gorm:"not null"`
	Read    bool
}
