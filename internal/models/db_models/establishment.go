package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const (
	StatusPending  = "pendiente"
	StatusApproved = "aprobado"
	StatusRejected = "rechazado"
)

// Establishment is a business listing. Embedding is nil until the
// reindex job computes it, and is cleared whenever the text it was
// derived from (name, description, categories, types) changes.
type Establishment struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone       string

	Image  string
	Cover  string
	Images pq.StringArray `gorm:"type:text[]"`

	Status     string `gorm:"default:pendiente"`
	Verified   bool
	VerifiedAt *time.Time

	Facebook  string
	Instagram string
	Twitter   string
	Youtube   string
	Tiktok    string

	Embedding *pgvector.Vector `gorm:"type:vector(384)"`

	Locations  []Location     `gorm:"foreignKey:EstablishmentID"`
	Schedules  []Schedule     `gorm:"foreignKey:EstablishmentID"`
	Comments   []Comment      `gorm:"foreignKey:EstablishmentID"`
	Promotions []Promotion    `gorm:"foreignKey:EstablishmentID"`
	Categories []Category     `gorm:"many2many:establishment_categories"`
	Types      []BusinessType `gorm:"many2many:establishment_types"`
	Followers  []User         `gorm:"many2many:establishment_followers"`
	Likes      []User         `gorm:"many2many:establishment_likes"`
}
