package db_models

const (
	RoleUser   = "usuario"
	RoleAdmin  = "administrador"
	RoleSeller = "vendedor"
)

const (
	VendorRequestPending  = "pendiente"
	VendorRequestApproved = "aprobada"
	VendorRequestRejected = "rechazada"
)

type User struct {
	BaseModel
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Username     string `gorm:"unique;not null"`
	FirstName    string
	LastName     string
	Bio          string
	ProfilePhoto string
	CoverPhoto   string
	Role         string `gorm:"default:usuario"`
	// Empty until the user asks to become a seller.
	VendorRequest string

	Establishments []Establishment `gorm:"foreignKey:OwnerID"`
	Liked          []Establishment `gorm:"many2many:establishment_likes"`
	Followed       []Establishment `gorm:"many2many:establishment_followers"`
}
