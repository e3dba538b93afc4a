package db_models

type Category struct {
	BaseModel
	Name        string `gorm:"unique;not null"`
	Description string

	Establishments []Establishment `gorm:"many2many:establishment_categories"`
}
