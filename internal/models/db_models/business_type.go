package db_models

// BusinessType is the "tipo" facet of a listing (restaurante, bar,
// cafetería, ...), orthogonal to categories.
type BusinessType struct {
	BaseModel
	Name string `gorm:"unique;not null"`

	Establishments []Establishment `gorm:"many2many:establishment_types"`
}
