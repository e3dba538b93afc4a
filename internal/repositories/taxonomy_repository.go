package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

// TaxonomyRepository serves both listing facets: categories and types.
type TaxonomyRepository interface {
	CreateCategory(ctx context.Context, category *db_models.Category) error
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	GetCategory(ctx context.Context, id string) (*db_models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateType(ctx context.Context, bt *db_models.BusinessType) error
	ListTypes(ctx context.Context) ([]db_models.BusinessType, error)
	GetType(ctx context.Context, id string) (*db_models.BusinessType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) CreateCategory(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) GetCategory(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *taxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
}

func (r *taxonomyRepository) CreateType(ctx context.Context, bt *db_models.BusinessType) error {
	return r.db.WithContext(ctx).Create(bt).Error
}

func (r *taxonomyRepository) ListTypes(ctx context.Context) ([]db_models.BusinessType, error) {
	var types []db_models.BusinessType
	if err := r.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *taxonomyRepository) GetType(ctx context.Context, id string) (*db_models.BusinessType, error) {
	var bt db_models.BusinessType
	err := r.db.WithContext(ctx).First(&bt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bt, nil
}

func (r *taxonomyRepository) DeleteType(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.BusinessType{}, "id = ?", id).Error
}
