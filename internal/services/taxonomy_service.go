package services

import (
	"context"

	"github.com/google/uuid"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type TaxonomyService interface {
	CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateType(ctx context.Context, req request_models.TypeRequest) (*db_models.BusinessType, error)
	ListTypes(ctx context.Context) ([]db_models.BusinessType, error)
	DeleteType(ctx context.Context, id string) error
}

type taxonomyService struct {
	taxonomy repositories.TaxonomyRepository
}

func NewTaxonomyService(taxonomy repositories.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{taxonomy: taxonomy}
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error) {
	category := &db_models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.taxonomy.CreateCategory(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.taxonomy.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.taxonomy.GetCategory(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}
	if err := s.taxonomy.DeleteCategory(ctx, category.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *taxonomyService) CreateType(ctx context.Context, req request_models.TypeRequest) (*db_models.BusinessType, error) {
	bt := &db_models.BusinessType{Name: req.Name}
	if err := s.taxonomy.CreateType(ctx, bt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bt, nil
}

func (s *taxonomyService) ListTypes(ctx context.Context) ([]db_models.BusinessType, error) {
	types, err := s.taxonomy.ListTypes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return types, nil
}

func (s *taxonomyService) DeleteType(ctx context.Context, id string) error {
	bt, err := s.taxonomy.GetType(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if bt == nil {
		return utils.ErrTypeNotFound
	}
	if err := s.taxonomy.DeleteType(ctx, bt.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// parseID is shared by the services that take path params.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}
	return parsed, nil
}
