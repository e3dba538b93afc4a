package services

import (
	"context"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type PromotionService interface {
	Create(ctx context.Context, callerID, callerRole string, req request_models.PromotionRequest) (*db_models.Promotion, error)
	Update(ctx context.Context, callerID, callerRole, id string, req request_models.PromotionRequest) (*db_models.Promotion, error)
	Get(ctx context.Context, id string) (*db_models.Promotion, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Promotion, error)
	ListActive(ctx context.Context) ([]db_models.Promotion, error)
	Delete(ctx context.Context, callerID, callerRole, id string) error
	ExpireOverdue(ctx context.Context) (int64, error)
}

type promotionService struct {
	promotions     repositories.PromotionRepository
	establishments repositories.EstablishmentRepository
	notifier       NotificationService
}

func NewPromotionService(
	promotions repositories.PromotionRepository,
	establishments repositories.EstablishmentRepository,
	notifier NotificationService,
) PromotionService {
	return &promotionService{
		promotions:     promotions,
		establishments: establishments,
		notifier:       notifier,
	}
}

func (s *promotionService) ownedEstablishment(ctx context.Context, callerID, callerRole, establishmentID string) (*db_models.Establishment, error) {
	est, err := s.establishments.GetByID(ctx, establishmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if est == nil {
		return nil, utils.ErrEstablishmentNotFound
	}
	if callerRole != db_models.RoleAdmin && est.OwnerID.String() != callerID {
		return nil, utils.ErrNotOwner
	}
	return est, nil
}

func (s *promotionService) Create(ctx context.Context, callerID, callerRole string, req request_models.PromotionRequest) (*db_models.Promotion, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, utils.ErrInvalidInput
	}
	est, err := s.ownedEstablishment(ctx, callerID, callerRole, req.EstablishmentID)
	if err != nil {
		return nil, err
	}

	promotion := &db_models.Promotion{
		EstablishmentID: est.ID,
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Conditions:      req.Conditions,
		Status:          db_models.PromotionActive,
		Discount:        req.Discount,
		Image:           req.Image,
	}
	if err := s.promotions.Create(ctx, promotion); err != nil {
		return nil, utils.ErrDatabaseError
	}

	message := est.Name + " tiene una nueva promoción: " + promotion.Name
	if _, err := s.notifier.NotifyFollowers(ctx, est.ID.String(), message, db_models.NotificationPromotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) Update(ctx context.Context, callerID, callerRole, id string, req request_models.PromotionRequest) (*db_models.Promotion, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, utils.ErrInvalidInput
	}
	promotion, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if promotion == nil {
		return nil, utils.ErrPromotionNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, promotion.EstablishmentID.String()); err != nil {
		return nil, err
	}

	promotion.Name = req.Name
	promotion.Description = req.Description
	promotion.StartDate = req.StartDate
	promotion.EndDate = req.EndDate
	promotion.Conditions = req.Conditions
	promotion.Discount = req.Discount
	promotion.Image = req.Image

	if err := s.promotions.Update(ctx, promotion); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return promotion, nil
}

func (s *promotionService) Get(ctx context.Context, id string) (*db_models.Promotion, error) {
	promotion, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if promotion == nil {
		return nil, utils.ErrPromotionNotFound
	}
	return promotion, nil
}

func (s *promotionService) ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Promotion, error) {
	id, err := parseID(establishmentID)
	if err != nil {
		return nil, err
	}
	promotions, err := s.promotions.ListByEstablishment(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return promotions, nil
}

func (s *promotionService) ListActive(ctx context.Context) ([]db_models.Promotion, error) {
	promotions, err := s.promotions.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return promotions, nil
}

func (s *promotionService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	promotion, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if promotion == nil {
		return utils.ErrPromotionNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, promotion.EstablishmentID.String()); err != nil {
		return err
	}
	if err := s.promotions.Delete(ctx, promotion.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *promotionService) ExpireOverdue(ctx context.Context) (int64, error) {
	expired, err := s.promotions.ExpireOverdue(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return expired, nil
}
