package services

import (
	"context"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type LocationService interface {
	Add(ctx context.Context, callerID, callerRole, establishmentID string, req request_models.LocationPayload) (*db_models.Location, error)
	Update(ctx context.Context, callerID, callerRole, id string, req request_models.LocationPayload) (*db_models.Location, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Location, error)
	Delete(ctx context.Context, callerID, callerRole, id string) error
}

type locationService struct {
	locations      repositories.LocationRepository
	establishments repositories.EstablishmentRepository
}

func NewLocationService(locations repositories.LocationRepository, establishments repositories.EstablishmentRepository) LocationService {
	return &locationService{locations: locations, establishments: establishments}
}

func (s *locationService) ownedEstablishment(ctx context.Context, callerID, callerRole, establishmentID string) (*db_models.Establishment, error) {
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

func (s *locationService) Add(ctx context.Context, callerID, callerRole, establishmentID string, req request_models.LocationPayload) (*db_models.Location, error) {
	est, err := s.ownedEstablishment(ctx, callerID, callerRole, establishmentID)
	if err != nil {
		return nil, err
	}

	location := &db_models.Location{
		EstablishmentID: est.ID,
		Address:         req.Address,
		City:            req.City,
		District:        req.District,
		PostalCode:      req.PostalCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Reference:       req.Reference,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, callerID, callerRole, id string, req request_models.LocationPayload) (*db_models.Location, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, location.EstablishmentID.String()); err != nil {
		return nil, err
	}

	location.Address = req.Address
	location.City = req.City
	location.District = req.District
	location.PostalCode = req.PostalCode
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude
	location.Reference = req.Reference

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return location, nil
}

func (s *locationService) ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Location, error) {
	id, err := parseID(establishmentID)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.ListByEstablishment(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return locations, nil
}

func (s *locationService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if location == nil {
		return utils.ErrLocationNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, location.EstablishmentID.String()); err != nil {
		return err
	}
	if err := s.locations.Delete(ctx, location.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
