package services

import (
	"context"
	"time"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type ScheduleService interface {
	Add(ctx context.Context, callerID, callerRole, establishmentID string, req request_models.SchedulePayload) (*db_models.Schedule, error)
	Update(ctx context.Context, callerID, callerRole, id string, req request_models.SchedulePayload) (*db_models.Schedule, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Schedule, error)
	Delete(ctx context.Context, callerID, callerRole, id string) error
}

type scheduleService struct {
	schedules      repositories.ScheduleRepository
	establishments repositories.EstablishmentRepository
}

func NewScheduleService(schedules repositories.ScheduleRepository, establishments repositories.EstablishmentRepository) ScheduleService {
	return &scheduleService{schedules: schedules, establishments: establishments}
}

func validClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func (s *scheduleService) ownedEstablishment(ctx context.Context, callerID, callerRole, establishmentID string) (*db_models.Establishment, error) {
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

func (s *scheduleService) Add(ctx context.Context, callerID, callerRole, establishmentID string, req request_models.SchedulePayload) (*db_models.Schedule, error) {
	if !validClock(req.Opens) || !validClock(req.Closes) {
		return nil, utils.ErrInvalidInput
	}
	est, err := s.ownedEstablishment(ctx, callerID, callerRole, establishmentID)
	if err != nil {
		return nil, err
	}

	schedule := &db_models.Schedule{
		EstablishmentID: est.ID,
		Day:             req.Day,
		Opens:           req.Opens,
		Closes:          req.Closes,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedule, nil
}

func (s *scheduleService) Update(ctx context.Context, callerID, callerRole, id string, req request_models.SchedulePayload) (*db_models.Schedule, error) {
	if !validClock(req.Opens) || !validClock(req.Closes) {
		return nil, utils.ErrInvalidInput
	}
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, schedule.EstablishmentID.String()); err != nil {
		return nil, err
	}

	schedule.Day = req.Day
	schedule.Opens = req.Opens
	schedule.Closes = req.Closes

	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedule, nil
}

func (s *scheduleService) ListByEstablishment(ctx context.Context, establishmentID string) ([]db_models.Schedule, error) {
	id, err := parseID(establishmentID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.schedules.ListByEstablishment(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedules, nil
}

func (s *scheduleService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if schedule == nil {
		return utils.ErrScheduleNotFound
	}
	if _, err := s.ownedEstablishment(ctx, callerID, callerRole, schedule.EstablishmentID.String()); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, schedule.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
