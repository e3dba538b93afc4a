package services

import (
	"context"
	"log"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type NotificationService interface {
	Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error)
	ListMine(ctx context.Context, userID string) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)

	NotifyFollowers(ctx context.Context, establishmentID string, message string, kind string) (int, error)
}

type notificationService struct {
	notifications  repositories.NotificationRepository
	establishments repositories.EstablishmentRepository
	mail           IMailService
}

func NewNotificationService(
	notifications repositories.NotificationRepository,
	establishments repositories.EstablishmentRepository,
	mail IMailService,
) NotificationService {
	return &notificationService{
		notifications:  notifications,
		establishments: establishments,
		mail:           mail,
	}
}

func (s *notificationService) Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error) {
	userID, err := parseID(req.UserID)
	if err != nil {
		return nil, err
	}
	notification := &db_models.Notification{
		UserID:  userID,
		Message: req.Message,
		Kind:    req.Kind,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}

func (s *notificationService) ListMine(ctx context.Context, userID string) ([]db_models.Notification, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	nid, err := parseID(id)
	if err != nil {
		return err
	}
	affected, err := s.notifications.MarkRead(ctx, nid, uid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkAllRead(ctx, uid); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	uid, err := parseID(userID)
	if err != nil {
		return 0, err
	}
	count, err := s.notifications.CountUnread(ctx, uid)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

// NotifyFollowers fans one message out to every follower of an
// establishment, in the database and by mail. Returns how many
// notifications were written. Mail failures are logged, not returned.
func (s *notificationService) NotifyFollowers(ctx context.Context, establishmentID string, message string, kind string) (int, error) {
	id, err := parseID(establishmentID)
	if err != nil {
		return 0, err
	}
	followers, err := s.establishments.ListFollowers(ctx, id)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if len(followers) == 0 {
		return 0, nil
	}

	batch := make([]db_models.Notification, 0, len(followers))
	for _, follower := range followers {
		batch = append(batch, db_models.Notification{
			UserID:  follower.ID,
			Message: message,
			Kind:    kind,
		})
	}
	if err := s.notifications.CreateBatch(ctx, batch); err != nil {
		return 0, utils.ErrDatabaseError
	}

	subject := "Novedades de un establecimiento que sigues"
	for _, follower := range followers {
		if follower.Email == "" {
			continue
		}
		if err := s.mail.SendNotification(follower.Email, subject, message, "", ""); err != nil {
			log.Printf("follower mail to %s failed: %v", follower.Email, err)
		}
	}
	return len(batch), nil
}
