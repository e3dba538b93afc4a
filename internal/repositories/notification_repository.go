package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *db_models.Notification) error
	CreateBatch(ctx context.Context, notifications []db_models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []db_models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(notifications, 100).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}
