package engagement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
)

// Module wires the social surface: comments, notifications and
// promotions.
var Module = fx.Provide(
	provideCommentRepo,
	provideNotificationRepo,
	providePromotionRepo,
	provideCommentService,
	provideNotificationService,
	providePromotionService,
)

func provideCommentRepo(db *gorm.DB) repositories.CommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func providePromotionRepo(db *gorm.DB) repositories.PromotionRepository {
	return repositories.NewPromotionRepository(db)
}

func provideCommentService(
	comments repositories.CommentRepository,
	establishments repositories.EstablishmentRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
) services.CommentService {
	return services.NewCommentService(comments, establishments, users, notifications)
}

func provideNotificationService(
	notifications repositories.NotificationRepository,
	establishments repositories.EstablishmentRepository,
	mail services.IMailService,
) services.NotificationService {
	return services.NewNotificationService(notifications, establishments, mail)
}

func providePromotionService(
	promotions repositories.PromotionRepository,
	establishments repositories.EstablishmentRepository,
	notifier services.NotificationService,
) services.PromotionService {
	return services.NewPromotionService(promotions, establishments, notifier)
}
