package controllers_fx

import (
	"go.uber.org/fx"

	"boulevard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewEstablishmentController),
	fx.Provide(controllers.NewTaxonomyController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewCommentController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewPromotionController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewChatController),
)
