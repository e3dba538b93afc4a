package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"boulevard/cmd/fx/account_fx"
	"boulevard/cmd/fx/chat_fx"
	"boulevard/cmd/fx/controllers_fx"
	"boulevard/cmd/fx/dashboard_fx"
	"boulevard/cmd/fx/db_fx"
	"boulevard/cmd/fx/engagement_fx"
	"boulevard/cmd/fx/establishment_fx"
	"boulevard/cmd/fx/mail_fx"
	"boulevard/cmd/fx/memcache_fx"
	"boulevard/cmd/fx/taxonomy_fx"
	"boulevard/internal/api/controllers"
	"boulevard/internal/models/db_models"
	"boulevard/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		taxonomy_fx.Module,
		establishment_fx.Module,
		engagement_fx.Module,
		chat_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	establishmentController *controllers.EstablishmentController,
	taxonomyController *controllers.TaxonomyController,
	locationController *controllers.LocationController,
	scheduleController *controllers.ScheduleController,
	commentController *controllers.CommentController,
	notificationController *controllers.NotificationController,
	promotionController *controllers.PromotionController,
	dashboardController *controllers.DashboardController,
	chatController *controllers.ChatController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController, userController, establishmentController,
		taxonomyController, locationController, scheduleController,
		commentController, notificationController, promotionController,
		dashboardController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	establishmentController *controllers.EstablishmentController,
	taxonomyController *controllers.TaxonomyController,
	locationController *controllers.LocationController,
	scheduleController *controllers.ScheduleController,
	commentController *controllers.CommentController,
	notificationController *controllers.NotificationController,
	promotionController *controllers.PromotionController,
	dashboardController *controllers.DashboardController,
	chatController *controllers.ChatController,
) {
	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RoleMiddleware(db_models.RoleAdmin)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	authGroup := r.Group("/auth")
	authGroup.POST("/registro", accountController.SignUpHandler)
	authGroup.POST("/login", accountController.LoginHandler)
	authGroup.POST("/recuperar", accountController.RequestPasswordRecoveryHandler)
	authGroup.POST("/restablecer", accountController.ResetPasswordHandler)

	users := r.Group("/usuarios", auth)
	users.GET("/perfil", userController.GetProfileHandler)
	users.PUT("/perfil", userController.UpdateProfileHandler)
	users.POST("/vendedor", userController.RequestVendorRoleHandler)
	users.GET("/vendedor/solicitudes", admin, userController.ListVendorRequestsHandler)
	users.PUT("/vendedor/solicitudes/:id", admin, userController.ResolveVendorRequestHandler)

	establishments := r.Group("/establecimientos")
	establishments.GET("", establishmentController.ListHandler)
	establishments.GET("/buscar", establishmentController.SearchHandler)
	establishments.GET("/:id", establishmentController.GetHandler)
	establishments.GET("/:id/ubicaciones", locationController.ListHandler)
	establishments.GET("/:id/horarios", scheduleController.ListHandler)
	establishments.GET("/:id/comentarios", commentController.ListHandler)
	establishments.GET("/:id/promociones", promotionController.ListByEstablishmentHandler)

	establishmentsAuth := r.Group("/establecimientos", auth)
	establishmentsAuth.POST("", establishmentController.CreateHandler)
	establishmentsAuth.GET("/mio", establishmentController.GetMineHandler)
	establishmentsAuth.PUT("/:id", establishmentController.UpdateHandler)
	establishmentsAuth.DELETE("/:id", establishmentController.DeleteHandler)
	establishmentsAuth.PUT("/:id/estado", admin, establishmentController.ChangeStatusHandler)
	establishmentsAuth.PUT("/:id/verificado", admin, establishmentController.ChangeVerifiedHandler)
	establishmentsAuth.POST("/:id/seguir", establishmentController.FollowHandler)
	establishmentsAuth.DELETE("/:id/seguir", establishmentController.UnfollowHandler)
	establishmentsAuth.POST("/:id/like", establishmentController.LikeHandler)
	establishmentsAuth.DELETE("/:id/like", establishmentController.UnlikeHandler)
	establishmentsAuth.POST("/:id/imagenes", establishmentController.UploadImagesHandler)
	establishmentsAuth.DELETE("/:id/imagenes", establishmentController.RemoveImageHandler)
	establishmentsAuth.PUT("/:id/imagenes/orden", establishmentController.ReorderImagesHandler)
	establishmentsAuth.POST("/:id/ubicaciones", locationController.AddHandler)
	establishmentsAuth.POST("/:id/horarios", scheduleController.AddHandler)

	categories := r.Group("/categorias")
	categories.GET("", taxonomyController.ListCategoriesHandler)
	categories.POST("", auth, admin, taxonomyController.CreateCategoryHandler)
	categories.DELETE("/:id", auth, admin, taxonomyController.DeleteCategoryHandler)

	types := r.Group("/tipos")
	types.GET("", taxonomyController.ListTypesHandler)
	types.POST("", auth, admin, taxonomyController.CreateTypeHandler)
	types.DELETE("/:id", auth, admin, taxonomyController.DeleteTypeHandler)

	locations := r.Group("/ubicaciones", auth)
	locations.PUT("/:id", locationController.UpdateHandler)
	locations.DELETE("/:id", locationController.DeleteHandler)

	schedules := r.Group("/horarios", auth)
	schedules.PUT("/:id", scheduleController.UpdateHandler)
	schedules.DELETE("/:id", scheduleController.DeleteHandler)

	comments := r.Group("/comentarios", auth)
	comments.POST("", commentController.CreateHandler)
	comments.DELETE("/:id", commentController.DeleteHandler)

	notifications := r.Group("/notificaciones", auth)
	notifications.GET("", notificationController.ListMineHandler)
	notifications.GET("/no-leidas", notificationController.CountUnreadHandler)
	notifications.PUT("/:id/leida", notificationController.MarkReadHandler)
	notifications.PUT("/leidas", notificationController.MarkAllReadHandler)
	notifications.POST("", admin, notificationController.CreateHandler)

	promotions := r.Group("/promociones")
	promotions.GET("", promotionController.ListActiveHandler)
	promotions.GET("/:id", promotionController.GetHandler)
	promotions.POST("", auth, promotionController.CreateHandler)
	promotions.PUT("/:id", auth, promotionController.UpdateHandler)
	promotions.DELETE("/:id", auth, promotionController.DeleteHandler)
	promotions.POST("/expirar", auth, admin, promotionController.ExpireOverdueHandler)

	r.GET("/dashboard", auth, admin, dashboardController.StatsHandler)

	chat := r.Group("/chat")
	chat.POST("", chatController.MessageHandler)
	chat.POST("/reindex", auth, admin, chatController.ReindexHandler)
}
