package establishment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

var Module = fx.Provide(
	provideEstablishmentRepo,
	provideUploadStore,
	provideEstablishmentService,
	provideLocationService,
	provideScheduleService,
)

func provideEstablishmentRepo(db *gorm.DB) repositories.EstablishmentRepository {
	return repositories.NewEstablishmentRepository(db)
}

func provideUploadStore() *utils.UploadStore {
	store, err := utils.NewUploadStore(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	return store
}

func provideEstablishmentService(
	establishments repositories.EstablishmentRepository,
	taxonomy repositories.TaxonomyRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
	uploads *utils.UploadStore,
) services.EstablishmentService {
	return services.NewEstablishmentService(establishments, taxonomy, users, notifications, uploads)
}

func provideLocationService(db *gorm.DB, establishments repositories.EstablishmentRepository) services.LocationService {
	return services.NewLocationService(repositories.NewLocationRepository(db), establishments)
}

func provideScheduleService(db *gorm.DB, establishments repositories.EstablishmentRepository) services.ScheduleService {
	return services.NewScheduleService(repositories.NewScheduleRepository(db), establishments)
}
