package taxonomy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
)

var Module = fx.Provide(
	provideTaxonomyRepo, provideTaxonomyService)

func provideTaxonomyRepo(db *gorm.DB) repositories.TaxonomyRepository {
	return repositories.NewTaxonomyRepository(db)
}

func provideTaxonomyService(taxonomy repositories.TaxonomyRepository) services.TaxonomyService {
	return services.NewTaxonomyService(taxonomy)
}
