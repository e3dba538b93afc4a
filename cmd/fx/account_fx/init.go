package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
	mem "boulevard/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(users repositories.UserRepository, tokens mem.ResetTokenStore, mail services.IMailService) services.AccountService {
	return services.NewAccountService(users, tokens, mail)
}
