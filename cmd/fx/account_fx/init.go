package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
	mem "moodtrip/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, resetTokens *mem.ResetTokenStore) services.AccountService {
	return services.NewAccountService(accountRepo, resetTokens)
}
