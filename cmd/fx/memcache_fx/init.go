package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "moodtrip/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore)

func provideResetTokenStore() *mem.ResetTokenStore {
	return mem.NewResetTokenStore(15 * time.Minute)
}
