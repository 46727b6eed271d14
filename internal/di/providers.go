package di

import (
	"log/slog"

	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/service/cache"
)

// provideCache: Valkey 캐시 서비스를 구성합니다.
// 캐시가 비활성화된 경우 nil을 반환하며, 의존 서비스는 캐시 없이 동작한다.
func provideCache(cfg *config.Config, logger *slog.Logger) (*cache.Service, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache_disabled")
		return nil, nil
	}
	return cache.New(cfg.Cache, logger)
}
