package di

import (
	"log/slog"
	"net/http"

	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/service/cache"
	"github.com/gyejin/reactboard-server/internal/service/database"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server   *http.Server
	Logger   *slog.Logger
	Config   *config.Config
	Database *database.Service
	Cache    *cache.Service
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	db *database.Service,
	cacheSvc *cache.Service,
) *App {
	return &App{
		Server:   server,
		Logger:   logger,
		Config:   cfg,
		Database: db,
		Cache:    cacheSvc,
	}
}

// Close: 앱 리소스를 정리합니다.
func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.Database != nil {
		_ = a.Database.Close()
	}
}
