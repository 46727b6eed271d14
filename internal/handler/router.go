package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/middleware"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	db Pinger,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	postHandler *PostHandler,
	commentHandler *CommentHandler,
	chatbotHandler *ChatbotHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		gzip.Gzip(gzip.DefaultCompression),
	)

	RegisterHealthRoutes(router, db)
	authHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	postHandler.RegisterRoutes(router)
	commentHandler.RegisterRoutes(router)
	chatbotHandler.RegisterRoutes(router)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization")
	return corsCfg
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
