package di

import (
	"fmt"

	"github.com/gyejin/reactboard-server/internal/chatbot"
	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/gemini"
	"github.com/gyejin/reactboard-server/internal/handler"
	"github.com/gyejin/reactboard-server/internal/logging"
	"github.com/gyejin/reactboard-server/internal/server"
	"github.com/gyejin/reactboard-server/internal/service/auth"
	"github.com/gyejin/reactboard-server/internal/service/comment"
	"github.com/gyejin/reactboard-server/internal/service/database"
	"github.com/gyejin/reactboard-server/internal/service/post"
	"github.com/gyejin/reactboard-server/internal/service/user"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	cacheSvc, err := provideCache(cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: %w", err)
	}

	users := user.NewService(db.DB(), logger)
	authSvc := auth.NewService(users, cacheSvc, cfg.Auth, logger)
	posts := post.NewService(db.DB(), cacheSvc, logger)
	comments := comment.NewService(db.DB(), logger)

	geminiClient := gemini.NewClient(cfg, logger)
	bot := chatbot.NewService(post.NewDirectory(posts), geminiClient, logger)

	router := handler.NewRouter(cfg, logger, db,
		handler.NewAuthHandler(authSvc, logger),
		handler.NewUserHandler(users, posts, authSvc, logger),
		handler.NewPostHandler(posts, authSvc, logger),
		handler.NewCommentHandler(comments, authSvc, logger),
		handler.NewChatbotHandler(bot, authSvc, logger),
	)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, db, cacheSvc), nil
}
