package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/domain/board"
)

const (
	defaultMaxPool         = 25
	defaultMinPool         = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 10 * time.Minute
	pingTimeout            = 5 * time.Second
)

// Service: PostgreSQL 연결과 GORM 인스턴스를 관리하는 서비스
type Service struct {
	db     *sql.DB
	gormDB *gorm.DB
	logger *slog.Logger
}

// New: 설정으로 PostgreSQL 연결을 수립하고 게시판 스키마를 마이그레이션한다.
// 연결 풀 설정과 초기 헬스 체크(Ping)를 함께 수행한다.
func New(cfg config.DatabaseConfig, logger *slog.Logger) (*Service, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}

	maxPool := cfg.MaxPool
	if maxPool <= 0 {
		maxPool = defaultMaxPool
	}
	minPool := cfg.MinPool
	if minPool <= 0 {
		minPool = defaultMinPool
	}
	connMaxLifetime := time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute
	if connMaxLifetime <= 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}
	connMaxIdleTime := time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = defaultConnMaxIdleTime
	}

	db.SetMaxOpenConns(maxPool)
	db.SetMaxIdleConns(minPool)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := gormDB.AutoMigrate(board.Models()...); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logger.Info("postgres_connected",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
	)

	return &Service{db: db, gormDB: gormDB, logger: logger}, nil
}

// DB: GORM DB 인스턴스를 반환한다.
func (s *Service) DB() *gorm.DB {
	return s.gormDB
}

// Ping: 데이터베이스 연결 상태를 확인한다. (헬스 체크용)
func (s *Service) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// Close: 데이터베이스 연결을 종료한다.
func (s *Service) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}
