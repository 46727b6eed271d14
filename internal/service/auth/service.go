package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gyejin/reactboard-server/internal/config"
	"github.com/gyejin/reactboard-server/internal/domain/board"
	"github.com/gyejin/reactboard-server/internal/service/cache"
	"github.com/gyejin/reactboard-server/internal/service/user"
)

const (
	loginFailKeyPrefix   = "auth:login_fail:"
	accountLockKeyPrefix = "auth:lock:"

	defaultLoginFailLimit  = 5
	defaultLoginFailWindow = 10 * time.Minute
	defaultLoginLock       = 15 * time.Minute
)

var (
	// ErrAccountLocked 는 로그인 실패 누적으로 계정이 잠긴 상태다.
	ErrAccountLocked = errors.New("account temporarily locked")
	// ErrInvalidToken 은 서명 검증 또는 클레임 해석에 실패한 토큰이다.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims 는 액세스 토큰에 담기는 페이로드다. Subject 에는 사용자 ID가 들어간다.
type Claims struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// Principal 은 검증된 토큰에서 복원한 요청 주체다.
type Principal struct {
	ID       int64
	Username string
	Nickname string
}

// Token 은 발급된 액세스 토큰과 만료 시각이다.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Service: 자격 증명 검증 + JWT 발급 + 로그인 실패 잠금을 담당하는 인증 서비스
// cacheSvc 가 nil 이면 실패 잠금 없이 동작한다.
type Service struct {
	users    *user.Service
	cacheSvc *cache.Service
	cfg      config.AuthConfig
	logger   *slog.Logger
}

// NewService 는 인증 서비스를 생성한다.
func NewService(users *user.Service, cacheSvc *cache.Service, cfg config.AuthConfig, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		cacheSvc: cacheSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login 은 자격 증명을 검증하고 액세스 토큰을 발급한다.
// 같은 아이디의 실패가 한도에 도달하면 일정 시간 로그인을 거부한다.
// 잠금은 계정 단위이며 clientIP 는 시도 추적용 로그에만 쓰인다.
func (s *Service) Login(ctx context.Context, username, password, clientIP string) (*Token, *board.User, error) {
	locked, err := s.isAccountLocked(ctx, username)
	if err != nil {
		s.logger.Warn("login_lock_check_failed", slog.Any("error", err))
	}
	if locked {
		return nil, nil, ErrAccountLocked
	}

	account, err := s.users.Validate(ctx, username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			s.logger.Warn("login_failed",
				slog.String("username", username),
				slog.String("client_ip", clientIP))
			s.onLoginFailed(ctx, username, clientIP)
		}
		return nil, nil, err
	}

	s.onLoginSucceeded(ctx, username)

	token, err := s.issueToken(account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user_logged_in",
		slog.Int64("user_id", account.ID),
		slog.String("username", username),
		slog.String("client_ip", clientIP))
	return token, account, nil
}

func (s *Service) issueToken(account *board.User) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL())

	claims := Claims{
		Username: account.Username,
		Nickname: account.Nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

// ParseToken 은 서명과 만료를 검증하고 요청 주체를 복원한다.
func (s *Service) ParseToken(tokenString string) (*Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Principal{
		ID:       userID,
		Username: claims.Username,
		Nickname: claims.Nickname,
	}, nil
}

func (s *Service) isAccountLocked(ctx context.Context, username string) (bool, error) {
	if s.cacheSvc == nil {
		return false, nil
	}
	return s.cacheSvc.Exists(ctx, accountLockKeyPrefix+username)
}

func (s *Service) onLoginFailed(ctx context.Context, username, clientIP string) {
	if s.cacheSvc == nil {
		return
	}

	key := loginFailKeyPrefix + username
	count, err := s.cacheSvc.IncrWithTTL(ctx, key, s.failWindow())
	if err != nil {
		s.logger.Warn("login_fail_increment_failed", slog.Any("error", err))
		return
	}

	if count >= int64(s.failLimit()) {
		_ = s.cacheSvc.Set(ctx, accountLockKeyPrefix+username, "1", s.lockDuration())
		_ = s.cacheSvc.Del(ctx, key)
		s.logger.Warn("account_locked",
			slog.String("username", username),
			slog.String("client_ip", clientIP),
			slog.Int64("fail_count", count))
	}
}

func (s *Service) onLoginSucceeded(ctx context.Context, username string) {
	if s.cacheSvc == nil {
		return
	}
	_ = s.cacheSvc.Del(ctx, loginFailKeyPrefix+username)
	_ = s.cacheSvc.Del(ctx, accountLockKeyPrefix+username)
}

func (s *Service) failLimit() int {
	if s.cfg.LoginFailLimit <= 0 {
		return defaultLoginFailLimit
	}
	return s.cfg.LoginFailLimit
}

func (s *Service) failWindow() time.Duration {
	if s.cfg.LoginFailWindowMin <= 0 {
		return defaultLoginFailWindow
	}
	return time.Duration(s.cfg.LoginFailWindowMin) * time.Minute
}

func (s *Service) lockDuration() time.Duration {
	if s.cfg.LoginLockMinutes <= 0 {
		return defaultLoginLock
	}
	return time.Duration(s.cfg.LoginLockMinutes) * time.Minute
}
