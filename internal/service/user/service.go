package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gyejin/reactboard-server/internal/domain/board"
)

var (
	// ErrUsernameTaken 은 이미 존재하는 아이디로 가입을 시도할 때 반환된다.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrNicknameTaken 은 이미 존재하는 닉네임으로 가입 또는 변경을 시도할 때 반환된다.
	ErrNicknameTaken = errors.New("nickname already taken")
	// ErrUserNotFound 는 대상 사용자가 없을 때 반환된다.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials 는 아이디 또는 비밀번호가 틀렸을 때 반환된다.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service 는 회원 가입과 계정 정보 변경을 담당한다.
type Service struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewService 는 사용자 서비스를 생성한다.
func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Register 는 비밀번호를 bcrypt 로 해시해 새 계정을 만든다.
func (s *Service) Register(ctx context.Context, username, password, nickname string) (*board.User, error) {
	username = strings.TrimSpace(username)
	nickname = strings.TrimSpace(nickname)

	if err := s.checkConflicts(ctx, username, nickname); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &board.User{
		Username: username,
		Password: string(hash),
		Nickname: nickname,
	}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user_registered", slog.Int64("user_id", account.ID), slog.String("username", username))
	account.Password = ""
	return account, nil
}

func (s *Service) checkConflicts(ctx context.Context, username, nickname string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&board.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	if err := s.db.WithContext(ctx).Model(&board.User{}).
		Where("nickname = ?", nickname).Count(&count).Error; err != nil {
		return fmt.Errorf("check nickname: %w", err)
	}
	if count > 0 {
		return ErrNicknameTaken
	}
	return nil
}

// Validate 는 아이디와 비밀번호를 대조한다. 반환되는 사용자에는 해시가 포함되지 않는다.
func (s *Service) Validate(ctx context.Context, username, password string) (*board.User, error) {
	var account board.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	account.Password = ""
	return &account, nil
}

// FindByID 는 ID로 사용자를 조회한다. 반환되는 사용자에는 해시가 포함되지 않는다.
func (s *Service) FindByID(ctx context.Context, userID int64) (*board.User, error) {
	var account board.User
	err := s.db.WithContext(ctx).First(&account, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	account.Password = ""
	return &account, nil
}

// UpdateNickname 은 중복 검사 후 닉네임을 바꾼다.
func (s *Service) UpdateNickname(ctx context.Context, userID int64, nickname string) (*board.User, error) {
	nickname = strings.TrimSpace(nickname)

	var account board.User
	if err := s.db.WithContext(ctx).First(&account, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&board.User{}).
		Where("nickname = ? AND id <> ?", nickname, userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check nickname: %w", err)
	}
	if count > 0 {
		return nil, ErrNicknameTaken
	}

	if err := s.db.WithContext(ctx).Model(&account).Update("nickname", nickname).Error; err != nil {
		return nil, fmt.Errorf("update nickname: %w", err)
	}

	account.Nickname = nickname
	account.Password = ""
	return &account, nil
}

// UpdatePassword 는 현재 비밀번호 확인 후 새 비밀번호로 교체한다.
func (s *Service) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	var account board.User
	if err := s.db.WithContext(ctx).First(&account, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&account).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("user_password_changed", slog.Int64("user_id", userID))
	return nil
}
