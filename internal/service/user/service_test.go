package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gyejin/reactboard-server/internal/domain/board"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(board.Models()...); err != nil {
		t.Fatal(err)
	}

	return NewService(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegisterAndValidate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, "gyejin", "secret-pass", "지니")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if account.Password != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	validated, err := svc.Validate(ctx, "gyejin", "secret-pass")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if validated.ID != account.ID {
		t.Fatalf("expected user %d, got %d", account.ID, validated.ID)
	}

	if _, err := svc.Validate(ctx, "gyejin", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Validate(ctx, "nobody", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "gyejin", "secret-pass", "지니"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Register(ctx, "gyejin", "other-pass", "다른닉"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Register(ctx, "other", "other-pass", "지니"); !errors.Is(err, ErrNicknameTaken) {
		t.Fatalf("expected ErrNicknameTaken, got %v", err)
	}
}

func TestFindByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, "gyejin", "secret-pass", "지니")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	found, err := svc.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Nickname != "지니" {
		t.Fatalf("unexpected nickname %q", found.Nickname)
	}
	if found.Password != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	if _, err := svc.FindByID(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateNickname(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "gyejin", "secret-pass", "지니")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "other", "other-pass", "점유된닉"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateNickname(ctx, first.ID, "새닉네임")
	if err != nil {
		t.Fatalf("update nickname failed: %v", err)
	}
	if updated.Nickname != "새닉네임" {
		t.Fatalf("unexpected nickname %q", updated.Nickname)
	}

	if _, err := svc.UpdateNickname(ctx, first.ID, "점유된닉"); !errors.Is(err, ErrNicknameTaken) {
		t.Fatalf("expected ErrNicknameTaken, got %v", err)
	}
	if _, err := svc.UpdateNickname(ctx, 999, "아무닉"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, "gyejin", "secret-pass", "지니")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.UpdatePassword(ctx, account.ID, "wrong-pass", "new-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if err := svc.UpdatePassword(ctx, account.ID, "secret-pass", "new-pass"); err != nil {
		t.Fatalf("update password failed: %v", err)
	}

	if _, err := svc.Validate(ctx, "gyejin", "new-pass"); err != nil {
		t.Fatalf("validate with new password failed: %v", err)
	}
	if _, err := svc.Validate(ctx, "gyejin", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must no longer validate")
	}
}
