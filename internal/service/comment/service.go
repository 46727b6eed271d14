package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/gyejin/reactboard-server/internal/domain/board"
)

var (
	// ErrCommentNotFound 는 대상 댓글이 없을 때 반환된다.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrPostNotFound 는 댓글을 달 게시글이 없을 때 반환된다.
	ErrPostNotFound = errors.New("post not found")
	// ErrForbidden 은 다른 사용자의 댓글을 수정/삭제하려 할 때 반환된다.
	ErrForbidden = errors.New("not the comment owner")
)

// Service 는 게시글 댓글의 작성과 수정/삭제를 담당한다.
type Service struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewService 는 댓글 서비스를 생성한다.
func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create 는 게시글 존재를 확인한 뒤 댓글을 저장한다.
func (s *Service) Create(ctx context.Context, postID, userID int64, content string) (*board.Comment, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&board.Post{}).
		Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if count == 0 {
		return nil, ErrPostNotFound
	}

	entry := &board.Comment{
		Content: content,
		PostID:  postID,
		UserID:  userID,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return s.Get(ctx, entry.ID)
}

// ListByPost 는 게시글의 댓글을 작성순으로 반환한다.
func (s *Service) ListByPost(ctx context.Context, postID int64) ([]board.Comment, error) {
	var comments []board.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	for i := range comments {
		if comments[i].User != nil {
			comments[i].User.Password = ""
		}
	}
	return comments, nil
}

// Get 은 댓글 하나를 작성자와 함께 조회한다.
func (s *Service) Get(ctx context.Context, commentID int64) (*board.Comment, error) {
	var entry board.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&entry, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if entry.User != nil {
		entry.User.Password = ""
	}
	return &entry, nil
}

// Update 는 작성자 본인의 댓글만 수정한다.
func (s *Service) Update(ctx context.Context, commentID, userID int64, content string) (*board.Comment, error) {
	entry, err := s.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.db.WithContext(ctx).Model(&board.Comment{ID: commentID}).
		Update("content", content).Error; err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return s.Get(ctx, commentID)
}

// Delete 는 작성자 본인의 댓글만 삭제한다.
func (s *Service) Delete(ctx context.Context, commentID, userID int64) error {
	entry, err := s.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&board.Comment{}, commentID).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
