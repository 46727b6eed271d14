package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gyejin/reactboard-server/internal/domain/board"
	"github.com/gyejin/reactboard-server/internal/service/cache"
)

const (
	// popularLikeThreshold 이상 좋아요를 받은 글만 인기 게시글로 노출된다.
	popularLikeThreshold = 5
	popularCacheKey      = "posts:popular"
	popularCacheTTL      = time.Minute

	searchResultLimit = 5
	defaultPageSize   = 10
)

var (
	// ErrPostNotFound 는 대상 게시글이 없을 때 반환된다.
	ErrPostNotFound = errors.New("post not found")
	// ErrForbidden 은 다른 사용자의 글을 수정/삭제하려 할 때 반환된다.
	ErrForbidden = errors.New("not the post owner")
	// ErrUserNotFound 는 좋아요 대상 사용자가 없을 때 반환된다.
	ErrUserNotFound = errors.New("user not found")
)

// Page 는 목록 조회 결과다.
type Page struct {
	Posts []board.Post
	Total int64
}

// Service: 게시글 CRUD, 좋아요 토글, 인기 글 및 검색 조회를 담당하는 서비스
type Service struct {
	db       *gorm.DB
	cacheSvc *cache.Service
	logger   *slog.Logger
}

// NewService 는 게시글 서비스를 생성한다. cacheSvc 는 nil 이어도 된다.
func NewService(db *gorm.DB, cacheSvc *cache.Service, logger *slog.Logger) *Service {
	return &Service{db: db, cacheSvc: cacheSvc, logger: logger}
}

// Create 는 새 게시글을 저장한다.
func (s *Service) Create(ctx context.Context, userID int64, title, content string) (*board.Post, error) {
	entry := &board.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := s.db.WithContext(ctx).Preload("User").First(entry, entry.ID).Error; err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	scrubPost(entry)
	return entry, nil
}

// List 는 최신순 게시글 한 페이지와 전체 개수를 반환한다.
func (s *Service) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&board.Post{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	var posts []board.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	scrubPosts(posts)
	return &Page{Posts: posts, Total: total}, nil
}

// Get 은 게시글 하나를 작성자/좋아요 사용자와 함께 조회한다.
func (s *Service) Get(ctx context.Context, postID int64) (*board.Post, error) {
	var entry board.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("LikedBy").
		First(&entry, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	scrubPost(&entry)
	return &entry, nil
}

// Update 는 작성자 본인의 게시글만 수정한다.
func (s *Service) Update(ctx context.Context, postID, userID int64, title, content string) (*board.Post, error) {
	entry, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if title != "" {
		updates["title"] = title
	}
	if content != "" {
		updates["content"] = content
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&board.Post{ID: postID}).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
	}

	return s.Get(ctx, postID)
}

// Delete 는 작성자 본인의 게시글만 삭제한다.
func (s *Service) Delete(ctx context.Context, postID, userID int64) error {
	entry, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&board.Post{}, postID).Error; err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// ToggleLike 는 좋아요를 누르거나 취소하고 갱신된 게시글을 반환한다.
func (s *Service) ToggleLike(ctx context.Context, postID, userID int64) (*board.Post, error) {
	var entry board.Post
	err := s.db.WithContext(ctx).Preload("LikedBy").First(&entry, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	var liker board.User
	if err := s.db.WithContext(ctx).First(&liker, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	liked := false
	for _, u := range entry.LikedBy {
		if u.ID == userID {
			liked = true
			break
		}
	}

	assoc := s.db.WithContext(ctx).Model(&entry).Association("LikedBy")
	if liked {
		if err := assoc.Delete(&liker); err != nil {
			return nil, fmt.Errorf("remove like: %w", err)
		}
	} else {
		if err := assoc.Append(&liker); err != nil {
			return nil, fmt.Errorf("add like: %w", err)
		}
	}

	likesCount := assoc.Count()
	if err := s.db.WithContext(ctx).Model(&board.Post{ID: postID}).
		Update("likes_count", likesCount).Error; err != nil {
		return nil, fmt.Errorf("update likes count: %w", err)
	}

	s.invalidatePopular(ctx)
	return s.Get(ctx, postID)
}

// Popular 는 좋아요 임계값을 넘긴 글을 좋아요순으로 반환한다. 캐시가 있으면 캐시를 먼저 본다.
func (s *Service) Popular(ctx context.Context) ([]board.Post, error) {
	if s.cacheSvc != nil {
		var cached []board.Post
		found, err := s.cacheSvc.Get(ctx, popularCacheKey, &cached)
		if err != nil {
			s.logger.Warn("popular_cache_read_failed", slog.Any("error", err))
		} else if found {
			return cached, nil
		}
	}

	var posts []board.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("likes_count >= ?", popularLikeThreshold).
		Order("likes_count DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("find popular posts: %w", err)
	}
	scrubPosts(posts)

	if s.cacheSvc != nil {
		if err := s.cacheSvc.Set(ctx, popularCacheKey, posts, popularCacheTTL); err != nil {
			s.logger.Warn("popular_cache_write_failed", slog.Any("error", err))
		}
	}
	return posts, nil
}

// FindMyPosts 는 사용자가 작성한 글을 최신순으로 반환한다.
func (s *Service) FindMyPosts(ctx context.Context, userID int64) ([]board.Post, error) {
	var posts []board.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("find my posts: %w", err)
	}
	scrubPosts(posts)
	return posts, nil
}

// FindLikedPosts 는 사용자가 좋아요를 누른 글을 반환한다.
func (s *Service) FindLikedPosts(ctx context.Context, userID int64) ([]board.Post, error) {
	var account board.User
	err := s.db.WithContext(ctx).
		Preload("LikedPosts").
		Preload("LikedPosts.User").
		First(&account, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	scrubPosts(account.LikedPosts)
	return account.LikedPosts, nil
}

// Search 는 제목 또는 본문에 키워드가 포함된 최신 글을 최대 5건 반환한다.
func (s *Service) Search(ctx context.Context, keyword string) ([]board.Post, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, nil
	}

	pattern := "%" + keyword + "%"
	var posts []board.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(searchResultLimit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	scrubPosts(posts)
	return posts, nil
}

func (s *Service) invalidatePopular(ctx context.Context) {
	if s.cacheSvc == nil {
		return
	}
	if err := s.cacheSvc.Del(ctx, popularCacheKey); err != nil {
		s.logger.Warn("popular_cache_invalidate_failed", slog.Any("error", err))
	}
}

func scrubPost(entry *board.Post) {
	if entry.User != nil {
		entry.User.Password = ""
	}
	for i := range entry.LikedBy {
		entry.LikedBy[i].Password = ""
	}
}

func scrubPosts(posts []board.Post) {
	for i := range posts {
		scrubPost(&posts[i])
	}
}
