package post

import (
	"context"

	"github.com/gyejin/reactboard-server/internal/chatbot"
	"github.com/gyejin/reactboard-server/internal/domain/board"
)

// Directory 는 게시글 서비스를 챗봇이 쓰는 조회 전용 형태로 감싼다.
type Directory struct {
	posts *Service
}

// NewDirectory 는 챗봇용 게시글 디렉터리를 생성한다.
func NewDirectory(posts *Service) *Directory {
	return &Directory{posts: posts}
}

// FindMyPosts 는 사용자가 작성한 글의 요약 목록을 반환한다.
func (d *Directory) FindMyPosts(ctx context.Context, userID int64) ([]chatbot.PostSummary, error) {
	posts, err := d.posts.FindMyPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(posts), nil
}

// FindLikedPosts 는 사용자가 좋아요를 누른 글의 요약 목록을 반환한다.
func (d *Directory) FindLikedPosts(ctx context.Context, userID int64) ([]chatbot.PostSummary, error) {
	posts, err := d.posts.FindLikedPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(posts), nil
}

// Search 는 키워드 검색 결과의 요약 목록을 반환한다.
func (d *Directory) Search(ctx context.Context, keyword string) ([]chatbot.PostSummary, error) {
	posts, err := d.posts.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return summarize(posts), nil
}

func summarize(posts []board.Post) []chatbot.PostSummary {
	summaries := make([]chatbot.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, chatbot.PostSummary{
			ID:             posts[i].ID,
			Title:          posts[i].Title,
			Content:        posts[i].Content,
			AuthorNickname: posts[i].AuthorNickname(),
		})
	}
	return summaries
}
