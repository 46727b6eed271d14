package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/domain/board"
	"github.com/gyejin/reactboard-server/internal/httperror"
	"github.com/gyejin/reactboard-server/internal/middleware"
)

// WriteError 는 에러 응답을 작성한다.
func WriteError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, middleware.GetRequestID(c))
	c.JSON(status, payload)
}

// BindJSON 는 요청 본문을 JSON으로 파싱한다.
func BindJSON(c *gin.Context, out any) bool {
	if c == nil {
		return false
	}
	if err := c.ShouldBindJSON(out); err != nil {
		WriteError(c, httperror.NewValidationError(err))
		return false
	}
	return true
}

// UserResponse 는 비밀번호를 제외한 사용자 응답 본문이다.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse 는 게시글 응답 본문이다.
type PostResponse struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	LikesCount int            `json:"likes_count"`
	User       *UserResponse  `json:"user,omitempty"`
	LikedBy    []UserResponse `json:"liked_by,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CommentResponse 는 댓글 응답 본문이다.
type CommentResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	PostID    int64         `json:"post_id"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toUserResponse(account *board.User) *UserResponse {
	if account == nil {
		return nil
	}
	return &UserResponse{
		ID:        account.ID,
		Username:  account.Username,
		Nickname:  account.Nickname,
		CreatedAt: account.CreatedAt,
	}
}

func toPostResponse(entry *board.Post) PostResponse {
	resp := PostResponse{
		ID:         entry.ID,
		Title:      entry.Title,
		Content:    entry.Content,
		LikesCount: entry.LikesCount,
		User:       toUserResponse(entry.User),
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
	for i := range entry.LikedBy {
		if liker := toUserResponse(&entry.LikedBy[i]); liker != nil {
			resp.LikedBy = append(resp.LikedBy, *liker)
		}
	}
	return resp
}

func toPostResponses(posts []board.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i]))
	}
	return responses
}

func toCommentResponse(entry *board.Comment) CommentResponse {
	return CommentResponse{
		ID:        entry.ID,
		Content:   entry.Content,
		PostID:    entry.PostID,
		User:      toUserResponse(entry.User),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
