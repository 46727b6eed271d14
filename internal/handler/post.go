package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/httperror"
	"github.com/gyejin/reactboard-server/internal/middleware"
	"github.com/gyejin/reactboard-server/internal/service/auth"
	"github.com/gyejin/reactboard-server/internal/service/post"
)

// CreatePostRequest 는 게시글 작성 요청 본문이다.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest 는 게시글 수정 요청 본문이다. 생략된 필드는 그대로 둔다.
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"omitempty,max=255"`
	Content string `json:"content"`
}

// PostListResponse 는 목록 응답 본문이다.
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int64          `json:"total"`
}

// PostHandler 는 게시글 API 핸들러다.
type PostHandler struct {
	posts   *post.Service
	authSvc *auth.Service
	logger  *slog.Logger
}

// NewPostHandler 는 게시글 핸들러를 생성한다.
func NewPostHandler(posts *post.Service, authSvc *auth.Service, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, authSvc: authSvc, logger: logger}
}

// RegisterRoutes 는 게시글 라우트를 등록한다.
func (h *PostHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/posts", h.list)
	router.GET("/api/posts/popular", h.popular)
	router.GET("/api/posts/:id", h.get)

	requireAuth := middleware.RequireAuth(h.authSvc)
	router.POST("/api/posts", requireAuth, h.create)
	router.PATCH("/api/posts/:id", requireAuth, h.update)
	router.DELETE("/api/posts/:id", requireAuth, h.remove)
	router.POST("/api/posts/:id/like", requireAuth, h.toggleLike)
}

func (h *PostHandler) list(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := h.posts.List(c.Request.Context(), page, limit)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostListResponse{
		Posts: toPostResponses(result.Posts),
		Total: result.Total,
	})
}

func (h *PostHandler) popular(c *gin.Context) {
	posts, err := h.posts.Popular(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponses(posts))
}

func (h *PostHandler) get(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.posts.Get(c.Request.Context(), postID)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(entry))
}

func (h *PostHandler) create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req CreatePostRequest
	if !BindJSON(c, &req) {
		return
	}

	entry, err := h.posts.Create(c.Request.Context(), principal.ID, req.Title, req.Content)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(entry))
}

func (h *PostHandler) update(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	postID, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !BindJSON(c, &req) {
		return
	}

	entry, err := h.posts.Update(c.Request.Context(), postID, principal.ID, req.Title, req.Content)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(entry))
}

func (h *PostHandler) remove(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	postID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), postID, principal.ID); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) toggleLike(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	postID, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.posts.ToggleLike(c.Request.Context(), postID, principal.ID)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(entry))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteError(c, httperror.NewInvalidInput("잘못된 식별자입니다."))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
