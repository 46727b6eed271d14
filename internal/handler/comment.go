package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/middleware"
	"github.com/gyejin/reactboard-server/internal/service/auth"
	"github.com/gyejin/reactboard-server/internal/service/comment"
)

// CommentRequest 는 댓글 작성/수정 요청 본문이다.
type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentHandler 는 댓글 API 핸들러다.
type CommentHandler struct {
	comments *comment.Service
	authSvc  *auth.Service
	logger   *slog.Logger
}

// NewCommentHandler 는 댓글 핸들러를 생성한다.
func NewCommentHandler(comments *comment.Service, authSvc *auth.Service, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, authSvc: authSvc, logger: logger}
}

// RegisterRoutes 는 댓글 라우트를 등록한다.
func (h *CommentHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/posts/:id/comments", h.listByPost)

	requireAuth := middleware.RequireAuth(h.authSvc)
	router.POST("/api/posts/:id/comments", requireAuth, h.create)
	router.PATCH("/api/comments/:id", requireAuth, h.update)
	router.DELETE("/api/comments/:id", requireAuth, h.remove)
}

func (h *CommentHandler) listByPost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		WriteError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *CommentHandler) create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	postID, ok := pathID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if !BindJSON(c, &req) {
		return
	}

	entry, err := h.comments.Create(c.Request.Context(), postID, principal.ID, req.Content)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(entry))
}

func (h *CommentHandler) update(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	commentID, ok := pathID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if !BindJSON(c, &req) {
		return
	}

	entry, err := h.comments.Update(c.Request.Context(), commentID, principal.ID, req.Content)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponse(entry))
}

func (h *CommentHandler) remove(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	commentID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), commentID, principal.ID); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
