package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/middleware"
	"github.com/gyejin/reactboard-server/internal/service/auth"
	"github.com/gyejin/reactboard-server/internal/service/post"
	"github.com/gyejin/reactboard-server/internal/service/user"
)

// SignupRequest 는 회원 가입 요청 본문이다.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

// UpdateNicknameRequest 는 닉네임 변경 요청 본문이다.
type UpdateNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

// UpdatePasswordRequest 는 비밀번호 변경 요청 본문이다.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserHandler 는 사용자 API 핸들러다.
type UserHandler struct {
	users   *user.Service
	posts   *post.Service
	authSvc *auth.Service
	logger  *slog.Logger
}

// NewUserHandler 는 사용자 핸들러를 생성한다.
func NewUserHandler(users *user.Service, posts *post.Service, authSvc *auth.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, posts: posts, authSvc: authSvc, logger: logger}
}

// RegisterRoutes 는 사용자 라우트를 등록한다.
func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/users", h.signup)

	authed := router.Group("/api/users", middleware.RequireAuth(h.authSvc))
	authed.GET("/me", h.me)
	authed.PATCH("/me/nickname", h.updateNickname)
	authed.PATCH("/me/password", h.updatePassword)
	authed.GET("/me/posts", h.myPosts)
}

func (h *UserHandler) signup(c *gin.Context) {
	var req SignupRequest
	if !BindJSON(c, &req) {
		return
	}

	account, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Nickname)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(account))
}

func (h *UserHandler) me(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	account, err := h.users.FindByID(c.Request.Context(), principal.ID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UserHandler) updateNickname(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req UpdateNicknameRequest
	if !BindJSON(c, &req) {
		return
	}

	account, err := h.users.UpdateNickname(c.Request.Context(), principal.ID, req.Nickname)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UserHandler) updatePassword(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req UpdatePasswordRequest
	if !BindJSON(c, &req) {
		return
	}

	err := h.users.UpdatePassword(c.Request.Context(), principal.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) myPosts(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	posts, err := h.posts.FindMyPosts(c.Request.Context(), principal.ID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}
