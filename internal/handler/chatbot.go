package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/chatbot"
	"github.com/gyejin/reactboard-server/internal/middleware"
	"github.com/gyejin/reactboard-server/internal/service/auth"
)

// ChatbotRequest 는 챗봇 메시지 요청 본문이다.
type ChatbotRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatbotResponse 는 챗봇 응답 본문이다.
type ChatbotResponse struct {
	Reply string `json:"reply"`
}

// ChatbotHandler 는 챗봇 API 핸들러다.
type ChatbotHandler struct {
	bot     *chatbot.Service
	authSvc *auth.Service
	logger  *slog.Logger
}

// NewChatbotHandler 는 챗봇 핸들러를 생성한다.
func NewChatbotHandler(bot *chatbot.Service, authSvc *auth.Service, logger *slog.Logger) *ChatbotHandler {
	return &ChatbotHandler{bot: bot, authSvc: authSvc, logger: logger}
}

// RegisterRoutes 는 챗봇 라우트를 등록한다.
// 비로그인 사용자도 쓸 수 있어야 하므로 인증은 선택이다.
func (h *ChatbotHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/chatbot/message", middleware.OptionalAuth(h.authSvc), h.message)
}

func (h *ChatbotHandler) message(c *gin.Context) {
	var req ChatbotRequest
	if !BindJSON(c, &req) {
		return
	}

	var actor *chatbot.Actor
	if principal := middleware.GetPrincipal(c); principal != nil {
		actor = &chatbot.Actor{ID: principal.ID, Nickname: principal.Nickname}
	}

	reply := h.bot.Respond(c.Request.Context(), req.Message, actor)
	c.JSON(http.StatusOK, ChatbotResponse{Reply: reply})
}
