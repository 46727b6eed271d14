package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyCheckTimeout = 2 * time.Second

// Pinger 는 의존성 상태 점검 인터페이스다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthPayload 는 상태 확인 응답 본문이다.
type HealthPayload struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
// /health 는 외부 의존성 상태로 다운 판정되지 않도록 shallow 로 유지한다.
func RegisterHealthRoutes(router *gin.Engine, db Pinger) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthPayload{Status: "ok"})
	})

	router.GET("/health/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
		defer cancel()

		payload := HealthPayload{Status: "ok", Database: "ok"}
		status := http.StatusOK
		if db == nil {
			payload.Database = "unconfigured"
		} else if err := db.Ping(ctx); err != nil {
			payload.Status = "degraded"
			payload.Database = "down"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, payload)
	})
}
