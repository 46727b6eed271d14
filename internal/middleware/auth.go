package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gyejin/reactboard-server/internal/httperror"
	"github.com/gyejin/reactboard-server/internal/service/auth"
)

const principalKey = "principal"

// RequireAuth 는 유효한 액세스 토큰이 있어야 통과시키는 미들웨어다.
func RequireAuth(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			status, payload := httperror.Response(httperror.NewUnauthorized("인증이 필요합니다."), GetRequestID(c))
			c.AbortWithStatusJSON(status, payload)
			return
		}

		principal, err := authSvc.ParseToken(token)
		if err != nil {
			status, payload := httperror.Response(err, GetRequestID(c))
			c.AbortWithStatusJSON(status, payload)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// OptionalAuth 는 토큰이 있으면 주체를 복원하고, 없거나 깨졌으면 익명으로 통과시킨다.
// 챗봇처럼 로그인 여부에 따라 응답이 달라지는 엔드포인트가 사용한다.
func OptionalAuth(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token != "" {
			if principal, err := authSvc.ParseToken(token); err == nil {
				c.Set(principalKey, principal)
			}
		}
		c.Next()
	}
}

// GetPrincipal: 컨텍스트의 인증 주체를 반환합니다. 익명이면 nil 이다.
func GetPrincipal(c *gin.Context) *auth.Principal {
	if c == nil {
		return nil
	}
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := value.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}

func extractBearerToken(c *gin.Context) string {
	authValue := strings.TrimSpace(c.GetHeader("Authorization"))
	if authValue == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(authValue), "bearer ") {
		return strings.TrimSpace(authValue[7:])
	}
	return ""
}
