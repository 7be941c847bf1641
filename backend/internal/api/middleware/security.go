package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders 기본 보안 응답 헤더
// JSON API 와 업로드 이미지만 내보내므로 CSP 는 이미지 외 모든 것을 막는다
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; img-src 'self'; frame-ancestors 'none'")

		c.Next()
	}
}
