package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

const msgBodyTooLarge = "요청 본문이 너무 큽니다."

// BodyLimit 요청 본문 크기 제한
// multipart 요청(프로필 사진 업로드)은 uploadMax, 그 외는 maxBytes 를 적용한다
func BodyLimit(maxBytes, uploadMax int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := maxBytes
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			limit = uploadMax
		}

		if c.Request.ContentLength > limit {
			response.Error(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}

		c.Next()
	}
}
