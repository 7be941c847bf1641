package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

const msgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

// RateLimiter 슬라이딩 윈도우 카운터 (pkg/redis.Client)
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 클라이언트 IP + 경로 단위 요청 제한
// limiter 가 nil 이거나 Redis 오류면 통과시킨다
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := limiter.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c, msgTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
