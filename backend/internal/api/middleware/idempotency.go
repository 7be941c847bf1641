package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// IdempotencyHeader 제출 단위 키. 응답을 받지 못한 재전송은 같은 키를 쓴다
const IdempotencyHeader = "Idempotency-Key"

const (
	msgDuplicateSubmit = "이미 처리된 요청입니다."
	idempotencyKeyMax  = 64
)

// IdempotencyStore 키 점유/반환 (pkg/redis.Client)
type IdempotencyStore interface {
	ClaimIdempotencyKey(ctx context.Context, scope, key string, ttl time.Duration) (bool, error)
	ReleaseIdempotencyKey(ctx context.Context, scope, key string) error
}

// Idempotency 같은 키로 다시 들어온 요청을 409 로 막는다
// 키가 없거나 store 가 nil/오류면 통과. 처리가 실패(2xx 아님, panic 포함)하면 키를 돌려놓아 재시도를 허용한다
func Idempotency(store IdempotencyStore, scope string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if store == nil || key == "" || len(key) > idempotencyKeyMax {
			c.Next()
			return
		}

		claimed, err := store.ClaimIdempotencyKey(c.Request.Context(), scope, key, ttl)
		if err != nil {
			c.Next()
			return
		}
		if !claimed {
			response.Conflict(c, msgDuplicateSubmit)
			c.Abort()
			return
		}

		completed := false
		defer func() {
			if status := c.Writer.Status(); !completed || status < 200 || status >= 300 {
				_ = store.ReleaseIdempotencyKey(context.WithoutCancel(c.Request.Context()), scope, key)
			}
		}()

		c.Next()
		completed = true
	}
}
