package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
)

// Client Redis 클라이언트 래퍼
// 요청 제한과 공고 등록 멱등 키에 사용한다
type Client struct {
	rdb    goredis.Cmdable
	closer func() error
	logger *zap.Logger
}

// NewClient Redis 에 연결하고 Ping 으로 확인한다
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, closer: rdb.Close, logger: logger}, nil
}

// ── 요청 제한 ──

// CheckRateLimit 정렬 집합 기반 슬라이딩 윈도우
// window 안의 요청 수가 limit 미만이면 이번 요청을 기록하고 true 를 돌려준다
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	floor := strconv.FormatInt(now.Add(-window).UnixNano(), 10)

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", floor)
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if count.Val() >= int64(limit) {
		return false, nil
	}

	pipe = c.rdb.TxPipeline()
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ── 멱등 키 ──

const idempotencyPrefix = "idempotency:"

// ClaimIdempotencyKey 처음 보는 키면 점유하고 true, 이미 처리된 키면 false
func (c *Client) ClaimIdempotencyKey(ctx context.Context, scope, key string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, idempotencyPrefix+scope+":"+key, "1", ttl).Result()
}

// ReleaseIdempotencyKey 처리 실패 시 키를 돌려놓아 재시도를 허용한다
func (c *Client) ReleaseIdempotencyKey(ctx context.Context, scope, key string) error {
	return c.rdb.Del(ctx, idempotencyPrefix+scope+":"+key).Err()
}

// Close 연결 종료
func (c *Client) Close() error {
	return c.closer()
}
