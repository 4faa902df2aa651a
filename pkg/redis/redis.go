package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"new-family/config"
)

// Client Redis 클라이언트 래퍼
// 토큰 블랙리스트와 시스템 상수 스냅샷 캐시에 사용한다
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결 생성 후 Ping 헬스체크 수행
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 토큰 블랙리스트 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID를 블랙리스트에 추가, TTL은 토큰 잔여 유효기간과 동일
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 이미 만료된 토큰은 등록할 필요 없음
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID가 블랙리스트에 있는지 확인
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 시스템 상수 스냅샷 캐시 ──
//
// 시스템 상수(파일 경로 등)는 요청마다 DB를 조회하지 않고 캐시된 스냅샷을 쓴다.
// 상수 변경 시 Invalidate로 명시적으로 무효화한다.

const constantsKey = "system:constants"

// GetConstants 캐시된 시스템 상수 JSON을 조회. 캐시 미스 시 ("", nil) 반환
func (c *Client) GetConstants(ctx context.Context) (string, error) {
	val, err := c.rdb.Get(ctx, constantsKey).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetConstants 시스템 상수 JSON 스냅샷 저장
func (c *Client) SetConstants(ctx context.Context, payload string, ttl time.Duration) error {
	return c.rdb.Set(ctx, constantsKey, payload, ttl).Err()
}

// InvalidateConstants 시스템 상수 캐시 무효화 (상수 변경 시 호출)
func (c *Client) InvalidateConstants(ctx context.Context) error {
	return c.rdb.Del(ctx, constantsKey).Err()
}

// ── 속도 제한 ──

// CheckRateLimit 고정 윈도 카운터 기반 속도 제한.
// 윈도 내 요청 수가 limit 이하이면 true를 반환한다.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close Redis 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
