package cache

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面，封裝 Redis，測試時以 FakeCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Close() error
}

const keyPrefix = "gideon:"

// PlanKey 組出計畫快取鍵，例如 gideon:plan:workout:rules-basic:strength:beginner:3
//
// 每段各自跳脫，含 ":" 的輸入不會與其他參數組合撞鍵；參數原樣保留不做正規化
func PlanKey(kind string, parts ...string) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString("plan:")
	b.WriteString(kind)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(url.QueryEscape(p))
	}
	return b.String()
}

// GetBytes 讀取快取；不存在時 ok 為 false 且 err 為 nil
func GetBytes(ctx context.Context, c Cache, key string) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	b, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetBytes 寫入快取；c 為 nil 時為 no-op
func SetBytes(ctx context.Context, c Cache, key string, value []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.Set(ctx, key, value, ttl).Err()
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
