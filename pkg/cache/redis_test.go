package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachableClient points at a closed local port so every command fails fast.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCacheKeyPrefix(t *testing.T) {
	c := NewRedisCacheFromClient(unreachableClient(), "")
	defer c.Close()
	if got := c.key("analysis:abc"); got != DefaultRedisPrefix+"analysis:abc" {
		t.Errorf("key = %q", got)
	}

	custom := NewRedisCacheFromClient(unreachableClient(), "test:")
	defer custom.Close()
	if got := custom.key("x"); got != "test:x" {
		t.Errorf("key = %q", got)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected ping failure for a closed port")
	}
}

func TestRedisCacheBackendError(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	c := NewRedisCacheFromClient(unreachableClient(), "test:")
	defer c.Close()

	_, hit, err := c.Get(context.Background(), "k")
	if err == nil || hit {
		t.Errorf("Get on dead server: hit=%v err=%v; want error", hit, err)
	}
}

func TestClassifyRedisErr(t *testing.T) {
	if classifyRedisErr(nil) != nil {
		t.Error("nil should stay nil")
	}
	if err := classifyRedisErr(redis.Nil); !errors.Is(err, redis.Nil) || IsRetryable(err) {
		t.Error("redis.Nil must pass through unwrapped")
	}
	op := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	if !IsRetryable(classifyRedisErr(op)) {
		t.Error("network errors should be retryable")
	}
	if IsRetryable(classifyRedisErr(errors.New("WRONGTYPE"))) {
		t.Error("server errors should not be retryable")
	}
}
