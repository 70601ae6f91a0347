package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeCounter struct {
	counts    map[string]int64
	expired   map[string]time.Duration
	incrErr   error
	expireErr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expired: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		cmd := redis.NewIntCmd(ctx)
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.expireErr != nil {
		return redis.NewBoolResult(false, f.expireErr)
	}
	f.expired[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRateLimitRepository_Hit(t *testing.T) {
	ctx := context.Background()

	t.Run("CountsWithinWindow", func(t *testing.T) {
		fake := newFakeCounter()
		repo := NewRateLimitRepository(fake, time.Hour)

		first, err := repo.Hit(ctx, "10.0.0.1")
		assert.NoError(t, err)
		second, err := repo.Hit(ctx, "10.0.0.1")
		assert.NoError(t, err)
		other, err := repo.Hit(ctx, "10.0.0.2")
		assert.NoError(t, err)

		assert.Equal(t, int64(1), first)
		assert.Equal(t, int64(2), second)
		assert.Equal(t, int64(1), other)
		assert.Len(t, fake.expired, 2)
		for key, ttl := range fake.expired {
			assert.True(t, strings.HasPrefix(key, "ratelimit:10.0.0."))
			assert.Equal(t, time.Hour, ttl)
		}
	})

	t.Run("IncrError", func(t *testing.T) {
		fake := newFakeCounter()
		fake.incrErr = errors.New("connection refused")
		repo := NewRateLimitRepository(fake, time.Minute)

		_, err := repo.Hit(ctx, "10.0.0.1")
		assert.Error(t, err)
	})

	t.Run("ExpireError", func(t *testing.T) {
		fake := newFakeCounter()
		fake.expireErr = errors.New("readonly")
		repo := NewRateLimitRepository(fake, time.Minute)

		count, err := repo.Hit(ctx, "10.0.0.1")
		assert.Error(t, err)
		assert.Equal(t, int64(1), count)
	})
}
