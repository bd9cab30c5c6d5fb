package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubbook/models"
	"clubbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockHeld is returned when another request is booking the same window.
var ErrLockHeld = errors.New("booking lock is held")

// SlotLocker serialises booking attempts for one window across instances. It
// narrows the race window; the repository insert stays the authority.
type SlotLocker interface {
	Acquire(ctx context.Context, key models.BookingKey, ttl time.Duration) (release func(), err error)
}

// RedisSlotLocker takes a SETNX lock per booking tuple.
type RedisSlotLocker struct {
	Client *redis.Client
}

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

func LockKey(key models.BookingKey) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", utils.BookingLockPrefix, key.ResourceID, key.Date, key.StartTime, key.ServiceName)
}

func (l *RedisSlotLocker) Acquire(ctx context.Context, key models.BookingKey, ttl time.Duration) (func(), error) {
	lockKey := LockKey(key)
	token := uuid.New().String()
	ok, err := l.Client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to take booking lock: %w", err)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return func() {
		_ = releaseScript.Run(context.Background(), l.Client, []string{lockKey}, token).Err()
	}, nil
}
