package redisstore

import (
	"context"
	"time"

	"careerhub-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

type otpThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

// NewOtpThrottle returns the resend cooldown backed by a Redis TTL key per
// email. A nil client disables throttling entirely (fail open), matching the
// availability posture of the rate limiter.
func NewOtpThrottle(client *redis.Client, cooldown time.Duration) domain.OtpThrottle {
	return &otpThrottle{client: client, cooldown: cooldown}
}

func (t *otpThrottle) Reserve(ctx context.Context, email string) (bool, time.Duration, error) {
	if t.client == nil || t.cooldown <= 0 {
		return true, 0, nil
	}

	key := "otp:res:" + email
	set, err := t.client.SetNX(ctx, key, 1, t.cooldown).Result()
	if err != nil {
		return false, 0, err
	}
	if set {
		return true, 0, nil
	}

	ttl, err := t.client.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		// Key vanished between SETNX and TTL; treat as allowed.
		return true, 0, nil
	}
	return false, ttl, nil
}

func (t *otpThrottle) Release(ctx context.Context, email string) error {
	if t.client == nil || t.cooldown <= 0 {
		return nil
	}
	return t.client.Del(ctx, "otp:res:"+email).Err()
}
