// Package ratelimit throttles credential-guessing against the login
// endpoint. Attempt counters live in redis so the limit holds across
// process restarts; when redis is not configured the limiter degrades to
// a no-op rather than blocking logins.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int
}

// NewLoginLimiter connects to redis at redisURL. An empty URL or a failed
// ping leaves the limiter disabled.
func NewLoginLimiter(redisURL string, window time.Duration, maxAttempts int) *LoginLimiter {
	limiter := &LoginLimiter{
		window:      window,
		maxAttempts: maxAttempts,
	}

	if redisURL == "" {
		return limiter
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("login limiter disabled, bad redis url: %v", err)
		return limiter
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("login limiter disabled, redis unreachable: %v", err)
		return limiter
	}

	limiter.client = client
	return limiter
}

// Allow records an attempt for key and reports whether it is still within
// the limit. Redis errors fail open: an unreachable limiter must not lock
// every user out.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l.client == nil {
		return true
	}

	redisKey := "login-attempts:" + key
	attempts, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Printf("login limiter: incr failed: %v", err)
		return true
	}
	if attempts == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			log.Printf("login limiter: expire failed: %v", err)
		}
	}

	return attempts <= int64(l.maxAttempts)
}

// Reset clears the attempt counter for key after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) {
	if l.client == nil {
		return
	}
	if err := l.client.Del(ctx, "login-attempts:"+key).Err(); err != nil {
		log.Printf("login limiter: reset failed: %v", err)
	}
}

func (l *LoginLimiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}

// AttemptKey builds the counter key from the claimed email and client IP,
// so one address cannot lock out a user it does not control.
func AttemptKey(email, clientIP string) string {
	return fmt.Sprintf("%s|%s", email, clientIP)
}
