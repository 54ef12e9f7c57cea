package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spjimr/classroom-companion/internal/config"
)

func TestBuildRateKey_BucketsPerCallerAndRoute(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl"}

	a := buildRateKey(cfg, newCtx("/api/dashboard/tiles", map[string]string{"x-user-id": "u-1"}))
	b := buildRateKey(cfg, newCtx("/api/dashboard/tiles", map[string]string{"x-user-id": "u-2"}))
	if a == b {
		t.Error("rate keys must differ per caller")
	}

	c := buildRateKey(cfg, newCtx("/api/auth/profile", map[string]string{"x-user-id": "u-1"}))
	if a == c {
		t.Error("rate keys must differ per route")
	}

	// Same caller, same route: one bucket.
	d := buildRateKey(cfg, newCtx("/api/dashboard/tiles", map[string]string{"x-user-id": "u-1"}))
	if a != d {
		t.Error("rate key must be stable for an identical request")
	}
}

func TestBuildRateKey_AnonymousBucket(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl"}
	key := buildRateKey(cfg, newCtx("/api/dashboard/tiles", nil))
	if key == "" {
		t.Fatal("empty rate key")
	}
	if got := buildRateKey(cfg, newCtx("/api/dashboard/tiles", nil)); got != key {
		t.Error("anonymous callers from one address must share a bucket")
	}
}

func TestNewTokenBucket_PassThroughWhenUnavailable(t *testing.T) {
	cases := []config.RateLimitConfig{
		{Enabled: false, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second},
		{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second}, // nil client below
	}
	for _, cfg := range cases {
		mw := NewTokenBucket(cfg, nil)

		called := false
		h := mw(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})

		c := newCtx("/api/dashboard/tiles", nil)
		if err := h(c); err != nil {
			t.Fatalf("pass-through handler returned error: %v", err)
		}
		if !called {
			t.Error("limiter without Redis must invoke the next handler")
		}
		if c.Response().Header().Get("X-RateLimit-Limit") != "" {
			t.Error("disabled limiter must not set rate headers")
		}
	}
}
