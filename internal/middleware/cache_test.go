package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spjimr/classroom-companion/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`[{"tile_key":"onboard_batch"}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", gotHdr.Get("Content-Type"))
	}
	if string(gotBody) != string(body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayload_Truncated(t *testing.T) {
	if _, _, _, ok := decodePayload([]byte{0, 1, 2}); ok {
		t.Error("truncated payload must not decode")
	}
}

func newCtx(target string, header map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(target)
	return c
}

func TestCacheKey_SeparatesCallers(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache"}

	a := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{"x-user-id": "u-1"}))
	b := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{"x-user-id": "u-2"}))
	if a == b {
		t.Error("profile cache keys must differ per caller")
	}

	// Same caller, same route: stable key.
	c := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{"x-user-id": "u-1"}))
	if a != c {
		t.Error("cache key must be stable for an identical request")
	}
}

func TestCacheKey_BearerOutranksDevHeader(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache"}

	// Two callers sharing an x-user-id header but holding different bearer
	// tokens resolve to different identities and must never share a key.
	a := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{
		"x-user-id": "u-1", "Authorization": "Bearer token-a",
	}))
	b := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{
		"x-user-id": "u-1", "Authorization": "Bearer token-b",
	}))
	if a == b {
		t.Error("cache keys must follow the bearer token when both credentials are present")
	}

	// Same bearer with differing dev headers is one caller: the token wins
	// identity resolution, so it must also win the cache key.
	c := cacheKeyFrom(cfg, newCtx("/api/auth/profile", map[string]string{
		"x-user-id": "u-2", "Authorization": "Bearer token-a",
	}))
	if a != c {
		t.Error("dev header must not fragment the cache for one bearer identity")
	}
}

func TestCacheKey_SeparatesQueries(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache"}

	a := cacheKeyFrom(cfg, newCtx("/api/dashboard/tiles?role=DEVELOPER", nil))
	b := cacheKeyFrom(cfg, newCtx("/api/dashboard/tiles?role=PROGRAM_OFFICE", nil))
	if a == b {
		t.Error("tile cache keys must differ per role query")
	}
}
