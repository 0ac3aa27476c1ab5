package kit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	l := NewRateLimiter(2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatalf("first two calls must pass")
	}
	if l.Allow("a") {
		t.Fatalf("third call must be limited")
	}
	if !l.Allow("b") {
		t.Fatalf("keys are independent")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	l := NewRateLimiter(1, 20*time.Millisecond)

	if !l.Allow("a") {
		t.Fatalf("first call must pass")
	}
	if l.Allow("a") {
		t.Fatalf("second call inside the window must be limited")
	}

	time.Sleep(30 * time.Millisecond)

	if !l.Allow("a") {
		t.Fatalf("call after the window must pass")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"type":"RateLimitError"`) {
		t.Fatalf("body=%s", rec.Body.String())
	}

	other := httptest.NewRequest(http.MethodPost, "/", nil)
	other.RemoteAddr = "10.0.0.10:1234"

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("other client status=%d", rec.Code)
	}
}

func TestRateLimiterKeysByForwardedFor(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	mk := func(xff string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "127.0.0.1:9999"
		req.Header.Set("X-Forwarded-For", xff)
		return req
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, mk("1.2.3.4, 5.6.7.8"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}

	// Same first hop, same budget.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, mk("1.2.3.4"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, mk("9.9.9.9"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}
}
