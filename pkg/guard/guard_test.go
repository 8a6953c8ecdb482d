package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowsUpToMaxPerWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(5, WithClock(func() time.Time { return now }))

	for i := 0; i < 5; i++ {
		if _, ok := l.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	retryAfter, ok := l.Allow("1.2.3.4")
	if ok {
		t.Fatal("request over budget was allowed")
	}
	if retryAfter < 1 || retryAfter > 60 {
		t.Fatalf("retry-after out of range: %d", retryAfter)
	}
}

func TestLimiter_WindowExpiryResetsCount(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(2, WithClock(func() time.Time { return now }))

	l.Allow("ip")
	l.Allow("ip")
	if _, ok := l.Allow("ip"); ok {
		t.Fatal("third request should be limited")
	}

	now = now.Add(61 * time.Second)
	if _, ok := l.Allow("ip"); !ok {
		t.Fatal("request after window expiry should reset to count 1")
	}
}

func TestLimiter_RetryAfterNeverBelowOne(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(1, WithClock(func() time.Time { return now }))

	l.Allow("ip")
	now = now.Add(DefaultWindow - 50*time.Millisecond)
	retryAfter, ok := l.Allow("ip")
	if ok {
		t.Fatal("expected limit hit")
	}
	if retryAfter != 1 {
		t.Fatalf("expected retry-after clamped to 1, got %d", retryAfter)
	}
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	l := NewLimiter(1)
	if _, ok := l.Allow("a"); !ok {
		t.Fatal("first request for a limited")
	}
	if _, ok := l.Allow("b"); !ok {
		t.Fatal("first request for b limited")
	}
	if _, ok := l.Allow("a"); ok {
		t.Fatal("second request for a should be limited")
	}
}

func TestLimiter_SweepDropsExpiredBuckets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(10, WithClock(func() time.Time { return now }))
	l.sweepEvery = 4

	l.Allow("a")
	l.Allow("b")
	l.Allow("c")
	now = now.Add(2 * time.Minute)
	l.Allow("d") // 4th insert triggers the sweep

	if got := l.Len(); got != 1 {
		t.Fatalf("expected only the fresh bucket to survive, got %d", got)
	}
}

func TestGuard_DisabledLimiterAlwaysAllows(t *testing.T) {
	g := New(0)
	for i := 0; i < 100; i++ {
		if d := g.CheckRate("ip"); d.Verdict != Allow {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}

func TestGuard_HoneypotTripsOnNonEmptyString(t *testing.T) {
	g := New(0, WithHoneypotField("website"))

	cases := []struct {
		name    string
		payload map[string]any
		want    Verdict
	}{
		{"absent", map[string]any{}, Allow},
		{"empty", map[string]any{"website": ""}, Allow},
		{"whitespace", map[string]any{"website": "   "}, Allow},
		{"filled", map[string]any{"website": "https://spam.example"}, SilentAccept},
		{"non-string", map[string]any{"website": 42}, Allow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d := g.CheckHoneypot(tc.payload); d.Verdict != tc.want {
				t.Fatalf("verdict %v, want %v", d.Verdict, tc.want)
			}
		})
	}
}

func TestClientID_HeaderFallbacks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientID(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded entry, got %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Real-IP", " 198.51.100.9 ")
	if got := ClientID(req); got != "198.51.100.9" {
		t.Fatalf("expected x-real-ip fallback, got %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Del("X-Forwarded-For")
	req.Header.Del("X-Real-IP")
	if got := ClientID(req); got != "unknown" {
		t.Fatalf("expected unknown fallback, got %q", got)
	}
}
