package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hirecost/internal/platform/config"
	"hirecost/internal/platform/metrics"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.RateLimitPerMinute = 100
	cfg.MetricsEnabled = true
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRouterServesComparison(t *testing.T) {
	router := NewRouter(testConfig(), discardLogger(), metrics.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", bytes.NewBufferString(`{"grossValue":"1000","contractorRate":20}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected security headers")
	}
	if rec.Header().Get("X-RateLimit-Limit") != "100" {
		t.Fatalf("expected rate limit headers, got %q", rec.Header().Get("X-RateLimit-Limit"))
	}
	if !strings.Contains(rec.Body.String(), `"employer_total"`) {
		t.Fatalf("expected report groups, got %s", rec.Body.String())
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	collector := metrics.New()
	router := NewRouter(testConfig(), discardLogger(), collector)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"requestsTotal"`) {
		t.Fatalf("unexpected metrics response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouterMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	rec := httptest.NewRecorder()
	NewRouter(cfg, discardLogger(), metrics.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouterNotFoundUsesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(testConfig(), discardLogger(), metrics.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouterRejectsNonJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader("gross=1000"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	NewRouter(testConfig(), discardLogger(), metrics.New()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	cfg := testConfig()
	cfg.Addr = addr
	cfg.ShutdownTimeout = time.Second
	app := New(cfg, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
