package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/triagehq/logtriage/internal/store"
)

func newTestServer(t *testing.T) (*handler, *store.Store) {
	t.Helper()
	s := store.New(10, 4)
	s.Push(store.Entry{Message: "boot", Producer: "web-1"})
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	srv := NewServer("127.0.0.1:0", s, metrics)
	return srv.Handler.(*handler), s
}

func TestPingReturnsPong(t *testing.T) {
	h, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Body.String() != "pong\n" {
		t.Fatalf("body = %q; want %q", rec.Body.String(), "pong\n")
	}
}

func TestReadyReturnsOK(t *testing.T) {
	h, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Body.String() != "ok\n" {
		t.Fatalf("body = %q; want %q", rec.Body.String(), "ok\n")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	h, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Code = %d; want 404", rec.Code)
	}
}

func TestMetricsExposesStoreGauges(t *testing.T) {
	h, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d; want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "logtriage_store_entries") {
		t.Fatalf("body missing logtriage_store_entries metric:\n%s", body)
	}
	if !strings.Contains(body, "logtriage_queries_served_total") {
		t.Fatalf("body missing logtriage_queries_served_total metric:\n%s", body)
	}
}
