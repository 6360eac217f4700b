package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/internal/deeplink"
	"vitrina/internal/domain/models"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context) models.Snapshot {
	return models.Snapshot{
		GeneratedAt: "2026-08-31T10:00:00Z",
		Items:       []models.Product{{SKU: "T1", Name: "Иван-чай", PriceRub: 450, Stock: 1, Tags: []string{}}},
	}
}

func newTestServer() http.Handler {
	s := New(nil)
	s.RegisterRoutes(Deps{
		Snapshots: stubFetcher{},
		Deeplinks: deeplink.New("bot"),
	})
	return s.Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestServer()

	cases := []struct {
		path string
		want int
	}{
		{"/healthz", http.StatusOK},
		{"/catalog", http.StatusOK},
		{"/catalog/products/T1", http.StatusOK},
		{"/catalog/products/NOPE", http.StatusNotFound},
		{"/no-such-route", http.StatusNotFound},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, c.path, nil))
		if rec.Code != c.want {
			t.Errorf("GET %s = %d, want %d", c.path, rec.Code, c.want)
		}
	}
}

func TestRequestIDPropagated(t *testing.T) {
	h := newTestServer()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("X-Request-Id must be set")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "rid-123" {
		t.Fatalf("X-Request-Id = %q, want rid-123", got)
	}
}
