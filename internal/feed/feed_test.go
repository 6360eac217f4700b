package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_ParsesPayload(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"generated_at": "2026-08-31T10:00:00Z",
			"items": [{"sku": "A1", "priceRub": 450}, "not an object", {"sku": "B2"}]
		}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, nil)
	p, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}
	if p.GeneratedAt() != "2026-08-31T10:00:00Z" {
		t.Fatalf("generated_at = %q", p.GeneratedAt())
	}
	if p.ErrorMessage() != "" {
		t.Fatalf("error = %q, want empty", p.ErrorMessage())
	}

	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (non-objects skipped)", len(items))
	}
	if items[0]["sku"] != "A1" {
		t.Fatalf("first item = %v", items[0])
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, nil)
	_, err := c.Fetch(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", apiErr.Status)
	}
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, nil)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error on malformed body")
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	c := New(http.DefaultClient, "", nil)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error on empty URL")
	}
}

func TestPayload_DuckTypedAccessors(t *testing.T) {
	p := Payload{Raw: map[string]any{
		"error": "quota exceeded",
		"items": "not a list",
	}}
	if p.ErrorMessage() != "quota exceeded" {
		t.Fatalf("error = %q", p.ErrorMessage())
	}
	if got := p.Items(); len(got) != 0 || got == nil {
		t.Fatalf("items = %v, want non-nil empty", got)
	}
	if p.GeneratedAt() != "" {
		t.Fatalf("generated_at = %q, want empty", p.GeneratedAt())
	}
}
