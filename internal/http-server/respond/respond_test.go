package respond

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]any{"ok": true})

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("cache-control = %q", cc)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
}

func TestWriteJSON_UnencodableValueIs500(t *testing.T) {
	// до записи заголовков: никакого обрезанного 200
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]any{"bad": math.NaN()})

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body must stay valid json: %v", err)
	}
	if body.Error.Code != "encode_failed" {
		t.Fatalf("code = %q, want encode_failed", body.Error.Code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "not_found", "нет такого товара")

	if rec.Code != 404 {
		t.Fatalf("status = %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Error.Code != "not_found" || body.Error.Message != "нет такого товара" {
		t.Fatalf("body = %+v", body)
	}
}
