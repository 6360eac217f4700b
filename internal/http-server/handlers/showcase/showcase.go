package showcase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vitrina/internal/catalog"
	"vitrina/internal/deeplink"
	"vitrina/internal/domain/models"
	"vitrina/internal/http-server/query"
	"vitrina/internal/http-server/respond"
)

// SnapshotFetcher — то, что умеет клиент каталога. Ошибок нет:
// сбой приходит данными внутри снапшота.
type SnapshotFetcher interface {
	Fetch(ctx context.Context) models.Snapshot
}

type Options struct {
	Log       *slog.Logger
	Snapshots SnapshotFetcher
	Deeplinks deeplink.Builder
	Timeout   time.Duration
}

// NewListHandler — GET /catalog.
// Параметры: category (тег), q (поиск), available (0/1, дефолт 1).
// Снапшот с Error отдаётся как 200: мягкая ошибка — это данные,
// ветвится по ней презентационный слой.
func NewListHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
			return
		}
		if opts.Snapshots == nil {
			log.Error("showcase handler misconfigured: SnapshotFetcher is nil")
			respond.WriteInternalError(w)
			return
		}

		available, err := query.Bool(r, "available", true)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), opts.Timeout)
		defer cancel()

		snap := opts.Snapshots.Fetch(ctx)

		items := snap.Items
		if available {
			items = catalog.Available(items)
		}
		if category, ok := query.Str(r, "category"); ok {
			items = catalog.ByCategory(items, category)
		}
		if q, ok := query.Str(r, "q"); ok {
			items = catalog.Search(items, q)
		}
		snap.Items = items

		respond.WriteJSON(w, http.StatusOK, snap)
	}
}

// ProductView — карточка товара для презентационного слоя.
type ProductView struct {
	models.Product
	CTALabel string `json:"cta_label"`
	DeepLink string `json:"deep_link,omitempty"`
}

// NewProductHandler — GET /catalog/products/{sku}.
func NewProductHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
			return
		}
		if opts.Snapshots == nil {
			log.Error("showcase handler misconfigured: SnapshotFetcher is nil")
			respond.WriteInternalError(w)
			return
		}

		sku := strings.TrimPrefix(r.URL.Path, "/catalog/products/")
		sku = strings.TrimSpace(strings.Trim(sku, "/"))
		if sku == "" {
			respond.WriteError(w, http.StatusBadRequest, "bad_request", "sku is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), opts.Timeout)
		defer cancel()

		snap := opts.Snapshots.Fetch(ctx)
		if snap.Error != "" {
			respond.WriteError(w, http.StatusServiceUnavailable, "catalog_unavailable", snap.Error)
			return
		}

		for _, p := range snap.Items {
			if p.SKU == sku {
				respond.WriteJSON(w, http.StatusOK, ProductView{
					Product:  p,
					CTALabel: p.CTALabel(),
					DeepLink: opts.Deeplinks.Build(p.SKU),
				})
				return
			}
		}

		respond.WriteError(w, http.StatusNotFound, "not_found", "unknown sku")
	}
}
