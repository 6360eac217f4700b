package bootstrap

import (
	"log/slog"
	"net/http"
	"time"

	"vitrina/internal/cache"
	"vitrina/internal/cache/sqlitestore"
	"vitrina/internal/catalog"
	"vitrina/internal/client"
	"vitrina/internal/config"
	"vitrina/internal/feed"
)

// BuildTransport — единая сборка HTTP-транспорта для фида.
func BuildTransport(cfg *config.Config, log *slog.Logger) (client.Transport, error) {
	httpClient := client.NewHTTPClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)

	return client.Build(client.Options{
		HTTPClient:    httpClient,
		Retries:       cfg.HTTP.Retries,
		RatePerMinute: cfg.HTTP.RatePerMinute,
		Logger:        log,
	})
}

// BuildStore выбирает реализацию кэша по конфигу.
// Возвращённый closer безопасно вызывать всегда.
func BuildStore(cfg *config.Config, log *slog.Logger) (cache.Store, func() error, error) {
	switch cfg.Cache.Driver {
	case "sqlite":
		st, err := sqlitestore.Open(cfg.Cache.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info("cache store", "driver", "sqlite", "path", cfg.Cache.Path)
		return st, st.Close, nil
	default:
		log.Info("cache store", "driver", "memory")
		return cache.NewMemory(), func() error { return nil }, nil
	}
}

// BuildCatalog собирает клиент каталога. Пустой feed_url — валидное
// состояние: сервис строится без fetcher и честно отвечает
// "каталог не настроен".
func BuildCatalog(cfg *config.Config, log *slog.Logger, transport client.Transport, store cache.Store) *catalog.Service {
	var fetcher catalog.Fetcher
	if cfg.Catalog.FeedURL != "" {
		fetcher = feed.New(transport, cfg.Catalog.FeedURL, applyFeedHeaders)
	} else {
		log.Warn("catalog.feed_url is empty, catalog will answer with a soft error")
	}

	return catalog.NewService(catalog.Options{
		Fetcher:        fetcher,
		Store:          store,
		TTL:            time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second,
		PlaceholderURL: cfg.Catalog.PlaceholderPhotoURL,
		Logger:         log,
	})
}

func applyFeedHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "vitrina/1.0")
}
