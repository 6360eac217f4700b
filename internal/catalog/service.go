package catalog

import (
	"context"
	"log/slog"
	"time"

	"vitrina/internal/cache"
	"vitrina/internal/domain/models"
	"vitrina/internal/feed"
)

const (
	// MsgNotConfigured возвращается, когда URL фида не задан.
	MsgNotConfigured = "Каталог не настроен"
	// MsgUnavailable возвращается при любом транспортном сбое.
	MsgUnavailable = "Каталог временно недоступен"

	DefaultTTL = 5 * time.Minute
)

type Fetcher interface {
	Fetch(ctx context.Context) (feed.Payload, error)
}

// Service — клиент каталога. Протокол фиксированный:
// кэш → сеть → нормализация → запись в кэш → результат.
// Fetch никогда не возвращает ошибку: любой сбой — это данные
// (Snapshot c непустым Error и пустым Items).
type Service struct {
	fetcher     Fetcher
	store       cache.Store
	ttl         time.Duration
	placeholder string
	now         func() time.Time
	log         *slog.Logger
}

type Options struct {
	Fetcher        Fetcher // nil = фид не сконфигурирован
	Store          cache.Store
	TTL            time.Duration
	PlaceholderURL string
	Now            func() time.Time
	Logger         *slog.Logger
}

func NewService(opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		fetcher:     opts.Fetcher,
		store:       opts.Store,
		ttl:         opts.TTL,
		placeholder: opts.PlaceholderURL,
		now:         opts.Now,
		log:         opts.Logger,
	}
}

// Fetch возвращает снапшот каталога. На вызов приходится не больше
// одного сетевого запроса, одного чтения и одной записи кэша.
func (s *Service) Fetch(ctx context.Context) models.Snapshot {
	now := s.now()

	if snap, ok := s.readCache(ctx, now); ok {
		return snap
	}

	if s.fetcher == nil {
		s.log.Warn("catalog feed is not configured")
		return s.errorSnapshot(MsgNotConfigured, now)
	}

	payload, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.log.Warn("catalog fetch failed", "err", err)
		return s.errorSnapshot(MsgUnavailable, now)
	}

	if msg := payload.ErrorMessage(); msg != "" {
		s.log.Warn("catalog feed reported error", "msg", msg)
		return s.errorSnapshot(msg, now)
	}

	rawItems := payload.Items()
	items := make([]models.Product, 0, len(rawItems))
	for _, raw := range rawItems {
		if p, ok := NormalizeItem(raw, s.placeholder); ok {
			items = append(items, p)
		}
	}

	gen := payload.GeneratedAt()
	if gen == "" {
		gen = now.UTC().Format(time.RFC3339)
	}

	snap := models.Snapshot{GeneratedAt: gen, Items: items}
	s.writeCache(ctx, snap, now)

	s.log.Info("catalog fetched",
		"items", len(items),
		"dropped", len(rawItems)-len(items),
		"generated_at", gen,
	)
	return snap
}

// readCache — одно чтение кэша. Просроченная или нечитаемая запись
// убирается сразу и считается промахом.
func (s *Service) readCache(ctx context.Context, now time.Time) (models.Snapshot, bool) {
	if s.store == nil {
		return models.Snapshot{}, false
	}

	b, ok, err := s.store.Get(ctx, cache.Key)
	if err != nil {
		s.log.Debug("cache read failed", "err", err)
		return models.Snapshot{}, false
	}
	if !ok {
		return models.Snapshot{}, false
	}

	entry, err := cache.UnmarshalEntry(b)
	if err == nil && now.UnixMilli()-entry.CachedAt < s.ttl.Milliseconds() {
		return entry.Data, true
	}

	if err := s.store.Delete(ctx, cache.Key); err != nil {
		s.log.Debug("cache delete failed", "err", err)
	}
	return models.Snapshot{}, false
}

// writeCache — best-effort: отказ хранилища не влияет на результат.
func (s *Service) writeCache(ctx context.Context, snap models.Snapshot, now time.Time) {
	if s.store == nil {
		return
	}

	b, err := cache.Entry{Data: snap, CachedAt: now.UnixMilli()}.Marshal()
	if err != nil {
		s.log.Debug("cache marshal failed", "err", err)
		return
	}
	if err := s.store.Set(ctx, cache.Key, b); err != nil {
		s.log.Debug("cache write failed", "err", err)
	}
}

func (s *Service) errorSnapshot(msg string, now time.Time) models.Snapshot {
	return models.Snapshot{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Items:       []models.Product{},
		Error:       msg,
	}
}
