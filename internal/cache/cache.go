package cache

import (
	"context"
	"encoding/json"

	"vitrina/internal/domain/models"
)

// Key — единственный ключ, под которым хранится снапшот каталога.
const Key = "catalog:v1"

// Store — подменяемое KV-хранилище кэша. TTL проверяет не хранилище,
// а клиент каталога: Store оперирует только байтами.
type Store interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// Entry — сериализованная запись кэша.
type Entry struct {
	Data     models.Snapshot `json:"data"`
	CachedAt int64           `json:"cached_at"` // epoch millis
}

func (e Entry) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEntry(b []byte) (Entry, error) {
	var e Entry
	err := json.Unmarshal(b, &e)
	return e, err
}
