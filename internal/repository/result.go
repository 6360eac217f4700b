package repository

import (
	"vitrina/internal/domain/models"
)

// SnapshotResult — то, что CLI выгружает в файл: нормализованный
// снапшот плюс метаданные выгрузки.
type SnapshotResult struct {
	FetchedAt   string           `json:"fetched_at"`
	GeneratedAt string           `json:"generated_at"`
	Products    []models.Product `json:"products"`
	Count       int              `json:"count"`
	Error       string           `json:"error,omitempty"`
}

func NewSnapshotResult(fetchedAt string, snap models.Snapshot) SnapshotResult {
	return SnapshotResult{
		FetchedAt:   fetchedAt,
		GeneratedAt: snap.GeneratedAt,
		Products:    snap.Items,
		Count:       len(snap.Items),
		Error:       snap.Error,
	}
}
