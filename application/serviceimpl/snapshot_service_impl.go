package serviceimpl

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/ports"
	"seo-backoffice/domain/repositories"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
)

// SnapshotServiceImpl exports every table to storage. It reads through the
// repository directly since scheduled runs have no admin session.
type SnapshotServiceImpl struct {
	tableRepo repositories.TableRepository
	storage   ports.StoragePort
	prefix    string
	now       func() time.Time
}

func NewSnapshotService(tableRepo repositories.TableRepository, storage ports.StoragePort, prefix string) services.SnapshotService {
	return &SnapshotServiceImpl{
		tableRepo: tableRepo,
		storage:   storage,
		prefix:    prefix,
		now:       time.Now,
	}
}

func (s *SnapshotServiceImpl) Run(ctx context.Context) (*dto.SnapshotResult, error) {
	runID := uuid.NewString()
	folder := fmt.Sprintf("%s/%s", slug.Make(s.prefix), s.now().UTC().Format("20060102-150405"))

	result := &dto.SnapshotResult{RunID: runID}
	failed := 0

	for _, table := range models.AllTables() {
		entry := s.snapshotTable(ctx, table, folder)
		if entry.Error != "" {
			failed++
		}
		result.Entries = append(result.Entries, entry)
	}

	logger.InfoContext(ctx, "Snapshot finished",
		"run_id", runID,
		"folder", folder,
		"provider", s.storage.GetProviderName(),
		"failed", failed,
	)

	if failed == len(result.Entries) {
		return result, fmt.Errorf("snapshot failed for every table")
	}
	return result, nil
}

func (s *SnapshotServiceImpl) snapshotTable(ctx context.Context, table models.Table, folder string) dto.SnapshotEntry {
	entry := dto.SnapshotEntry{Table: table}

	schema, ok := dto.SchemaFor(table)
	if !ok {
		entry.Error = "no schema"
		return entry
	}

	rows, err := s.tableRepo.Select(ctx, table, schema.IDField)
	if err != nil {
		logger.WarnContext(ctx, "Snapshot read failed", "table", table, "error", err)
		entry.Error = err.Error()
		return entry
	}

	content, err := schema.MarshalOrdered(toPublic(schema, rows))
	if err != nil {
		entry.Error = err.Error()
		return entry
	}

	entry.Key = fmt.Sprintf("%s/%s.json", folder, slug.Make(schema.Label))
	entry.Rows = len(rows)

	url, err := s.storage.UploadFile(ctx, bytes.NewReader(content), int64(len(content)), entry.Key, "application/json")
	if err != nil {
		logger.WarnContext(ctx, "Snapshot upload failed", "table", table, "key", entry.Key, "error", err)
		entry.Error = err.Error()
		return entry
	}
	entry.URL = url
	return entry
}
