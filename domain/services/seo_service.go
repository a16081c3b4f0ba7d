package services

import (
	"context"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
)

type SEOService interface {
	Tables() []dto.TableInfo
	List(ctx context.Context, session *models.AdminSession, table models.Table) ([]map[string]any, error)
	UpdateSEO(ctx context.Context, session *models.AdminSession, table models.Table, id any, record map[string]any) ([]map[string]any, error)
	Export(ctx context.Context, session *models.AdminSession, table models.Table) (*dto.ExportFile, error)
	Import(ctx context.Context, session *models.AdminSession, table models.Table, payload []byte) (*dto.ImportResult, error)
	Template(table models.Table) (*dto.TemplateResponse, error)
}

type SnapshotService interface {
	Run(ctx context.Context) (*dto.SnapshotResult, error)
}
