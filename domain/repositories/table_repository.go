package repositories

import (
	"context"

	"seo-backoffice/domain/models"
)

// TableRepository runs untyped row operations against allow-listed tables.
type TableRepository interface {
	Select(ctx context.Context, table models.Table, orderBy string) ([]map[string]any, error)
	Insert(ctx context.Context, table models.Table, data map[string]any) ([]map[string]any, error)
	Update(ctx context.Context, table models.Table, idField string, id any, data map[string]any) ([]map[string]any, error)
	Delete(ctx context.Context, table models.Table, idField string, id any) error
}
