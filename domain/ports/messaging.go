package ports

import (
	"context"

	"seo-backoffice/domain/models"
)

// ChangePublisherPort announces successful writes to other services.
type ChangePublisherPort interface {
	PublishChange(ctx context.Context, event *models.ChangeEvent) error
	Close() error
}
