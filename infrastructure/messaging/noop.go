package messaging

import (
	"context"
	"log/slog"

	"seo-backoffice/domain/models"
	"seo-backoffice/domain/ports"
	"seo-backoffice/pkg/logger"
)

// NoopChangePublisher ใช้เมื่อไม่ได้ตั้งค่า NATS (log อย่างเดียว)
type NoopChangePublisher struct {
	logger *slog.Logger
}

func NewNoopChangePublisher() *NoopChangePublisher {
	return &NoopChangePublisher{
		logger: logger.GetLogger().With("component", "noop_change_publisher"),
	}
}

func (p *NoopChangePublisher) PublishChange(ctx context.Context, event *models.ChangeEvent) error {
	p.logger.DebugContext(ctx, "Change (noop)",
		"table", event.Table,
		"action", event.Action,
		"record_id", event.RecordID,
	)
	return nil
}

func (p *NoopChangePublisher) Close() error { return nil }

var _ ports.ChangePublisherPort = (*NoopChangePublisher)(nil)
