package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"seo-backoffice/domain/models"
	"seo-backoffice/domain/ports"
	"seo-backoffice/pkg/logger"
)

// Publisher is the subset of *nats.Conn the change publisher needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type NATSChangePublisher struct {
	conn   Publisher
	prefix string
	closer func() error
	logger *slog.Logger
}

// NewNATSChangePublisher publishes to <prefix>.<table>.<action>.
// closer may be nil when the connection is owned elsewhere.
func NewNATSChangePublisher(conn Publisher, prefix string, closer func() error) *NATSChangePublisher {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		prefix = "seo.changes"
	}
	return &NATSChangePublisher{
		conn:   conn,
		prefix: prefix,
		closer: closer,
		logger: logger.GetLogger().With("component", "nats_change_publisher"),
	}
}

func (p *NATSChangePublisher) Subject(event *models.ChangeEvent) string {
	return fmt.Sprintf("%s.%s.%s", p.prefix, event.Table, event.Action)
}

func (p *NATSChangePublisher) PublishChange(ctx context.Context, event *models.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	subject := p.Subject(event)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish change: %w", err)
	}

	p.logger.DebugContext(ctx, "Change published",
		"subject", subject,
		"event_id", event.ID,
		"rows", event.Rows,
	)
	return nil
}

func (p *NATSChangePublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

var _ ports.ChangePublisherPort = (*NATSChangePublisher)(nil)
