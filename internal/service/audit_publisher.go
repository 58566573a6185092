package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

// AuditPublisherImpl implements ports.AuditPublisher over the message
// bridge. Serialization failures are hard errors so the triggering
// mutation aborts; delivery failures are logged and dropped because the
// log topic is best-effort.
type AuditPublisherImpl struct {
	bridge ports.MessageBridge
	topic  string
	log    zerolog.Logger
}

// NewAuditPublisher creates a publisher targeting the audit log topic.
func NewAuditPublisher(bridge ports.MessageBridge, topic string, log zerolog.Logger) *AuditPublisherImpl {
	return &AuditPublisherImpl{bridge: bridge, topic: topic, log: log}
}

// LogCreate emits an audit record for a newly created row.
func (p *AuditPublisherImpl) LogCreate(ctx context.Context, table string, recordID string, newData map[string]any, actor domain.Actor) error {
	return p.publish(ctx, domain.AuditRecord{
		TableName: table,
		RecordID:  recordID,
		Action:    domain.AuditActionCreate,
		NewData:   newData,
		Actor:     actor,
		ChangedAt: time.Now().UTC(),
	})
}

// LogUpdate emits an audit record carrying before and after state.
func (p *AuditPublisherImpl) LogUpdate(ctx context.Context, table string, recordID string, oldData map[string]any, newData map[string]any, actor domain.Actor) error {
	return p.publish(ctx, domain.AuditRecord{
		TableName: table,
		RecordID:  recordID,
		Action:    domain.AuditActionUpdate,
		OldData:   oldData,
		NewData:   newData,
		Actor:     actor,
		ChangedAt: time.Now().UTC(),
	})
}

func (p *AuditPublisherImpl) publish(ctx context.Context, record domain.AuditRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		// An un-auditable mutation is unsafe to commit.
		return apperror.ErrSerialization(err)
	}

	if err := p.bridge.SendAsync(ctx, p.topic, payload); err != nil {
		p.log.Error().Err(err).
			Str("table", record.TableName).
			Str("record_id", record.RecordID).
			Msg("audit event dropped")
	}
	return nil
}
