package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go-roster/internal/bootstrap"
	"go-roster/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeRosterLifecycle copies every roster lifecycle event into the audit
// log until ctx is cancelled. Undecodable messages are committed and
// skipped so they cannot block the partition.
func ConsumeRosterLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.roster_lifecycle")
	log.Info("roster lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("roster lifecycle consumer stopped")
				return
			}
			log.Error("fetch roster lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode roster lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, auditEntry(event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit roster lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("roster lifecycle event audited",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func auditEntry(event events.EmployeeLifecycleEvent) bootstrap.AuditLog {
	meta := map[string]any{
		"employee_id": event.EmployeeID,
		"occurred_at": event.OccurredAt,
	}
	if event.RequestID != "" {
		meta["request_id"] = event.RequestID
	}
	if event.Active != nil {
		meta["active"] = *event.Active
	}

	verb := strings.TrimPrefix(event.EventType, "employee_")
	return bootstrap.AuditLog{
		Action:  strings.ToUpper(event.EventType),
		Message: fmt.Sprintf("employee %s %s", event.EmployeeID, verb),
		Meta:    meta,
	}
}
