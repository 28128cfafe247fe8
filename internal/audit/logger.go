package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// Sink persists audit entries.
type Sink interface {
	AppendAudit(ctx context.Context, entry models.AuditLog) error
}

type Logger struct {
	sink Sink
	now  func() time.Time
}

func New(sink Sink, now func() time.Time) *Logger {
	if now == nil {
		now = time.Now
	}
	return &Logger{sink: sink, now: now}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if s, err := jsoniter.MarshalToString(metadata); err == nil {
			metaJSON = s
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	return l.sink.AppendAudit(ctx, entry)
}
