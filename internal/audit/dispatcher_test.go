package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type memSink struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (s *memSink) AppendAudit(_ context.Context, e models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

func TestDispatcherWritesEntries(t *testing.T) {
	sink := &memSink{}
	at := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	d := NewDispatcher(New(sink, func() time.Time { return at }), zaptest.NewLogger(t))

	id := uint(7)
	d.Dispatch(Event{UserID: &id, Action: "client_created", Entity: "client", EntityID: &id, Metadata: map[string]string{"nome": "Maria"}})
	d.Close()

	require.Len(t, sink.entries, 1)
	e := sink.entries[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "client_created", e.Action)
	assert.Equal(t, at, e.CreatedAt)
	assert.JSONEq(t, `{"nome":"Maria"}`, e.Metadata)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}
