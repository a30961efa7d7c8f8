package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
	"github.com/ssm-admin/ssm-api/internal/events"
)

type fakeSink struct {
	enabled bool
	err     error
	stream  string
	maxLen  int64
	entries []map[string]any
}

func (f *fakeSink) Enabled() bool { return f.enabled }

func (f *fakeSink) AppendToStream(ctx context.Context, stream string, maxLen int64, values map[string]any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.stream = stream
	f.maxLen = maxLen
	f.entries = append(f.entries, values)
	return "1-0", nil
}

func newWorker(sink StreamAppender) (*AuditWorker, events.Dispatcher) {
	d := events.NewInMemoryDispatcher()
	w := NewAuditWorker(d, sink, zap.NewNop(), config.RedisConfig{AuditStream: "ssm:audit", StreamMaxLen: 100})
	StartAuditWorker(w)
	return w, d
}

func TestAuditWorker_AppendsEveryEventType(t *testing.T) {
	sink := &fakeSink{enabled: true}
	_, d := newWorker(sink)

	id := int64(3)
	for _, eventType := range events.AllTypes {
		require.NoError(t, d.Publish(context.Background(), events.New(eventType, events.ResourceStock, &id, events.MutationPayload{RowsAffected: 1})))
	}

	require.Len(t, sink.entries, len(events.AllTypes))
	assert.Equal(t, "ssm:audit", sink.stream)
	assert.EqualValues(t, 100, sink.maxLen)

	first := sink.entries[0]
	assert.Equal(t, string(events.EventStaffCreated), first["type"])
	assert.Equal(t, "3", first["resource_id"])

	var payload events.MutationPayload
	require.NoError(t, json.Unmarshal([]byte(first["payload"].(string)), &payload))
	assert.EqualValues(t, 1, payload.RowsAffected)
}

func TestAuditWorker_DisabledSinkOnlyLogs(t *testing.T) {
	sink := &fakeSink{enabled: false}
	_, d := newWorker(sink)

	require.NoError(t, d.Publish(context.Background(), events.New(events.EventStaffCreated, events.ResourceStaff, nil, events.StaffPayload{Name: "A"})))
	assert.Empty(t, sink.entries)
}

func TestAuditWorker_SinkFailureSurfacesToPublisher(t *testing.T) {
	sink := &fakeSink{enabled: true, err: errors.New("READONLY")}
	_, d := newWorker(sink)

	err := d.Publish(context.Background(), events.New(events.EventStockRemoved, events.ResourceStock, nil, events.MutationPayload{}))
	assert.Error(t, err)
}

func TestStartAuditWorker_Nil(t *testing.T) {
	assert.NotPanics(t, func() { StartAuditWorker(nil) })
}
