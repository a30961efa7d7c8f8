package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
	"github.com/ssm-admin/ssm-api/internal/events"
)

// StreamAppender is the part of persistence.Redis the worker needs.
type StreamAppender interface {
	Enabled() bool
	AppendToStream(ctx context.Context, stream string, maxLen int64, values map[string]any) (string, error)
}

// AuditWorker records change events: always in the log, and in a Redis
// stream when one is configured.
type AuditWorker struct {
	dispatcher events.Dispatcher
	sink       StreamAppender
	logger     *zap.Logger
	cfg        config.RedisConfig
	timeout    time.Duration
}

// NewAuditWorker creates the worker.
func NewAuditWorker(dispatcher events.Dispatcher, sink StreamAppender, logger *zap.Logger, cfg config.RedisConfig) *AuditWorker {
	return &AuditWorker{
		dispatcher: dispatcher,
		sink:       sink,
		logger:     logger,
		cfg:        cfg,
		timeout:    2 * time.Second,
	}
}

// StartAuditWorker registers audit handlers.
func StartAuditWorker(w *AuditWorker) {
	if w == nil || w.dispatcher == nil {
		return
	}
	events.SubscribeAll(w.dispatcher, w.handle)
}

func (w *AuditWorker) handle(ctx context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("resource", event.Resource),
		zap.Any("payload", event.Payload),
	}
	if event.ResourceID != nil {
		fields = append(fields, zap.Int64("resource_id", *event.ResourceID))
	}
	w.logger.Info("resource changed", fields...)

	if w.sink == nil || !w.sink.Enabled() {
		return nil
	}

	values, err := streamValues(event)
	if err != nil {
		return err
	}

	// The request context may already be near its deadline.
	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	id, err := w.sink.AppendToStream(sinkCtx, w.cfg.AuditStream, w.cfg.StreamMaxLen, values)
	if err != nil {
		w.logger.Warn("audit stream append failed", zap.String("event_id", event.ID), zap.Error(err))
		return fmt.Errorf("append audit event: %w", err)
	}
	w.logger.Debug("audit event appended", zap.String("stream", w.cfg.AuditStream), zap.String("entry_id", id))
	return nil
}

func streamValues(event events.Event) (map[string]any, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode audit payload: %w", err)
	}
	values := map[string]any{
		"id":        event.ID,
		"type":      string(event.Type),
		"resource":  event.Resource,
		"timestamp": event.Timestamp.Format(time.RFC3339Nano),
		"payload":   string(payload),
	}
	if event.ResourceID != nil {
		values["resource_id"] = strconv.FormatInt(*event.ResourceID, 10)
	}
	return values, nil
}
