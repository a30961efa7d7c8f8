package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []EventType
	d.Subscribe(EventStockCreated, func(ctx context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), New(EventStockCreated, ResourceStock, nil, StockPayload{Name: "Desk"})))
	require.NoError(t, d.Publish(context.Background(), New(EventStaffCreated, ResourceStaff, nil, nil)))

	assert.Equal(t, []EventType{EventStockCreated}, got)
}

func TestDispatcher_RunsAllHandlersAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	first := errors.New("sink down")
	calls := 0
	d.Subscribe(EventStaffRemoved, func(ctx context.Context, e Event) error {
		calls++
		return first
	})
	d.Subscribe(EventStaffRemoved, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), New(EventStaffRemoved, ResourceStaff, nil, MutationPayload{}))
	assert.ErrorIs(t, err, first)
	assert.Equal(t, 2, calls)
}

func TestDispatcher_HandlerPanicBecomesError(t *testing.T) {
	d := NewInMemoryDispatcher()
	reached := false
	d.Subscribe(EventStockRemoved, func(ctx context.Context, e Event) error {
		panic("boom")
	})
	d.Subscribe(EventStockRemoved, func(ctx context.Context, e Event) error {
		reached = true
		return nil
	})

	var err error
	assert.NotPanics(t, func() {
		err = d.Publish(context.Background(), New(EventStockRemoved, ResourceStock, nil, MutationPayload{}))
	})
	assert.ErrorContains(t, err, "panic: boom")
	assert.True(t, reached)
}

func TestSubscribeAll(t *testing.T) {
	d := NewInMemoryDispatcher()
	seen := map[EventType]bool{}
	SubscribeAll(d, func(ctx context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	for _, eventType := range AllTypes {
		require.NoError(t, d.Publish(context.Background(), New(eventType, ResourceStaff, nil, nil)))
	}
	assert.Len(t, seen, len(AllTypes))
}

func TestNew_StampsIdentity(t *testing.T) {
	id := int64(5)
	a := New(EventStockUpdated, ResourceStock, &id, MutationPayload{RowsAffected: 0})
	b := New(EventStockUpdated, ResourceStock, &id, MutationPayload{RowsAffected: 0})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Equal(t, int64(5), *a.ResourceID)
}
