package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated EventType = "staff_created"
	EventStaffUpdated EventType = "staff_updated"
	EventStaffRemoved EventType = "staff_removed"
	EventStockCreated EventType = "stock_created"
	EventStockUpdated EventType = "stock_updated"
	EventStockRemoved EventType = "stock_removed"
)

// AllTypes lists every event type emitted by the resource services.
var AllTypes = []EventType{
	EventStaffCreated,
	EventStaffUpdated,
	EventStaffRemoved,
	EventStockCreated,
	EventStockUpdated,
	EventStockRemoved,
}

// Resource names used in events.
const (
	ResourceStaff = "staff"
	ResourceStock = "stock"
)

// Event represents a change emitted after a successful mutation.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	Resource   string      `json:"resource"`
	ResourceID *int64      `json:"resource_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, resource string, resourceID *int64, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// StaffPayload carries the written staff fields.
type StaffPayload struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Departement string `json:"departement"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// StockPayload carries the written stock fields.
type StockPayload struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Department string `json:"department"`
	Quantity   int    `json:"quantity"`
}

// MutationPayload wraps update/remove outcomes. RowsAffected is zero when the
// target identity did not exist.
type MutationPayload struct {
	RowsAffected int64       `json:"rows_affected"`
	Fields       interface{} `json:"fields,omitempty"`
}
