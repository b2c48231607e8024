package sqlite

import (
	"context"
	"time"
)

// StoreEventType defines the event types emitted around store operations.
type StoreEventType string

const (
	QuerySaveStart     StoreEventType = "query:save:start"
	QuerySaveSuccess   StoreEventType = "query:save:success"
	QuerySaveFailed    StoreEventType = "query:save:failed"
	QueryLoadStart     StoreEventType = "query:load:start"
	QueryLoadSuccess   StoreEventType = "query:load:success"
	QueryLoadFailed    StoreEventType = "query:load:failed"
	QueryDeleteStart   StoreEventType = "query:delete:start"
	QueryDeleteSuccess StoreEventType = "query:delete:success"
	QueryDeleteFailed  StoreEventType = "query:delete:failed"
)

// StoreEvent is emitted on the store's event bus around every persistence
// operation.
type StoreEvent struct {
	Type      StoreEventType `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Operation string         `json:"operation"`
	Name      *string        `json:"name,omitempty"`
	Error     *string        `json:"error,omitempty"`
	Envelope  any            `json:"envelope,omitempty"`
}

// EventCallback is invoked for every matching store event.
type EventCallback func(ctx context.Context, event StoreEvent) error

func newStoreEvent(t StoreEventType, operation, name string, envelope any, err error) StoreEvent {
	e := StoreEvent{
		Type:      t,
		Timestamp: time.Now().UnixMilli(),
		Operation: operation,
		Envelope:  envelope,
	}
	if name != "" {
		e.Name = &name
	}
	if err != nil {
		msg := err.Error()
		e.Error = &msg
	}
	return e
}
