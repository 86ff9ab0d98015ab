package events

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	Kind        string `json:"kind"`
	Total       int64  `json:"total"`
}

type OrderStatusChangedPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	ActorID     string `json:"actor_id"`
	ActorRole   string `json:"actor_role"`
}

// Partition key = order_id supaya event satu order tetap berurutan.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
