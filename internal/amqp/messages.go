package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message kinds routed through the sync queue.
const (
	KindSync   = "sync"
	KindDelete = "delete"
)

// Message is the lightweight envelope published on transaction mutations.
// It carries only the transaction id; the worker fetches the full row from
// the database before exporting.
type Message struct {
	MessageID string    `json:"message_id"`
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSyncMessage announces a created or replaced transaction.
func NewSyncMessage(id string) *Message {
	return newMessage(KindSync, id)
}

// NewDeleteMessage announces a removed transaction.
func NewDeleteMessage(id string) *Message {
	return newMessage(KindDelete, id)
}

func newMessage(kind, id string) *Message {
	return &Message{
		MessageID: uuid.NewString(),
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON decodes a message from JSON bytes.
func MessageFromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
