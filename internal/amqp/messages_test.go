package amqp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessages(t *testing.T) {
	syncMsg := NewSyncMessage("tx-1")
	assert.Equal(t, KindSync, syncMsg.Kind)
	assert.Equal(t, "tx-1", syncMsg.ID)
	assert.NotEmpty(t, syncMsg.MessageID)
	assert.False(t, syncMsg.Timestamp.IsZero())

	delMsg := NewDeleteMessage("tx-2")
	assert.Equal(t, KindDelete, delMsg.Kind)
	assert.Equal(t, "tx-2", delMsg.ID)

	assert.NotEqual(t, syncMsg.MessageID, delMsg.MessageID)
}

func TestMessageJSONRoundTrip(t *testing.T) {
	msg := NewSyncMessage("tx-42")

	data, err := msg.ToJSON()
	require.NoError(t, err)

	decoded, err := MessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg.MessageID, decoded.MessageID)
	assert.Equal(t, msg.Kind, decoded.Kind)
	assert.Equal(t, msg.ID, decoded.ID)
	assert.True(t, msg.Timestamp.Equal(decoded.Timestamp))
}

func TestMessageFromJSONRejectsGarbage(t *testing.T) {
	_, err := MessageFromJSON([]byte("not json"))
	assert.Error(t, err)
}
