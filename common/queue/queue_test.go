package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/common/logger"
)

func TestMemoryQueuePublishSubscribe(t *testing.T) {
	q := NewMemoryQueue(logger.New("error", "text"))
	defer q.Close()
	ctx := context.Background()

	received := make(chan []byte, 1)
	require.NoError(t, q.Subscribe(ctx, "notifications.fault-added", func(_ context.Context, _ string, value []byte) error {
		received <- value
		return nil
	}))

	require.NoError(t, q.Publish(ctx, "notifications.fault-added", "evt-1", []byte(`{"workActId":1}`)))

	select {
	case value := <-received:
		assert.Equal(t, []byte(`{"workActId":1}`), value)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestMemoryQueuePublishBeforeSubscribe(t *testing.T) {
	q := NewMemoryQueue(logger.New("error", "text"))
	defer q.Close()
	ctx := context.Background()

	// Publishing to a topic with no subscriber buffers the message
	require.NoError(t, q.Publish(ctx, "t", "k", []byte("early")))

	received := make(chan []byte, 1)
	require.NoError(t, q.Subscribe(ctx, "t", func(_ context.Context, _ string, value []byte) error {
		received <- value
		return nil
	}))

	select {
	case value := <-received:
		assert.Equal(t, []byte("early"), value)
	case <-time.After(2 * time.Second):
		t.Fatal("buffered message not delivered")
	}
}
