package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/eternallight/backend/common/logger"
	"github.com/eternallight/backend/common/queue"
	"github.com/eternallight/backend/common/redis"
)

// FaultAddedEvent announces that a fault was recorded on a work act
type FaultAddedEvent struct {
	EventID     string    `json:"eventId"`
	WorkActID   int64     `json:"workActId"`
	ActNumber   *string   `json:"actNumber,omitempty"`
	FaultTypeID int64     `json:"faultTypeId"`
	IsSelected  bool      `json:"isSelected"`
	OtherText   *string   `json:"otherText,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Publisher delivers a serialized event to its transport
type Publisher interface {
	Publish(ctx context.Context, message []byte) error
}

// QueuePublisher sends events over the in-process queue
type QueuePublisher struct {
	queue queue.Queue
	topic string
}

// NewQueuePublisher creates a queue-backed publisher
func NewQueuePublisher(q queue.Queue, topic string) *QueuePublisher {
	return &QueuePublisher{queue: q, topic: topic}
}

func (p *QueuePublisher) Publish(ctx context.Context, message []byte) error {
	return p.queue.Publish(ctx, p.topic, "", message)
}

// RedisPublisher sends events over a redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a redis-backed publisher
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, message []byte) error {
	return p.client.Publish(ctx, p.channel, message)
}

// Notifier emits fault-added events without blocking the write path.
// Delivery failures are logged and never surface to the caller.
type Notifier struct {
	pub Publisher
	log *logger.Logger
}

// NewNotifier creates a notifier over the given transport
func NewNotifier(pub Publisher, log *logger.Logger) *Notifier {
	return &Notifier{pub: pub, log: log}
}

// FaultAdded publishes the event in the background
func (n *Notifier) FaultAdded(event FaultAddedEvent) {
	if n == nil || n.pub == nil {
		return
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Error("failed to serialize fault-added event", "event_id", event.EventID, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := n.pub.Publish(ctx, payload); err != nil {
			n.log.Error("failed to publish fault-added event",
				"event_id", event.EventID,
				"work_act_id", event.WorkActID,
				"fault_type_id", event.FaultTypeID,
				"error", err)
			return
		}

		n.log.Info("fault-added event published",
			"event_id", event.EventID,
			"work_act_id", event.WorkActID,
			"fault_type_id", event.FaultTypeID)
	}()
}
