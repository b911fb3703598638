package channel

import (
	"context"
	"encoding/json"
	"time"

	"careops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// notificationQueueKey is the Redis list the notification dispatcher drains.
const notificationQueueKey = "careops:notifications"

// NotificationChannel enqueues staff notifications as JSON jobs on a Redis
// list. Delivery to the dashboard (websocket push, digest email) is the
// dispatcher's problem; the engine only needs a durable handoff.
type NotificationChannel struct {
	rdb *redis.Client
}

func NewNotificationChannel(rdb *redis.Client) *NotificationChannel {
	return &NotificationChannel{rdb: rdb}
}

type notificationJob struct {
	ID       string    `json:"id"`
	TenantID string    `json:"tenant_id"`
	Message  string    `json:"message"`
	QueuedAt time.Time `json:"queued_at"`
}

func (c *NotificationChannel) Notify(ctx context.Context, tenantID uuid.UUID, message string) error {
	job := notificationJob{
		ID:       uuid.New().String(),
		TenantID: tenantID.String(),
		Message:  message,
		QueuedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification job")
	}

	if err := c.rdb.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return errs.Wrap(err, "failed to enqueue notification")
	}
	return nil
}
