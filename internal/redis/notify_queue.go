package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// NotifyQueue is the redis list backing the notification sink.
// Producers push best-effort; a background sender drains the list.
type NotifyQueue struct {
	client *goredis.Client
	key    string
}

func NewNotifyQueue(client *goredis.Client, key string) *NotifyQueue {
	return &NotifyQueue{client: client, key: key}
}

func (q *NotifyQueue) Notify(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotifyQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error) {
	var n domain.Notification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
