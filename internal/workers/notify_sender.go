package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/redis"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// NotifySender drains the Redis notification queue and delivers each
// payload to the push gateway. Delivery is best effort: a notification
// that still fails after the retries is dropped and logged.
type NotifySender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  *redis.NotifyQueue
	http   *http.Client
}

func NewNotifySender(logger *slog.Logger, cfg config.PushConfig, q *redis.NotifyQueue) *NotifySender {
	return &NotifySender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotifySender) Run(ctx context.Context) {
	if s.cfg.Disabled || s.cfg.GatewayURL == "" {
		s.logger.Info("notifySender DISABLED, queue will not be drained")
		return
	}

	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	s.logger.Info("notifySender STARTED",
		slog.String("gateway", s.cfg.GatewayURL),
		slog.Int("workers", workers),
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.logger.Info("notifySender STOPPED")
}

func (s *NotifySender) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending push",
			slog.String("event", string(n.Event)),
			slog.String("recipient_id", n.RecipientID.String()),
		)
		s.sendWithRetry(ctx, n)
	}
}

func (s *NotifySender) sendWithRetry(ctx context.Context, n domain.Notification) {
	const maxRetries = 3

	body, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("marshal notification failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("event", string(n.Event)),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("push dropped after retries",
		slog.String("event", string(n.Event)),
		slog.String("recipient_id", n.RecipientID.String()),
	)
}
