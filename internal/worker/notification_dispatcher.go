package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elbekdesign/storefront/internal/adapter/telegram"
)

// NotificationDispatcher delivers queued notification texts in the
// background. Delivery is advisory: a full queue drops the message and a
// failed send is retried a bounded number of times, never surfacing to the
// submitter.
type NotificationDispatcher struct {
	notifier    telegram.Notifier
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger

	queue  chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher with a bounded queue.
func NewNotificationDispatcher(notifier telegram.Notifier, queueSize, maxAttempts int, retryDelay time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &NotificationDispatcher{
		notifier:    notifier,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		logger:      logger,
		queue:       make(chan string, queueSize),
	}
}

// Enqueue queues a text for delivery without blocking the caller. When the
// queue is full the text is dropped and logged.
func (d *NotificationDispatcher) Enqueue(text string) {
	select {
	case d.queue <- text:
	default:
		d.logger.Warn("notification queue full, dropping message")
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go d.run(runCtx)
}

// Stop cancels delivery and waits for the worker to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-d.queue:
			d.deliver(ctx, text)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, text string) {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.notifier.SendText(ctx, text)
		if err == nil {
			return
		}
		d.logger.Error("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if attempt == d.maxAttempts {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.retryDelay):
		}
	}
}
