package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"

	DefaultQueueSize       = 256
	DefaultWorkers         = 2
	DefaultDeliveryTimeout = 5 * time.Second
)

// Options параметры диспетчера
type Options struct {
	QueueSize       int
	Workers         int
	DeliveryTimeout time.Duration
}

// Dispatcher асинхронно доставляет уведомления
// Доставка best-effort: ошибки логируются и не возвращаются вызывающему
type Dispatcher struct {
	store     Store
	publisher Publisher // может быть nil
	metrics   Metrics   // может быть nil
	logger    Logger
	opts      Options

	queue chan domain.Notification
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(store Store, publisher Publisher, metrics Metrics, logger Logger, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.DeliveryTimeout <= 0 {
		opts.DeliveryTimeout = DefaultDeliveryTimeout
	}

	return &Dispatcher{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		opts:      opts,
		queue:     make(chan domain.Notification, opts.QueueSize),
	}
}

// Start запускает воркеры. Повторный вызов ничего не делает
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	d.logger.Info("Dispatcher - started %d workers, queue size %d", d.opts.Workers, d.opts.QueueSize)
}

// Notify ставит уведомление в очередь и не блокируется
func (d *Dispatcher) Notify(ctx context.Context, n domain.Notification) error {
	if err := validate(n); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- n:
		return nil
	default:
		d.incResult(ResultDropped)
		d.logger.Warn("Dispatcher - queue is full, notification for user %d dropped (title=%q)", n.UserID, n.Title)
		return ErrQueueFull
	}
}

// Stop прекращает прием уведомлений и ждет, пока воркеры доставят оставшиеся
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Dispatcher - stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notifier: stop: %w", ctx.Err())
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	for n := range d.queue {
		d.deliver(id, n)
	}
}

func (d *Dispatcher) deliver(workerID int, n domain.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.opts.DeliveryTimeout)
	defer cancel()

	stored, err := d.store.Create(ctx, &n)
	if err != nil {
		d.incResult(ResultFailed)
		d.logger.Error("Dispatcher[%d] - failed to store notification for user %d: %v", workerID, n.UserID, err)
		return
	}

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, stored); err != nil {
			d.logger.Warn("Dispatcher[%d] - failed to publish notification %d: %v", workerID, stored.ID, err)
		}
	}

	d.incResult(ResultDelivered)
}

func (d *Dispatcher) incResult(result string) {
	if d.metrics != nil {
		d.metrics.IncNotification(result)
	}
}

func validate(n domain.Notification) error {
	if n.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidNotification)
	}
	if n.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidNotification)
	}
	if !n.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidNotification, n.Category)
	}
	return nil
}
