package receiver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/prilive-com/tgwire/internal/resilience"
	"github.com/prilive-com/tgwire/sender"
	"github.com/prilive-com/tgwire/tg"
)

// Poller fetches a batch of updates. *sender.Client implements it.
type Poller interface {
	GetUpdates(ctx context.Context, req sender.GetUpdatesRequest) ([]tg.Update, error)
}

// ErrorHook observes failures. u is nil for poll failures.
type ErrorHook func(ctx context.Context, u tg.Update, err error)

// Dispatcher long-polls for updates and hands each one to the registered
// handlers in registration order. Only one getUpdates is in flight at a time.
type Dispatcher struct {
	poller  Poller
	config  Config
	logger  *slog.Logger
	sleeper resilience.Sleeper
	onError ErrorHook

	mu       sync.RWMutex
	handlers []Handler

	// Throttled failure logs
	pollLog    rate.Sometimes
	handlerLog rate.Sometimes

	// State
	running           atomic.Bool
	offset            atomic.Int64
	consecutiveErrors atomic.Int32

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	lastErr atomic.Pointer[error]
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithSleeper sets the sleeper used between failed polls (useful for testing).
func WithSleeper(s resilience.Sleeper) Option {
	return func(d *Dispatcher) {
		d.sleeper = s
	}
}

// WithErrorHook sets a callback for poll and handler failures.
func WithErrorHook(hook ErrorHook) Option {
	return func(d *Dispatcher) {
		d.onError = hook
	}
}

// WithOffset resumes polling from a stored cursor.
func WithOffset(offset int64) Option {
	return func(d *Dispatcher) {
		d.offset.Store(offset)
	}
}

// New creates a dispatcher polling through p.
func New(p Poller, cfg Config, opts ...Option) (*Dispatcher, error) {
	if p == nil {
		return nil, ErrNoPoller
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		poller:     p,
		config:     cfg,
		logger:     slog.Default(),
		sleeper:    resilience.RealSleeper{},
		pollLog:    rate.Sometimes{First: 3, Interval: cfg.ErrorLogInterval},
		handlerLog: rate.Sometimes{First: 3, Interval: cfg.ErrorLogInterval},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Register appends handlers. Handlers registered while running apply from
// the next update.
func (d *Dispatcher) Register(handlers ...Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handlers...)
}

// Handle registers a handler function.
func (d *Dispatcher) Handle(fn HandlerFunc) {
	d.Register(fn)
}

// HandleKind registers a handler function for one update kind.
func (d *Dispatcher) HandleKind(kind tg.UpdateKind, fn HandlerFunc) {
	d.Register(OnKind(kind, fn))
}

// Running returns true if polling is active.
func (d *Dispatcher) Running() bool {
	return d.running.Load()
}

// IsHealthy returns health status for K8s probes.
func (d *Dispatcher) IsHealthy() bool {
	if d.config.PollingMaxErrors == 0 {
		return d.running.Load()
	}
	return d.running.Load() && int(d.consecutiveErrors.Load()) < d.config.PollingMaxErrors
}

// ConsecutiveErrors returns the current error count.
func (d *Dispatcher) ConsecutiveErrors() int32 {
	return d.consecutiveErrors.Load()
}

// Offset returns the next update id to request.
func (d *Dispatcher) Offset() int64 {
	return d.offset.Load()
}

// Run polls until ctx is done or too many consecutive polls fail.
// It returns ctx.Err() on cancellation and an error wrapping both
// ErrTooManyFailures and the last poll error otherwise.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer d.running.Store(false)

	d.logger.Info("long polling started",
		"timeout", d.config.PollingTimeout,
		"limit", d.config.PollingLimit,
		"max_errors", d.config.PollingMaxErrors,
		"offset", d.offset.Load(),
	)
	err := d.pollLoop(ctx)
	d.logger.Info("long polling stopped", "error", err)
	return err
}

// Start runs the dispatcher in the background. Stop cancels it.
// Start must not be called again before Stop returns.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	d.wg.Go(func() {
		if err := d.Run(ctx); err != nil {
			d.lastErr.Store(&err)
		}
	})
}

// Stop cancels a dispatcher started with Start and waits for it to return.
// It returns the error Run stopped with, or nil after a clean cancel.
func (d *Dispatcher) Stop() error {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
	if p := d.lastErr.Load(); p != nil && !errors.Is(*p, context.Canceled) {
		return *p
	}
	return nil
}

func (d *Dispatcher) pollLoop(ctx context.Context) error {
	backoff := d.config.backoff()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := d.poller.GetUpdates(ctx, sender.GetUpdatesRequest{
			Offset:         d.offset.Load(),
			Limit:          d.config.PollingLimit,
			Timeout:        d.config.PollingTimeout,
			AllowedUpdates: d.config.AllowedUpdates,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			errCount := d.consecutiveErrors.Add(1)
			d.report(ctx, nil, err)
			wait := backoff.Delay(int(errCount), 0)
			d.pollLog.Do(func() {
				d.logger.Error("fetch updates failed",
					"error", err,
					"consecutive_errors", errCount,
					"retry_delay", wait,
				)
			})

			if d.config.PollingMaxErrors > 0 && int(errCount) >= d.config.PollingMaxErrors {
				d.logger.Error("max consecutive errors exceeded", "max_errors", d.config.PollingMaxErrors)
				return fmt.Errorf("%w: %w", ErrTooManyFailures, err)
			}

			if err := d.sleeper.Sleep(ctx, wait); err != nil {
				return err
			}
			continue
		}

		d.consecutiveErrors.Store(0)

		for _, u := range updates {
			// Updates not yet dispatched are redelivered on the next run.
			if err := ctx.Err(); err != nil {
				return err
			}
			d.dispatch(ctx, u)
			if next := u.UpdateID() + 1; next > d.offset.Load() {
				d.offset.Store(next)
			}
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, u tg.Update) {
	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()

	logger := d.logger.With("update_id", u.UpdateID(), "kind", u.Kind())
	logger.Debug("dispatching update", "handlers", len(handlers))

	for i, h := range handlers {
		if err := safeHandle(ctx, h, u); err != nil {
			herr := &HandlerError{UpdateID: u.UpdateID(), Index: i, Err: err}
			d.report(ctx, u, herr)
			d.handlerLog.Do(func() {
				logger.Warn("handler failed", "handler", i, "error", err)
			})
		}
	}
}

func (d *Dispatcher) report(ctx context.Context, u tg.Update, err error) {
	if d.onError == nil {
		return
	}
	// A panicking hook must not take the loop down.
	_ = safeHandle(ctx, HandlerFunc(func(ctx context.Context, u tg.Update) error {
		d.onError(ctx, u, err)
		return nil
	}), u)
}

func safeHandle(ctx context.Context, h Handler, u tg.Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return h.HandleUpdate(ctx, u)
}
