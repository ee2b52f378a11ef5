// Package notify runs admin notifications through a single-worker
// queue so they arrive in submission order. Transient network failures
// are retried with linear backoff; a notification that still fails is
// logged and dropped, never surfaced to the submitting user.
package notify

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gradnja/leadbot/core/logger"
	"log/slog"
)

var (
	// ErrQueueClosed is returned when enqueue is attempted after Close.
	ErrQueueClosed = errors.New("notify: queue closed")
	// ErrQueueFull indicates the queue is saturated and the job was not accepted.
	ErrQueueFull = errors.New("notify: queue full")

	tokenRe = regexp.MustCompile(`bot[0-9]+:[A-Za-z0-9_-]+`)
)

// Options controls queue depth and retry behaviour.
type Options struct {
	QueueSize  int
	MaxRetries int
	// RetryBackoff is the base delay; attempt n waits n times this.
	RetryBackoff time.Duration
	// MaxDuration bounds the total time spent on a single job.
	MaxDuration time.Duration
}

type job struct {
	ctx    context.Context
	action string
	run    func() error
}

// Queue executes notification jobs one at a time, in order.
type Queue struct {
	opts Options
	jobs chan job
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
	errs atomic.Uint64
}

// New starts the queue worker. Zeroed options get defaults.
func New(opts Options) *Queue {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 2 * time.Second
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 30 * time.Second
	}

	q := &Queue{
		opts: opts,
		jobs: make(chan job, opts.QueueSize),
		stop: make(chan struct{}),
	}

	q.wg.Add(1)
	go q.worker()

	return q
}

// Enqueue schedules run for asynchronous execution. The closure must be
// idempotent if retries are desired.
func (q *Queue) Enqueue(ctx context.Context, action string, run func() error) error {
	if run == nil {
		return errors.New("notify: nil run function")
	}
	select {
	case <-q.stop:
		return ErrQueueClosed
	default:
	}

	select {
	case q.jobs <- job{ctx: ctx, action: action, run: run}:
		return nil
	default:
		return ErrQueueFull
	}
}

// ErrorCount returns the number of jobs that exhausted their retries.
func (q *Queue) ErrorCount() uint64 {
	return q.errs.Load()
}

// Close drains the queue and waits for the worker to finish.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.stop)
		close(q.jobs)
		q.wg.Wait()
	})
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		q.handleJob(j)
	}
}

func (q *Queue) handleJob(j job) {
	ctx := j.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, q.opts.MaxDuration)
	defer cancel()

	start := time.Now()
	attempts := q.opts.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := deadlineCtx.Err(); err != nil {
			lastErr = err
			break
		}

		err := j.run()
		if err == nil {
			logger.Debug(ctx, "notify", "notify.sent",
				slog.String("action", j.action),
				slog.Int("attempt", attempt),
				slog.Int64("elapsed_ms", logger.RoundMS(time.Since(start)).Milliseconds()),
			)
			return
		}

		lastErr = err
		if !shouldRetry(err) || attempt == attempts {
			break
		}

		delay := q.opts.RetryBackoff * time.Duration(attempt)
		timer := time.NewTimer(delay)
		select {
		case <-deadlineCtx.Done():
			timer.Stop()
			lastErr = deadlineCtx.Err()
			attempt = attempts
		case <-timer.C:
			logger.Debug(ctx, "notify", "notify.retry",
				slog.String("action", j.action),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
			)
		}
	}

	q.errs.Add(1)
	logger.Error(ctx, "notify", "notify.fail",
		slog.String("action", j.action),
		slog.String("error", sanitizeErrorMessage(lastErr)),
		slog.Int("attempts", attempts),
		slog.Int64("elapsed_ms", logger.RoundMS(time.Since(start)).Milliseconds()),
	)
}
