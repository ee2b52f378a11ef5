package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"
	"testing"
	"time"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestJobsRunInOrder(t *testing.T) {
	q := New(Options{QueueSize: 16})

	var mu sync.Mutex
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if err := q.Enqueue(context.Background(), "test", func() error {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Close()

	if len(got) != 5 {
		t.Fatalf("ran %d jobs, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("jobs out of order: %v", got)
		}
	}
}

func TestRetriesTransientError(t *testing.T) {
	q := New(Options{QueueSize: 4, MaxRetries: 2, RetryBackoff: time.Millisecond})

	var mu sync.Mutex
	calls := 0
	err := q.Enqueue(context.Background(), "test", func() error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			return &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: timeoutErr{}}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.Close()

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if q.ErrorCount() != 0 {
		t.Errorf("error count = %d, want 0", q.ErrorCount())
	}
}

func TestPermanentErrorNotRetried(t *testing.T) {
	q := New(Options{QueueSize: 4, MaxRetries: 3, RetryBackoff: time.Millisecond})

	calls := 0
	_ = q.Enqueue(context.Background(), "test", func() error {
		calls++
		return errors.New("telegram: bot was blocked by the user (403)")
	})
	q.Close()

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry for app errors)", calls)
	}
	if q.ErrorCount() != 1 {
		t.Errorf("error count = %d, want 1", q.ErrorCount())
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	q := New(Options{QueueSize: 4})
	q.Close()
	err := q.Enqueue(context.Background(), "test", func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Errorf("err = %v, want ErrQueueClosed", err)
	}
}

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", timeoutErr{}, true},
		{"dial op", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"url wrapping timeout", &url.Error{Op: "Post", URL: "x", Err: timeoutErr{}}, true},
		{"plain app error", errors.New("bad request"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldRetry(tc.err); got != tc.want {
				t.Errorf("shouldRetry(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestSanitizeErrorMessage(t *testing.T) {
	err := fmt.Errorf("Post \"https://api.telegram.org/bot12345:AAeE-ffGG_hh/sendMessage\": timeout")
	got := sanitizeErrorMessage(err)
	if got != "Post \"https://api.telegram.org/bot<redacted>/sendMessage\": timeout" {
		t.Errorf("token not redacted: %q", got)
	}
}
